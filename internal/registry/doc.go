// Package registry keeps the set of named parse-trees known to one engine
// instance. Grammar modules register their trees at startup; the print
// package and the matching engine look them up by name or walk them in
// registration order.
package registry
