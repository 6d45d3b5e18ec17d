// Package syntax models the static shape of a command grammar: nodes
// (literal commands, sub-grammar references, typed variable slots and the
// empty terminator) and the ordered sibling trees that connect them.
//
// Trees are produced by a grammar compiler outside this module and read by
// the print package; this package only defines the object graph and the
// constructors to build it programmatically.
package syntax
