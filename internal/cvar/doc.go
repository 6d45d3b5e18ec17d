// Package cvar defines the typed variable record used throughout the
// grammar engine: a named, type-tagged value with a constant/keyword marker.
// Records never live on their own; they are always elements of a cvec vector
// and are created, mutated and discarded through it.
//
// Payloads are cty values (zclconf/go-cty), so copies are cheap and
// conversions between the closed type set and the underlying value
// representation go through the cty conversion machinery.
package cvar
