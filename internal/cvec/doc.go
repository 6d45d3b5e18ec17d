// Package cvec implements the named, ordered, growable vector of typed
// variable records that carries parameters through the grammar engine:
// help lines, callback arguments, range bounds and matched command words
// all travel as cvec vectors.
//
// Storage is a single contiguous slice reallocated to exact size on every
// structural mutation. Element pointers handed out by Add, I, Each or the
// Find functions are therefore invalidated by any subsequent Add, AppendVar,
// Del or DelI on the same vector; re-resolve by index or search after every
// mutation. The package documents this contract rather than defending
// against violations.
package cvec
