// Package print reconstructs grammar syntax text from the in-memory object
// graph. Node and Tree render a parseable approximation of the grammar
// source (full mode) or a compact token-only form (brief mode); DumpNode
// and DumpTree emit a non-parseable structural dump for debugging.
//
// Output is accumulated in a buffer and flushed to the destination writer
// once, so a failing writer never observes partial nodes. The structural
// dump always goes to the package diagnostic writer, regardless of any
// caller-supplied stream.
package print
