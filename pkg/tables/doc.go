// Package tables holds the immutable lookup tables behind the translators:
// the symbol charts of both engines and the fingerspelling alphabets.
//
// Tables are built once at package initialization and exposed only through
// read-only accessors, so concurrent lookups need no locking.
package tables
