// Package redis serves a literal stroke dictionary from a Redis hash.
//
// Several processes can share one dictionary this way; the hash is
// read on every lookup, so edits made with Import are visible at once.
package redis
