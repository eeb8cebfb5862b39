/*
Package domain contains the core domain models of the stenomods translator.

It defines what a stroke decomposes into, which resolution strategy applies to
it and what a finished translation looks like. The package is kept pure and
free of I/O so that adapters (CLI, HTTP, MCP) can share the same vocabulary.

# Key Entities

  - Fields: the named substrings a stroke is split into (leading keys, vowels,
    separator, modifier keys and the optional ender).
  - Mode: the resolution strategy selected from the fields (symbol, numeral or
    fingerspelling).
  - Resolution: every intermediate value of a successful lookup.
  - ErrNotApplicable: the single failure signal. A host receiving it must fall
    back to its other dictionaries.
*/
package domain
