/*
Package stenomods translates single chorded strokes from a steno keyboard into
modifier-key commands for the host's text-input system.

A stroke such as "2K350-R" (the number-key form of "#TKPAO-R") becomes the
literal command "{#alt(F4)}". Strokes outside the dictionary's domain fail with
domain.ErrNotApplicable so the host can try its other dictionaries.

# Engines

Two engines share one pipeline (normalize, decompose, resolve, compose, format)
and differ only in their configuration:

  - "number": strokes must use the number key and end in right-hand modifier
    keys R (alt), B (super), G (control) and S (shift).
  - "ender": strokes must end in a fixed ender chord (LTZ by default) and may
    use modifier keys R (shift), F (control), B (alt) and P (super).

Each engine resolves the left-hand pattern in one of three modes: symbols
(separator '*'), numerals and function keys (vowels "AO"), or fingerspelled
letters.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/stenomods"
	)

	func main() {
		tr, err := stenomods.New("number")
		if err != nil {
			log.Fatal(err)
		}

		out, err := tr.Lookup(context.Background(), []string{"2R*G"})
		if err != nil {
			// domain.ErrNotApplicable: fall back to another dictionary.
			log.Fatal(err)
		}
		fmt.Println(out) // {#control(tab)}
	}

Lookups are pure functions over immutable tables; a Translator is safe for
concurrent use.
*/
package stenomods
