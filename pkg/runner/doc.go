/*
Package runner implements the line-oriented lookup loop for stenomods.

It reads one stroke entry per line (strokes of a multi-stroke entry joined
with "/"), looks each entry up in a ports.Dictionary and reports the result
through a pluggable OutputHandler. Entries no dictionary accepts are reported
with a fallback marker instead of aborting the loop, so a whole steno log can
be piped through.

# Key Components

  - Runner: the read/lookup/emit loop, stopped by EOF, context or signal.
  - OutputHandler: decouples how results are written (text or JSON lines).
  - SanitizeStroke: input hygiene for untrusted stroke lines.

# Usage

	r := runner.NewRunner(dict,
		runner.WithInput(os.Stdin),
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
