/*
Package ports defines the driven ports (interfaces) for stenomods.

These interfaces decouple the lookup front-ends (CLI, HTTP, MCP, the line
runner) from the dictionaries that answer them.

# Key Interfaces

  - Dictionary: translates a stroke sequence or reports ErrNotApplicable.
  - Explainer: a Dictionary that can also report how it resolved a stroke.
*/
package ports
