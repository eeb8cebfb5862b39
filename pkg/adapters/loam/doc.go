// Package loam serves a stroke dictionary assembled from a Loam document vault.
//
// Each document carries its entries in its metadata (frontmatter for
// Markdown, the whole object for JSON or YAML):
//
//	---
//	name: editing
//	entries:
//	  KAT: cat
//	  KAT/-S: cats
//	---
//	Notes about this group of entries.
//
// Splitting a large dictionary across documents lets each group carry its
// own prose while lookups see a single merged table.
package loam
