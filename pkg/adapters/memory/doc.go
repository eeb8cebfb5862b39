// Package memory provides a literal stroke dictionary held in memory,
// the kind of dictionary a host consults alongside the command engines.
package memory
