// Package cli holds the wiring shared by the stenomods commands.
package cli
