// Package registry holds named dictionaries and chains lookups across them.
package registry
