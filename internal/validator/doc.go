// Package validator reports dictionary entries that can never be looked up.
package validator
