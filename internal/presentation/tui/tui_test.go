package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf)
	assert.Contains(t, buf.String(), "|___/")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Symbols\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Symbols")
}
