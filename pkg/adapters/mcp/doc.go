// Package mcp exposes a dictionary registry as Model Context Protocol tools,
// over stdio or SSE.
package mcp
