// Package chart renders engine tables as markdown and lookups as Mermaid flowcharts.
package chart
