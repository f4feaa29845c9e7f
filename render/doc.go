// Package render turns deck content into terminal text.
//
// A Renderer is built once from a Styles value and a markdown renderer and
// is deterministic: the same block at the same width always yields the same
// string.
package render
