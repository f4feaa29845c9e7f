// Package export writes the deck without the interactive host: styled
// terminal text, Markdown, YAML or JSON, for one tab or all of them.
package export
