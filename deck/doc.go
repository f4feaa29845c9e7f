// Package deck holds the literal content of the implementation-strategy deck.
//
// Allowed here:
// - content types (tabs, panels, blocks, literal tables)
// - the hand-authored content itself
//
// Not allowed here:
// - styling, terminal rendering, or key handling
package deck
