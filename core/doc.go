// Package core hosts the interactive deck: the bubbletea model, tab
// selection, scrolling and the jump picker.
//
// Allowed here:
// - model state, key maps and the tab state machine
// - tab strip layout and mouse hit zones
// - picker state and filtering
//
// Not allowed here:
// - deck content or block-to-widget mapping (see package render)
// - low-level widget rendering primitives (see package widgets)
package core
