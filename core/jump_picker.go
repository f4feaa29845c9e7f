package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/launchplan/deck"
)

type jumpPicker struct {
	picker *Picker
}

func newJumpPicker(d deck.Deck) *jumpPicker {
	items := make([]PickerItem, 0, len(d.Tabs))
	for i, t := range d.Tabs {
		items = append(items, PickerItem{
			ID:     strconv.Itoa(i),
			Label:  t.Title(),
			Meta:   digitFor(i),
			Search: t.Label + " " + t.ID,
		})
	}
	return &jumpPicker{picker: NewPicker("Jump to tab", items)}
}

// handleKey returns the selected tab index, whether the picker should close,
// and whether a selection was made.
func (j *jumpPicker) handleKey(keyName string) (index int, done, selected bool) {
	result := j.picker.HandleKey(keyName)
	switch result.Action {
	case PickerActionCancelled:
		return -1, true, false
	case PickerActionSelected:
		idx, err := strconv.Atoi(result.Item.ID)
		if err != nil {
			return -1, true, false
		}
		return idx, true, true
	default:
		return -1, false, false
	}
}

func (j *jumpPicker) View(width int, sel, muted lipgloss.Style) string {
	q := j.picker.Query()
	if q == "" {
		q = muted.Render("(type to filter)")
	}
	lines := []string{j.picker.Title(), "> " + q, ""}
	items := j.picker.Items()
	if len(items) == 0 {
		lines = append(lines, muted.Render("  No matching tabs"))
	}
	if j.picker.Approximate() {
		lines = append(lines, muted.Render("  Did you mean:"))
	}
	cursor := j.picker.Cursor()
	for i, item := range items {
		row := fmt.Sprintf(" %s  %s ", item.Meta, item.Label)
		if i == cursor {
			row = sel.Render(row)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", muted.Render("enter select · esc cancel"))
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, max(10, width), "…")
	}
	return strings.Join(lines, "\n")
}

func digitFor(i int) string {
	if i == 9 {
		return "0"
	}
	if i >= 0 && i < 9 {
		return strconv.Itoa(i + 1)
	}
	return " "
}
