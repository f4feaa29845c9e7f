package core

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func testStrip(active int) TabStrip {
	return TabStrip{
		Titles: []string{"Overview", "Strategy Shift", "Org Setup", "Team Engagement", "Budget"},
		Active: active,
		Tab:    lipgloss.NewStyle().Padding(0, 1),
		Sel:    lipgloss.NewStyle().Padding(0, 1).Bold(true),
	}
}

func TestTabStripSingleRowWhenWide(t *testing.T) {
	rows, zones := testStrip(0).layout(120)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if len(zones) != 5 {
		t.Fatalf("zones = %d, want 5", len(zones))
	}
	for i := 1; i < len(zones); i++ {
		if zones[i].X0 != zones[i-1].X1+tabGap {
			t.Fatalf("zone %d starts at %d, want %d", i, zones[i].X0, zones[i-1].X1+tabGap)
		}
	}
	if got := ansi.StringWidth(rows[0]); got != 120 {
		t.Fatalf("row width = %d, want 120", got)
	}
}

func TestTabStripWrapsWhenNarrow(t *testing.T) {
	s := testStrip(3)
	rows, zones := s.layout(24)
	if len(rows) < 3 {
		t.Fatalf("rows = %d, want wrapping onto at least 3 rows", len(rows))
	}
	lastRow := 0
	for _, z := range zones {
		if z.X1 > 24 {
			t.Fatalf("zone %+v overflows width", z)
		}
		if z.Row < lastRow {
			t.Fatalf("zones out of order: %+v", zones)
		}
		lastRow = z.Row
	}
	if !strings.Contains(ansi.Strip(s.Render(24)), "Team Engagement") {
		t.Fatalf("expected every label to be visible")
	}
}

func TestTabStripHitTest(t *testing.T) {
	s := testStrip(0)
	_, zones := s.layout(24)
	for _, z := range zones {
		idx, ok := s.HitTest(24, z.X0, z.Row)
		if !ok || idx != z.Index {
			t.Fatalf("hit at %d,%d = %d,%v want %d", z.X0, z.Row, idx, ok, z.Index)
		}
	}
	if _, ok := s.HitTest(24, 0, 99); ok {
		t.Fatalf("expected miss below the strip")
	}
}

func TestTabForDigit(t *testing.T) {
	cases := map[string]int{"1": 0, "5": 4, "9": 8, "0": 9}
	for in, want := range cases {
		got, ok := tabForDigit(in)
		if !ok || got != want {
			t.Fatalf("tabForDigit(%q) = %d,%v want %d", in, got, ok, want)
		}
	}
	if _, ok := tabForDigit("a"); ok {
		t.Fatalf("expected non-digit to be rejected")
	}
}
