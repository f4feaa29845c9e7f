package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownPalette = errors.New("unknown palette")

// Palette is the colour set behind the style rules. Each palette is a
// fixed value; styles derived from it are built once at startup.
type Palette struct {
	Name string

	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	TabBg       lipgloss.Color
	TabFg       lipgloss.Color
	TabActiveBg lipgloss.Color
	TabActiveFg lipgloss.Color

	CardBg       lipgloss.Color
	HighlightBg  lipgloss.Color
	HighlightBar lipgloss.Color

	InfoBg     lipgloss.Color
	InfoFg     lipgloss.Color
	WarningBg  lipgloss.Color
	WarningFg  lipgloss.Color
	SuccessBg  lipgloss.Color
	SuccessFg  lipgloss.Color
	DeltaUp    lipgloss.Color
	StatusBg   lipgloss.Color
	TableAltBg lipgloss.Color
}

// Classic is the light web look: light grey tabs and cards,
// a blue selected tab, and a pale blue highlight box with a blue left rule.
func Classic() Palette {
	return Palette{
		Name:   "classic",
		Text:   "#31333f",
		Muted:  "#808495",
		Accent: "#1f77b4",
		Border: "#d6d6d9",

		TabBg:       "#f0f2f6",
		TabFg:       "#31333f",
		TabActiveBg: "#1f77b4",
		TabActiveFg: "#ffffff",

		CardBg:       "#f0f2f6",
		HighlightBg:  "#e8f4f8",
		HighlightBar: "#1f77b4",

		InfoBg:     "#e8f2fc",
		InfoFg:     "#004280",
		WarningBg:  "#fffce7",
		WarningFg:  "#926c05",
		SuccessBg:  "#e9f9ee",
		SuccessFg:  "#177233",
		DeltaUp:    "#09ab3b",
		StatusBg:   "#f0f2f6",
		TableAltBg: "#f8f9fb",
	}
}

// Catppuccin Mocha, for dark terminals.
const (
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

func Mocha() Palette {
	return Palette{
		Name:   "mocha",
		Text:   colorText,
		Muted:  colorSubtext0,
		Accent: colorBlue,
		Border: colorSurface2,

		TabBg:       colorSurface0,
		TabFg:       colorOverlay1,
		TabActiveBg: colorBlue,
		TabActiveFg: colorCrust,

		CardBg:       colorSurface0,
		HighlightBg:  colorMantle,
		HighlightBar: colorLavender,

		InfoBg:     colorMantle,
		InfoFg:     colorBlue,
		WarningBg:  colorMantle,
		WarningFg:  colorYellow,
		SuccessBg:  colorMantle,
		SuccessFg:  colorGreen,
		DeltaUp:    colorGreen,
		StatusBg:   colorSurface1,
		TableAltBg: colorBase,
	}
}

// Palettes lists the built-in palettes in display order.
func Palettes() []Palette {
	return []Palette{Classic(), Mocha()}
}

func PaletteByName(name string) (Palette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Classic(), nil
	}
	for _, p := range Palettes() {
		if p.Name == name {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// Colors returns every colour in the palette, for validation.
func (p Palette) Colors() []lipgloss.Color {
	return []lipgloss.Color{
		p.Text, p.Muted, p.Accent, p.Border,
		p.TabBg, p.TabFg, p.TabActiveBg, p.TabActiveFg,
		p.CardBg, p.HighlightBg, p.HighlightBar,
		p.InfoBg, p.InfoFg, p.WarningBg, p.WarningFg, p.SuccessBg, p.SuccessFg,
		p.DeltaUp, p.StatusBg, p.TableAltBg,
	}
}
