package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/render"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
)

func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatYAML, FormatJSON}
}

// ParseFormat accepts a format name or a common alias ("md", "yml", "txt").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Options controls one export run. Tab selects a single tab by id, label or
// 1-based number; empty means every tab.
type Options struct {
	Format   Format
	Tab      string
	Width    int
	Renderer *render.Renderer
	Profile  termenv.Profile
}

const DefaultWidth = 100

// Write renders d to w in the requested format.
func Write(w io.Writer, d deck.Deck, opts Options) error {
	tabs, err := selectTabs(d, opts.Tab)
	if err != nil {
		return err
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var out string
	switch opts.Format {
	case FormatText, "":
		if opts.Renderer == nil {
			return errors.New("text export needs a renderer")
		}
		out = text(opts.Renderer, d, tabs, width)
		if opts.Profile == termenv.Ascii {
			out = ansi.Strip(out)
		}
	case FormatMarkdown:
		out = markdown(d, tabs)
	case FormatYAML:
		out, err = encodeYAML(document(d, tabs))
	case FormatJSON:
		out, err = encodeJSON(document(d, tabs))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func selectTabs(d deck.Deck, name string) ([]int, error) {
	if strings.TrimSpace(name) == "" {
		all := make([]int, len(d.Tabs))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	idx, err := d.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []int{idx}, nil
}

func text(r *render.Renderer, d deck.Deck, tabs []int, width int) string {
	parts := []string{r.Header(d.Header, width)}
	for _, i := range tabs {
		t := d.Tabs[i]
		parts = append(parts, r.Styles().ActiveTab.Render(t.Title()), r.Panel(t.Panel(), width))
	}
	parts = append(parts, r.Footer(d.Footer, width))
	return strings.Join(parts, "\n\n")
}

// Profile picks the color profile for w, following NO_COLOR and mode.
func Profile(w io.Writer, mode ColorMode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}
	profile := termenv.ColorProfile()
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
		return profile
	}
	if !isTerminal(w) {
		return termenv.Ascii
	}
	return profile
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
