package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jask/launchplan/export"
	"github.com/jask/launchplan/internal/config"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		width  int
		color  string
	)
	cmd := &cobra.Command{
		Use:   "export [tab]",
		Short: "Print the deck, or one tab, without the interactive UI",
		Long: `Print the deck to stdout.

The optional tab argument selects one tab by id, label or number (1-10).
Formats: ` + formatList() + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			mode, err := parseColorMode(color)
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d, err := loadDeck(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := export.Options{Format: f, Width: width}
			if len(args) == 1 {
				opts.Tab = args[0]
			}
			if f == export.FormatText {
				profile := export.Profile(out, mode)
				lipgloss.SetColorProfile(profile)
				style := cfg.Theme.MarkdownStyle
				if profile == termenv.Ascii {
					style = "notty"
				}
				r, err := newRenderer(cfg, style)
				if err != nil {
					return err
				}
				opts.Renderer = r
				opts.Profile = profile
			}
			return export.Write(out, d, opts)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatText), "output format: "+formatList())
	cmd.Flags().IntVarP(&width, "width", "w", export.DefaultWidth, "render width for text output")
	cmd.Flags().StringVar(&color, "color", string(export.ColorAuto), "color output: auto, always, never")
	return cmd
}

func formatList() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func parseColorMode(s string) (export.ColorMode, error) {
	switch m := export.ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case export.ColorAuto, export.ColorAlways, export.ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid --color %q (want auto, always or never)", s)
}
