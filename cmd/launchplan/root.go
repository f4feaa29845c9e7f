package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/launchplan/core"
	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/internal/config"
	"github.com/jask/launchplan/internal/logging"
	"github.com/jask/launchplan/render"
	"github.com/jask/launchplan/widgets"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "launchplan",
		Short: "AI Compliance Platform implementation strategy deck",
		Long: `Browse the AI Compliance Platform implementation strategy in the terminal.

Run without arguments to open the interactive deck. Use tab/shift+tab or the
number keys to switch tabs, / to jump by name and q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeck()
		},
	}
	root.AddCommand(newTabsCmd(), newExportCmd())
	return root
}

// loadDeck returns the validated deck with config page overrides applied.
func loadDeck(cfg config.Config) (deck.Deck, error) {
	d := deck.New()
	d.Page = cfg.ApplyPage(d.Page)
	if err := d.Validate(); err != nil {
		return deck.Deck{}, fmt.Errorf("deck: %w", err)
	}
	return d, nil
}

func newRenderer(cfg config.Config, markdownStyle string) (*render.Renderer, error) {
	palette, err := render.PaletteByName(cfg.Theme.Palette)
	if err != nil {
		return nil, err
	}
	var opts []render.Option
	if !cfg.UI.ShowIndex {
		opts = append(opts, render.WithoutIndex())
	}
	md := widgets.NewMarkdownRenderer(markdownStyle)
	return render.NewRenderer(render.NewStyles(palette), md, opts...), nil
}

func runDeck() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Path: cfg.Log.Path})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	d, err := loadDeck(cfg)
	if err != nil {
		return err
	}
	r, err := newRenderer(cfg, cfg.Theme.MarkdownStyle)
	if err != nil {
		return err
	}

	model := core.NewModel(d, r,
		core.WithStartTab(cfg.UI.StartTab-1),
		core.WithLogger(logger),
	)
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info("deck started",
		zap.String("palette", cfg.Theme.Palette),
		zap.String("layout", string(d.Page.Layout)),
		zap.Int("start_tab", cfg.UI.StartTab))
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run deck: %w", err)
	}
	logger.Info("deck closed")
	return nil
}
