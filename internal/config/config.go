package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/viper"

	"github.com/jask/launchplan/deck"
)

var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Page  PageConfig
	Theme ThemeConfig
	UI    UIConfig
	Log   LogConfig
}

// PageConfig overrides the deck's page metadata.
type PageConfig struct {
	Title  string
	Icon   string
	Layout string
}

// ThemeConfig selects the palette and the markdown style.
type ThemeConfig struct {
	Palette       string
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// UIConfig holds terminal behaviour.
type UIConfig struct {
	Mouse     bool
	AltScreen bool `mapstructure:"alt_screen"`
	StartTab  int  `mapstructure:"start_tab"`
	ShowIndex bool `mapstructure:"show_index"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level string
	Path  string
}

// Defaults mirrors the built-in deck page metadata.
func Defaults() Config {
	page := deck.New().Page
	return Config{
		Page:  PageConfig{Title: page.Title, Icon: page.Icon, Layout: string(page.Layout)},
		Theme: ThemeConfig{Palette: "classic", MarkdownStyle: "auto"},
		UI:    UIConfig{Mouse: true, AltScreen: true, StartTab: 1, ShowIndex: true},
		Log:   LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("page.title", d.Page.Title)
	v.SetDefault("page.icon", d.Page.Icon)
	v.SetDefault("page.layout", d.Page.Layout)
	v.SetDefault("theme.palette", d.Theme.Palette)
	v.SetDefault("theme.markdown_style", d.Theme.MarkdownStyle)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("ui.start_tab", d.UI.StartTab)
	v.SetDefault("ui.show_index", d.UI.ShowIndex)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.path", d.Log.Path)
}

// Load reads configuration from file and env. Env var overrides use prefix LAUNCHPLAN_.
// A missing default config file is not an error; a missing LAUNCHPLAN_CONFIG file is.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LAUNCHPLAN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "launchplan"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LAUNCHPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case cfgPath != "":
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		case !errors.As(err, &notFound):
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	switch deck.Layout(strings.ToLower(c.Page.Layout)) {
	case deck.LayoutWide, deck.LayoutCentered:
	default:
		return fmt.Errorf("%w: page.layout %q (want wide or centered)", ErrInvalid, c.Page.Layout)
	}
	if c.UI.StartTab < 1 || c.UI.StartTab > deck.TabCount {
		return fmt.Errorf("%w: ui.start_tab %d (want 1-%d)", ErrInvalid, c.UI.StartTab, deck.TabCount)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if !markdownStyleOK(c.Theme.MarkdownStyle) {
		return fmt.Errorf("%w: theme.markdown_style %q (want auto, a glamour style name or a style file)", ErrInvalid, c.Theme.MarkdownStyle)
	}
	return nil
}

// markdownStyleOK mirrors what glamour.WithStylePath accepts.
func markdownStyleOK(name string) bool {
	if name == "" || name == styles.AutoStyle {
		return true
	}
	if _, ok := styles.DefaultStyles[name]; ok {
		return true
	}
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

// ApplyPage copies page overrides onto the deck metadata.
func (c Config) ApplyPage(p deck.Page) deck.Page {
	if t := strings.TrimSpace(c.Page.Title); t != "" {
		p.Title = t
	}
	if i := strings.TrimSpace(c.Page.Icon); i != "" {
		p.Icon = i
	}
	if l := strings.TrimSpace(c.Page.Layout); l != "" {
		p.Layout = deck.Layout(strings.ToLower(l))
	}
	return p
}
