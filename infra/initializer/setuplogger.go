package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.DebugLevel, "🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
	{log.InfoLevel, "ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	{log.WarnLevel, "⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	{log.ErrorLevel, "❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
}

// keys that get the debug colour; operation attributes stand out in every line
var accentKeys = []string{"prefix", "caller", "time", "operation", "tax_id", "number", "duration"}

func newStyles() *log.Styles {
	styles := log.DefaultStyles()
	for _, ls := range levelStyles {
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(ls.color)
	}
	accent := levelStyles[0].color
	for _, key := range accentKeys {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(accent)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	errColor := levelStyles[len(levelStyles)-1].color
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	return styles
}

// NewLogger builds a slog logger backed by charmbracelet/log writing to w.
// Format is "text" or "json"; anything else falls back to text.
func NewLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = config.Default().Log
	}
	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level <= int(log.DebugLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(newStyles())
	return slog.New(logger)
}

func setupLogger(cfg *config.Log) *slog.Logger {
	slogger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(slogger)
	return slogger
}
