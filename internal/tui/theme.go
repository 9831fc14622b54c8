package tui

import (
	"os"
	"strconv"
	"strings"

	"flowpilot/internal/model"
	"flowpilot/internal/store"
	"flowpilot/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme plumbing.
//
// The palette in internal/theme carries the app's semantic colors; this file
// maps terminal reality (color profile, background) onto it. The TUI must stay
// readable on both light and dark terminal backgrounds.

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive CLI output but can accidentally disable colors in a TUI. For the TUI,
// we only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports,
	// trust the env. Color probing under-reports on some terminals.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) FLOWPILOT_TUI_THEME=light|dark|auto
// 2) FLOWPILOT_TUI_DARKBG=true|false
// 3) config.json tui.theme
// 4) COLORFGBG heuristic (common in terminals; format like "15;0" = fg;bg)
func applyThemePreference(cfg *store.GlobalConfig) {
	if v := strings.TrimSpace(os.Getenv("FLOWPILOT_TUI_THEME")); v != "" {
		if applyThemeName(v) {
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("FLOWPILOT_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if cfg != nil && cfg.TUI != nil {
		if applyThemeName(strings.TrimSpace(cfg.TUI.Theme)) {
			return
		}
	}

	// COLORFGBG is often "fg;bg" (sometimes more segments); use the last
	// segment as bg and treat lighter backgrounds as non-dark.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
}

// applyThemeName reports whether name settled the background choice.
func applyThemeName(name string) bool {
	switch strings.ToLower(name) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return true
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return true
	default:
		// "auto", empty, or unknown: fall through to the next source.
		return false
	}
}

// terminalScheme is the system-preference hook for theme.Resolve: the
// terminal's background stands in for the OS appearance.
func terminalScheme() model.ColorScheme {
	if lipgloss.HasDarkBackground() {
		return model.SchemeDark
	}
	return model.SchemeLight
}

// styles bundles the lipgloss styles derived from one palette resolution.
// Rebuilt whenever the theme store notifies.
type styles struct {
	palette theme.Palette

	header     lipgloss.Style
	tabActive  lipgloss.Style
	tab        lipgloss.Style
	card       lipgloss.Style
	cardActive lipgloss.Style
	title      lipgloss.Style
	text       lipgloss.Style
	muted      lipgloss.Style
	success    lipgloss.Style
	warning    lipgloss.Style
	errText    lipgloss.Style
	accent     lipgloss.Style
	badge      lipgloss.Style
	help       lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		palette: p,

		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.White)).
			Background(lipgloss.Color(p.Primary)).Padding(0, 1),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.White)).
			Background(lipgloss.Color(p.Primary)).Padding(0, 2),
		tab: lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextSecondary)).Padding(0, 2),
		card: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).Padding(0, 1),
		cardActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Primary)).Padding(0, 1),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Text)),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextSecondary)),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning)),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		badge: lipgloss.NewStyle().Foreground(lipgloss.Color(p.White)).
			Background(lipgloss.Color(p.Accent)).Padding(0, 1),
		help: lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextLight)),
	}
}
