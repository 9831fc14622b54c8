package tui

import (
	"os"
	"strings"
	"sync"

	"flowpilot/internal/model"
	"flowpilot/internal/store"

	"github.com/charmbracelet/lipgloss"
)

// Terminal apps can't draw the original's vector icons. Instead we pick
// between Unicode and ASCII glyph sets for icons and UI affordances, which
// helps on terminals/fonts that don't render some glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference resolves the glyph set: env wins over config.
func applyGlyphPreference(cfg *store.GlobalConfig) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("FLOWPILOT_TUI_GLYPHS")))
	if v == "" && cfg != nil && cfg.TUI != nil {
		v = strings.ToLower(strings.TrimSpace(cfg.TUI.Glyphs))
	}
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

var iconUnicode = map[model.IconKind]string{
	model.IconCoffee:   "☕",
	model.IconDroplets: "💧",
	model.IconTarget:   "◎",
	model.IconDumbbell: "🏋",
	model.IconPhone:    "☎",
	model.IconBook:     "📖",
	model.IconHeart:    "♥",
	model.IconStar:     "★",
	model.IconTrophy:   "🏆",
	model.IconAward:    "🎖",
	model.IconFlame:    "🔥",
	model.IconQuote:    "❝",
	model.IconCamera:   "📷",
	model.IconTrending: "📈",
	model.IconCase:     "💼",
	model.IconBrain:    "🧠",
	model.IconDollar:   "$",
	model.IconCode:     "⌨",
	model.IconPalette:  "🎨",
	model.IconUsers:    "👥",
	model.IconSparkles: "✦",
	model.IconZap:      "⚡",
}

var iconASCII = map[model.IconKind]string{
	model.IconCoffee:   "c",
	model.IconDroplets: "~",
	model.IconTarget:   "o",
	model.IconDumbbell: "#",
	model.IconPhone:    "t",
	model.IconBook:     "b",
	model.IconHeart:    "<3",
	model.IconStar:     "*",
	model.IconTrophy:   "Y",
	model.IconAward:    "A",
	model.IconFlame:    "^",
	model.IconQuote:    "\"",
	model.IconCamera:   "[o]",
	model.IconTrending: "/",
	model.IconCase:     "=",
	model.IconBrain:    "@",
	model.IconDollar:   "$",
	model.IconCode:     "</>",
	model.IconPalette:  "%",
	model.IconUsers:    "&",
	model.IconSparkles: "+",
	model.IconZap:      "!",
}

// iconGlyph resolves an icon key to a printable glyph. Unknown keys fall back
// to a bullet so records with new keys still render.
func iconGlyph(kind model.IconKind) string {
	var g string
	if glyphs() == glyphSetASCII {
		g = iconASCII[kind]
	} else {
		g = iconUnicode[kind]
	}
	if g == "" {
		g = glyphBullet()
	}
	return g
}

// renderIcon colors a glyph. The color comes from the caller, not the icon:
// the same key renders in category, achievement and collection colors.
func renderIcon(kind model.IconKind, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(iconGlyph(kind))
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphArrow() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}

func glyphCheckOn() string {
	if glyphs() == glyphSetASCII {
		return "[x]"
	}
	return "●"
}

func glyphCheckOff() string {
	if glyphs() == glyphSetASCII {
		return "[ ]"
	}
	return "○"
}

func glyphProgressOn() string {
	if glyphs() == glyphSetASCII {
		return "="
	}
	return "█"
}

func glyphProgressOff() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "░"
}
