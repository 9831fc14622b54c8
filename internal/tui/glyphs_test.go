package tui

import (
	"testing"

	"flowpilot/internal/model"
	"flowpilot/internal/store"
)

func TestGlyphPreference(t *testing.T) {
	defer setGlyphs(glyphSetUnicode)

	t.Setenv("FLOWPILOT_TUI_GLYPHS", "ascii")
	applyGlyphPreference(nil)
	if glyphs() != glyphSetASCII {
		t.Fatal("env should select the ascii set")
	}
	if got := iconGlyph(model.IconStar); got != "*" {
		t.Errorf("ascii star = %q", got)
	}

	// Env wins over config; with no env the config applies.
	t.Setenv("FLOWPILOT_TUI_GLYPHS", "")
	applyGlyphPreference(&store.GlobalConfig{TUI: &store.TUIConfig{Glyphs: "ascii"}})
	if glyphs() != glyphSetASCII {
		t.Error("config should select the ascii set")
	}

	applyGlyphPreference(nil)
	if glyphs() != glyphSetUnicode {
		t.Error("empty preference should reset to unicode")
	}
}

func TestIconGlyphUnknownKeyFallsBack(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	if got := iconGlyph(model.IconKind("later-added-icon")); got != glyphBullet() {
		t.Errorf("unknown icon = %q, want bullet fallback", got)
	}
}
