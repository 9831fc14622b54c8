package theme

import "testing"

func TestGetPaletteIsTotal(t *testing.T) {
	for _, isDark := range []bool{false, true} {
		p := GetPalette(isDark)
		fields := map[string]string{
			"Primary":       p.Primary,
			"Accent":        p.Accent,
			"Coral":         p.Coral,
			"Background":    p.Background,
			"White":         p.White,
			"Text":          p.Text,
			"TextSecondary": p.TextSecondary,
			"TextLight":     p.TextLight,
			"Border":        p.Border,
			"Success":       p.Success,
			"Warning":       p.Warning,
			"Error":         p.Error,
			"GradientStart": p.GradientStart,
			"GradientEnd":   p.GradientEnd,
			"Card":          p.Card,
			"Surface":       p.Surface,
		}
		for name, v := range fields {
			if v == "" {
				t.Fatalf("GetPalette(%v): %s is empty", isDark, name)
			}
		}
	}
}

func TestPaletteValues(t *testing.T) {
	if got := GetPalette(false).Primary; got != "#6D9886" {
		t.Fatalf("light primary: got %q", got)
	}
	if got := GetPalette(true).Background; got != "#0F0F0F" {
		t.Fatalf("dark background: got %q", got)
	}
}
