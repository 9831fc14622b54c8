package theme

// Palette maps semantic color roles to hex values. Exactly two instances
// exist (light, dark); both are complete and never mutated.
type Palette struct {
	Primary       string
	Accent        string
	Coral         string
	Background    string
	White         string
	Text          string
	TextSecondary string
	TextLight     string
	Border        string
	Success       string
	Warning       string
	Error         string
	GradientStart string
	GradientEnd   string
	Card          string
	Surface       string
}

var light = Palette{
	Primary:       "#6D9886",
	Accent:        "#A89BC9",
	Coral:         "#FF8A5C",
	Background:    "#F7F7F7",
	White:         "#FFFFFF",
	Text:          "#1E1E1E",
	TextSecondary: "#6B7280",
	TextLight:     "#9CA3AF",
	Border:        "#E5E7EB",
	Success:       "#10B981",
	Warning:       "#F59E0B",
	Error:         "#EF4444",
	GradientStart: "#6D9886",
	GradientEnd:   "#A89BC9",
	Card:          "#FFFFFF",
	Surface:       "#F9FAFB",
}

var dark = Palette{
	Primary:       "#7BA896",
	Accent:        "#B8A9D9",
	Coral:         "#FF9A6C",
	Background:    "#0F0F0F",
	White:         "#1A1A1A",
	Text:          "#FFFFFF",
	TextSecondary: "#A1A1AA",
	TextLight:     "#71717A",
	Border:        "#27272A",
	Success:       "#22C55E",
	Warning:       "#F59E0B",
	Error:         "#EF4444",
	GradientStart: "#7BA896",
	GradientEnd:   "#B8A9D9",
	Card:          "#1A1A1A",
	Surface:       "#262626",
}

// GetPalette returns the palette for the requested scheme. Total: any boolean
// input yields a complete palette.
func GetPalette(isDark bool) Palette {
	if isDark {
		return dark
	}
	return light
}
