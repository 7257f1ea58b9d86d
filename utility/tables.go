package utility

import "github.com/npillmayer/cq/style"

// containerSizes are the named container sizes usable as class prefixes.
var containerSizes = map[string]string{
	"@3xs": "16rem",
	"@2xs": "18rem",
	"@xs":  "20rem",
	"@sm":  "24rem",
	"@md":  "28rem",
	"@lg":  "32rem",
	"@xl":  "36rem",
	"@2xl": "42rem",
	"@3xl": "48rem",
	"@4xl": "56rem",
	"@5xl": "64rem",
	"@6xl": "72rem",
	"@7xl": "80rem",
}

// screens are viewport breakpoints, usable as class prefixes for GenerateCSS.
var screens = map[string]string{
	"sm":  "640px",
	"md":  "768px",
	"lg":  "1024px",
	"xl":  "1280px",
	"2xl": "1536px",
}

// states map state prefixes to pseudo-classes.
var states = map[string]string{
	"hover":        ":hover",
	"focus":        ":focus",
	"active":       ":active",
	"focus-within": ":focus-within",
}

var fontSizes = map[string]string{
	"xs":   "0.75rem",
	"sm":   "0.875rem",
	"base": "1rem",
	"lg":   "1.125rem",
	"xl":   "1.25rem",
	"2xl":  "1.5rem",
	"3xl":  "1.875rem",
	"4xl":  "2.25rem",
	"5xl":  "3rem",
}

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

var palette = map[string][]style.Property{
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
}

var plainColors = map[string]style.Property{
	"white": "#ffffff",
	"black": "#000000",
}

// ContainerSize returns the min-width of a named container size,
// e.g. "@sm" => "24rem".
func ContainerSize(name string) (string, bool) {
	s, ok := containerSizes[name]
	return s, ok
}

func colorOf(name string) (style.Property, bool) {
	if c, ok := plainColors[name]; ok {
		return c, true
	}
	for fam, colors := range palette {
		if len(name) <= len(fam)+1 || name[:len(fam)] != fam || name[len(fam)] != '-' {
			continue
		}
		shade := name[len(fam)+1:]
		for i, s := range shades {
			if s == shade {
				return colors[i], true
			}
		}
	}
	return style.NullStyle, false
}
