package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/trawlfm/trawl/internal/renderer"
)

// colorNames maps configuration names to palette colors.
var colorNames = map[string]renderer.Color{
	"default":        renderer.ColorDefault,
	"black":          renderer.ColorBlack,
	"red":            renderer.ColorRed,
	"green":          renderer.ColorGreen,
	"yellow":         renderer.ColorYellow,
	"blue":           renderer.ColorBlue,
	"magenta":        renderer.ColorMagenta,
	"cyan":           renderer.ColorCyan,
	"white":          renderer.ColorWhite,
	"bright-black":   renderer.ColorBrightBlack,
	"bright-red":     renderer.ColorBrightRed,
	"bright-green":   renderer.ColorBrightGreen,
	"bright-yellow":  renderer.ColorBrightYellow,
	"bright-blue":    renderer.ColorBrightBlue,
	"bright-magenta": renderer.ColorBrightMagenta,
	"bright-cyan":    renderer.ColorBrightCyan,
	"bright-white":   renderer.ColorBrightWhite,
}

// paletteRGB approximates what terminals display for the 16 palette
// entries, in palette index order (the classic VGA values).
var paletteRGB = [16]string{
	"#000000", "#aa0000", "#00aa00", "#aa5500",
	"#0000aa", "#aa00aa", "#00aaaa", "#aaaaaa",
	"#555555", "#ff5555", "#55ff55", "#ffff55",
	"#5555ff", "#ff55ff", "#55ffff", "#ffffff",
}

// ParseColor resolves a configuration color value: a palette name
// ("red", "bright-blue", "default") or a hex value ("#rrggbb"), which
// is mapped to the perceptually nearest palette color.
func ParseColor(s string) (renderer.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		target, err := colorful.Hex(name)
		if err != nil {
			return renderer.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return nearestPaletteColor(target), nil
	}
	return renderer.Color{}, fmt.Errorf("unknown color %q", s)
}

// nearestPaletteColor picks the palette entry with the smallest
// perceptual (Lab) distance to the target.
func nearestPaletteColor(target colorful.Color) renderer.Color {
	palette := renderer.Palette()
	best := 0
	bestDist := -1.0
	for i, hex := range paletteRGB {
		entry, _ := colorful.Hex(hex)
		if d := target.DistanceLab(entry); bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return palette[best]
}
