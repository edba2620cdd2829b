// Package color reads and writes the rgba(RRGGBBAA) / rgb(RRGGBB) colour
// values used by Hyprland colour options.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA holds channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Parse accepts "rgba(RRGGBBAA)" and "rgb(RRGGBB)" with case-insensitive hex
// digits. Any other input reports false.
func Parse(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	var hex string
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		hex = s[len("rgba(") : len(s)-1]
		if len(hex) != 8 {
			return RGBA{}, false
		}
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		hex = s[len("rgb(") : len(s)-1]
		if len(hex) != 6 {
			return RGBA{}, false
		}
	default:
		return RGBA{}, false
	}

	if !isHex(hex) {
		return RGBA{}, false
	}
	c, err := colorful.Hex("#" + hex[:6])
	if err != nil {
		return RGBA{}, false
	}
	alpha := 1.0
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		alpha = float64(a) / 255
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, true
}

// Format renders channels as rgba(RRGGBBAA). Channels are clamped to [0, 1]
// and rounded to the nearest byte.
func Format(r, g, b, a float64) string {
	return RGBA{R: r, G: g, B: b, A: a}.String()
}

// String implements fmt.Stringer using the rgba(RRGGBBAA) form.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%s%02X)", strings.ToUpper(c.Hex()[1:]), toByte(c.A))
}

// Hex returns the colour without alpha as "#RRGGBB", suitable for terminal
// styling.
func (c RGBA) Hex() string {
	rgb := colorful.Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
	return strings.ToUpper(rgb.Hex())
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// clamp limits v to [0, 1]. NaN becomes 0.
func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 255))
}
