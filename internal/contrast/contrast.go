// Package contrast implements WCAG 2.x contrast-ratio checks and the color
// arithmetic used to correct failing text colors. Nothing here returns an
// error: malformed colors degrade to black channels.
package contrast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WCAG thresholds for normal-size text
const (
	MinimumRatio  = 4.5 // AA
	EnhancedRatio = 7.0 // AAA
	MaxRatio      = 21.0
)

// RGB is an sRGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Well-known colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Result is the outcome of a contrast check.
type Result struct {
	Ratio  float64 `json:"ratio"`
	Passes bool    `json:"passes"`
}

// ParseHex parses #rgb or #rrggbb, with or without the leading '#'. Channels
// that cannot be parsed become 0 and ok is false.
func ParseHex(s string) (c RGB, ok bool) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, false
	}

	ok = true
	channel := func(part string) uint8 {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			ok = false
			return 0
		}
		return uint8(v)
	}
	c = RGB{R: channel(h[0:2]), G: channel(h[2:4]), B: channel(h[4:6])}
	return c, ok
}

// MustParse is ParseHex without the validity flag.
func MustParse(s string) RGB {
	c, _ := ParseHex(s)
	return c
}

// IsValidHex reports whether s is a 3- or 6-digit hex color.
func IsValidHex(s string) bool {
	_, ok := ParseHex(s)
	return ok
}

// NormalizeHex returns s as lowercase #rrggbb, or false if malformed.
func NormalizeHex(s string) (string, bool) {
	c, ok := ParseHex(s)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// Hex renders the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance in [0, 1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Ratio returns the contrast ratio between two colors, in [1, 21].
func Ratio(a, b RGB) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ValidateContrast checks fgHex against bgHex at the AA threshold.
func ValidateContrast(fgHex, bgHex string) Result {
	return Check(fgHex, bgHex, MinimumRatio)
}

// Check compares the contrast of two hex colors with required.
func Check(fgHex, bgHex string, required float64) Result {
	ratio := Ratio(MustParse(fgHex), MustParse(bgHex))
	return Result{Ratio: ratio, Passes: ratio >= required}
}

// Mix interpolates from a toward b by weight in [0, 1].
func Mix(a, b RGB, weight float64) RGB {
	weight = math.Max(0, math.Min(1, weight))
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*weight))
	}
	return RGB{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}

// Lighten mixes c toward white.
func Lighten(c RGB, amount float64) RGB {
	return Mix(c, White, amount)
}

// Darken mixes c toward black.
func Darken(c RGB, amount float64) RGB {
	return Mix(c, Black, amount)
}
