package tokens

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jonathan/supercomponents/internal/types"
)

const defaultSpacingUnit = 4.0

// named spacing keys always present, in units of the base step
var spacingKeys = []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24}

func px(v float64) string {
	return strconv.FormatFloat(roundTo(v, 2), 'f', -1, 64) + "px"
}

// spacingUnit picks the base step from the smallest positive scale value.
func spacingUnit(scale []float64) float64 {
	smallest := math.MaxFloat64
	for _, v := range scale {
		if v > 0 && v < smallest {
			smallest = v
		}
	}
	if smallest == math.MaxFloat64 {
		return defaultSpacingUnit
	}
	return math.Max(2, math.Min(16, smallest))
}

// buildSpacing names the insight's spacing scale by multiples of its base
// unit and fills the standard keys from the unit. Values are scaled by
// density.
func (g *generator) buildSpacing() types.TokenGroup {
	unit := spacingUnit(g.insight.SpacingScale)

	values := make(map[int]float64, len(spacingKeys))
	for _, k := range spacingKeys {
		values[k] = float64(k) * unit
	}
	for _, v := range g.insight.SpacingScale {
		if v <= 0 {
			continue
		}
		k := int(math.Round(v / unit))
		if k >= 1 && k <= 64 {
			values[k] = v
		}
	}

	group := make(types.TokenGroup, len(values))
	for k, v := range values {
		group[strconv.Itoa(k)] = types.Leaf(types.TokenTypeDimension, px(v*g.scale), "")
	}
	return group
}

func (g *generator) buildBorderRadius() types.TokenGroup {
	radii := []struct {
		name  string
		value float64
	}{
		{"sm", 2}, {"md", 4}, {"lg", 8}, {"xl", 12},
	}

	group := types.TokenGroup{
		"none": types.Leaf(types.TokenTypeDimension, "0px", ""),
		"full": types.Leaf(types.TokenTypeDimension, "9999px", ""),
	}
	for _, r := range radii {
		group[r.name] = types.Leaf(types.TokenTypeDimension, px(r.value*g.scale), "")
	}
	return group
}

func (g *generator) buildShadows() types.TokenGroup {
	shadows := []struct {
		name    string
		y, blur float64
		opacity float64
		spread  float64
	}{
		{"sm", 1, 2, 0.05, 0},
		{"md", 4, 6, 0.10, 1},
		{"lg", 10, 15, 0.10, 3},
		{"xl", 20, 25, 0.10, 5},
	}

	group := make(types.TokenGroup, len(shadows))
	for _, s := range shadows {
		value := fmt.Sprintf("0 %s %s -%s rgba(15, 23, 42, %.2f)",
			px(s.y*g.scale), px(s.blur*g.scale), px(s.spread*g.scale), s.opacity)
		if s.spread == 0 {
			value = fmt.Sprintf("0 %s %s rgba(15, 23, 42, %.2f)", px(s.y*g.scale), px(s.blur*g.scale), s.opacity)
		}
		group[s.name] = types.Leaf(types.TokenTypeShadow, value, "")
	}
	return group
}

func (g *generator) buildSizing() types.TokenGroup {
	return types.TokenGroup{
		"icon": types.Group(types.TokenGroup{
			"sm": types.Leaf(types.TokenTypeDimension, "16px", ""),
			"md": types.Leaf(types.TokenTypeDimension, "20px", ""),
			"lg": types.Leaf(types.TokenTypeDimension, "24px", ""),
		}),
		"control": types.Group(types.TokenGroup{
			"sm": types.Leaf(types.TokenTypeDimension, px(32*g.scale), "Small control height"),
			"md": types.Leaf(types.TokenTypeDimension, px(40*g.scale), "Default control height"),
			"lg": types.Leaf(types.TokenTypeDimension, px(48*g.scale), "Large control height"),
		}),
		"container": types.Group(types.TokenGroup{
			"sm": types.Leaf(types.TokenTypeDimension, "640px", ""),
			"md": types.Leaf(types.TokenTypeDimension, "768px", ""),
			"lg": types.Leaf(types.TokenTypeDimension, "1024px", ""),
			"xl": types.Leaf(types.TokenTypeDimension, "1280px", ""),
		}),
	}
}
