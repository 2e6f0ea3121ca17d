package tokens

import (
	"fmt"

	"github.com/jonathan/supercomponents/internal/contrast"
	"github.com/jonathan/supercomponents/internal/types"
)

// Scale steps, lightest first
var scaleSteps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// stepFactors maps a step to its mix amount toward white (negative) or black
// (positive). 500 is the base color.
var stepFactors = map[int]float64{
	50:  -0.95,
	100: -0.85,
	200: -0.70,
	300: -0.50,
	400: -0.25,
	500: 0,
	600: 0.15,
	700: 0.30,
	800: 0.45,
	900: 0.60,
}

// Built-in colors used when the insight palette is short
const (
	defaultPrimary   = "#3b82f6"
	defaultSecondary = "#8b5cf6"
	defaultAccent    = "#f59e0b"
	neutralBase      = "#64748b"
	successBase      = "#10b981"
	warningBase      = "#f59e0b"
	errorBase        = "#ef4444"
)

// DefaultPalette is used when an insight carries no valid colors.
var DefaultPalette = []string{defaultPrimary, defaultSecondary, defaultAccent}

// Color roles in output order
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleAccent    = "accent"
	RoleNeutral   = "neutral"
	RoleSuccess   = "success"
	RoleWarning   = "warning"
	RoleError     = "error"
)

// Scale derives a 50-900 ramp from base by mixing toward white below 500
// and toward black above it.
func Scale(base string) map[int]string {
	c := contrast.MustParse(base)
	scale := make(map[int]string, len(scaleSteps))
	for _, step := range scaleSteps {
		f := stepFactors[step]
		switch {
		case f < 0:
			scale[step] = contrast.Lighten(c, -f).Hex()
		case f > 0:
			scale[step] = contrast.Darken(c, f).Hex()
		default:
			scale[step] = c.Hex()
		}
	}
	return scale
}

// roleBases assigns palette entries to brand roles. Invalid entries are
// skipped; missing roles fall back to the built-in palette.
func roleBases(palette []string) map[string]string {
	valid := make([]string, 0, len(palette))
	for _, p := range palette {
		if hex, ok := contrast.NormalizeHex(p); ok {
			valid = append(valid, hex)
		}
	}

	pick := func(i int, fallback string) string {
		if i < len(valid) {
			return valid[i]
		}
		return fallback
	}

	return map[string]string{
		RolePrimary:   pick(0, defaultPrimary),
		RoleSecondary: pick(1, defaultSecondary),
		RoleAccent:    pick(2, defaultAccent),
		RoleNeutral:   neutralBase,
		RoleSuccess:   successBase,
		RoleWarning:   warningBase,
		RoleError:     errorBase,
	}
}

func scaleGroup(role, base string) *types.TokenNode {
	children := make(types.TokenGroup, len(scaleSteps))
	for step, hex := range Scale(base) {
		children[fmt.Sprint(step)] = types.Leaf(types.TokenTypeColor, hex, fmt.Sprintf("%s %d", role, step))
	}
	return types.Group(children)
}

// textPair is a text color checked against a background.
type textPair struct {
	group, name   string // semantic text token
	fg            string
	bgName, bgHex string
}

func (g *generator) buildColors() types.TokenGroup {
	bases := roleBases(g.insight.ImageryPalette)
	colors := make(types.TokenGroup)
	scales := make(map[string]map[int]string)
	for role, base := range bases {
		colors[role] = scaleGroup(role, base)
		scales[role] = Scale(base)
	}

	neutral := scales[RoleNeutral]
	primary := scales[RolePrimary]

	colors["background"] = types.Group(types.TokenGroup{
		"default": types.Leaf(types.TokenTypeColor, "#ffffff", "Page background"),
		"subtle":  types.Leaf(types.TokenTypeColor, neutral[50], "Subtle surface"),
		"muted":   types.Leaf(types.TokenTypeColor, neutral[100], "Muted surface"),
		"inverse": types.Leaf(types.TokenTypeColor, neutral[900], "Inverse surface"),
	})
	colors["border"] = types.Group(types.TokenGroup{
		"default": types.Leaf(types.TokenTypeColor, neutral[200], "Default border"),
		"strong":  types.Leaf(types.TokenTypeColor, neutral[400], "Emphasized border"),
		"focus":   types.Leaf(types.TokenTypeColor, primary[500], "Focus ring"),
	})

	pairs := []textPair{
		{"text", "primary", neutral[900], "background.default", "#ffffff"},
		{"text", "secondary", neutral[600], "background.default", "#ffffff"},
		{"text", "inverse", "#ffffff", "primary.600", primary[600]},
		{"text", "onPrimary", "#ffffff", "primary.500", primary[500]},
	}

	text := make(types.TokenGroup, len(pairs))
	for _, p := range pairs {
		hex := g.checkPair(p.group+"."+p.name, p.fg, p.bgName, p.bgHex)
		text[p.name] = types.Leaf(types.TokenTypeColor, hex, fmt.Sprintf("Text on %s", p.bgName))
	}
	colors["text"] = types.Group(text)

	return colors
}

// checkPair validates a text color against its background. Pairs below
// contrast.MinimumRatio fail; with WCAG enforcement the text color is first
// corrected toward the target and only pairs still below AA are recorded as
// errors. Pairs that pass AA but miss a higher target are warnings.
// Without enforcement the color is kept and every shortfall is a warning.
func (g *generator) checkPair(fgName, fgHex, bgName, bgHex string) string {
	target := g.opts.targetRatio()

	if !g.opts.EnforceWCAG {
		res := contrast.Check(fgHex, bgHex, target)
		if !res.Passes {
			g.violation(fgName, bgName, fgHex, bgHex, res.Ratio, shortfall(res.Ratio, target), types.SeverityWarning)
		}
		return fgHex
	}

	fix := contrast.Correct(fgHex, bgHex, target)
	if fix.Adjusted() {
		g.result.Adjustments = append(g.result.Adjustments, Adjustment{
			Token: fgName,
			From:  fix.Original,
			To:    fix.Hex,
			Steps: fix.Steps,
			Ratio: roundTo(fix.Result.Ratio, 2),
		})
	}
	switch {
	case fix.Result.Ratio < contrast.MinimumRatio:
		g.violation(fgName, bgName, fix.Hex, bgHex, fix.Result.Ratio, contrast.MinimumRatio, types.SeverityError)
	case !fix.Result.Passes:
		g.violation(fgName, bgName, fix.Hex, bgHex, fix.Result.Ratio, target, types.SeverityWarning)
	}
	return fix.Hex
}

// shortfall returns the threshold a ratio misses: AA first, then target.
func shortfall(ratio, target float64) float64 {
	if ratio < contrast.MinimumRatio {
		return contrast.MinimumRatio
	}
	return target
}

func (g *generator) violation(fgName, bgName, fgHex, bgHex string, ratio, required float64, severity string) {
	ratio = roundTo(ratio, 2)
	g.result.Violations = append(g.result.Violations, types.ContrastViolation{
		Foreground:    fgName,
		Background:    bgName,
		ForegroundHex: fgHex,
		BackgroundHex: bgHex,
		Ratio:         ratio,
		Required:      required,
		Severity:      severity,
		Details:       fmt.Sprintf("%s (%s) on %s (%s) has contrast %.2f:1, needs %.1f:1", fgName, fgHex, bgName, bgHex, ratio, required),
	})
}
