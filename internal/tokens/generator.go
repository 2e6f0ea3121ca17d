// Package tokens derives a complete W3C design-token set from a
// DesignInsight. Generation is deterministic and never fails: empty or
// malformed insight fields fall back to built-in defaults.
package tokens

import (
	"math"

	"github.com/jonathan/supercomponents/internal/contrast"
	"github.com/jonathan/supercomponents/internal/types"
)

// Options controls generation.
type Options struct {
	// EnforceWCAG corrects failing text colors; pairs still below
	// contrast.MinimumRatio are reported as error-severity violations.
	EnforceWCAG bool
	// TargetRatio is the contrast the text colors aim for. Pairs that pass
	// contrast.MinimumRatio but miss it are warnings, never errors. Values
	// at or below contrast.MinimumRatio mean AA only.
	TargetRatio float64
}

func (o Options) targetRatio() float64 {
	if o.TargetRatio <= contrast.MinimumRatio {
		return contrast.MinimumRatio
	}
	return o.TargetRatio
}

// TargetRatioFor maps an accessibility level to its text contrast target.
// Only enterprise aims above AA.
func TargetRatioFor(level types.AccessibilityLevel) float64 {
	if level == types.AccessibilityEnterprise {
		return contrast.EnhancedRatio
	}
	return contrast.MinimumRatio
}

// Adjustment records a text color changed to meet the contrast target.
type Adjustment struct {
	Token string  `json:"token"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Steps int     `json:"steps"`
	Ratio float64 `json:"ratio"`
}

// Result is a generated token set with its contrast findings.
type Result struct {
	Tokens      types.W3CDesignTokens     `json:"tokens"`
	Violations  []types.ContrastViolation `json:"violations,omitempty"`
	Adjustments []Adjustment              `json:"adjustments,omitempty"`
}

// Unresolved returns the error-severity violations.
func (r *Result) Unresolved() []types.ContrastViolation {
	var out []types.ContrastViolation
	for _, v := range r.Violations {
		if v.Severity == types.SeverityError {
			out = append(out, v)
		}
	}
	return out
}

type generator struct {
	insight types.DesignInsight
	opts    Options
	scale   float64
	result  *Result
}

// Generate builds the token set for insight.
func Generate(insight types.DesignInsight, opts Options) *Result {
	g := &generator{
		insight: insight,
		opts:    opts,
		scale:   densityMultiplier(insight.UIDensity),
		result:  &Result{},
	}

	g.result.Tokens = types.W3CDesignTokens{
		Color:        g.buildColors(),
		Typography:   g.buildTypography(),
		Spacing:      g.buildSpacing(),
		BorderRadius: g.buildBorderRadius(),
		Shadow:       g.buildShadows(),
		Sizing:       g.buildSizing(),
	}
	return g.result
}

func densityMultiplier(d types.UIDensity) float64 {
	switch d {
	case types.DensityCompact:
		return 0.75
	case types.DensitySpacious:
		return 1.25
	default:
		return 1.0
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
