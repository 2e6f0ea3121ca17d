package contrast

// MaxCorrectionSteps bounds Correct. At the last step the text color has been
// mixed fully to black or white.
const MaxCorrectionSteps = 20

const correctionStep = 1.0 / MaxCorrectionSteps

// luminance at which black and white text give equal contrast
const crossoverLuminance = 0.179

// Correction is the outcome of Correct.
type Correction struct {
	Hex      string
	Original string
	Result   Result
	Steps    int
}

// Adjusted reports whether the text color was changed.
func (c Correction) Adjusted() bool {
	return c.Steps > 0
}

// Correct moves fgHex away from bgHex in fixed increments until the pair
// reaches required or MaxCorrectionSteps is exhausted. Light backgrounds
// darken the text and dark backgrounds lighten it. When the bound is hit the
// best color found is returned with Result.Passes false.
func Correct(fgHex, bgHex string, required float64) Correction {
	fg := MustParse(fgHex)
	bg := MustParse(bgHex)

	best := Correction{
		Hex:      fg.Hex(),
		Original: fg.Hex(),
		Result:   resultFor(fg, bg, required),
	}
	if best.Result.Passes {
		return best
	}

	adjust := Darken
	if RelativeLuminance(bg) < crossoverLuminance {
		adjust = Lighten
	}

	for step := 1; step <= MaxCorrectionSteps; step++ {
		candidate := adjust(fg, float64(step)*correctionStep)
		res := resultFor(candidate, bg, required)
		if res.Ratio > best.Result.Ratio {
			best.Hex = candidate.Hex()
			best.Result = res
			best.Steps = step
		}
		if res.Passes {
			break
		}
	}
	return best
}

func resultFor(fg, bg RGB, required float64) Result {
	ratio := Ratio(fg, bg)
	return Result{Ratio: ratio, Passes: ratio >= required}
}
