package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
		ok    bool
	}{
		{"#ffffff", White, true},
		{"000000", Black, true},
		{"#FFF", White, true},
		{"#2563eb", RGB{0x25, 0x63, 0xeb}, true},
		{"  #2563EB ", RGB{0x25, 0x63, 0xeb}, true},
		{"#zz63eb", RGB{0, 0x63, 0xeb}, false},
		{"#12345", RGB{}, false},
		{"", RGB{}, false},
		{"blue", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseHex(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	hex, ok := NormalizeHex("#ABC")
	require.True(t, ok)
	assert.Equal(t, "#aabbcc", hex)

	_, ok = NormalizeHex("#ggg")
	assert.False(t, ok)
}

func TestValidateContrast_BlackOnWhite(t *testing.T) {
	res := ValidateContrast("#000000", "#ffffff")
	assert.InDelta(t, 21.0, res.Ratio, 1e-9)
	assert.True(t, res.Passes)
}

func TestValidateContrast_SameColor(t *testing.T) {
	res := ValidateContrast("#777777", "#777777")
	assert.InDelta(t, 1.0, res.Ratio, 1e-9)
	assert.False(t, res.Passes)
}

func TestValidateContrast_KnownPairs(t *testing.T) {
	// #767676 on white is the classic lightest AA gray
	res := ValidateContrast("#767676", "#ffffff")
	assert.InDelta(t, 4.54, res.Ratio, 0.01)
	assert.True(t, res.Passes)

	res = ValidateContrast("#777777", "#ffffff")
	assert.InDelta(t, 4.48, res.Ratio, 0.01)
	assert.False(t, res.Passes)
}

func TestValidateContrast_Properties(t *testing.T) {
	colors := []string{
		"#000000", "#ffffff", "#2563eb", "#7c3aed", "#f97316", "#0f172a",
		"#f8fafc", "#64748b", "#10b981", "#ef4444", "#fff", "#123",
		"not-a-color", "#12", "",
	}

	for _, a := range colors {
		for _, b := range colors {
			ab := ValidateContrast(a, b)
			ba := ValidateContrast(b, a)

			assert.InDelta(t, ab.Ratio, ba.Ratio, 1e-12, "symmetry %s/%s", a, b)
			assert.GreaterOrEqual(t, ab.Ratio, 1.0)
			assert.LessOrEqual(t, ab.Ratio, MaxRatio+1e-9)
			assert.Equal(t, ab.Ratio >= MinimumRatio, ab.Passes)
		}
	}
}

func TestValidateContrast_MalformedTreatedAsBlack(t *testing.T) {
	res := ValidateContrast("garbage", "#ffffff")
	assert.InDelta(t, 21.0, res.Ratio, 1e-9)
}

func TestMixLightenDarken(t *testing.T) {
	assert.Equal(t, White, Lighten(RGB{10, 20, 30}, 1))
	assert.Equal(t, Black, Darken(RGB{10, 20, 30}, 1))
	assert.Equal(t, RGB{10, 20, 30}, Mix(RGB{10, 20, 30}, White, 0))
	assert.Equal(t, RGB{128, 128, 128}, Mix(Black, White, 0.5))
	assert.Equal(t, White, Mix(Black, White, 7), "weight clamps")
}

func TestCorrect_AlreadyPasses(t *testing.T) {
	c := Correct("#000000", "#ffffff", MinimumRatio)
	assert.False(t, c.Adjusted())
	assert.Equal(t, "#000000", c.Hex)
	assert.True(t, c.Result.Passes)
}

func TestCorrect_DarkensOnLightBackground(t *testing.T) {
	c := Correct("#93c5fd", "#ffffff", MinimumRatio)
	require.True(t, c.Result.Passes)
	assert.True(t, c.Adjusted())
	assert.LessOrEqual(t, c.Steps, MaxCorrectionSteps)
	assert.Less(t, RelativeLuminance(MustParse(c.Hex)), RelativeLuminance(MustParse("#93c5fd")))
	assert.Equal(t, "#93c5fd", c.Original)
}

func TestCorrect_LightensOnDarkBackground(t *testing.T) {
	c := Correct("#1e40af", "#0f172a", MinimumRatio)
	require.True(t, c.Result.Passes)
	assert.Greater(t, RelativeLuminance(MustParse(c.Hex)), RelativeLuminance(MustParse("#1e40af")))
}

func TestCorrect_AlwaysReachesAA(t *testing.T) {
	backgrounds := []string{"#ffffff", "#000000", "#777777", "#808080", "#3b82f6", "#f97316", "#fde68a"}
	for _, bg := range backgrounds {
		c := Correct(bg, bg, MinimumRatio)
		assert.True(t, c.Result.Passes, "bg %s ratio %.2f", bg, c.Result.Ratio)
	}
}

func TestCorrect_BoundedWhenUnreachable(t *testing.T) {
	// mid gray cannot reach 21:1 with anything
	c := Correct("#777777", "#777777", MaxRatio)
	assert.False(t, c.Result.Passes)
	assert.Equal(t, MaxCorrectionSteps, c.Steps)
	assert.Greater(t, c.Result.Ratio, 1.0)
}
