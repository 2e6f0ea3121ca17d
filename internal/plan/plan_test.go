package plan

import (
	"testing"

	"github.com/jonathan/supercomponents/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildComponentPlan_Defaults(t *testing.T) {
	p := BuildComponentPlan(types.UserInspiration{Description: "x"}, types.DesignInsight{}, nil)

	require.Len(t, p.Phases, 3)
	assert.Equal(t, "Foundation", p.Phases[0].Name)
	assert.Equal(t, foundationComponents, p.Phases[0].Components)
	assert.Equal(t, defaultPatterns, p.Phases[2].Components)

	total := 0
	for _, phase := range p.Phases {
		total += len(phase.Components)
	}
	assert.Equal(t, total, p.TotalComponents)
	// 6 + 8 + 4 components at 3 per week: 2 + 3 + 2
	assert.Equal(t, "7 weeks", p.EstimatedDuration)
	assert.Equal(t, "2 weeks", p.Phases[0].Duration)
}

func TestBuildComponentPlan_IndustryAndKeywords(t *testing.T) {
	p := BuildComponentPlan(
		types.UserInspiration{Description: "x", IndustryType: "Fintech"},
		types.DesignInsight{BrandKeywords: []string{"Analytics", "data", "playful"}},
		nil,
	)
	assert.Equal(t, []string{"DataTable", "Chart", "TransactionList", "AmountInput", "Confetti"}, p.Phases[2].Components)
	assert.Contains(t, p.Phases[2].Description, "Fintech")
}

func TestBuildComponentPlan_Recommendations(t *testing.T) {
	p := BuildComponentPlan(types.UserInspiration{Description: "x"}, types.DesignInsight{}, []types.ComponentRecommendation{
		{Name: "Badge", Priority: "high"},
		{Name: "button", Priority: "high"},
		{Name: "Drawer", Priority: "medium"},
		{Name: "Sparkline", Priority: "low"},
	})

	assert.Contains(t, p.Phases[0].Components, "Badge")
	assert.NotContains(t, p.Phases[0].Components, "button")
	assert.Contains(t, p.Phases[1].Components, "Drawer")
	assert.Contains(t, p.Phases[2].Components, "Sparkline")
}

func TestBuildComponentPlan_EnterpriseAddsPhase(t *testing.T) {
	p := BuildComponentPlan(types.UserInspiration{Description: "x", Accessibility: types.AccessibilityEnterprise}, types.DesignInsight{}, nil)
	require.Len(t, p.Phases, 4)
	assert.Equal(t, "Accessibility Hardening", p.Phases[3].Name)
	assert.Equal(t, accessibilityComponents, p.Phases[3].Components)
}

func TestBuildComponentPlan_Deterministic(t *testing.T) {
	insp := types.UserInspiration{Description: "x", IndustryType: "healthcare"}
	insight := types.DesignInsight{BrandKeywords: []string{"social"}}
	assert.Equal(t, BuildComponentPlan(insp, insight, nil), BuildComponentPlan(insp, insight, nil))
}

func TestFormatWeeks(t *testing.T) {
	assert.Equal(t, "0 weeks", formatWeeks(0))
	assert.Equal(t, "1 week", formatWeeks(1))
	assert.Equal(t, "3 weeks", formatWeeks(3))
}
