// Package plan assembles the component implementation plan. The plan is a
// deterministic function of the inspiration, the insight and the model's
// component recommendations.
package plan

import (
	"fmt"
	"strings"

	"github.com/jonathan/supercomponents/internal/types"
)

// componentsPerWeek is the delivery pace used for duration estimates.
const componentsPerWeek = 3

var foundationComponents = []string{"Button", "Input", "Label", "Icon", "Text", "Stack"}

var coreComponents = []string{"Card", "Modal", "Select", "Checkbox", "Radio", "Toggle", "Tooltip", "Tabs"}

// industry patterns are matched by substring against the industry type
var industryPatterns = []struct {
	match      []string
	components []string
}{
	{[]string{"commerce", "retail", "shop"}, []string{"ProductCard", "PriceTag", "CartDrawer", "CheckoutForm"}},
	{[]string{"fintech", "finance", "bank", "payment"}, []string{"DataTable", "Chart", "TransactionList", "AmountInput"}},
	{[]string{"health", "medical", "care"}, []string{"AppointmentCard", "Timeline", "FormWizard", "Alert"}},
	{[]string{"education", "learning", "school"}, []string{"CourseCard", "ProgressBar", "Quiz", "Timeline"}},
	{[]string{"media", "news", "content", "publishing"}, []string{"ArticleCard", "MediaPlayer", "Carousel", "ShareBar"}},
}

var defaultPatterns = []string{"Navigation", "DataTable", "FormLayout", "EmptyState"}

var keywordComponents = map[string]string{
	"playful":     "Confetti",
	"data":        "Chart",
	"analytics":   "Chart",
	"dashboard":   "StatCard",
	"social":      "Avatar",
	"community":   "Avatar",
	"interactive": "Popover",
}

var accessibilityComponents = []string{"SkipLink", "FocusRing", "LiveRegion", "VisuallyHidden"}

// BuildComponentPlan assembles the phased plan.
func BuildComponentPlan(insp types.UserInspiration, insight types.DesignInsight, recs []types.ComponentRecommendation) types.ComponentPlan {
	seen := make(map[string]bool)
	take := func(names []string) []string {
		var out []string
		for _, n := range names {
			n = strings.TrimSpace(n)
			key := strings.ToLower(n)
			if n == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, n)
		}
		return out
	}

	foundation := take(append(append([]string{}, foundationComponents...), recommended(recs, "high")...))
	core := take(append(append([]string{}, coreComponents...), recommended(recs, "medium")...))
	patterns := take(append(append(patternsFor(insp.IndustryType), keywordExtras(insight.BrandKeywords)...), recommended(recs, "low")...))

	phases := []types.Phase{
		newPhase("Foundation", "Tokens wired into primitives that every other component builds on.", foundation),
		newPhase("Core Components", "Interactive building blocks covering the common product surfaces.", core),
		newPhase("Patterns", patternDescription(insp.IndustryType), patterns),
	}
	if insp.AccessibilityOrDefault() == types.AccessibilityEnterprise {
		phases = append(phases, newPhase("Accessibility Hardening",
			"Utilities and audits needed for WCAG AAA conformance.", take(accessibilityComponents)))
	}

	total := 0
	weeks := 0
	for _, p := range phases {
		total += len(p.Components)
		weeks += weeksFor(len(p.Components))
	}

	return types.ComponentPlan{
		Phases:            phases,
		TotalComponents:   total,
		EstimatedDuration: formatWeeks(weeks),
	}
}

func recommended(recs []types.ComponentRecommendation, priority string) []string {
	var out []string
	for _, r := range recs {
		if strings.EqualFold(r.Priority, priority) {
			out = append(out, r.Name)
		}
	}
	return out
}

func patternsFor(industry string) []string {
	lower := strings.ToLower(industry)
	if lower != "" {
		for _, p := range industryPatterns {
			for _, m := range p.match {
				if strings.Contains(lower, m) {
					return append([]string{}, p.components...)
				}
			}
		}
	}
	return append([]string{}, defaultPatterns...)
}

func patternDescription(industry string) string {
	if strings.TrimSpace(industry) == "" {
		return "Composite patterns for common application screens."
	}
	return fmt.Sprintf("Composite patterns tailored to %s products.", strings.TrimSpace(industry))
}

func keywordExtras(keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if c, ok := keywordComponents[strings.ToLower(strings.TrimSpace(kw))]; ok {
			out = append(out, c)
		}
	}
	return out
}

func newPhase(name, description string, components []string) types.Phase {
	if components == nil {
		components = []string{}
	}
	return types.Phase{
		Name:        name,
		Description: description,
		Components:  components,
		Duration:    formatWeeks(weeksFor(len(components))),
	}
}

func weeksFor(n int) int {
	if n == 0 {
		return 0
	}
	return (n + componentsPerWeek - 1) / componentsPerWeek
}

func formatWeeks(w int) string {
	if w == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", w)
}
