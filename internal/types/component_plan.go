package types

// Phase is one implementation phase of a component plan.
type Phase struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
	Duration    string   `json:"duration"`
}

// ComponentPlan is the ordered component-implementation plan.
type ComponentPlan struct {
	Phases            []Phase `json:"phases"`
	TotalComponents   int     `json:"totalComponents"`
	EstimatedDuration string  `json:"estimatedDuration"`
}
