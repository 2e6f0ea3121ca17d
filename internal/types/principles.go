package types

// MaxPrincipleWords bounds Principle.Description.
const MaxPrincipleWords = 120

// Principle is a single brand design principle.
type Principle struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	WordCount     int      `json:"wordCount"`
	BrandKeywords []string `json:"brandKeywords"`
}

// PrincipleSet is an ordered sequence of 3-5 principles with rendered documents.
type PrincipleSet struct {
	Principles       []Principle `json:"principles"`
	MarkdownContent  string      `json:"markdownContent"`
	StorybookContent string      `json:"storybookContent"`
}
