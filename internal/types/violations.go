package types

// Violation severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ContrastViolation records a text/background token pair that still fails
// the required contrast ratio after correction.
type ContrastViolation struct {
	Foreground    string  `json:"foreground"`
	Background    string  `json:"background"`
	ForegroundHex string  `json:"foreground_hex"`
	BackgroundHex string  `json:"background_hex"`
	Ratio         float64 `json:"ratio"`
	Required      float64 `json:"required"`
	Severity      string  `json:"severity"`
	Details       string  `json:"details"`
}

// Violations is a collection of contrast failures.
type Violations struct {
	Violations []ContrastViolation `json:"violations"`
}
