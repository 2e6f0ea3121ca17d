// Package types provides type definitions for structured data used throughout the design-system generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AccessibilityLevel is the WCAG ambition requested by the user.
type AccessibilityLevel string

// Accessibility levels accepted on input
const (
	AccessibilityBasic      AccessibilityLevel = "basic"
	AccessibilityEnhanced   AccessibilityLevel = "enhanced"
	AccessibilityEnterprise AccessibilityLevel = "enterprise"
)

// StylePreference is a coarse visual direction hint.
type StylePreference string

// Style preferences accepted on input
const (
	StyleMinimal      StylePreference = "minimal"
	StyleModern       StylePreference = "modern"
	StyleClassic      StylePreference = "classic"
	StylePlayful      StylePreference = "playful"
	StyleProfessional StylePreference = "professional"
	StyleBold         StylePreference = "bold"
	StyleElegant      StylePreference = "elegant"
)

// SourceKind identifies which inspiration source was supplied.
type SourceKind string

// Inspiration source kinds
const (
	SourceImage       SourceKind = "image"
	SourceWebsite     SourceKind = "website"
	SourceDescription SourceKind = "description"
)

// UserInspiration is the seed for a generation run. Exactly one of ImageURL,
// WebsiteURL and Description must be set.
type UserInspiration struct {
	ImageURL         string             `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty" validate:"omitempty,url"`
	WebsiteURL       string             `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty" validate:"omitempty,url"`
	Description      string             `json:"description,omitempty" yaml:"description,omitempty"`
	BrandKeywords    []string           `json:"brandKeywords,omitempty" yaml:"brandKeywords,omitempty" validate:"omitempty,dive,required"`
	IndustryType     string             `json:"industryType,omitempty" yaml:"industryType,omitempty"`
	TargetUsers      string             `json:"targetUsers,omitempty" yaml:"targetUsers,omitempty"`
	ColorPreferences []string           `json:"colorPreferences,omitempty" yaml:"colorPreferences,omitempty"`
	StylePreferences []StylePreference  `json:"stylePreferences,omitempty" yaml:"stylePreferences,omitempty" validate:"omitempty,dive,oneof=minimal modern classic playful professional bold elegant"`
	Accessibility    AccessibilityLevel `json:"accessibility,omitempty" yaml:"accessibility,omitempty" validate:"omitempty,oneof=basic enhanced enterprise"`
}

// InspirationError reports an invalid UserInspiration.
type InspirationError struct {
	Message string
	Cause   error
}

func (e *InspirationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid inspiration: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid inspiration: %s", e.Message)
}

func (e *InspirationError) Unwrap() error {
	return e.Cause
}

// Validate checks field formats and the exactly-one-source rule.
func (u *UserInspiration) Validate() error {
	sources := 0
	for _, s := range []string{u.ImageURL, u.WebsiteURL, u.Description} {
		if strings.TrimSpace(s) != "" {
			sources++
		}
	}
	if sources == 0 {
		return &InspirationError{Message: "one of imageUrl, websiteUrl or description is required"}
	}
	if sources > 1 {
		return &InspirationError{Message: "imageUrl, websiteUrl and description are mutually exclusive"}
	}

	validate := validator.New()
	if err := validate.Struct(u); err != nil {
		return &InspirationError{Message: "field validation failed", Cause: err}
	}
	return nil
}

// Source returns the kind and value of the supplied inspiration source.
func (u *UserInspiration) Source() (SourceKind, string) {
	switch {
	case u.ImageURL != "":
		return SourceImage, u.ImageURL
	case u.WebsiteURL != "":
		return SourceWebsite, u.WebsiteURL
	default:
		return SourceDescription, u.Description
	}
}

// AccessibilityOrDefault returns the requested level, falling back to basic.
func (u *UserInspiration) AccessibilityOrDefault() AccessibilityLevel {
	if u.Accessibility == "" {
		return AccessibilityBasic
	}
	return u.Accessibility
}
