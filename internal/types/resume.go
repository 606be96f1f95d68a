// Package types provides type definitions for structured resume data shared
// between the transformer and the renderers.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Fallback literals used when the generated document omits a field.
const (
	FallbackName  = "Name Not Found"
	FallbackTitle = "Title Not Found"
	// FallbackValue substitutes missing contact and education fields.
	FallbackValue = "N/A"
)

// ResumeDocument is the resume data contract. It is produced once per
// generation request and treated as immutable afterwards; a new request
// replaces it wholesale. All fields are optional.
type ResumeDocument struct {
	Name       string            `json:"name,omitempty"`
	Title      string            `json:"title,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Contact    ContactInfo       `json:"contact,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
}

// ContactInfo holds the contact block of a resume.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ExperienceEntry is a single job record. Details may be empty; renderers
// omit the detail line rather than fail.
type ExperienceEntry struct {
	Company string   `json:"company,omitempty"`
	Role    string   `json:"role,omitempty"`
	Details []string `json:"details,omitempty"`
}

// DisplayName returns the resume name or the fallback literal.
func (d *ResumeDocument) DisplayName() string {
	if strings.TrimSpace(d.Name) == "" {
		return FallbackName
	}
	return d.Name
}

// DisplayTitle returns the resume title or the fallback literal.
func (d *ResumeDocument) DisplayTitle() string {
	if strings.TrimSpace(d.Title) == "" {
		return FallbackTitle
	}
	return d.Title
}

// Filename derives the suggested download filename from the resume name.
// "Jane Doe" becomes "Jane_Doe_Resume.pdf"; a missing name falls back to
// "resume.pdf".
func (d *ResumeDocument) Filename() string {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return "resume.pdf"
	}
	return strings.ReplaceAll(name, " ", "_") + "_Resume.pdf"
}

// OrValue returns s, or the fallback literal when s is blank.
func OrValue(s string) string {
	if strings.TrimSpace(s) == "" {
		return FallbackValue
	}
	return s
}
