package types

import "fmt"

// StyleOption selects the tone and register of the generated resume prose.
// The set is closed; parsing rejects anything else.
type StyleOption string

// Supported resume styles.
const (
	StyleCorporate            StyleOption = "corporate"
	StyleCreativeModern       StyleOption = "creative-modern"
	StyleTechnicalEngineering StyleOption = "technical-engineering"
)

// Styles lists all supported options in display order.
func Styles() []StyleOption {
	return []StyleOption{StyleCorporate, StyleCreativeModern, StyleTechnicalEngineering}
}

// ParseStyle converts a user-supplied style string into a StyleOption.
// It accepts both the wire value and the display label.
func ParseStyle(s string) (StyleOption, error) {
	switch s {
	case string(StyleCorporate), "Corporate":
		return StyleCorporate, nil
	case string(StyleCreativeModern), "Creative/Modern":
		return StyleCreativeModern, nil
	case string(StyleTechnicalEngineering), "Technical/Engineering":
		return StyleTechnicalEngineering, nil
	default:
		return "", fmt.Errorf("unknown resume style %q", s)
	}
}

// Label returns the human-readable name shown in the UI.
func (s StyleOption) Label() string {
	switch s {
	case StyleCorporate:
		return "Corporate"
	case StyleCreativeModern:
		return "Creative/Modern"
	case StyleTechnicalEngineering:
		return "Technical/Engineering"
	default:
		return string(s)
	}
}

// ToneClause returns the style-specific instruction appended to the
// generation prompt. Each clause must perceptibly alter verb choice and tone.
func (s StyleOption) ToneClause() string {
	switch s {
	case StyleCreativeModern:
		return "Use a Creative/Modern voice: energetic, first-person-adjacent phrasing, vivid action verbs (crafted, launched, reimagined), short punchy sentences."
	case StyleTechnicalEngineering:
		return "Use a Technical/Engineering voice: precise, measurable, systems-oriented verbs (engineered, instrumented, optimized), concrete technologies and metrics."
	default:
		return "Use a Corporate voice: formal, results-driven verbs (spearheaded, delivered, managed), emphasis on business impact and stakeholders."
	}
}
