// Package schemas holds the canonical resume schema. The same field set
// produces both the JSON shape block embedded in the generation prompt and
// the JSON Schema document used to validate backend responses, so the two
// cannot drift apart.
package schemas

import (
	"fmt"
	"strings"
)

// fieldKind is the type of a schema field.
type fieldKind int

const (
	kindString fieldKind = iota
	kindStringArray
	kindObject
	kindObjectArray
)

// field describes a single property of the resume schema.
type field struct {
	name     string
	kind     fieldKind
	children []field
	optional bool // annotated in the prompt skeleton; everything is optional to the validator
}

// resumeFields is the canonical definition of the resume data contract.
// Order here is the order fields appear in the prompt skeleton.
func resumeFields() []field {
	return []field{
		{name: "name", kind: kindString},
		{name: "title", kind: kindString},
		{name: "summary", kind: kindString},
		{name: "contact", kind: kindObject, children: []field{
			{name: "email", kind: kindString},
			{name: "phone", kind: kindString},
			{name: "linkedin", kind: kindString, optional: true},
		}},
		{name: "skills", kind: kindStringArray},
		{name: "education", kind: kindObjectArray, children: []field{
			{name: "degree", kind: kindString},
			{name: "institution", kind: kindString},
			{name: "year", kind: kindString},
		}},
		{name: "experience", kind: kindObjectArray, children: []field{
			{name: "company", kind: kindString},
			{name: "role", kind: kindString},
			{name: "details", kind: kindStringArray},
		}},
	}
}

// PromptSkeleton renders the JSON shape block embedded in the generation
// prompt. The backend is instructed to match it exactly.
func PromptSkeleton() string {
	var sb strings.Builder
	writeObjectSkeleton(&sb, resumeFields(), 0)
	return sb.String()
}

func writeObjectSkeleton(sb *strings.Builder, fields []field, depth int) {
	indent := strings.Repeat("    ", depth)
	inner := strings.Repeat("    ", depth+1)

	sb.WriteString("{\n")
	for i, f := range fields {
		sb.WriteString(fmt.Sprintf("%s%q: ", inner, f.name))
		switch f.kind {
		case kindString:
			if f.optional {
				sb.WriteString(`"String (Optional)"`)
			} else {
				sb.WriteString(`"String"`)
			}
		case kindStringArray:
			sb.WriteString(`["String", "String"]`)
		case kindObject:
			writeObjectSkeleton(sb, f.children, depth+1)
		case kindObjectArray:
			sb.WriteString("[\n" + inner + "    ")
			writeObjectSkeleton(sb, f.children, depth+2)
			sb.WriteString("\n" + inner + "]")
		}
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(indent + "}")
}

// Definition returns the JSON Schema (draft-07) document derived from the
// canonical field set. Field names are fixed; unknown properties are rejected.
func Definition() map[string]any {
	def := objectDefinition(resumeFields())
	def["$schema"] = "http://json-schema.org/draft-07/schema#"
	return def
}

func objectDefinition(fields []field) map[string]any {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		props[f.name] = fieldDefinition(f)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func fieldDefinition(f field) map[string]any {
	switch f.kind {
	case kindStringArray:
		return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	case kindObject:
		return objectDefinition(f.children)
	case kindObjectArray:
		return map[string]any{"type": "array", "items": objectDefinition(f.children)}
	default:
		return map[string]any{"type": "string"}
	}
}
