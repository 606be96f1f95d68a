// Package transform converts unstructured free-text notes into a structured
// resume document via the generative backend.
package transform

import (
	"context"
	"encoding/json"

	"github.com/misbah/resumeai/internal/llm"
	"github.com/misbah/resumeai/internal/prompts"
	"github.com/misbah/resumeai/internal/schemas"
	"github.com/misbah/resumeai/internal/types"
)

// Transformer turns raw notes plus a style selector into a resume document.
// Any returned error is a *GenerationError. Output is not deterministic:
// identical inputs may yield different documents across calls.
type Transformer interface {
	Transform(ctx context.Context, rawText string, style types.StyleOption) (*types.ResumeDocument, error)
}

// Generator is the backend-driven Transformer implementation.
type Generator struct {
	client llm.Client
}

// New creates a Generator on top of a backend client.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Transform builds the instructional prompt, performs one backend call, and
// parses the response into a ResumeDocument. All-or-nothing: a failure at any
// stage returns a *GenerationError and no document.
func (g *Generator) Transform(ctx context.Context, rawText string, style types.StyleOption) (*types.ResumeDocument, error) {
	prompt := BuildPrompt(rawText, style)

	responseText, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{
			Message: "generative backend call failed",
			Cause:   err,
		}
	}

	return Parse(responseText)
}

// BuildPrompt constructs the fixed instructional template for the given
// notes and style. The schema block comes from the same canonical definition
// the parser validates against.
func BuildPrompt(rawText string, style types.StyleOption) string {
	template := prompts.MustGet("generation.json", "resume-from-notes")
	return prompts.MustFormat(template, map[string]string{
		"RawText":     rawText,
		"StyleClause": style.ToneClause(),
		"Schema":      schemas.PromptSkeleton(),
	})
}

// Parse strips code-fence markup from a backend response, validates it
// against the resume schema, and decodes it. Exposed separately so the
// response-handling path is testable without a backend.
func Parse(responseText string) (*types.ResumeDocument, error) {
	cleaned := llm.CleanJSONBlock(responseText)

	var doc types.ResumeDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &GenerationError{
			Message: "failed to parse backend response as JSON",
			Cause:   err,
		}
	}

	if err := schemas.Validate(cleaned); err != nil {
		return nil, &GenerationError{
			Message: "backend response does not match the resume schema",
			Cause:   err,
		}
	}

	return &doc, nil
}
