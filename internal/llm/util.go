// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers and conversational
// preamble/trailer text from JSON responses. LLMs often wrap JSON in
// ```json ... ``` blocks or prose even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return stripSurroundingProse(text)
}

// stripSurroundingProse trims prose before the first JSON delimiter and after
// the last one. Leaves malformed text untouched so parse errors stay visible.
func stripSurroundingProse(text string) string {
	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	start := objStart
	end := strings.LastIndex(text, "}")
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start = arrStart
		end = strings.LastIndex(text, "]")
	}

	if start < 0 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
