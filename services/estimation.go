package services

import (
	"fmt"
	"strings"

	"github.com/iaigorluiz-svg/nutriai-api/llm"
)

// EmptyResponseError reports a model reply with no usable content. It keeps
// the finish reason and token usage so callers can surface them for
// diagnosis.
type EmptyResponseError struct {
	FinishReason string
	Usage        llm.Usage
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("model returned empty content (finish_reason=%s, total_tokens=%d)",
		e.FinishReason, e.Usage.TotalTokens)
}

// SchemaError reports model content that could not be parsed into the
// expected structure.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return "invalid model response: " + e.Detail
}

// cleanJSONContent strips markdown code fences some models wrap around JSON
// output even when asked not to.
func cleanJSONContent(content string) string {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
