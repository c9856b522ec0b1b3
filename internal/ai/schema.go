package ai

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// analysisSchema validates the model's candidate analysis payload before it
// is persisted. Anything that fails here is treated as a provider error.
const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary", "strengths", "weaknesses", "fitScore", "interviewQuestions"],
  "properties": {
    "summary": {"type": "string", "minLength": 1},
    "strengths": {
      "type": "array",
      "items": {"type": "string"}
    },
    "weaknesses": {
      "type": "array",
      "items": {"type": "string"}
    },
    "fitScore": {"type": "number", "minimum": 0, "maximum": 10},
    "interviewQuestions": {
      "type": "array",
      "items": {"type": "string"}
    },
    "resumeAnalysis": {"type": "string"}
  },
  "additionalProperties": true
}`

var analysisSchemaLoader = gojsonschema.NewStringLoader(analysisSchema)

// validateAnalysisJSON checks a raw model response against the analysis schema.
func validateAnalysisJSON(raw string) error {
	result, err := gojsonschema.Validate(analysisSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to validate analysis: %w", err)
	}
	if !result.Valid() {
		details := ""
		for _, e := range result.Errors() {
			if details != "" {
				details += "; "
			}
			details += e.String()
		}
		return fmt.Errorf("analysis payload failed validation: %s", details)
	}
	return nil
}
