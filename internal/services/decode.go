package services

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"studymate/resume-analyzer/internal/models"
)

var ErrInvalidAnalysis = errors.New("invalid analysis response")

//go:embed analysis_schema.json
var analysisSchemaJSON string

var analysisSchema = mustLoadSchema(analysisSchemaJSON)

var (
	openingFence = regexp.MustCompile("^```(?:json)?[ \t]*\r?\n")
	closingFence = regexp.MustCompile("\r?\n```\\s*$")
)

func mustLoadSchema(content string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded analysis schema: %v", err))
	}
	return schema
}

// DecodeAnalysis turns raw model output into an AnalysisResult tagged with
// provider. Output that is not a JSON object matching the analysis schema is
// rejected.
func DecodeAnalysis(raw, provider string) (*models.AnalysisResult, error) {
	jsonStr := stripFences(raw)
	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("%w: response is not JSON", ErrInvalidAnalysis)
	}

	result, err := analysisSchema.Validate(gojsonschema.NewStringLoader(jsonStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			problems = append(problems, field+": "+desc.Description())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidAnalysis, strings.Join(problems, "; "))
	}

	var analysis models.AnalysisResult
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal JSON: %v", ErrInvalidAnalysis, err)
	}

	analysis.NormalizeLists()
	analysis.AIProvider = provider

	return &analysis, nil
}

// stripFences removes a single markdown fence around the payload. Anything
// else outside the JSON value is left in place and fails validation.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if loc := openingFence.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
		if loc := closingFence.FindStringIndex(text); loc != nil {
			text = text[:loc[0]]
		}
	}
	return strings.TrimSpace(text)
}
