package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	ProviderGroq     = "groq"
	ProviderGemini   = "gemini"
	ProviderClaude   = "claude"
	ProviderFallback = "fallback"
)

// AnalysisRequest is the immutable input handed to every provider.
type AnalysisRequest struct {
	ResumeText     string
	JobRole        string
	JobDescription string
}

var scorePattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(?:/\s*100)?\s*$`)

const (
	minScore = 0
	maxScore = 100
)

// Score is a 0-100 score. Models are inconsistent about returning numbers,
// so it also accepts a numeric string such as "85" or "85/100".
type Score float64

func (s *Score) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("score must be a number or numeric string: %s", string(data))
		}

		match := scorePattern.FindStringSubmatch(str)
		if match == nil {
			return fmt.Errorf("score is not numeric: %q", str)
		}

		num, err = strconv.ParseFloat(match[1], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", str, err)
		}
	}

	if num < minScore || num > maxScore {
		return fmt.Errorf("score %v outside %d-%d", num, minScore, maxScore)
	}

	*s = Score(num)
	return nil
}

type SectionsAnalysis struct {
	Summary          string `json:"summary"`
	Experience       string `json:"experience"`
	Skills           string `json:"skills"`
	Education        string `json:"education"`
	OverallStructure string `json:"overall_structure"`
}

type AnalysisResult struct {
	OverallScore        Score            `json:"overall_score"`
	JobMatchScore       Score            `json:"job_match_score"`
	ATSScore            Score            `json:"ats_score"`
	Strengths           []string         `json:"strengths"`
	Weaknesses          []string         `json:"weaknesses"`
	SkillGaps           []string         `json:"skill_gaps"`
	Recommendations     []string         `json:"recommendations"`
	KeywordsFound       []string         `json:"keywords_found"`
	MissingKeywords     []string         `json:"missing_keywords"`
	SectionsAnalysis    SectionsAnalysis `json:"sections_analysis"`
	ImprovementPriority []string         `json:"improvement_priority"`
	RoleSpecificAdvice  []string         `json:"role_specific_advice"`
	AIProvider          string           `json:"ai_provider"`
}

// NormalizeLists replaces missing lists with empty ones so the response
// never carries null arrays.
func (a *AnalysisResult) NormalizeLists() {
	for _, list := range []*[]string{
		&a.Strengths,
		&a.Weaknesses,
		&a.SkillGaps,
		&a.Recommendations,
		&a.KeywordsFound,
		&a.MissingKeywords,
		&a.ImprovementPriority,
		&a.RoleSpecificAdvice,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// FallbackAnalysis is the degraded result returned when every provider failed.
func FallbackAnalysis() *AnalysisResult {
	const unavailable = "Analysis unavailable"

	return &AnalysisResult{
		OverallScore:    50,
		JobMatchScore:   50,
		ATSScore:        50,
		Strengths:       []string{"Resume uploaded successfully"},
		Weaknesses:      []string{"AI analysis temporarily unavailable"},
		SkillGaps:       []string{"Unable to analyze at this time"},
		Recommendations: []string{"Please try again later"},
		KeywordsFound:   []string{},
		MissingKeywords: []string{},
		SectionsAnalysis: SectionsAnalysis{
			Summary:          unavailable,
			Experience:       unavailable,
			Skills:           unavailable,
			Education:        unavailable,
			OverallStructure: unavailable,
		},
		ImprovementPriority: []string{"Try uploading again"},
		RoleSpecificAdvice:  []string{"AI service temporarily unavailable"},
		AIProvider:          ProviderFallback,
	}
}

// TruncateRunes returns at most n characters of text without splitting a
// multi-byte rune.
func TruncateRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(text) <= n {
		return text
	}

	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}

// HasText reports whether extracted text carries anything besides whitespace.
func HasText(text string) bool {
	return strings.TrimSpace(text) != ""
}
