package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"studymate/resume-analyzer/internal/models"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	req := models.AnalysisRequest{
		ResumeText:     "Skills: Python, React, AWS",
		JobRole:        "Backend Engineer",
		JobDescription: "Build APIs",
	}

	prompt := NewPromptBuilder().BuildAnalysisPrompt(req)

	assert.True(t, strings.HasPrefix(prompt, "Analyze this resume for the job role: Backend Engineer"))
	assert.Contains(t, prompt, "Job Description: Build APIs")
	assert.Contains(t, prompt, "Resume Content:\nSkills: Python, React, AWS")
	assert.Contains(t, prompt, `"role_specific_advice": ["Advice specific to the Backend Engineer role"]`)
	assert.True(t, strings.HasSuffix(prompt, "Only return valid JSON, no additional text."))

	for _, field := range []string{
		"overall_score", "job_match_score", "ats_score", "strengths", "weaknesses",
		"skill_gaps", "recommendations", "keywords_found", "missing_keywords",
		"sections_analysis", "improvement_priority", "role_specific_advice",
	} {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
}

func TestBuildAnalysisPrompt_Deterministic(t *testing.T) {
	req := models.AnalysisRequest{ResumeText: "text", JobRole: "Designer"}
	pb := NewPromptBuilder()

	assert.Equal(t, pb.BuildAnalysisPrompt(req), pb.BuildAnalysisPrompt(req))
	assert.Contains(t, pb.BuildAnalysisPrompt(req), "Job Description: \n")
}
