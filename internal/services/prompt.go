package services

import (
	"fmt"

	"studymate/resume-analyzer/internal/models"
)

// AnalysisSystemInstruction is sent on providers that have a system channel.
const AnalysisSystemInstruction = "You are an expert resume analyzer. Always respond with valid JSON only."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt creates the resume analysis prompt. The output is a pure
// function of the request.
func (pb *PromptBuilder) BuildAnalysisPrompt(req models.AnalysisRequest) string {
	return fmt.Sprintf(`Analyze this resume for the job role: %s

Job Description: %s

Resume Content:
%s

Provide a comprehensive analysis in JSON format:
{
  "overall_score": "Score out of 100",
  "job_match_score": "How well resume matches the job role (0-100)",
  "ats_score": "ATS compatibility score (0-100)",
  "strengths": ["List of resume strengths relevant to the job"],
  "weaknesses": ["Areas that need improvement"],
  "skill_gaps": ["Missing skills for the job role"],
  "recommendations": ["Specific recommendations to improve the resume"],
  "keywords_found": ["Important keywords found in resume"],
  "missing_keywords": ["Important keywords missing from resume"],
  "sections_analysis": {
    "summary": "Analysis of professional summary",
    "experience": "Analysis of work experience",
    "skills": "Analysis of skills section",
    "education": "Analysis of education",
    "overall_structure": "Analysis of resume structure and formatting"
  },
  "improvement_priority": ["Top 3 areas to focus on for improvement"],
  "role_specific_advice": ["Advice specific to the %s role"]
}

Only return valid JSON, no additional text.`,
		req.JobRole, req.JobDescription, req.ResumeText, req.JobRole)
}
