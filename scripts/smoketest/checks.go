package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CheckResult is the outcome of one smoke check.
type CheckResult struct {
	Name   string
	Passed bool
	Detail string
}

type Checker struct {
	targets *Targets
	timeout time.Duration
	out     io.Writer
}

func NewChecker(targets *Targets, timeout time.Duration, out io.Writer) *Checker {
	return &Checker{
		targets: targets,
		timeout: timeout,
		out:     out,
	}
}

func (c *Checker) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Health calls GET /health on a service; any 200 passes.
func (c *Checker) Health(service string) CheckResult {
	result := CheckResult{Name: service + " health"}

	code, body, err := c.get(c.targets.Services[service] + "/health")
	if err != nil {
		c.printf("💥 %s connection failed: %v", service, err)
		result.Detail = err.Error()
		return result
	}
	if code != fiber.StatusOK {
		c.printf("❌ %s health check failed: %d", service, code)
		result.Detail = fmt.Sprintf("status %d", code)
		return result
	}

	var health struct {
		Status   string `json:"status"`
		Database struct {
			Status string `json:"status"`
		} `json:"database"`
		AIProviders map[string]bool `json:"ai_providers"`
	}
	decodeErr := json.Unmarshal(body, &health)

	c.printf("✅ %s health check passed", service)
	if decodeErr != nil {
		c.printf("   (non-JSON body)")
	}
	c.printf("   Status: %s", valueOr(health.Status, "unknown"))
	if health.Database.Status != "" {
		c.printf("   Database: %s", health.Database.Status)
	}
	if len(health.AIProviders) > 0 {
		c.printf("   AI providers: %v", health.AIProviders)
	}

	result.Passed = true
	result.Detail = valueOr(health.Status, "unknown")
	return result
}

// Info calls GET / on a service.
func (c *Checker) Info(service string) CheckResult {
	result := CheckResult{Name: service + " info"}

	code, body, err := c.get(c.targets.Services[service] + "/")
	if err != nil {
		c.printf("💥 %s info request failed: %v", service, err)
		result.Detail = err.Error()
		return result
	}
	if code != fiber.StatusOK {
		c.printf("❌ %s info endpoint failed: %d", service, code)
		result.Detail = fmt.Sprintf("status %d", code)
		return result
	}

	var info struct {
		Service string `json:"service"`
		Message string `json:"message"`
		Version string `json:"version"`
	}
	decodeErr := json.Unmarshal(body, &info)

	name := valueOr(info.Service, valueOr(info.Message, "unknown"))
	c.printf("✅ %s info endpoint works", service)
	if decodeErr != nil {
		c.printf("   (non-JSON body)")
	}
	c.printf("   Service: %s", name)
	if info.Version != "" {
		c.printf("   Version: %s", info.Version)
	}

	result.Passed = true
	result.Detail = name
	return result
}

// Analyze uploads the sample resume to the analyzer.
func (c *Checker) Analyze(jobRole, jobDescription string) CheckResult {
	result := CheckResult{Name: "resume analysis"}

	contentType, payload, err := buildUpload(map[string]string{
		"job_role":        jobRole,
		"job_description": jobDescription,
		"user_id":         c.targets.UserID,
	})
	if err != nil {
		result.Detail = err.Error()
		return result
	}

	code, body, err := c.post(c.targets.Services[ServiceResumeAnalyzer]+"/analyze-resume", contentType, payload)
	if err != nil {
		c.printf("💥 Resume analysis request failed: %v", err)
		result.Detail = err.Error()
		return result
	}
	if code != fiber.StatusOK {
		c.printf("❌ Resume analysis failed: %d", code)
		c.printf("   Response: %s", string(body))
		result.Detail = fmt.Sprintf("status %d", code)
		return result
	}

	var response struct {
		Success   bool   `json:"success"`
		ResumeID  string `json:"resume_id"`
		DBWarning string `json:"db_warning"`
		Analysis  struct {
			OverallScore  float64  `json:"overall_score"`
			JobMatchScore float64  `json:"job_match_score"`
			ATSScore      float64  `json:"ats_score"`
			SkillGaps     []string `json:"skill_gaps"`
			AIProvider    string   `json:"ai_provider"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		c.printf("❌ Resume analysis returned invalid JSON: %v", err)
		result.Detail = err.Error()
		return result
	}
	if !response.Success {
		c.printf("❌ Resume analysis failed - no success flag")
		result.Detail = "success=false"
		return result
	}

	c.printf("✅ Resume analysis test passed")
	c.printf("   AI provider: %s", response.Analysis.AIProvider)
	c.printf("   Scores: overall %.0f, job match %.0f, ATS %.0f",
		response.Analysis.OverallScore, response.Analysis.JobMatchScore, response.Analysis.ATSScore)
	c.printf("   Skill gaps: %s", strings.Join(response.Analysis.SkillGaps, ", "))
	if response.ResumeID != "" {
		c.printf("   Resume ID: %s", response.ResumeID)
	}
	if response.DBWarning != "" {
		c.printf("   ⚠️  %s", response.DBWarning)
	}

	result.Passed = true
	result.Detail = response.Analysis.AIProvider
	return result
}

// ProfileExtraction uploads the sample resume to the profile service.
func (c *Checker) ProfileExtraction() CheckResult {
	result := CheckResult{Name: "profile extraction"}

	contentType, payload, err := buildUpload(map[string]string{"user_id": c.targets.UserID})
	if err != nil {
		result.Detail = err.Error()
		return result
	}

	code, body, err := c.post(c.targets.Services[ServiceProfile]+"/extract-profile", contentType, payload)
	if err != nil {
		c.printf("💥 Profile extraction test failed: %v", err)
		result.Detail = err.Error()
		return result
	}
	if code != fiber.StatusOK {
		c.printf("❌ Profile extraction failed: %d", code)
		c.printf("   Response: %s", string(body))
		result.Detail = fmt.Sprintf("status %d", code)
		return result
	}

	var response struct {
		Success         bool    `json:"success"`
		ConfidenceScore float64 `json:"confidence_score"`
		ExtractedData   struct {
			PersonalInfo struct {
				Name string `json:"name"`
			} `json:"personal_info"`
			Skills     []any `json:"skills"`
			Experience []any `json:"experience"`
		} `json:"extracted_data"`
	}
	if err := json.Unmarshal(body, &response); err != nil || !response.Success {
		c.printf("❌ Profile extraction failed - no success flag")
		result.Detail = "success=false"
		return result
	}

	c.printf("✅ Profile extraction test passed")
	c.printf("   Confidence Score: %.0f%%", response.ConfidenceScore)
	c.printf("   Extracted Name: %s", valueOr(response.ExtractedData.PersonalInfo.Name, "N/A"))
	c.printf("   Skills Count: %d", len(response.ExtractedData.Skills))
	c.printf("   Experience Count: %d", len(response.ExtractedData.Experience))

	result.Passed = true
	return result
}

// ProfileLookup fetches the test user's profile; 404 counts as a pass.
func (c *Checker) ProfileLookup() CheckResult {
	result := CheckResult{Name: "profile lookup"}

	code, _, err := c.get(c.targets.Services[ServiceProfile] + "/profile/" + c.targets.UserID)
	if err != nil {
		c.printf("💥 Profile lookup failed: %v", err)
		result.Detail = err.Error()
		return result
	}

	switch code {
	case fiber.StatusNotFound:
		c.printf("✅ Profile GET test passed (correctly returns 404 for non-existent user)")
	case fiber.StatusOK:
		c.printf("✅ Profile GET test passed (user already exists)")
	default:
		c.printf("❌ Profile GET test failed: %d", code)
		result.Detail = fmt.Sprintf("status %d", code)
		return result
	}

	result.Passed = true
	result.Detail = fmt.Sprintf("status %d", code)
	return result
}

func (c *Checker) get(url string) (int, []byte, error) {
	code, body, errs := fiber.Get(url).Timeout(c.timeout).Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Join(errs...)
	}
	return code, body, nil
}

func (c *Checker) post(url, contentType string, payload []byte) (int, []byte, error) {
	code, body, errs := fiber.Post(url).
		ContentType(contentType).
		Body(payload).
		Timeout(c.timeout).
		Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Join(errs...)
	}
	return code, body, nil
}

// buildUpload encodes the sample resume as a text/plain "resume" part plus
// the given fields.
func buildUpload(fields map[string]string) (string, []byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="resume"; filename="test_resume.txt"`)
	header.Set("Content-Type", "text/plain")

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", nil, fmt.Errorf("creating resume part: %w", err)
	}
	if _, err := io.WriteString(part, sampleResume); err != nil {
		return "", nil, fmt.Errorf("writing resume part: %w", err)
	}

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return "", nil, fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return writer.FormDataContentType(), buf.Bytes(), nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
