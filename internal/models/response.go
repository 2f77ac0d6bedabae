package models

import "time"

const ProcessingCompleted = "completed"

const DBWarningSaveFailed = "Analysis completed but failed to save to database"

// AnalyzeForm holds the non-file fields of POST /analyze-resume.
type AnalyzeForm struct {
	JobRole        string `form:"job_role" validate:"required,max=200"`
	JobDescription string `form:"job_description" validate:"max=20000"`
	UserID         string `form:"user_id" validate:"omitempty,max=128"`
}

type AnalyzeResponse struct {
	Success          bool            `json:"success"`
	Filename         string          `json:"filename"`
	FileSize         int64           `json:"file_size"`
	UploadDate       time.Time       `json:"upload_date"`
	JobRole          string          `json:"job_role"`
	JobDescription   string          `json:"job_description"`
	ExtractedText    string          `json:"extracted_text"`
	Analysis         *AnalysisResult `json:"analysis"`
	ProcessingStatus string          `json:"processing_status"`
	ResumeID         string          `json:"resume_id,omitempty"`
	FileKey          string          `json:"file_key,omitempty"`
	DBWarning        string          `json:"db_warning,omitempty"`
}

type DatabaseHealth struct {
	Status string `json:"status"`
	Driver string `json:"driver"`
	Error  string `json:"error,omitempty"`
}

type ProviderAvailability struct {
	GroqAvailable   bool `json:"groq_available"`
	GeminiAvailable bool `json:"gemini_available"`
	ClaudeAvailable bool `json:"claude_available"`
}

type IndexStatus struct {
	Enabled bool `json:"enabled"`
}

type HealthReport struct {
	Status      string               `json:"status"`
	Service     string               `json:"service"`
	Database    DatabaseHealth       `json:"database"`
	AIProviders ProviderAvailability `json:"ai_providers"`
	ResumeIndex IndexStatus          `json:"resume_index"`
	Timestamp   time.Time            `json:"timestamp"`
}

type ServiceInfo struct {
	Service     string   `json:"service"`
	Version     string   `json:"version"`
	Database    string   `json:"database"`
	AIProviders []string `json:"ai_providers"`
	Status      string   `json:"status"`
}

type SearchHit struct {
	ResumeID   string  `json:"resume_id"`
	UserID     string  `json:"user_id"`
	JobRole    string  `json:"job_role"`
	ChunkIndex int64   `json:"chunk_index"`
	Score      float32 `json:"score"`
	Text       string  `json:"text"`
}

type SearchResponse struct {
	Query   string      `json:"query"`
	Results []SearchHit `json:"results"`
}
