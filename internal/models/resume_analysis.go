package models

import (
	"time"

	"github.com/google/uuid"
)

type ResumeAnalysis struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string         `gorm:"type:text;not null;index" json:"user_id"`
	Filename        string         `gorm:"type:text" json:"filename"`
	FileSize        int64          `json:"file_size"`
	FileKey         string         `gorm:"type:text" json:"file_key,omitempty"`
	JobRole         string         `gorm:"type:text" json:"job_role"`
	ExtractedText   string         `gorm:"type:text" json:"extracted_text"`
	AIAnalysis      AnalysisResult `gorm:"type:jsonb;serializer:json" json:"ai_analysis"`
	SkillGaps       []string       `gorm:"type:jsonb;serializer:json" json:"skill_gaps"`
	Recommendations []string       `gorm:"type:jsonb;serializer:json" json:"recommendations"`
	AIProvider      string         `gorm:"type:text" json:"ai_provider"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (ResumeAnalysis) TableName() string {
	return "resume_analyses"
}

// ResumeAnalysisData is what the pipeline hands to the persistence layer.
type ResumeAnalysisData struct {
	Filename        string
	FileSize        int64
	FileKey         string
	JobRole         string
	ExtractedText   string
	AIAnalysis      *AnalysisResult
	SkillGaps       []string
	Recommendations []string
}

func NewResumeAnalysisData(doc *UploadedDocument, jobRole, text, fileKey string, analysis *AnalysisResult) *ResumeAnalysisData {
	return &ResumeAnalysisData{
		Filename:        doc.Filename,
		FileSize:        doc.Size(),
		FileKey:         fileKey,
		JobRole:         jobRole,
		ExtractedText:   text,
		AIAnalysis:      analysis,
		SkillGaps:       analysis.SkillGaps,
		Recommendations: analysis.Recommendations,
	}
}
