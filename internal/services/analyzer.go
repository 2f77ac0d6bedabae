package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/repositories"
)

const extractedTextPreviewLength = 1000

// AnalysisPipeline runs one uploaded resume through extraction, analysis and
// the optional side effects.
type AnalysisPipeline interface {
	AnalyzeResume(ctx context.Context, doc *models.UploadedDocument, form models.AnalyzeForm) (*models.AnalyzeResponse, error)
}

type analysisPipeline struct {
	extractor TextExtractor
	analyzer  ResumeAnalyzer
	repo      repositories.ResumeAnalysisRepository
	archive   ResumeArchive
	index     ResumeIndex
}

func NewAnalysisPipeline(
	extractor TextExtractor,
	analyzer ResumeAnalyzer,
	repo repositories.ResumeAnalysisRepository,
	archive ResumeArchive,
	index ResumeIndex,
) AnalysisPipeline {
	return &analysisPipeline{
		extractor: extractor,
		analyzer:  analyzer,
		repo:      repo,
		archive:   archive,
		index:     index,
	}
}

// AnalyzeResume returns ErrUnsupportedMediaType, ErrUnreadableDocument or
// ErrEmptyDocument before any provider is called. Once text is available it
// always produces a response; persistence problems surface as db_warning.
func (p *analysisPipeline) AnalyzeResume(ctx context.Context, doc *models.UploadedDocument, form models.AnalyzeForm) (*models.AnalyzeResponse, error) {
	if !p.extractor.Supports(doc.MediaType) {
		log.Warnf("⚠️  Rejected %s: unsupported media type %s", doc.Filename, doc.MediaType)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, doc.MediaType)
	}

	log.Infof("📄 Extracting text from %s (%s, %d bytes)", doc.Filename, doc.MediaType, doc.Size())
	text, err := p.extractor.Extract(doc)
	if err != nil {
		if errors.Is(err, ErrUnreadableDocument) {
			log.Warnf("⚠️  Could not decode %s: %v", doc.Filename, err)
		}
		return nil, err
	}

	// The prompt gets the cleaned text; the preview and stored row keep the
	// document's own layout.
	cleaned := CleanText(text)
	if !models.HasText(cleaned) {
		log.Warnf("⚠️  No text extracted from %s", doc.Filename)
		return nil, ErrEmptyDocument
	}

	analysis := p.analyzer.Analyze(ctx, models.AnalysisRequest{
		ResumeText:     cleaned,
		JobRole:        form.JobRole,
		JobDescription: form.JobDescription,
	})

	response := &models.AnalyzeResponse{
		Success:          true,
		Filename:         doc.Filename,
		FileSize:         doc.Size(),
		UploadDate:       time.Now().UTC(),
		JobRole:          form.JobRole,
		JobDescription:   form.JobDescription,
		ExtractedText:    models.TruncateRunes(text, extractedTextPreviewLength),
		Analysis:         analysis,
		ProcessingStatus: models.ProcessingCompleted,
	}

	if form.UserID != "" {
		p.persist(ctx, form, doc, text, response)
	}

	return response, nil
}

func (p *analysisPipeline) persist(ctx context.Context, form models.AnalyzeForm, doc *models.UploadedDocument, text string, response *models.AnalyzeResponse) {
	if p.archive.Enabled() {
		fileKey, err := p.archive.Store(ctx, form.UserID, doc)
		if err != nil {
			log.Warnf("⚠️  Failed to archive %s: %v", doc.Filename, err)
		} else {
			response.FileKey = fileKey
		}
	}

	log.Info("💾 Saving resume analysis...")
	data := models.NewResumeAnalysisData(doc, form.JobRole, text, response.FileKey, response.Analysis)
	resumeID, err := p.repo.SaveResumeAnalysis(ctx, form.UserID, data)
	if err != nil {
		log.Errorf("❌ Failed to save resume analysis for user %s: %v", form.UserID, err)
		response.DBWarning = models.DBWarningSaveFailed
		return
	}

	response.ResumeID = resumeID
	log.Infow("✅ Resume analysis saved", "resume_id", resumeID, "user_id", form.UserID, "ai_provider", response.Analysis.AIProvider)

	if !p.index.Enabled() {
		return
	}

	chunks, err := p.index.IndexResume(ctx, IndexedResume{
		ResumeID: resumeID,
		UserID:   form.UserID,
		JobRole:  form.JobRole,
		Text:     text,
	})
	if err != nil {
		log.Warnf("⚠️  Failed to index resume %s: %v", resumeID, err)
		return
	}

	log.Infof("🔍 Indexed resume %s (%d chunks)", resumeID, chunks)
}
