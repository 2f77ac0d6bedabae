package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/repositories"
	"studymate/resume-analyzer/internal/services"
)

const pageSize = 50

type summary struct {
	succeeded int
	failed    int
}

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred closes always happen.
func run() int {
	log.Info("🚀 Starting resume index backfill...")

	cfg := config.Load()
	ctx := context.Background()

	if !cfg.IndexEnabled() {
		log.Error("❌ Resume index is not configured (QDRANT_URL and GEMINI_API_KEY are required)")
		return 1
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Errorf("❌ Failed to initialize database: %v", err)
		return 1
	}
	if db == nil {
		log.Error("❌ Backfill needs a database, DB_DRIVER is none")
		return 1
	}

	repo := repositories.NewResumeAnalysisRepository(db, cfg.Database.Driver)
	defer func() {
		if err := repo.Close(); err != nil {
			log.Warnf("⚠️  Failed to close database: %v", err)
		}
	}()

	geminiService, err := services.NewGeminiService(ctx, cfg.Providers.Gemini)
	if err != nil {
		log.Errorf("❌ Failed to initialize Gemini: %v", err)
		return 1
	}

	store, err := services.NewQdrantStore(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		log.Errorf("❌ Failed to initialize Qdrant: %v", err)
		return 1
	}

	index, err := services.NewResumeIndex(ctx, store, geminiService, services.NewTextChunker())
	if err != nil {
		_ = store.Close()
		log.Errorf("❌ Failed to initialize resume index: %v", err)
		return 1
	}
	defer func() {
		if err := index.Close(); err != nil {
			log.Warnf("⚠️  Failed to close resume index: %v", err)
		}
	}()

	result, err := backfill(ctx, repo, index)

	log.Info(strings.Repeat("=", 60))
	log.Info("📊 Backfill Summary:")
	log.Infof("   ✅ Successful: %d resumes", result.succeeded)
	log.Infof("   ❌ Failed: %d resumes", result.failed)
	log.Info(strings.Repeat("=", 60))

	if err != nil {
		log.Errorf("❌ Backfill aborted: %v", err)
		return 1
	}
	if result.failed > 0 {
		log.Warn("⚠️  Some resumes failed to index. Please check the logs above.")
		return 1
	}

	log.Info("✅ All resumes indexed successfully!")
	return 0
}

// backfill indexes every persisted analysis page by page. A failing resume is
// counted and skipped; a failing page read stops the run.
func backfill(ctx context.Context, repo repositories.ResumeAnalysisRepository, index services.ResumeIndex) (summary, error) {
	var result summary
	afterID := ""

	for {
		analyses, err := repo.ListForIndexing(ctx, afterID, pageSize)
		if err != nil {
			return result, fmt.Errorf("failed to list resume analyses: %w", err)
		}
		if len(analyses) == 0 {
			return result, nil
		}

		for _, analysis := range analyses {
			resumeID := analysis.ID.String()
			log.Infof("📄 Indexing %s (%s, user %s)", resumeID, analysis.Filename, analysis.UserID)

			chunks, err := index.IndexResume(ctx, services.IndexedResume{
				ResumeID: resumeID,
				UserID:   analysis.UserID,
				JobRole:  analysis.JobRole,
				Text:     analysis.ExtractedText,
			})
			if err != nil {
				log.Errorf("   ❌ Failed to index %s: %v", resumeID, err)
				result.failed++
				continue
			}

			log.Infof("   ✅ Stored %d chunks", chunks)
			result.succeeded++
		}

		afterID = analyses[len(analyses)-1].ID.String()
	}
}
