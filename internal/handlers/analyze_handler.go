package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	uploads   services.UploadReader
	pipeline  services.AnalysisPipeline
	validator *validator.Validate
}

func NewAnalyzeHandler(uploads services.UploadReader, pipeline services.AnalysisPipeline) *AnalyzeHandler {
	validate := validator.New()
	// Report fields by their form names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &AnalyzeHandler{
		uploads:   uploads,
		pipeline:  pipeline,
		validator: validate,
	}
}

// HandleAnalyze handles POST /analyze-resume
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var form models.AnalyzeForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	form.JobRole = strings.TrimSpace(form.JobRole)
	form.UserID = strings.TrimSpace(form.UserID)

	if err := h.validator.Struct(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No resume file uploaded")
	}

	doc, err := h.uploads.Read(file)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error: "+err.Error())
	}

	response, err := h.pipeline.AnalyzeResume(c.UserContext(), doc, form)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedMediaType):
			return fiber.NewError(fiber.StatusBadRequest, "Unsupported file format. Please upload PDF, DOC, DOCX or TXT files.")
		case errors.Is(err, services.ErrUnreadableDocument), errors.Is(err, services.ErrEmptyDocument):
			return fiber.NewError(fiber.StatusBadRequest, "Could not extract text from the uploaded file")
		default:
			log.Errorf("❌ Resume analysis failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error: "+err.Error())
		}
	}

	return c.JSON(response)
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		if ve.Tag() == "required" {
			return fmt.Sprintf("%s is required", ve.Field())
		}
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
