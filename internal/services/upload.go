package services

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"studymate/resume-analyzer/internal/models"
)

var ErrFileTooLarge = errors.New("uploaded file is too large")

type UploadReader interface {
	Read(file *multipart.FileHeader) (*models.UploadedDocument, error)
}

type uploadReader struct {
	maxFileSize int64
}

func NewUploadReader(maxFileSize int64) UploadReader {
	return &uploadReader{
		maxFileSize: maxFileSize,
	}
}

func (u *uploadReader) Read(file *multipart.FileHeader) (*models.UploadedDocument, error) {
	if u.maxFileSize > 0 && file.Size > u.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, file.Size, u.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &models.UploadedDocument{
		Filename:  file.Filename,
		MediaType: ResolveMediaType(file.Header.Get("Content-Type"), content),
		Content:   content,
	}, nil
}

// ResolveMediaType trusts the declared part type unless it is missing or
// generic, in which case the content is sniffed.
func ResolveMediaType(declared string, content []byte) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			declared = strings.ToLower(mediaType)
		}
	}

	if declared != "" && declared != models.MediaTypeGeneric {
		return declared
	}

	detected := mimetype.Detect(content)
	for _, known := range []string{
		models.MediaTypePDF,
		models.MediaTypeDOCX,
		models.MediaTypeMSWord,
		models.MediaTypePlainText,
	} {
		if detected.Is(known) {
			return known
		}
	}

	if declared != "" {
		return declared
	}
	return detected.String()
}
