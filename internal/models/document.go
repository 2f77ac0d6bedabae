package models

import (
	"path/filepath"
	"strings"
)

const (
	MediaTypePDF       = "application/pdf"
	MediaTypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeMSWord    = "application/msword"
	MediaTypePlainText = "text/plain"
	MediaTypeGeneric   = "application/octet-stream"
)

// UploadedDocument is the raw upload of a single request. It is discarded once
// its text has been extracted.
type UploadedDocument struct {
	Filename  string
	MediaType string
	Content   []byte
}

func (d *UploadedDocument) Size() int64 {
	return int64(len(d.Content))
}

// Extension returns the lower-cased file extension, falling back to one
// derived from the media type when the filename has none.
func (d *UploadedDocument) Extension() string {
	if ext := strings.ToLower(filepath.Ext(d.Filename)); ext != "" {
		return ext
	}

	switch d.MediaType {
	case MediaTypePDF:
		return ".pdf"
	case MediaTypeDOCX:
		return ".docx"
	case MediaTypeMSWord:
		return ".doc"
	case MediaTypePlainText:
		return ".txt"
	default:
		return ".bin"
	}
}
