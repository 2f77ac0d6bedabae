package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2/log"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"studymate/resume-analyzer/internal/models"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported file format")
	ErrUnreadableDocument   = errors.New("document could not be decoded")
	ErrEmptyDocument        = errors.New("no text content found in document")
)

type TextExtractor interface {
	Supports(mediaType string) bool
	Extract(doc *models.UploadedDocument) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

func (e *textExtractor) Supports(mediaType string) bool {
	switch mediaType {
	case models.MediaTypePDF, models.MediaTypeDOCX, models.MediaTypeMSWord, models.MediaTypePlainText:
		return true
	default:
		return false
	}
}

// Extract returns the document text. Decode failures are reported as
// ErrUnreadableDocument; emptiness is left for the caller to judge.
func (e *textExtractor) Extract(doc *models.UploadedDocument) (string, error) {
	switch doc.MediaType {
	case models.MediaTypePDF:
		return extractPDFText(doc.Content)
	case models.MediaTypeDOCX, models.MediaTypeMSWord:
		return extractDocxText(doc.Content)
	case models.MediaTypePlainText:
		return extractPlainText(doc.Content)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, doc.MediaType)
	}
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: pdf parser panic: %v", ErrUnreadableDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrUnreadableDocument, err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Warnf("⚠️  Skipping unreadable PDF page %d: %v", pageIndex, err)
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse docx: %v", ErrUnreadableDocument, err)
	}
	defer doc.Close()

	text, err := paragraphsFromDocumentXML(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: failed to read docx body: %v", ErrUnreadableDocument, err)
	}

	return text, nil
}

// paragraphsFromDocumentXML walks WordprocessingML and writes every w:p
// paragraph on its own line.
func paragraphsFromDocumentXML(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		textBuilder strings.Builder
		inText      bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				textBuilder.WriteString("\t")
			case "br", "cr":
				textBuilder.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(t)
			}
		}
	}

	return textBuilder.String(), nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnreadableDocument)
	}
	return string(data), nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
