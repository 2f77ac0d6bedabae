package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/testutil"
)

func TestTextExtractor_Supports(t *testing.T) {
	extractor := NewTextExtractor()

	for _, mediaType := range []string{
		models.MediaTypePDF,
		models.MediaTypeDOCX,
		models.MediaTypeMSWord,
		models.MediaTypePlainText,
	} {
		assert.True(t, extractor.Supports(mediaType), mediaType)
	}

	assert.False(t, extractor.Supports("image/png"))
	assert.False(t, extractor.Supports(models.MediaTypeGeneric))
}

func TestTextExtractor_PDF(t *testing.T) {
	doc := &models.UploadedDocument{
		Filename:  "resume.pdf",
		MediaType: models.MediaTypePDF,
		Content:   testutil.BuildPDF("Jane Smith", "Python Developer"),
	}

	text, err := NewTextExtractor().Extract(doc)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Smith")
	assert.Contains(t, text, "Python Developer")
}

func TestTextExtractor_PDFWithoutText(t *testing.T) {
	doc := &models.UploadedDocument{
		Filename:  "scan.pdf",
		MediaType: models.MediaTypePDF,
		Content:   testutil.BuildPDF(),
	}

	text, err := NewTextExtractor().Extract(doc)
	require.NoError(t, err)
	assert.False(t, models.HasText(text))
}

func TestTextExtractor_CorruptPDF(t *testing.T) {
	doc := &models.UploadedDocument{
		Filename:  "broken.pdf",
		MediaType: models.MediaTypePDF,
		Content:   []byte("this is not a pdf"),
	}

	_, err := NewTextExtractor().Extract(doc)
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestTextExtractor_DOCX(t *testing.T) {
	doc := &models.UploadedDocument{
		Filename:  "resume.docx",
		MediaType: models.MediaTypeDOCX,
		Content:   testutil.BuildDOCX("Jane Smith", "Skills: Go & Kubernetes"),
	}

	text, err := NewTextExtractor().Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith\nSkills: Go & Kubernetes\n", text)
}

func TestTextExtractor_CorruptDOCX(t *testing.T) {
	doc := &models.UploadedDocument{
		Filename:  "broken.docx",
		MediaType: models.MediaTypeDOCX,
		Content:   []byte("PK not really a zip"),
	}

	_, err := NewTextExtractor().Extract(doc)
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestTextExtractor_PlainText(t *testing.T) {
	doc := &models.UploadedDocument{
		Filename:  "resume.txt",
		MediaType: models.MediaTypePlainText,
		Content:   []byte("Skills: Python, React, AWS"),
	}

	text, err := NewTextExtractor().Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "Skills: Python, React, AWS", text)

	doc.Content = []byte{0xff, 0xfe, 0x00}
	_, err = NewTextExtractor().Extract(doc)
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestTextExtractor_UnsupportedType(t *testing.T) {
	doc := &models.UploadedDocument{
		Filename:  "photo.png",
		MediaType: "image/png",
		Content:   []byte{0x89, 'P', 'N', 'G'},
	}

	_, err := NewTextExtractor().Extract(doc)
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestParagraphsFromDocumentXML(t *testing.T) {
	xml := `<w:document xmlns:w="w"><w:body>` +
		`<w:p><w:r><w:t>Name</w:t><w:tab/><w:t>Jane</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := paragraphsFromDocumentXML(xml)
	require.NoError(t, err)
	assert.Equal(t, "Name\tJane\nLine one\nLine two\n", text)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n   \n b \n"))
	assert.Equal(t, "", CleanText(" \n \n"))
}
