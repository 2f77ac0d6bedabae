package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/testutil"
)

func TestResolveMediaType(t *testing.T) {
	pdf := testutil.BuildPDF("hello")

	tests := []struct {
		name     string
		declared string
		content  []byte
		want     string
	}{
		{name: "declared wins", declared: models.MediaTypeDOCX, content: pdf, want: models.MediaTypeDOCX},
		{name: "parameters stripped", declared: "Text/Plain; charset=utf-8", content: []byte("hi"), want: models.MediaTypePlainText},
		{name: "generic sniffs pdf", declared: models.MediaTypeGeneric, content: pdf, want: models.MediaTypePDF},
		{name: "missing sniffs text", declared: "", content: []byte("Jane Smith\nEngineer\n"), want: models.MediaTypePlainText},
		{name: "missing sniffs docx", declared: "", content: testutil.BuildDOCX("Jane"), want: models.MediaTypeDOCX},
		{name: "generic stays generic", declared: models.MediaTypeGeneric, content: []byte{0x00, 0x01, 0x02, 0x03}, want: models.MediaTypeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMediaType(tt.declared, tt.content))
		})
	}
}

func TestUploadReader_Read(t *testing.T) {
	header := multipartFile(t, "resume.txt", "text/plain", []byte("Skills: Go"))

	doc, err := NewUploadReader(1024).Read(header)
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, models.MediaTypePlainText, doc.MediaType)
	assert.Equal(t, []byte("Skills: Go"), doc.Content)
}

func TestUploadReader_TooLarge(t *testing.T) {
	header := multipartFile(t, "resume.txt", "text/plain", bytes.Repeat([]byte("a"), 64))

	_, err := NewUploadReader(10).Read(header)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func multipartFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["resume"][0]
}
