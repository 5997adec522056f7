package domain_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-analyzer/internal/domain"
)

func TestNewDocumentKindResolution(t *testing.T) {
	var zipped bytes.Buffer
	zw := zip.NewWriter(&zipped)
	_, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	cases := []struct {
		name     string
		filename string
		data     []byte
		want     domain.DocumentKind
	}{
		{"PDF extension", "resume.pdf", []byte("irrelevant"), domain.KindPDF},
		{"DOCX extension", "Resume.DOCX", []byte("irrelevant"), domain.KindDOCX},
		{"No extension, PDF magic bytes", "resume", []byte("%PDF-1.4 content"), domain.KindPDF},
		{"No extension, zip container", "resume", zipped.Bytes(), domain.KindDOCX},
		{"Unknown extension and content", "resume.txt", []byte("plain text"), domain.KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := domain.NewDocument(tc.filename, tc.data)
			assert.Equal(t, tc.want, doc.Kind)
			assert.Equal(t, tc.filename, doc.Filename)
		})
	}
}
