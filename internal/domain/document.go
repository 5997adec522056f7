package domain

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DocumentKind identifies the declared format of an uploaded resume.
type DocumentKind string

const (
	KindPDF     DocumentKind = "pdf"
	KindDOCX    DocumentKind = "docx"
	KindUnknown DocumentKind = "unknown"
)

// Document is a per-request resume payload: raw bytes plus the kind
// resolved once at the entry point. It is discarded after extraction.
type Document struct {
	Filename string
	Kind     DocumentKind
	Data     []byte
}

// NewDocument builds a Document from an uploaded file, resolving the
// kind from the filename extension with a content sniff as tie-breaker.
func NewDocument(filename string, data []byte) Document {
	return Document{
		Filename: filename,
		Kind:     resolveKind(filename, data),
		Data:     data,
	}
}

// NewDocumentFromFile reads a document from disk, inferring the kind
// from the path. Used by local tooling and tests.
func NewDocumentFromFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(filepath.Base(path), data), nil
}

func resolveKind(filename string, data []byte) DocumentKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	}

	// No usable extension, fall back to sniffing the payload.
	switch http.DetectContentType(data) {
	case "application/pdf":
		return KindPDF
	case "application/zip": // docx is a zip container
		return KindDOCX
	}
	return KindUnknown
}
