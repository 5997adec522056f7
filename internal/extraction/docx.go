package extraction

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/pkg/logger"
)

var (
	paragraphEndRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// extractDOCX joins all paragraph texts with single spaces. Parse
// faults yield empty text, logged, never propagated.
func extractDOCX(doc domain.Document) string {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		logger.Log.Warn("failed to parse DOCX", "file", doc.Filename, "error", err)
		return ""
	}
	defer reader.Close()

	// GetContent returns the raw document.xml; paragraph closes become
	// separators and the remaining markup is stripped.
	content := reader.Editable().GetContent()
	content = paragraphEndRe.ReplaceAllString(content, " ")
	content = xmlTagRe.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(content, " "))
}
