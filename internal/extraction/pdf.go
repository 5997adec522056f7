package extraction

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/pkg/logger"
)

// extractPDFTextLayer concatenates the text layer of every page.
// Returns empty text on any parse fault; the OCR fallback decides what
// to do next. The pdf library panics on some malformed inputs, so the
// whole pass runs under recover.
func extractPDFTextLayer(doc domain.Document) (text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Warn("PDF text extraction panicked", "file", doc.Filename, "panic", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		logger.Log.Warn("failed to open PDF", "file", doc.Filename, "error", err)
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			logger.Log.Warn("failed to read PDF page", "file", doc.Filename, "page", i, "error", err)
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString(" ")
	}
	return sb.String()
}
