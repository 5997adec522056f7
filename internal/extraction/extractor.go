// Package extraction turns resume documents into plain text. Typed
// PDFs go through the text layer; scanned PDFs fall back to page
// rasterization plus OCR; DOCX files are read paragraph by paragraph.
// Parser and IO faults never escape this package as raw errors.
package extraction

import (
	"context"
	"strings"

	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/pkg/logger"
)

// OCREngine recognizes text in a rendered page image. Injected as a
// collaborator so the external tool dependency stays swappable.
type OCREngine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Rasterizer renders each page of a PDF to an image.
type Rasterizer interface {
	RenderPages(ctx context.Context, pdf []byte) ([][]byte, error)
}

// Options gate the OCR fallback.
type Options struct {
	// MinDirectTextLen is the direct-extraction length below which a
	// PDF is treated as scanned and routed through OCR.
	MinDirectTextLen int
	// OCRAlways skips the threshold gate and always runs OCR on PDFs,
	// trading cost for maximum recall.
	OCRAlways bool
}

func DefaultOptions() Options {
	return Options{MinDirectTextLen: 50}
}

type Extractor struct {
	ocr    OCREngine
	raster Rasterizer
	opts   Options
}

func New(ocr OCREngine, raster Rasterizer, opts Options) *Extractor {
	if opts.MinDirectTextLen <= 0 {
		opts.MinDirectTextLen = DefaultOptions().MinDirectTextLen
	}
	return &Extractor{ocr: ocr, raster: raster, opts: opts}
}

// Extract returns the plain text of doc. An unsupported kind yields
// domain.ErrUnsupportedFormat; every other fault is logged and
// converted to empty text so the caller can report extraction failure
// distinctly from a low score.
func (e *Extractor) Extract(ctx context.Context, doc domain.Document) (string, error) {
	switch doc.Kind {
	case domain.KindPDF:
		return e.extractPDF(ctx, doc), nil
	case domain.KindDOCX:
		return extractDOCX(doc), nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

func (e *Extractor) extractPDF(ctx context.Context, doc domain.Document) string {
	direct := extractPDFTextLayer(doc)

	if !e.opts.OCRAlways && len(strings.TrimSpace(direct)) >= e.opts.MinDirectTextLen {
		return strings.TrimSpace(direct)
	}

	// Insufficient text layer: likely a scanned PDF. OCR failures are
	// recovered by keeping whatever direct text exists.
	ocrText, err := e.runOCR(ctx, doc.Data)
	if err != nil {
		logger.Log.Warn("OCR fallback failed, keeping direct text",
			"file", doc.Filename, "error", err)
		return strings.TrimSpace(direct)
	}
	return strings.TrimSpace(direct + " " + ocrText)
}

func (e *Extractor) runOCR(ctx context.Context, pdfData []byte) (string, error) {
	if e.ocr == nil || e.raster == nil {
		return "", domain.ErrOCREngine
	}

	pages, err := e.raster.RenderPages(ctx, pdfData)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	recognized := 0
	for i, page := range pages {
		text, err := e.ocr.Recognize(ctx, page)
		if err != nil {
			logger.Log.Warn("OCR failed on page", "page", i+1, "error", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString(" ")
		recognized++
	}
	if recognized == 0 && len(pages) > 0 {
		return "", domain.ErrOCREngine
	}
	return sb.String(), nil
}
