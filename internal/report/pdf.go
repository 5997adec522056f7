package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"go-resume-analyzer/internal/domain"
)

const (
	pdfLinesPerPage = 52
	pdfLineWidth    = 90
	pdfLineHeight   = 5.0
)

// RenderPDF renders the report as a downloadable document: monospace
// layout, fixed line count per page.
func RenderPDF(r *domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Courier", "", 10)

	lines := reportLines(r)
	for i, line := range lines {
		if i%pdfLinesPerPage == 0 {
			pdf.AddPage()
		}
		pdf.CellFormat(0, pdfLineHeight, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// reportLines flattens the report into wrapped monospace lines.
func reportLines(r *domain.Report) []string {
	var lines []string
	add := func(text string) {
		lines = append(lines, wrapLine(text, pdfLineWidth)...)
	}

	add("RESUME ANALYSIS REPORT")
	add(strings.Repeat("=", 40))
	add("")
	add(fmt.Sprintf("Match Score: %.2f / 100", r.Score))
	add(fmt.Sprintf("Detected Location: %s", r.DetectedLocation))
	add("")
	add(fmt.Sprintf("Matched Keywords (%d): %s", len(r.MatchedKeywords), strings.Join(r.MatchedKeywords, ", ")))
	add("")
	add(fmt.Sprintf("Missing Keywords (%d): %s", len(r.MissingKeywords), strings.Join(r.MissingKeywords, ", ")))
	add("")
	add(fmt.Sprintf("Detected Skills: %s", strings.Join(r.DetectedSkills, ", ")))
	add("")
	add("IMPROVEMENT SUGGESTIONS")
	add(strings.Repeat("-", 40))
	for _, tip := range r.Tips {
		add("- " + tip)
	}
	add("")
	add("JOB RECOMMENDATIONS")
	add(strings.Repeat("-", 40))
	for _, rec := range r.Recommendations {
		add(fmt.Sprintf("%-30s %-12s %6.2f", rec.Title, rec.Location, rec.Score))
		if len(rec.MatchedKeywords) > 0 {
			add("  matched: " + strings.Join(rec.MatchedKeywords, ", "))
		}
	}
	return lines
}

func wrapLine(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var out []string
	words := strings.Fields(text)
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
