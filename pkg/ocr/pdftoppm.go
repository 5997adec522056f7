package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"
)

// Pdftoppm renders PDF pages to PNG images via the poppler pdftoppm
// binary. Implements extraction.Rasterizer.
type Pdftoppm struct {
	Path    string
	DPI     int
	Timeout time.Duration
}

func NewPdftoppm(path string, timeout time.Duration) *Pdftoppm {
	if path == "" {
		path = "pdftoppm"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Pdftoppm{Path: path, DPI: 200, Timeout: timeout}
}

func (p *Pdftoppm) Available() bool {
	_, err := exec.LookPath(p.Path)
	return err == nil
}

func (p *Pdftoppm) RenderPages(ctx context.Context, pdf []byte) ([][]byte, error) {
	dir, err := os.MkdirTemp("", "resume-raster-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(input, pdf, 0o600); err != nil {
		return nil, fmt.Errorf("writing temp PDF: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Path, "-png", "-r", fmt.Sprint(p.DPI), input, filepath.Join(dir, "page"))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, stderr.String())
	}

	matches, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil {
		return nil, err
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(matches)

	pages := make([][]byte, 0, len(matches))
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			return nil, fmt.Errorf("reading rendered page: %w", err)
		}
		pages = append(pages, data)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages")
	}
	return pages, nil
}
