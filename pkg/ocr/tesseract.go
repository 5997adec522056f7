// Package ocr wraps the external tools the scanned-PDF pipeline shells
// out to: tesseract for character recognition and pdftoppm for page
// rasterization. Binary paths are deployment configuration; both
// invocations are context-bounded and clean up their temp files before
// returning.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Tesseract recognizes text in page images by invoking the tesseract
// binary. Implements extraction.OCREngine.
type Tesseract struct {
	Path     string
	Language string
	Timeout  time.Duration

	// MaxImageDim downscales oversized page renders before
	// recognition; 0 disables preprocessing.
	MaxImageDim int
}

func NewTesseract(path string, timeout time.Duration) *Tesseract {
	if path == "" {
		path = "tesseract"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Tesseract{Path: path, Language: "eng", Timeout: timeout, MaxImageDim: 2400}
}

// Available reports whether the binary can be resolved.
func (t *Tesseract) Available() bool {
	_, err := exec.LookPath(t.Path)
	return err == nil
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	if t.MaxImageDim > 0 {
		if scaled, err := downscaleImage(image, t.MaxImageDim); err == nil {
			image = scaled
		}
	}

	tmp, err := os.CreateTemp("", "resume-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("creating temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(image); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp image: %w", err)
	}
	tmp.Close()

	ctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	// "stdout" makes tesseract print recognized text instead of
	// writing an output file.
	cmd := exec.CommandContext(ctx, t.Path, tmp.Name(), "stdout", "-l", t.Language)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, stderr.String())
	}
	return out.String(), nil
}
