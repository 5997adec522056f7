package domain

import "errors"

// Extraction and input faults are converted to these sentinels at the
// component boundaries; raw parser/IO errors never cross into the
// matcher or report layers.
var (
	// ErrUnsupportedFormat - document kind is not PDF or DOCX.
	ErrUnsupportedFormat = errors.New("unsupported document format, please upload a PDF or DOCX file")

	// ErrExtractionFailed - both direct extraction and the OCR fallback
	// produced too little text to analyze. Distinct from a low score.
	ErrExtractionFailed = errors.New("could not extract readable text from the resume")

	// ErrOCREngine - the OCR invocation itself failed. Recovered inside
	// the extractor by falling back to direct-extraction text.
	ErrOCREngine = errors.New("ocr engine failed")

	// ErrMalformedInput - missing resume file or job description.
	ErrMalformedInput = errors.New("both a resume file and a job description are required")
)
