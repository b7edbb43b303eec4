package domain

import "time"

// LineResult is the calibration value extracted from one document line.
type LineResult struct {
	Line  int    `json:"line"` // 1-based position in the document
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Report aggregates one full run over a calibration document.
type Report struct {
	DocumentPath string       `json:"document_path"`
	StartedAt    time.Time    `json:"started_at"`
	EndedAt      time.Time    `json:"ended_at"`
	Sum          int          `json:"sum"`
	Lines        []LineResult `json:"lines"`
}
