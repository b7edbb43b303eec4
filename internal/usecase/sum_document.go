package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/adriancalavie/aoc-2023-day1/internal/domain"
	"github.com/adriancalavie/aoc-2023-day1/internal/ports"
)

// SumDocument loads a calibration document, extracts every line's value and
// accumulates the total. The store is optional; when present the finished
// report is persisted as a run artifact.
type SumDocument struct {
	docs  ports.DocumentLoader
	store ports.ReportStore
}

func NewSumDocument(dl ports.DocumentLoader, store ports.ReportStore) *SumDocument {
	return &SumDocument{
		docs:  dl,
		store: store,
	}
}

// Execute processes the document at path. The first line that yields no digit
// aborts the whole run: there is no per-line skipping and no partial sum.
// Returns the report and, when a store is configured, the saved artifact ID.
func (uc *SumDocument) Execute(ctx context.Context, path string) (domain.Report, string, error) {
	lines, err := uc.docs.LoadLines(path)
	if err != nil {
		return domain.Report{}, "", err
	}

	report := domain.Report{
		DocumentPath: path,
		StartedAt:    time.Now(),
		Lines:        make([]domain.LineResult, 0, len(lines)),
	}

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return domain.Report{}, "", err
		}

		value, err := domain.Calibration(line)
		if err != nil {
			return domain.Report{}, "", fmt.Errorf("line %d: %w", i+1, err)
		}

		report.Sum += value
		report.Lines = append(report.Lines, domain.LineResult{
			Line:  i + 1,
			Text:  line,
			Value: value,
		})
	}

	report.EndedAt = time.Now()

	var artifactID string
	if uc.store != nil {
		id, err := uc.store.SaveReport(report)
		if err != nil {
			return report, "", err
		}
		artifactID = id
	}

	return report, artifactID, nil
}
