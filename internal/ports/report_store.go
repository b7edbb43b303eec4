package ports

import "github.com/adriancalavie/aoc-2023-day1/internal/domain"

// ReportStore persists run reports and returns an artifact ID.
type ReportStore interface {
	SaveReport(report domain.Report) (string, error)
}
