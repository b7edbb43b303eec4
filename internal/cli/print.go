package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/adriancalavie/aoc-2023-day1/internal/domain"
)

func printReport(w io.Writer, report domain.Report, artifactID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include artifactID (optional) as a wrapper to avoid changing the domain model.
		payload := map[string]any{
			"artifact_id": artifactID,
			"report":      report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprintf(w, "Sum is %d\n", report.Sum)
		if artifactID != "" {
			fmt.Fprintf(w, "Saved run: %s\n", artifactID)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
