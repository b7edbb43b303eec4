package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/adriancalavie/aoc-2023-day1/internal/domain"
)

func sampleReport() domain.Report {
	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	return domain.Report{
		DocumentPath: "res/data.txt",
		StartedAt:    start,
		EndedAt:      start.Add(3 * time.Millisecond),
		Sum:          281,
		Lines: []domain.LineResult{
			{Line: 1, Text: "two1nine", Value: 29},
			{Line: 2, Text: "eightwothree", Value: 83},
		},
	}
}

// --- printReport ---

func TestPrintReport_PrettyIsExactContractLine(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "Sum is 281\n" {
		t.Fatalf("output = %q, want %q", got, "Sum is 281\n")
	}
}

func TestPrintReport_EmptyFormatDefaultsToPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "Sum is 281\n" {
		t.Fatalf("output = %q, want %q", got, "Sum is 281\n")
	}
}

func TestPrintReport_PrettyMentionsSavedArtifact(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "20260203T101112Z_data", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Sum is 281\n") {
		t.Fatalf("contract line missing: %q", out)
	}
	if !strings.Contains(out, "20260203T101112Z_data") {
		t.Fatalf("artifact id missing: %q", out)
	}
}

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "run-1", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		ArtifactID string        `json:"artifact_id"`
		Report     domain.Report `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.ArtifactID != "run-1" {
		t.Fatalf("artifact_id = %q", payload.ArtifactID)
	}
	if payload.Report.Sum != 281 || len(payload.Report.Lines) != 2 {
		t.Fatalf("unexpected report payload: %+v", payload.Report)
	}
}

func TestPrintReport_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, sampleReport(), "", "xml")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// --- version ---

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "aoc-2023-day1") {
		t.Fatalf("unexpected version output: %q", buf.String())
	}
}
