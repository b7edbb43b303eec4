// Package fsdocument loads calibration documents from the filesystem.
package fsdocument

import (
	"os"
	"strings"

	"github.com/adriancalavie/aoc-2023-day1/internal/domain"
	"github.com/adriancalavie/aoc-2023-day1/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.DocumentLoader = (*Loader)(nil)

// LoadLines reads the whole document into memory and returns its lines with
// surrounding whitespace trimmed. A trailing line terminator does not produce
// a final empty line; blank lines inside the document are kept as empty
// strings and left for extraction to reject.
func (l *Loader) LoadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fsdocument.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	lines := strings.Split(string(b), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines, nil
}
