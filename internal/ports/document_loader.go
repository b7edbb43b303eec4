package ports

// DocumentLoader loads a calibration document from a source (e.g., filesystem)
// as trimmed lines.
type DocumentLoader interface {
	LoadLines(path string) ([]string, error)
}
