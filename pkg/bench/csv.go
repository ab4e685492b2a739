package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{"method", "file_size", "time"}

// WriteCSV writes one row per sample with the time in nanoseconds.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range r.Samples() {
		row := []string{s.Method, s.Param, strconv.FormatInt(s.Duration.Nanoseconds(), 10)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteResults writes the CSV to <dir>/<name>.csv, creating dir if
// needed, and returns the file path.
func (r *Result) WriteResults(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	path := filepath.Join(dir, r.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create results file: %w", err)
	}

	if err := r.WriteCSV(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write results: %w", err)
	}
	return path, f.Close()
}
