package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oncorisk/coxpredict/internal/dataset"
	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// ResultFileName is the fixed name of the prediction output file inside
// the configured output directory.
const ResultFileName = "predictions_with_risk.csv"

// Write serializes the augmented table as CSV under outputDir, creating
// the directory if absent, and returns the file path.
func Write(t *dataset.Table, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", apperrors.NewInternalError(fmt.Sprintf("failed to create output directory %s", outputDir), err)
	}

	path := filepath.Join(outputDir, ResultFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewInternalError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns()); err != nil {
		return "", apperrors.NewInternalError("failed to write header", err)
	}

	record := make([]string, len(t.Columns()))
	for i := 0; i < t.NumRows(); i++ {
		for j, name := range t.Columns() {
			record[j] = t.Column(name)[i].String()
		}
		if err := w.Write(record); err != nil {
			return "", apperrors.NewInternalError("failed to write row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", apperrors.NewInternalError("failed to flush output", err)
	}
	return path, nil
}

// Distribution counts how many rows landed in each risk group
func Distribution(groups []string) map[string]int {
	counts := make(map[string]int)
	for _, g := range groups {
		counts[g]++
	}
	return counts
}
