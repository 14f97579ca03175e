package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// ReadTable reads a patient record file into a table. The format is chosen
// by extension: .xlsx/.xlsm via the first worksheet, .csv as comma-delimited
// text. The first row is the header; short rows are padded with empty cells
// so every column has the full row count.
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcel(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, apperrors.NewParseError(fmt.Sprintf("unsupported input format %q (expected .xlsx or .csv)", filepath.Ext(path)), nil)
	}
}

func readExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(fmt.Sprintf("failed to open spreadsheet %s", path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.NewParseError("spreadsheet has no worksheets", nil)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParseError(fmt.Sprintf("failed to read worksheet %q", sheet), err)
	}

	return fromRecords(rows)
}

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewParseError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.NewParseError(fmt.Sprintf("failed to parse %s", path), err)
	}

	return fromRecords(records)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, apperrors.NewParseError("input has no header row", nil)
	}

	header := records[0]
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, dup := seen[name]; dup {
			return nil, apperrors.NewParseError(fmt.Sprintf("duplicate column name %q in header", name), nil)
		}
		seen[name] = struct{}{}
	}

	t := New(header, len(records)-1)
	for i, row := range records[1:] {
		for j, name := range header {
			if j < len(row) {
				t.Column(name)[i] = StringCell(row[j])
			} else {
				t.Column(name)[i] = StringCell("")
			}
		}
	}
	return t, nil
}

// CheckSchema verifies that every required feature is present as a column.
// It fails with a schema error naming exactly the absent columns.
func CheckSchema(t *Table, required []string) error {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewSchemaError(missing)
	}
	return nil
}
