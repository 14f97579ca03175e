package preprocess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oncorisk/coxpredict/internal/bundle"
	"github.com/oncorisk/coxpredict/internal/dataset"
	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// missingSentinels are the literal tokens treated as missing values,
// matched case-sensitively against raw cells across the whole table.
var missingSentinels = []string{"NA", "/", "unknown", "？", "nan", "NaN", ""}

// ecogColumn is the ordinal performance-status score. It bypasses the
// fitted imputers entirely: unparseable or absent values become -1, an
// explicit "unknown performance status" code.
const ecogColumn = "ECOG_Score"

// unmappedCode is the code assigned to category values the manual mapping
// does not cover.
const unmappedCode = -1.0

// Apply runs the full preprocessing sequence in place. Afterwards every
// selected-feature column is fully populated and ready for scoring.
func Apply(t *dataset.Table, b *bundle.Bundle) error {
	normalizeMissing(t)
	coerceNumeric(t, b)
	if err := imputeNumeric(t, b); err != nil {
		return err
	}
	if err := imputeCategorical(t, b); err != nil {
		return err
	}
	applyMappings(t, b)
	coerceOrdinalScore(t)
	return ensureComplete(t, b)
}

func isSentinel(raw string) bool {
	for _, s := range missingSentinels {
		if raw == s {
			return true
		}
	}
	return false
}

// normalizeMissing replaces sentinel tokens with the canonical missing
// marker in every column.
func normalizeMissing(t *dataset.Table) {
	for _, name := range t.Columns() {
		cells := t.Column(name)
		for i, c := range cells {
			if !c.Missing && !c.Numeric && isSentinel(c.Raw) {
				cells[i] = dataset.MissingCell()
			}
		}
	}
}

// coerceNumeric parses every numeric-flagged column to floats. Values that
// do not parse become missing; that is expected input noise, not an error.
func coerceNumeric(t *dataset.Table, b *bundle.Bundle) {
	for _, name := range b.NumericFeatures {
		if !t.HasColumn(name) {
			continue
		}
		cells := t.Column(name)
		for i, c := range cells {
			if c.Missing || c.Numeric {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(c.Raw), 64)
			if err != nil {
				cells[i] = dataset.MissingCell()
				continue
			}
			cells[i] = dataset.FloatCell(v)
		}
	}
}

func imputeNumeric(t *dataset.Table, b *bundle.Bundle) error {
	for _, name := range b.NumericFeatures {
		if !t.HasColumn(name) {
			continue
		}
		cells := t.Column(name)
		if !hasMissing(cells) {
			continue
		}

		fill, ok := b.NumericImputer.FillValues[name]
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("numeric imputer has no fill value for column %q", name))
		}
		for i, c := range cells {
			if c.Missing {
				cells[i] = dataset.FloatCell(fill)
			}
		}
	}
	return nil
}

func imputeCategorical(t *dataset.Table, b *bundle.Bundle) error {
	for _, name := range b.CategoricalFeatures {
		if !t.HasColumn(name) {
			continue
		}
		cells := t.Column(name)
		if !hasMissing(cells) {
			continue
		}

		fill, ok := b.CategoricalImputer.FillValues[name]
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("categorical imputer has no fill value for column %q", name))
		}
		for i, c := range cells {
			if c.Missing {
				cells[i] = dataset.StringCell(fill)
			}
		}
	}
	return nil
}

// applyMappings replaces raw category values with their numeric codes. Any
// value the mapping does not cover becomes the unmapped code, which also
// handles values the training mapping intentionally omits.
func applyMappings(t *dataset.Table, b *bundle.Bundle) {
	for name, mapping := range b.CategoryMappings {
		if !t.HasColumn(name) {
			continue
		}
		cells := t.Column(name)
		for i, c := range cells {
			code, ok := mapping[c.String()]
			if c.Missing || !ok {
				code = unmappedCode
			}
			cells[i] = dataset.FloatCell(code)
		}
	}
}

// coerceOrdinalScore handles the performance-status column: forced numeric
// coercion with -1 standing in for anything unparseable. The fitted
// imputers never see this column.
func coerceOrdinalScore(t *dataset.Table) {
	if !t.HasColumn(ecogColumn) {
		return
	}
	cells := t.Column(ecogColumn)
	for i, c := range cells {
		if c.Numeric {
			continue
		}
		if c.Missing {
			cells[i] = dataset.FloatCell(-1)
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Raw), 64)
		if err != nil {
			cells[i] = dataset.FloatCell(-1)
			continue
		}
		cells[i] = dataset.FloatCell(v)
	}
}

// ensureComplete enforces the stage guarantee: no selected-feature cell is
// still missing once preprocessing has run.
func ensureComplete(t *dataset.Table, b *bundle.Bundle) error {
	for _, name := range b.SelectedFeatures {
		if !t.HasColumn(name) {
			continue
		}
		for i, c := range t.Column(name) {
			if c.Missing {
				return apperrors.NewValidationError(fmt.Sprintf("column %q row %d is still missing after preprocessing", name, i))
			}
		}
	}
	return nil
}

func hasMissing(cells []dataset.Cell) bool {
	for _, c := range cells {
		if c.Missing {
			return true
		}
	}
	return false
}
