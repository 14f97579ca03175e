package cox

import (
	"fmt"
	"math"

	"github.com/oncorisk/coxpredict/internal/bundle"
	"github.com/oncorisk/coxpredict/internal/dataset"
	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// Scorer applies a fitted Cox proportional-hazards model. The partial
// hazard for a row is exp(sum over features of coef * (value - mean)),
// with the means taken from training time. No re-standardization happens
// here: the fitted coefficients already absorb training-time scale.
type Scorer struct {
	features []string
	coefs    map[string]float64
	means    map[string]float64
}

// NewScorer builds a scorer from the fitted model in the bundle
func NewScorer(b *bundle.Bundle) *Scorer {
	return &Scorer{
		features: b.SelectedFeatures,
		coefs:    b.CoxModel.Coefficients,
		means:    b.CoxModel.Means,
	}
}

// PredictPartialHazard returns one risk score per row, in row order. A
// non-numeric cell in a selected-feature column at this point is a model
// input error and aborts scoring.
func (s *Scorer) PredictPartialHazard(t *dataset.Table) ([]float64, error) {
	for _, f := range s.features {
		if !t.HasColumn(f) {
			return nil, apperrors.NewInternalError(fmt.Sprintf("scoring input has no column %q", f), nil)
		}
	}

	scores := make([]float64, t.NumRows())
	for i := range scores {
		var linear float64
		for _, f := range s.features {
			c := t.Column(f)[i]
			if !c.Numeric {
				return nil, apperrors.NewInternalError(
					fmt.Sprintf("column %q row %d holds non-numeric value %q", f, i, c.String()), nil)
			}
			linear += s.coefs[f] * (c.Value - s.means[f])
		}
		scores[i] = math.Exp(linear)
	}
	return scores, nil
}
