package cox

import (
	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// ConcordanceIndex computes the concordance index between observed survival
// times and predicted scores. Callers pass the negated risk score so that a
// higher predicted value means longer expected survival.
//
// A pair of patients is admissible when their times differ and the patient
// with the shorter time had the event observed (a censored shorter time
// says nothing about ordering), or when their times are equal and exactly
// one had the event: the censored patient is known to have survived at
// least as long, so the event counts as the shorter observation. Tied-time
// pairs where both or neither had the event are not comparable. An
// admissible pair is concordant when the shorter-lived patient has the
// lower predicted score; tied predictions earn half credit.
func ConcordanceIndex(eventTimes, predicted []float64, eventObserved []int) (float64, error) {
	n := len(eventTimes)
	if len(predicted) != n || len(eventObserved) != n {
		return 0, apperrors.NewValidationError("concordance inputs have mismatched lengths")
	}

	var admissible, concordant float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			short, long := i, j
			if eventTimes[j] < eventTimes[i] {
				short, long = j, i
			}

			if eventTimes[short] == eventTimes[long] {
				if eventObserved[i] == 1 && eventObserved[j] != 1 {
					short, long = i, j
				} else if eventObserved[j] == 1 && eventObserved[i] != 1 {
					short, long = j, i
				} else {
					continue
				}
			} else if eventObserved[short] != 1 {
				continue
			}

			admissible++
			switch {
			case predicted[short] < predicted[long]:
				concordant++
			case predicted[short] == predicted[long]:
				concordant += 0.5
			}
		}
	}

	if admissible == 0 {
		return 0, apperrors.NewValidationError("no admissible pairs for concordance index")
	}
	return concordant / admissible, nil
}
