package entities

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is one scored patient row from a prediction run.
type Prediction struct {
	ID        string
	RunID     string
	RowIndex  int
	RiskScore float64
	RiskGroup string

	// Ground-truth labels, present only when the input carried them.
	OSTime *float64
	Event  *int

	CreatedAt time.Time
}

// NewPrediction creates a prediction row for the given run
func NewPrediction(runID string, rowIndex int, riskScore float64, riskGroup string) *Prediction {
	return &Prediction{
		ID:        uuid.New().String(),
		RunID:     runID,
		RowIndex:  rowIndex,
		RiskScore: riskScore,
		RiskGroup: riskGroup,
		CreatedAt: time.Now().UTC(),
	}
}
