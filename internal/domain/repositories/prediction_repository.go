package repositories

import (
	"context"

	"github.com/oncorisk/coxpredict/internal/domain/entities"
)

// PredictionRepository persists scored patient rows
type PredictionRepository interface {
	// SaveBatch inserts all predictions of a run; a failure aborts the run
	SaveBatch(ctx context.Context, predictions []*entities.Prediction) error
}
