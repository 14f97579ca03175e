package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/oncorisk/coxpredict/internal/domain/entities"
	"github.com/oncorisk/coxpredict/internal/domain/repositories"
	"github.com/oncorisk/coxpredict/internal/infrastructure/clients/postgres"
	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// PredictionAdapter implements PredictionRepository against Postgres
type PredictionAdapter struct {
	db *sql.DB
	qb *goqu.Database
}

// NewPredictionAdapter creates a new prediction adapter
func NewPredictionAdapter(client *postgres.Client) repositories.PredictionRepository {
	return newPredictionAdapter(client.DB())
}

func newPredictionAdapter(db *sql.DB) *PredictionAdapter {
	return &PredictionAdapter{
		db: db,
		qb: goqu.New("postgres", db),
	}
}

// SaveBatch inserts all predictions of a run in a single statement
func (a *PredictionAdapter) SaveBatch(ctx context.Context, predictions []*entities.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	records := make([]goqu.Record, len(predictions))
	for i, p := range predictions {
		records[i] = goqu.Record{
			"id":         p.ID,
			"run_id":     p.RunID,
			"row_index":  p.RowIndex,
			"risk_score": p.RiskScore,
			"risk_group": p.RiskGroup,
			"os_time":    nullFloat(p.OSTime),
			"event":      nullInt(p.Event),
			"created_at": p.CreatedAt,
		}
	}

	query, args, err := a.qb.Insert("predictions").Rows(records).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewExternalError("failed to save predictions", err)
	}

	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
