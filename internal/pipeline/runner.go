package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/oncorisk/coxpredict/internal/bundle"
	"github.com/oncorisk/coxpredict/internal/cox"
	"github.com/oncorisk/coxpredict/internal/dataset"
	"github.com/oncorisk/coxpredict/internal/domain/entities"
	"github.com/oncorisk/coxpredict/internal/domain/repositories"
	"github.com/oncorisk/coxpredict/internal/output"
	"github.com/oncorisk/coxpredict/internal/preprocess"
	"github.com/oncorisk/coxpredict/internal/risk"
	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// Survival label columns. Optional in the input: their absence only
// disables concordance validation.
const (
	OSTimeColumn = "OS_Time"
	EventColumn  = "Event"
)

// Added output columns
const (
	RiskScoreColumn = "Risk_Score"
	RiskGroupColumn = "Risk_Group"
)

// Summary holds the outcome of one prediction run.
type Summary struct {
	RunID            string
	Rows             int
	GroupCounts      map[string]int
	ConcordanceIndex *float64
	OutputPath       string
}

// Runner executes the prediction pipeline: ingest, preprocess, score,
// group, validate, write. Stages run strictly in sequence over one shared
// table; any stage failure aborts the run.
type Runner struct {
	bundle *bundle.Bundle
	sink   repositories.PredictionRepository
}

// NewRunner creates a runner for the given fitted model bundle
func NewRunner(b *bundle.Bundle) *Runner {
	return &Runner{bundle: b}
}

// SetSink enables persistence of scored rows after the output file is
// written. Without a sink the run is file-only.
func (r *Runner) SetSink(sink repositories.PredictionRepository) {
	r.sink = sink
}

// Run executes the pipeline on one input file and returns the run summary.
func (r *Runner) Run(ctx context.Context, inputPath, outputDir string) (*Summary, error) {
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	logger.Info().Str("input", inputPath).Msg("loading patient data")
	table, err := dataset.ReadTable(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("rows", table.NumRows()).Int("columns", len(table.Columns())).Msg("patient data loaded")

	if err := dataset.CheckSchema(table, r.bundle.SelectedFeatures); err != nil {
		return nil, err
	}

	// Keep only the model features plus whichever survival labels exist.
	required := append(append([]string(nil), r.bundle.SelectedFeatures...), OSTimeColumn, EventColumn)
	table = table.Project(required)

	logger.Info().Msg("preprocessing")
	if err := preprocess.Apply(table, r.bundle); err != nil {
		return nil, err
	}

	logger.Info().Int("features", len(r.bundle.SelectedFeatures)).Msg("scoring partial hazards")
	scorer := cox.NewScorer(r.bundle)
	scores, err := scorer.PredictPartialHazard(table)
	if err != nil {
		return nil, err
	}

	groups := risk.AssignGroups(scores)

	scoreCells := make([]dataset.Cell, len(scores))
	groupCells := make([]dataset.Cell, len(groups))
	for i := range scores {
		scoreCells[i] = dataset.FloatCell(scores[i])
		groupCells[i] = dataset.StringCell(groups[i])
	}
	table.SetColumn(RiskScoreColumn, scoreCells)
	table.SetColumn(RiskGroupColumn, groupCells)

	summary := &Summary{
		RunID:       runID,
		Rows:        table.NumRows(),
		GroupCounts: output.Distribution(groups),
	}

	if table.HasColumn(OSTimeColumn) && table.HasColumn(EventColumn) {
		cIndex, err := r.validate(table, scores)
		if err != nil {
			return nil, err
		}
		summary.ConcordanceIndex = &cIndex
		logger.Info().Float64("c_index", cIndex).Msg("concordance index computed")
	} else {
		logger.Info().Msg("survival labels absent, skipping concordance (expected for new patients)")
	}

	path, err := output.Write(table, outputDir)
	if err != nil {
		return nil, err
	}
	summary.OutputPath = path
	logger.Info().Str("path", path).Int("rows", summary.Rows).Msg("predictions written")

	if r.sink != nil {
		if err := r.persist(ctx, table, runID, scores, groups); err != nil {
			return nil, err
		}
		logger.Info().Int("rows", summary.Rows).Msg("predictions persisted")
	}

	return summary, nil
}

// validate computes the concordance index against the observed survival
// labels. The risk score is negated: higher hazard means shorter expected
// survival, and the index expects higher predictions to mean longer.
func (r *Runner) validate(table *dataset.Table, scores []float64) (float64, error) {
	times, err := columnFloats(table, OSTimeColumn)
	if err != nil {
		return 0, err
	}
	eventVals, err := columnFloats(table, EventColumn)
	if err != nil {
		return 0, err
	}

	events := make([]int, len(eventVals))
	for i, v := range eventVals {
		events[i] = int(v)
	}

	predicted := make([]float64, len(scores))
	for i, s := range scores {
		predicted[i] = -s
	}

	return cox.ConcordanceIndex(times, predicted, events)
}

func (r *Runner) persist(ctx context.Context, table *dataset.Table, runID string, scores []float64, groups []string) error {
	hasLabels := table.HasColumn(OSTimeColumn) && table.HasColumn(EventColumn)

	predictions := make([]*entities.Prediction, len(scores))
	for i := range scores {
		p := entities.NewPrediction(runID, i, scores[i], groups[i])
		if hasLabels {
			if c := table.Column(OSTimeColumn)[i]; c.Numeric {
				t := c.Value
				p.OSTime = &t
			}
			if c := table.Column(EventColumn)[i]; c.Numeric {
				e := int(c.Value)
				p.Event = &e
			}
		}
		predictions[i] = p
	}

	return r.sink.SaveBatch(ctx, predictions)
}

func columnFloats(t *dataset.Table, name string) ([]float64, error) {
	cells := t.Column(name)
	out := make([]float64, len(cells))
	for i, c := range cells {
		if c.Numeric {
			out[i] = c.Value
			continue
		}
		if c.Missing {
			return nil, apperrors.NewValidationError(fmt.Sprintf("column %q row %d has no value", name, i))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Raw), 64)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("column %q row %d holds non-numeric value %q", name, i, c.Raw))
		}
		cells[i] = dataset.FloatCell(v)
		out[i] = v
	}
	return out, nil
}
