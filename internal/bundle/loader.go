package bundle

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

// Load reads and decodes a model bundle from a JSON file. The bundle is
// validated before being returned; a structurally incomplete bundle is a
// load failure, not something the pipeline works around.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to read model bundle %s", path), err)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, apperrors.NewLoadError("failed to decode model bundle", err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &b, nil
}

// Validate checks that the bundle carries everything inference needs.
func (b *Bundle) Validate() error {
	if len(b.SelectedFeatures) == 0 {
		return apperrors.NewLoadError("model bundle has no selected features", nil)
	}

	seen := make(map[string]struct{}, len(b.SelectedFeatures))
	for _, f := range b.SelectedFeatures {
		if f == "" {
			return apperrors.NewLoadError("model bundle contains an empty feature name", nil)
		}
		if _, dup := seen[f]; dup {
			return apperrors.NewLoadError(fmt.Sprintf("model bundle lists feature %q twice", f), nil)
		}
		seen[f] = struct{}{}

		if _, ok := b.CoxModel.Coefficients[f]; !ok {
			return apperrors.NewLoadError(fmt.Sprintf("model bundle has no coefficient for feature %q", f), nil)
		}
	}

	return nil
}
