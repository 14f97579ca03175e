package bundle

// Bundle holds the fitted components exported by the training pipeline.
// It is produced externally, loaded once per run, and treated as read-only.
type Bundle struct {
	SelectedFeatures    []string                      `json:"selected_features"`
	NumericFeatures     []string                      `json:"numeric_features"`
	CategoricalFeatures []string                      `json:"categorical_features"`
	CategoryMappings    map[string]map[string]float64 `json:"category_mappings"`
	NumericImputer      NumericImputer                `json:"numeric_imputer"`
	CategoricalImputer  CategoricalImputer            `json:"categorical_imputer"`
	CoxModel            CoxModel                      `json:"cox_model"`
}

// NumericImputer carries the per-column fill values learned at training
// time (e.g. the column mean or median).
type NumericImputer struct {
	Strategy   string             `json:"strategy"`
	FillValues map[string]float64 `json:"fill_values"`
}

// CategoricalImputer carries the per-column most-frequent category learned
// at training time.
type CategoricalImputer struct {
	Strategy   string            `json:"strategy"`
	FillValues map[string]string `json:"fill_values"`
}

// CoxModel holds the fitted Cox proportional-hazards parameters: one
// coefficient per selected feature and the training-time feature means the
// model centers on when computing partial hazards.
type CoxModel struct {
	Coefficients map[string]float64 `json:"coefficients"`
	Means        map[string]float64 `json:"means"`
}

// IsNumeric reports whether the named feature was purely numeric at
// training time.
func (b *Bundle) IsNumeric(feature string) bool {
	for _, f := range b.NumericFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

// IsCategorical reports whether the named feature was categorical at
// training time.
func (b *Bundle) IsCategorical(feature string) bool {
	for _, f := range b.CategoricalFeatures {
		if f == feature {
			return true
		}
	}
	return false
}
