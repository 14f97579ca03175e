package bundle

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/oncorisk/coxpredict/pkg/errors"
)

func writeTempBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model_bundle.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp bundle: %v", err)
	}
	return path
}

const validBundle = `{
	"selected_features": ["Age", "Gender", "ECOG_Score"],
	"numeric_features": ["Age"],
	"categorical_features": ["Gender"],
	"category_mappings": {"Gender": {"Male": 1, "Female": 0}},
	"numeric_imputer": {"strategy": "mean", "fill_values": {"Age": 62.5}},
	"categorical_imputer": {"strategy": "most_frequent", "fill_values": {"Gender": "Male"}},
	"cox_model": {
		"coefficients": {"Age": 0.02, "Gender": 0.4, "ECOG_Score": 0.15},
		"means": {"Age": 61.0, "Gender": 0.6, "ECOG_Score": 1.1}
	}
}`

func TestLoad_ValidBundle(t *testing.T) {
	path := writeTempBundle(t, validBundle)

	b, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.SelectedFeatures) != 3 {
		t.Fatalf("expected 3 selected features, got %d", len(b.SelectedFeatures))
	}
	if b.SelectedFeatures[0] != "Age" {
		t.Errorf("expected first feature Age, got %s", b.SelectedFeatures[0])
	}
	if b.NumericImputer.FillValues["Age"] != 62.5 {
		t.Errorf("expected Age fill value 62.5, got %f", b.NumericImputer.FillValues["Age"])
	}
	if b.CategoricalImputer.FillValues["Gender"] != "Male" {
		t.Errorf("expected Gender fill value Male, got %s", b.CategoricalImputer.FillValues["Gender"])
	}
	if b.CategoryMappings["Gender"]["Female"] != 0 {
		t.Errorf("expected Female code 0, got %f", b.CategoryMappings["Gender"]["Female"])
	}
	if b.CoxModel.Coefficients["Gender"] != 0.4 {
		t.Errorf("expected Gender coefficient 0.4, got %f", b.CoxModel.Coefficients["Gender"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/model_bundle.json")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeLoad) {
		t.Errorf("expected LOAD error, got %v", err)
	}
}

func TestLoad_CorruptBundle(t *testing.T) {
	path := writeTempBundle(t, `not json at all`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for corrupt bundle")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeLoad) {
		t.Errorf("expected LOAD error, got %v", err)
	}
}

func TestLoad_EmptyFeatureList(t *testing.T) {
	path := writeTempBundle(t, `{"selected_features": []}`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for empty feature list")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeLoad) {
		t.Errorf("expected LOAD error, got %v", err)
	}
}

func TestLoad_MissingCoefficient(t *testing.T) {
	path := writeTempBundle(t, `{
		"selected_features": ["Age", "Gender"],
		"cox_model": {"coefficients": {"Age": 0.02}, "means": {"Age": 61.0}}
	}`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing coefficient")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeLoad) {
		t.Errorf("expected LOAD error, got %v", err)
	}
}

func TestLoad_DuplicateFeature(t *testing.T) {
	path := writeTempBundle(t, `{
		"selected_features": ["Age", "Age"],
		"cox_model": {"coefficients": {"Age": 0.02}, "means": {"Age": 61.0}}
	}`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for duplicate feature")
	}
}

func TestBundle_FeaturePartitions(t *testing.T) {
	path := writeTempBundle(t, validBundle)
	b, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !b.IsNumeric("Age") {
		t.Error("expected Age to be numeric")
	}
	if b.IsNumeric("Gender") {
		t.Error("expected Gender not to be numeric")
	}
	if !b.IsCategorical("Gender") {
		t.Error("expected Gender to be categorical")
	}
	if b.IsCategorical("ECOG_Score") {
		t.Error("expected ECOG_Score not to be categorical")
	}
}
