package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestDefault_Weights(t *testing.T) {
	cfg := Default()
	w := cfg.Weights.ToWeights()

	if w.Skills != 0.40 || w.Interests != 0.25 || w.Education != 0.20 || w.Location != 0.15 {
		t.Errorf("default weights = %+v", w)
	}
	if cfg.Hybrid.TopN != 3 {
		t.Errorf("default top_n = %d, want 3", cfg.Hybrid.TopN)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	content := `
[catalog]
source = "file"
path = "/tmp/internships.json"

[weights]
skills = 0.25
interests = 0.25
education = 0.25
location = 0.25
remote_bonus = 0.0

[hybrid]
top_n = 5
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Catalog.Path != "/tmp/internships.json" {
		t.Errorf("catalog.path = %s", cfg.Catalog.Path)
	}
	if cfg.Weights.Skills != 0.25 {
		t.Errorf("weights.skills = %v, want 0.25", cfg.Weights.Skills)
	}
	if cfg.Hybrid.TopN != 5 {
		t.Errorf("hybrid.top_n = %d, want 5", cfg.Hybrid.TopN)
	}
	// Untouched sections keep defaults
	if cfg.Classifier.Port != 8643 {
		t.Errorf("classifier.port = %d, want default 8643", cfg.Classifier.Port)
	}
}

func TestLoad_InvalidWeights(t *testing.T) {
	content := `
[weights]
skills = 0.9
interests = 0.9
education = 0.2
location = 0.15
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load with weights summing past 1.0 = nil error")
	}
	if !strings.Contains(err.Error(), "sum to 1.0") {
		t.Errorf("error = %v, want weight sum complaint", err)
	}
}

func TestValidate_TopN(t *testing.T) {
	cfg := Default()
	cfg.Hybrid.TopN = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate with top_n=0 = nil error")
	}
}

func TestValidate_CatalogSource(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Source = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate with unknown catalog source = nil error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load on missing file = nil error")
	}
	if !strings.Contains(err.Error(), "config init") {
		t.Errorf("error = %v, want init hint", err)
	}
}
