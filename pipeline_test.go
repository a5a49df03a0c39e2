package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// End-to-end over one dataset: XES in, feature table and labeled corpus out,
// rows stored for the validator.
func TestExtractAndLabelPipeline(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		DataDir:      filepath.Join(dir, "raw"),
		ProcessedDir: filepath.Join(dir, "processed"),
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTestFile(t, filepath.Join(cfg.DataDir, "DomesticDeclarations.xes"), sampleXES)

	db := openTestDB(t)

	if err := RunExtract(cfg, db); err != nil {
		t.Fatalf("extract: %v", err)
	}

	featPath := filepath.Join(cfg.ProcessedDir, "domestic_declarations_features.csv")
	features, err := ReadFeaturesCSV(featPath)
	if err != nil {
		t.Fatalf("read features: %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(features))
	}

	_, count, err := TableStatus(db, "case_features")
	if err != nil {
		t.Fatalf("table status: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 stored feature rows, got %d", count)
	}

	if err := RunLabel(cfg, db); err != nil {
		t.Fatalf("label: %v", err)
	}

	var labeled []LabeledCase
	data, err := os.ReadFile(filepath.Join(cfg.ProcessedDir, "domestic_declarations_labeled.json"))
	if err != nil {
		t.Fatalf("read labeled: %v", err)
	}
	if err := json.Unmarshal(data, &labeled); err != nil {
		t.Fatalf("decode labeled: %v", err)
	}
	if len(labeled) != 2 {
		t.Fatalf("expected 2 labeled cases, got %d", len(labeled))
	}

	var combined []LabeledCase
	data, err = os.ReadFile(filepath.Join(cfg.ProcessedDir, "combined_labeled_dataset.json"))
	if err != nil {
		t.Fatalf("read combined: %v", err)
	}
	if err := json.Unmarshal(data, &combined); err != nil {
		t.Fatalf("decode combined: %v", err)
	}
	if len(combined) != len(labeled) {
		t.Errorf("combined corpus should match the single dataset: %d vs %d", len(combined), len(labeled))
	}

	total, _, err := LabeledCaseCounts(db)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 stored labeled rows, got %d", total)
	}
}

func TestRunExtractNoDatasets(t *testing.T) {
	cfg := Config{
		DataDir:      filepath.Join(t.TempDir(), "empty"),
		ProcessedDir: filepath.Join(t.TempDir(), "processed"),
	}
	if err := RunExtract(cfg, openTestDB(t)); err == nil {
		t.Fatal("expected an error when no event logs exist")
	}
}

func TestRunLabelNoFeatureTables(t *testing.T) {
	cfg := Config{ProcessedDir: t.TempDir()}
	if err := RunLabel(cfg, openTestDB(t)); err == nil {
		t.Fatal("expected an error when no feature tables exist")
	}
}
