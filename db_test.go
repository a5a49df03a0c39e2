package main

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitDBCreatesRequiredTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range requiredTables {
		exists, count, err := TableStatus(db, table)
		if err != nil {
			t.Fatalf("status %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s should exist", table)
		}
		if count != 0 {
			t.Errorf("table %s should start empty, got %d rows", table, count)
		}
	}

	exists, _, err := TableStatus(db, "no_such_table")
	if err != nil {
		t.Fatalf("status missing table: %v", err)
	}
	if exists {
		t.Error("nonexistent table reported as present")
	}
}

func TestInsertCaseFeaturesReplacesDataset(t *testing.T) {
	db := openTestDB(t)

	approval := 4.0
	features := []CaseFeatures{
		{CaseID: "a", TotalDurationDays: 10, ActivityCount: 5, UniqueActivities: 5, ApprovalTimeDays: &approval},
		{CaseID: "b", TotalDurationDays: 3, ActivityCount: 4, UniqueActivities: 4},
	}
	if err := InsertCaseFeatures(db, "domestic_declarations", features); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Rerunning replaces rather than appends.
	if err := InsertCaseFeatures(db, "domestic_declarations", features[:1]); err != nil {
		t.Fatalf("reinsert: %v", err)
	}
	_, count, err := TableStatus(db, "case_features")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after replacement, got %d", count)
	}

	// Another dataset's rows are untouched.
	if err := InsertCaseFeatures(db, "travel_permits", features); err != nil {
		t.Fatalf("insert second dataset: %v", err)
	}
	if err := InsertCaseFeatures(db, "domestic_declarations", features); err != nil {
		t.Fatalf("reinsert first dataset: %v", err)
	}
	_, count, _ = TableStatus(db, "case_features")
	if count != 4 {
		t.Errorf("expected 4 rows across datasets, got %d", count)
	}
}

func TestInsertLabeledCasesAndCounts(t *testing.T) {
	db := openTestDB(t)

	labeled := LabelDataset([]CaseFeatures{
		{CaseID: "clean", TotalDurationDays: 9, ActivityCount: 8},
		{CaseID: "slow", TotalDurationDays: 35, ActivityCount: 8},
	})
	if err := InsertLabeledCases(db, "domestic_declarations", labeled); err != nil {
		t.Fatalf("insert: %v", err)
	}

	total, bySeverity, err := LabeledCaseCounts(db)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 labeled cases, got %d", total)
	}
	if bySeverity[SeverityLow] != 1 || bySeverity[SeverityMedium] != 1 {
		t.Errorf("unexpected severity distribution: %+v", bySeverity)
	}

	// The stored document round-trips to the full record.
	var doc string
	if err := db.QueryRow(`SELECT document FROM labeled_cases WHERE case_id = 'slow'`).Scan(&doc); err != nil {
		t.Fatalf("read document: %v", err)
	}
	var stored LabeledCase
	if err := json.Unmarshal([]byte(doc), &stored); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if stored.SeverityScore != 3 || len(stored.Inefficiencies) != 1 {
		t.Errorf("stored document mismatch: %+v", stored)
	}
}

func TestSeedDefaultConfiguration(t *testing.T) {
	db := openTestDB(t)

	if err := SeedDefaultConfiguration(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows, err := GetConfigurationRows(db)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	for _, want := range defaultConfiguration {
		row, ok := rows[want.Key]
		if !ok {
			t.Errorf("missing configuration key %s", want.Key)
			continue
		}
		if row.Value != want.Value {
			t.Errorf("key %s: got %q, want %q", want.Key, row.Value, want.Value)
		}
	}

	// Seeding again does not clobber operator changes.
	if _, err := db.Exec(`UPDATE system_configuration SET value = '60' WHERE key = 'thresholds.max_processing_time'`); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := SeedDefaultConfiguration(db); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	rows, _ = GetConfigurationRows(db)
	if rows["thresholds.max_processing_time"].Value != "60" {
		t.Error("reseed overwrote an operator-modified value")
	}
}

func TestInsertValidationRun(t *testing.T) {
	db := openTestDB(t)

	report := []byte(`{"overall_score":91.5}`)
	if err := InsertValidationRun(db, time.Now(), 91.5, StatusPass, report); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var score float64
	var status string
	if err := db.QueryRow(`SELECT overall_score, status FROM validation_runs`).Scan(&score, &status); err != nil {
		t.Fatalf("read: %v", err)
	}
	if score != 91.5 || status != StatusPass {
		t.Errorf("unexpected stored run: %v %s", score, status)
	}
}
