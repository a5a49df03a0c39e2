package main

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// The four tables the validator checks for. Order matters for the pro-rated
// infrastructure score, so keep it stable.
var requiredTables = []string{
	"case_features",
	"labeled_cases",
	"validation_runs",
	"system_configuration",
}

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS case_features (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset             TEXT NOT NULL,
		case_id             TEXT NOT NULL,
		total_duration_days REAL NOT NULL,
		activity_count      INTEGER NOT NULL,
		unique_activities   INTEGER NOT NULL,
		has_rejections      INTEGER NOT NULL DEFAULT 0,
		rejection_count     INTEGER NOT NULL DEFAULT 0,
		is_international    INTEGER NOT NULL DEFAULT 0,
		approval_time_days  REAL,
		created_at          DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_case_features_dataset ON case_features(dataset);
	CREATE INDEX IF NOT EXISTS idx_case_features_case ON case_features(case_id);

	CREATE TABLE IF NOT EXISTS labeled_cases (
		id                     INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset                TEXT NOT NULL,
		case_id                TEXT NOT NULL,
		severity_score         INTEGER NOT NULL,
		severity_level         TEXT NOT NULL,
		inefficiency_count     INTEGER NOT NULL,
		optimization_potential REAL NOT NULL,
		document               TEXT NOT NULL,
		created_at             DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_labeled_cases_dataset ON labeled_cases(dataset);
	CREATE INDEX IF NOT EXISTS idx_labeled_cases_severity ON labeled_cases(severity_level);

	CREATE TABLE IF NOT EXISTS validation_runs (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		run_at        DATETIME NOT NULL,
		overall_score REAL NOT NULL,
		status        TEXT NOT NULL,
		report        TEXT NOT NULL,
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_validation_runs_run_at ON validation_runs(run_at);

	CREATE TABLE IF NOT EXISTS system_configuration (
		key         TEXT PRIMARY KEY,
		value       TEXT NOT NULL,
		description TEXT DEFAULT '',
		updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// InsertCaseFeatures replaces the stored feature rows for a dataset with a
// fresh extraction. Delete-then-insert keeps reruns idempotent.
func InsertCaseFeatures(db *sql.DB, dataset string, features []CaseFeatures) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM case_features WHERE dataset = ?`, dataset); err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO case_features
		 (dataset, case_id, total_duration_days, activity_count, unique_activities, has_rejections, rejection_count, is_international, approval_time_days)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range features {
		var approval any
		if f.ApprovalTimeDays != nil {
			approval = *f.ApprovalTimeDays
		}
		if _, err := stmt.Exec(
			dataset, f.CaseID, f.TotalDurationDays, f.ActivityCount, f.UniqueActivities,
			f.HasRejections, f.RejectionCount, f.IsInternational, approval,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// InsertLabeledCases replaces the stored labeled rows for a dataset. Summary
// columns are denormalized for querying; the full record lives in document.
func InsertLabeledCases(db *sql.DB, dataset string, labeled []LabeledCase) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM labeled_cases WHERE dataset = ?`, dataset); err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO labeled_cases
		 (dataset, case_id, severity_score, severity_level, inefficiency_count, optimization_potential, document)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range labeled {
		doc, err := json.Marshal(c)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(
			dataset, c.CaseID, c.SeverityScore, c.TrainingLabel.SeverityLevel,
			c.TotalInefficiencyCount, c.OptimizationPotential, string(doc),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func InsertValidationRun(db *sql.DB, runAt time.Time, overallScore float64, status string, report []byte) error {
	_, err := db.Exec(
		`INSERT INTO validation_runs (run_at, overall_score, status, report) VALUES (?, ?, ?, ?)`,
		runAt, overallScore, status, string(report),
	)
	return err
}

// TableStatus reports whether a table exists and how many rows it holds.
func TableStatus(db *sql.DB, table string) (bool, int, error) {
	var name string
	err := db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
		return true, 0, err
	}
	return true, count, nil
}

// ConfigurationRow is one key/value pair from system_configuration.
type ConfigurationRow struct {
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}

// The rows every deployment is expected to carry. The validator treats a
// missing key as a research-compliance gap.
var defaultConfiguration = []ConfigurationRow{
	{Key: "thresholds.max_processing_time", Value: "30", Description: "Maximum acceptable processing time in days before a case is flagged"},
	{Key: "quality.minimum_quality_score", Value: "0.8", Description: "Minimum data quality score required for training runs"},
	{Key: "features.multi_agent_enabled", Value: "true", Description: "Whether multi-agent analysis workflows are enabled"},
	{Key: "model.anthropic_model_id", Value: defaultAnthropicModel, Description: "Hosted model used for workflow analysis prompts"},
}

// SeedDefaultConfiguration inserts any missing default rows without touching
// operator-modified values.
func SeedDefaultConfiguration(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT OR IGNORE INTO system_configuration (key, value, description) VALUES (?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range defaultConfiguration {
		if _, err := stmt.Exec(row.Key, row.Value, row.Description); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func GetConfigurationRows(db *sql.DB) (map[string]ConfigurationRow, error) {
	rows, err := db.Query(`SELECT key, value, description, updated_at FROM system_configuration`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]ConfigurationRow)
	for rows.Next() {
		var r ConfigurationRow
		if err := rows.Scan(&r.Key, &r.Value, &r.Description, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out[r.Key] = r
	}
	return out, rows.Err()
}

// LabeledCaseCounts returns per-severity counts across all stored labeled
// cases, used by the validator's data-quality sanity line.
func LabeledCaseCounts(db *sql.DB) (total int, bySeverity map[string]int, err error) {
	bySeverity = make(map[string]int)
	rows, err := db.Query(`SELECT severity_level, COUNT(*) FROM labeled_cases GROUP BY severity_level`)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return 0, nil, err
		}
		bySeverity[level] = count
		total += count
	}
	return total, bySeverity, rows.Err()
}
