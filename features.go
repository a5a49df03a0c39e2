package main

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const secondsPerDay = 86400.0

// ExtractFeatures reduces an event sequence to one CaseFeatures record per
// case. Returns an empty result set for empty input. Cases appear in the
// order their first event appears in the input.
func ExtractFeatures(events []CaseEvent, isInternational bool) []CaseFeatures {
	if len(events) == 0 {
		return nil
	}

	byCase := make(map[string][]CaseEvent)
	var order []string
	for _, ev := range events {
		if _, seen := byCase[ev.CaseID]; !seen {
			order = append(order, ev.CaseID)
		}
		byCase[ev.CaseID] = append(byCase[ev.CaseID], ev)
	}

	features := make([]CaseFeatures, 0, len(order))
	for _, caseID := range order {
		features = append(features, extractCaseFeatures(caseID, byCase[caseID], isInternational))
	}
	return features
}

func extractCaseFeatures(caseID string, events []CaseEvent, isInternational bool) CaseFeatures {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	unique := make(map[string]struct{}, len(events))
	rejections := 0
	for _, ev := range events {
		unique[ev.Activity] = struct{}{}
		if isRejectionActivity(ev.Activity) {
			rejections++
		}
	}

	f := CaseFeatures{
		CaseID:            caseID,
		TotalDurationDays: events[len(events)-1].Timestamp.Sub(events[0].Timestamp).Seconds() / secondsPerDay,
		ActivityCount:     len(events),
		UniqueActivities:  len(unique),
		HasRejections:     rejections > 0,
		RejectionCount:    rejections,
		IsInternational:   isInternational,
	}

	// Approval latency: first "approved" event minus first "submitted" event.
	// Absent unless the case has both.
	var submitted, approved *CaseEvent
	for i := range events {
		act := strings.ToLower(events[i].Activity)
		if submitted == nil && strings.Contains(act, "submitted") {
			submitted = &events[i]
		}
		if approved == nil && strings.Contains(act, "approved") {
			approved = &events[i]
		}
	}
	if submitted != nil && approved != nil {
		days := approved.Timestamp.Sub(submitted.Timestamp).Seconds() / secondsPerDay
		f.ApprovalTimeDays = &days
	}

	return f
}

func isRejectionActivity(activity string) bool {
	act := strings.ToLower(activity)
	return strings.Contains(act, "reject") || strings.Contains(act, "declined")
}

var featureCSVHeader = []string{
	"case_id", "total_duration_days", "activity_count", "unique_activities",
	"has_rejections", "rejection_count", "is_international", "approval_time_days",
}

// WriteFeaturesCSV writes one row per case; approval_time_days is empty when
// the case has no submit/approve pair.
func WriteFeaturesCSV(features []CaseFeatures, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(featureCSVHeader); err != nil {
		return err
	}
	for _, feat := range features {
		approval := ""
		if feat.ApprovalTimeDays != nil {
			approval = strconv.FormatFloat(*feat.ApprovalTimeDays, 'f', -1, 64)
		}
		row := []string{
			feat.CaseID,
			strconv.FormatFloat(feat.TotalDurationDays, 'f', -1, 64),
			strconv.Itoa(feat.ActivityCount),
			strconv.Itoa(feat.UniqueActivities),
			strconv.FormatBool(feat.HasRejections),
			strconv.Itoa(feat.RejectionCount),
			strconv.FormatBool(feat.IsInternational),
			approval,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadFeaturesCSV loads a feature table written by WriteFeaturesCSV.
func ReadFeaturesCSV(path string) ([]CaseFeatures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse features csv %s: %w", filepath.Base(path), err)
	}
	if len(records) < 1 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"case_id", "total_duration_days", "activity_count", "rejection_count"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("features csv %s missing column %s", filepath.Base(path), required)
		}
	}

	var out []CaseFeatures
	for _, rec := range records[1:] {
		feat := CaseFeatures{CaseID: rec[col["case_id"]]}
		feat.TotalDurationDays, _ = strconv.ParseFloat(rec[col["total_duration_days"]], 64)
		feat.ActivityCount, _ = strconv.Atoi(rec[col["activity_count"]])
		if i, ok := col["unique_activities"]; ok {
			feat.UniqueActivities, _ = strconv.Atoi(rec[i])
		}
		if i, ok := col["has_rejections"]; ok {
			feat.HasRejections, _ = strconv.ParseBool(rec[i])
		}
		feat.RejectionCount, _ = strconv.Atoi(rec[col["rejection_count"]])
		if i, ok := col["is_international"]; ok {
			feat.IsInternational, _ = strconv.ParseBool(rec[i])
		}
		if i, ok := col["approval_time_days"]; ok && strings.TrimSpace(rec[i]) != "" {
			if days, err := strconv.ParseFloat(rec[i], 64); err == nil {
				feat.ApprovalTimeDays = &days
			}
		}
		out = append(out, feat)
	}
	return out, nil
}

// RunExtract loads every dataset event log present under cfg.DataDir,
// extracts per-case features, writes <dataset>_features.csv into
// cfg.ProcessedDir and persists the rows. Missing dataset files are logged
// and skipped.
func RunExtract(cfg Config, db *sql.DB) error {
	extracted := 0
	for _, dataset := range sortedDatasetNames() {
		path := filepath.Join(cfg.DataDir, datasetFiles[dataset])
		if _, err := os.Stat(path); err != nil {
			log.Printf("extract dataset=%s skipped: %v", dataset, err)
			continue
		}

		events, err := LoadEventLog(path)
		if err != nil {
			log.Printf("extract dataset=%s load error: %v", dataset, err)
			continue
		}

		features := ExtractFeatures(events, datasetIsInternational(dataset))
		if len(features) == 0 {
			log.Printf("extract dataset=%s empty event log, nothing to write", dataset)
			continue
		}

		outPath := filepath.Join(cfg.ProcessedDir, dataset+"_features.csv")
		if err := WriteFeaturesCSV(features, outPath); err != nil {
			return fmt.Errorf("write features for %s: %w", dataset, err)
		}
		if err := InsertCaseFeatures(db, dataset, features); err != nil {
			return fmt.Errorf("store features for %s: %w", dataset, err)
		}

		log.Printf("extract dataset=%s cases=%d events=%d -> %s", dataset, len(features), len(events), outPath)
		extracted++
	}

	if extracted == 0 {
		return fmt.Errorf("no dataset event logs found under %s", cfg.DataDir)
	}
	return nil
}
