package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// Category weights for the overall deployment score.
const (
	weightInfrastructure     = 0.25
	weightDataQuality        = 0.20
	weightFrameworkKnowledge = 0.25
	weightResearchCompliance = 0.30
)

// Score tiers. PASS means ready for training runs, WARN means usable with
// gaps, FAIL means the deployment is not ready.
const (
	scorePassThreshold = 80.0
	scoreWarnThreshold = 60.0

	StatusPass = "PASS"
	StatusWarn = "WARN"
	StatusFail = "FAIL"
)

// CheckResult is the outcome of one validation probe.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// CategoryResult is one scored validation category (0-100).
type CategoryResult struct {
	Score  float64       `json:"score"`
	Checks []CheckResult `json:"checks"`
}

// ValidationReport is the full outcome of one validation run.
type ValidationReport struct {
	ValidationTimestamp string             `json:"validation_timestamp"`
	Bucket              string             `json:"bucket"`
	Region              string             `json:"region"`
	Infrastructure      CategoryResult     `json:"infrastructure"`
	DataQuality         CategoryResult     `json:"data_quality"`
	FrameworkKnowledge  CategoryResult     `json:"framework_knowledge"`
	ResearchCompliance  CategoryResult     `json:"research_compliance"`
	ComponentScores     map[string]float64 `json:"component_scores"`
	OverallScore        float64            `json:"overall_score"`
	Status              string             `json:"status"`
	Recommendations     []string           `json:"recommendations"`
	Error               string             `json:"error,omitempty"`
}

// ExitCode maps the report status to the process exit code contract:
// 0 ready, 1 usable with warnings, 2 not ready (or validation crashed).
func (r ValidationReport) ExitCode() int {
	switch r.Status {
	case StatusPass:
		return 0
	case StatusWarn:
		return 1
	default:
		return 2
	}
}

// Object keys the deployment is expected to carry. Labeled corpora and
// feature tables live under processed/, knowledge documents under
// framework_knowledge/.
func expectedTrainingObjects() []string {
	keys := []string{"processed/combined_labeled_dataset.json"}
	for _, dataset := range sortedDatasetNames() {
		keys = append(keys, "processed/"+dataset+"_labeled.json")
	}
	return keys
}

func expectedFeatureObjects() []string {
	var keys []string
	for _, dataset := range sortedDatasetNames() {
		keys = append(keys, "processed/"+dataset+"_features.csv")
	}
	return keys
}

func expectedKnowledgeObjects() []string {
	var keys []string
	for _, name := range knowledgeFiles {
		keys = append(keys, "framework_knowledge/"+name)
	}
	return keys
}

// Validator probes one deployment. Both remote dependencies sit behind
// interfaces so the scoring logic is testable without AWS or API credentials.
type Validator struct {
	cfg     Config
	objects ObjectStore
	models  ModelLister
	db      *sql.DB
}

func NewValidator(cfg Config, objects ObjectStore, models ModelLister, db *sql.DB) *Validator {
	return &Validator{cfg: cfg, objects: objects, models: models, db: db}
}

func (v *Validator) checkContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(v.cfg.CheckTimeoutSeconds)*time.Second)
}

// Run executes every category and assembles the weighted report. A panic in
// any probe is recorded in the report instead of crashing the run; the report
// then carries FAIL and exit code 2.
func (v *Validator) Run(ctx context.Context) (report ValidationReport) {
	report = ValidationReport{
		ValidationTimestamp: time.Now().UTC().Format(time.RFC3339),
		Bucket:              v.cfg.S3Bucket,
		Region:              v.cfg.AWSRegion,
		Status:              StatusFail,
	}

	defer func() {
		if rec := recover(); rec != nil {
			report.Error = fmt.Sprintf("validation aborted: %v", rec)
			report.Status = StatusFail
			report.OverallScore = 0
			log.Printf("validate panic recovered: %v", rec)
		}
	}()

	report.Infrastructure = v.validateInfrastructure(ctx)
	report.DataQuality = v.validateDataQuality(ctx)
	report.FrameworkKnowledge = v.validateFrameworkKnowledge(ctx)
	report.ResearchCompliance = v.validateResearchCompliance(ctx)

	report.ComponentScores = map[string]float64{
		"infrastructure":      report.Infrastructure.Score,
		"data_quality":        report.DataQuality.Score,
		"framework_knowledge": report.FrameworkKnowledge.Score,
		"research_compliance": report.ResearchCompliance.Score,
	}
	report.OverallScore = report.Infrastructure.Score*weightInfrastructure +
		report.DataQuality.Score*weightDataQuality +
		report.FrameworkKnowledge.Score*weightFrameworkKnowledge +
		report.ResearchCompliance.Score*weightResearchCompliance

	switch {
	case report.OverallScore >= scorePassThreshold:
		report.Status = StatusPass
	case report.OverallScore >= scoreWarnThreshold:
		report.Status = StatusWarn
	default:
		report.Status = StatusFail
	}

	report.Recommendations = buildValidationRecommendations(report)
	return report
}

// validateInfrastructure scores the storage bucket (25), the four database
// tables (50, pro-rated), and hosted model access (25).
func (v *Validator) validateInfrastructure(ctx context.Context) CategoryResult {
	var result CategoryResult

	bucketCheck := CheckResult{Name: "storage_bucket"}
	{
		cctx, cancel := v.checkContext(ctx)
		exists, err := v.objects.BucketExists(cctx)
		cancel()
		switch {
		case err != nil:
			bucketCheck.Error = err.Error()
		case exists:
			bucketCheck.Passed = true
			bucketCheck.Detail = v.cfg.S3Bucket
			result.Score += 25
		default:
			bucketCheck.Detail = fmt.Sprintf("bucket %s not found", v.cfg.S3Bucket)
		}
	}
	result.Checks = append(result.Checks, bucketCheck)

	present := 0
	for _, table := range requiredTables {
		check := CheckResult{Name: "table_" + table}
		exists, count, err := TableStatus(v.db, table)
		switch {
		case err != nil:
			check.Error = err.Error()
		case exists:
			check.Passed = true
			check.Detail = fmt.Sprintf("%d rows", count)
			present++
		default:
			check.Detail = "table missing"
		}
		result.Checks = append(result.Checks, check)
	}
	result.Score += 50 * float64(present) / float64(len(requiredTables))

	modelCheck := CheckResult{Name: "model_access"}
	{
		cctx, cancel := v.checkContext(ctx)
		ids, err := v.models.ListModelIDs(cctx)
		cancel()
		switch {
		case err != nil:
			modelCheck.Error = err.Error()
		case modelAvailable(ids, v.cfg.AnthropicModel):
			modelCheck.Passed = true
			modelCheck.Detail = v.cfg.AnthropicModel
			result.Score += 25
		default:
			modelCheck.Detail = fmt.Sprintf("model %s not in catalog (%d models visible)", v.cfg.AnthropicModel, len(ids))
		}
	}
	result.Checks = append(result.Checks, modelCheck)

	return result
}

// validateDataQuality scores the proportion of expected training, feature
// and knowledge objects actually present in the bucket.
func (v *Validator) validateDataQuality(ctx context.Context) CategoryResult {
	var result CategoryResult

	expected := append(expectedTrainingObjects(), expectedFeatureObjects()...)
	expected = append(expected, expectedKnowledgeObjects()...)
	found := 0
	for _, key := range expected {
		check := CheckResult{Name: key}
		cctx, cancel := v.checkContext(ctx)
		info, ok, err := v.objects.HeadObject(cctx, key)
		cancel()
		switch {
		case err != nil:
			check.Error = err.Error()
		case ok:
			check.Passed = true
			check.Detail = fmt.Sprintf("%d bytes, modified %s", info.SizeBytes, info.LastModified.Format("2006-01-02"))
			found++
		default:
			check.Detail = "object missing"
		}
		result.Checks = append(result.Checks, check)
	}

	result.Score = 100 * float64(found) / float64(len(expected))
	return result
}

// validateFrameworkKnowledge fetches the knowledge documents and verifies
// their structure: six criteria, equally weighted.
func (v *Validator) validateFrameworkKnowledge(ctx context.Context) CategoryResult {
	var result CategoryResult

	var agile AgileManifesto
	var lean LeanKnowledge
	var om OperatingModelKnowledge
	var rules DetectionRules

	fetch := func(key string, out any) error {
		cctx, cancel := v.checkContext(ctx)
		defer cancel()
		return v.objects.FetchJSON(cctx, key, out)
	}

	agileErr := fetch("framework_knowledge/agile_manifesto.json", &agile)
	leanErr := fetch("framework_knowledge/lean_principles.json", &lean)
	omErr := fetch("framework_knowledge/operating_model_frameworks.json", &om)
	rulesErr := fetch("framework_knowledge/inefficiency_detection_rules.json", &rules)

	criteria := []struct {
		name   string
		err    error
		passed bool
		detail string
	}{
		{
			name:   "agile_values_complete",
			err:    agileErr,
			passed: len(agile.Values) == 4,
			detail: fmt.Sprintf("%d of 4 values", len(agile.Values)),
		},
		{
			name:   "agile_principles_complete",
			err:    agileErr,
			passed: len(agile.Principles) == 12,
			detail: fmt.Sprintf("%d of 12 principles", len(agile.Principles)),
		},
		{
			name:   "lean_seven_wastes_complete",
			err:    leanErr,
			passed: len(lean.SevenWastes) == 7,
			detail: fmt.Sprintf("%d of 7 wastes", len(lean.SevenWastes)),
		},
		{
			name:   "lean_principles_complete",
			err:    leanErr,
			passed: len(lean.LeanPrinciples) == 5,
			detail: fmt.Sprintf("%d of 5 principles", len(lean.LeanPrinciples)),
		},
		{
			name:   "operating_model_elements_complete",
			err:    omErr,
			passed: len(om.McKinseyOrganizeToValue.Elements) == 5,
			detail: fmt.Sprintf("%d of 5 elements", len(om.McKinseyOrganizeToValue.Elements)),
		},
		{
			name:   "integrated_recommendations_present",
			err:    rulesErr,
			passed: len(rules.IntegratedOptimizationRecommendations) >= 3,
			detail: fmt.Sprintf("%d integrated recommendation patterns", len(rules.IntegratedOptimizationRecommendations)),
		},
	}

	passed := 0
	for _, c := range criteria {
		check := CheckResult{Name: c.name}
		if c.err != nil {
			check.Error = c.err.Error()
		} else if c.passed {
			check.Passed = true
			check.Detail = c.detail
			passed++
		} else {
			check.Detail = c.detail
		}
		result.Checks = append(result.Checks, check)
	}

	result.Score = 100 * float64(passed) / float64(len(criteria))
	return result
}

// validateResearchCompliance verifies the deployment carries the research
// grounding: configuration rows, cited sources, complete detection rules,
// and a labeled corpus with valid severity levels. Four criteria, 25 each.
func (v *Validator) validateResearchCompliance(ctx context.Context) CategoryResult {
	var result CategoryResult

	configCheck := CheckResult{Name: "research_configuration_present"}
	rows, err := GetConfigurationRows(v.db)
	if err != nil {
		configCheck.Error = err.Error()
	} else {
		var missing []string
		for _, want := range defaultConfiguration {
			if _, ok := rows[want.Key]; !ok {
				missing = append(missing, want.Key)
			}
		}
		if len(missing) == 0 {
			configCheck.Passed = true
			configCheck.Detail = fmt.Sprintf("%d configuration rows", len(rows))
			result.Score += 25
		} else {
			configCheck.Detail = "missing keys: " + strings.Join(missing, ", ")
		}
	}
	result.Checks = append(result.Checks, configCheck)

	sourceCheck := CheckResult{Name: "framework_sources_cited"}
	{
		var agile AgileManifesto
		var lean LeanKnowledge
		cctx, cancel := v.checkContext(ctx)
		agileErr := v.objects.FetchJSON(cctx, "framework_knowledge/agile_manifesto.json", &agile)
		cancel()
		cctx, cancel = v.checkContext(ctx)
		leanErr := v.objects.FetchJSON(cctx, "framework_knowledge/lean_principles.json", &lean)
		cancel()
		switch {
		case agileErr != nil:
			sourceCheck.Error = agileErr.Error()
		case leanErr != nil:
			sourceCheck.Error = leanErr.Error()
		case agile.Source != "" && agile.URL != "" && lean.Source != "":
			sourceCheck.Passed = true
			sourceCheck.Detail = agile.Source + "; " + lean.Source
			result.Score += 25
		default:
			sourceCheck.Detail = "knowledge documents missing source citations"
		}
	}
	result.Checks = append(result.Checks, sourceCheck)

	rulesCheck := CheckResult{Name: "detection_rules_complete"}
	{
		var rules DetectionRules
		cctx, cancel := v.checkContext(ctx)
		err := v.objects.FetchJSON(cctx, "framework_knowledge/inefficiency_detection_rules.json", &rules)
		cancel()
		switch {
		case err != nil:
			rulesCheck.Error = err.Error()
		case len(rules.AgileViolations) >= 4 && len(rules.LeanWasteDetection) == 7 && len(rules.OperatingModelViolations) >= 3:
			rulesCheck.Passed = true
			rulesCheck.Detail = fmt.Sprintf("%d agile, %d lean, %d operating model rules",
				len(rules.AgileViolations), len(rules.LeanWasteDetection), len(rules.OperatingModelViolations))
			result.Score += 25
		default:
			rulesCheck.Detail = fmt.Sprintf("incomplete rule sets: %d agile, %d lean, %d operating model",
				len(rules.AgileViolations), len(rules.LeanWasteDetection), len(rules.OperatingModelViolations))
		}
	}
	result.Checks = append(result.Checks, rulesCheck)

	corpusCheck := CheckResult{Name: "labeled_corpus_present"}
	{
		total, bySeverity, err := LabeledCaseCounts(v.db)
		if err != nil {
			corpusCheck.Error = err.Error()
		} else {
			validLevels := true
			for level := range bySeverity {
				if level != SeverityLow && level != SeverityMedium && level != SeverityHigh {
					validLevels = false
				}
			}
			if total > 0 && validLevels {
				var parts []string
				for _, level := range []string{SeverityHigh, SeverityMedium, SeverityLow} {
					if n := bySeverity[level]; n > 0 {
						parts = append(parts, fmt.Sprintf("%s=%d", level, n))
					}
				}
				corpusCheck.Passed = true
				corpusCheck.Detail = fmt.Sprintf("%d labeled cases (%s)", total, strings.Join(parts, " "))
				result.Score += 25
			} else if total == 0 {
				corpusCheck.Detail = "no labeled cases stored"
			} else {
				corpusCheck.Detail = "labeled cases carry unknown severity levels"
			}
		}
	}
	result.Checks = append(result.Checks, corpusCheck)

	return result
}

// buildValidationRecommendations derives operator guidance from failed
// checks, one line per category with gaps.
func buildValidationRecommendations(report ValidationReport) []string {
	var recs []string

	if report.Infrastructure.Score < 100 {
		for _, check := range report.Infrastructure.Checks {
			if check.Passed {
				continue
			}
			switch {
			case check.Name == "storage_bucket":
				recs = append(recs, "Create or grant access to the training data bucket "+report.Bucket)
			case strings.HasPrefix(check.Name, "table_"):
				recs = append(recs, "Initialize missing database table "+strings.TrimPrefix(check.Name, "table_")+" (run any pipeline command)")
			case check.Name == "model_access":
				recs = append(recs, "Verify the API key and configured model ID grant access to the hosted model")
			}
		}
	}
	if report.DataQuality.Score < 100 {
		missing := 0
		for _, check := range report.DataQuality.Checks {
			if !check.Passed {
				missing++
			}
		}
		recs = append(recs, fmt.Sprintf("Upload %d missing training data objects (run extract and label, then sync processed/ to the bucket)", missing))
	}
	if report.FrameworkKnowledge.Score < 100 {
		recs = append(recs, "Regenerate and upload the framework knowledge documents (run knowledge, then sync framework_knowledge/ to the bucket)")
	}
	if report.ResearchCompliance.Score < 100 {
		for _, check := range report.ResearchCompliance.Checks {
			if check.Passed {
				continue
			}
			switch check.Name {
			case "research_configuration_present":
				recs = append(recs, "Seed the system configuration rows (reinitialize the database)")
			case "framework_sources_cited":
				recs = append(recs, "Regenerate the knowledge documents so framework sources are cited")
			case "detection_rules_complete":
				recs = append(recs, "Regenerate the detection rules document; rule sets are incomplete")
			case "labeled_corpus_present":
				recs = append(recs, "Run the labeling pipeline to populate the labeled case corpus")
			}
		}
	}

	sort.Strings(recs)
	return recs
}
