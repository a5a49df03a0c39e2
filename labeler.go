package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ThresholdTable holds the research-validated thresholds from the published
// BPI Challenge 2020 analyses. Read-only after initialization.
//
// Research findings behind the numbers:
//   - Domestic declarations: 8-11 days average, 95.62% success rate
//   - International declarations: 66-86 days average, 95.94% success rate
//   - Supervisor approval bottleneck: 39 days average (45.3% of process time)
//   - Director approval bottleneck: 55 days average (63.9% of process time)
//   - Rejection rates: 12% domestic, 27% international
type ThresholdTable struct {
	DomesticNormalDuration         float64 // research: 8-11 days normal
	DomesticExcessiveDuration      float64 // 80% above normal
	InternationalNormalDuration    float64 // research: 66-86 days normal
	InternationalExcessiveDuration float64 // 75% above normal
	SupervisorApprovalBottleneck   float64 // research: 39 days average
	DirectorApprovalBottleneck     float64 // research: 55 days average
	ExcessiveRejections            int     // research: >2 rejections = inefficient
	ProcessComplexityActivities    int     // typical approval workflows run 8-15 activities
}

var researchThresholds = ThresholdTable{
	DomesticNormalDuration:         11,
	DomesticExcessiveDuration:      20,
	InternationalNormalDuration:    86,
	InternationalExcessiveDuration: 150,
	SupervisorApprovalBottleneck:   30,
	DirectorApprovalBottleneck:     45,
	ExcessiveRejections:            2,
	ProcessComplexityActivities:    20,
}

// frameworkMappings ties each inefficiency class to the Lean waste, Agile
// principle, and optimization tag it violates.
var frameworkMappings = map[string]FrameworkViolation{
	FindingSupervisorApprovalBottleneck: {
		LeanWaste:      "waiting",
		AgilePrinciple: "working_software_over_documentation",
		Optimization:   "increase_supervisors_or_delegation",
	},
	FindingDirectorApprovalBottleneck: {
		LeanWaste:      "waiting",
		AgilePrinciple: "responding_to_change",
		Optimization:   "implement_escalation_rules",
	},
	FindingExcessiveRejections: {
		LeanWaste:      "defects",
		AgilePrinciple: "working_software_over_documentation",
		Optimization:   "implement_pre_validation_checks",
	},
	"excessive_duration": {
		LeanWaste:      "waiting",
		AgilePrinciple: "deliver_working_software_frequently",
		Optimization:   "streamline_approval_process",
	},
	FindingLateSubmission: {
		LeanWaste:      "transportation",
		AgilePrinciple: "deliver_working_software_frequently",
		Optimization:   "implement_automated_reminders",
	},
	FindingProcessComplexity: {
		LeanWaste:      "overprocessing",
		AgilePrinciple: "simplicity",
		Optimization:   "consolidate_approval_steps",
	},
}

// Per-finding-type improvement potential percentages, from the research.
var optimizationWeights = map[string]float64{
	FindingSupervisorApprovalBottleneck:   45.3, // 45.3% of process time
	FindingExcessiveDurationInternational: 30,   // conservative 30% reduction potential
	FindingExcessiveDurationDomestic:      50,   // higher potential for domestic
	FindingExcessiveRejections:            20,   // avoid rework cycles
	FindingProcessComplexity:              15,   // streamline activities
}

const optimizationPotentialCap = 80

// LabelCase applies the research thresholds to one feature record. Rules are
// independent; a case may match several. Returns the findings in detection
// order, the summed severity score, and the capped optimization potential.
func LabelCase(f CaseFeatures) ([]InefficiencyFinding, int, float64) {
	var findings []InefficiencyFinding
	severityScore := 0

	// Duration rule, branched on domestic vs international.
	if f.IsInternational {
		if f.TotalDurationDays > researchThresholds.InternationalExcessiveDuration {
			severity := SeverityMedium
			if f.TotalDurationDays > 200 {
				severity = SeverityHigh
			}
			findings = append(findings, InefficiencyFinding{
				Type:               FindingExcessiveDurationInternational,
				Severity:           severity,
				ActualValue:        f.TotalDurationDays,
				ExpectedRange:      "66-86 days",
				FrameworkViolation: frameworkMappings["excessive_duration"],
			})
			if severity == SeverityHigh {
				severityScore += 3
			} else {
				severityScore += 2
			}
		}
	} else {
		if f.TotalDurationDays > researchThresholds.DomesticExcessiveDuration {
			severity := SeverityMedium
			if f.TotalDurationDays > 30 {
				severity = SeverityHigh
			}
			findings = append(findings, InefficiencyFinding{
				Type:               FindingExcessiveDurationDomestic,
				Severity:           severity,
				ActualValue:        f.TotalDurationDays,
				ExpectedRange:      "8-11 days",
				FrameworkViolation: frameworkMappings["excessive_duration"],
			})
			if severity == SeverityHigh {
				severityScore += 3
			} else {
				severityScore += 2
			}
		}
	}

	// Approval bottleneck rule.
	if f.ApprovalTimeDays != nil && *f.ApprovalTimeDays > researchThresholds.SupervisorApprovalBottleneck {
		severity := SeverityMedium
		if *f.ApprovalTimeDays > 50 {
			severity = SeverityHigh
		}
		findings = append(findings, InefficiencyFinding{
			Type:               FindingSupervisorApprovalBottleneck,
			Severity:           severity,
			ActualValue:        *f.ApprovalTimeDays,
			ExpectedRange:      "3-5 days",
			ResearchFinding:    "39 days average (45.3% of total process time)",
			FrameworkViolation: frameworkMappings[FindingSupervisorApprovalBottleneck],
		})
		severityScore += 3
	}

	// Rejection rule. The expected rate is descriptive context from the
	// published rejection-rate figures; the threshold itself is count-based.
	if f.RejectionCount > researchThresholds.ExcessiveRejections {
		severity := SeverityMedium
		if f.RejectionCount > 3 {
			severity = SeverityHigh
		}
		expectedRate := "12%"
		if f.IsInternational {
			expectedRate = "27%"
		}
		findings = append(findings, InefficiencyFinding{
			Type:               FindingExcessiveRejections,
			Severity:           severity,
			ActualValue:        float64(f.RejectionCount),
			ExpectedRate:       expectedRate,
			ResearchFinding:    "Normal rejection rate: " + expectedRate,
			FrameworkViolation: frameworkMappings[FindingExcessiveRejections],
		})
		severityScore += 2
	}

	// Complexity rule: too many activities = process bloat.
	if f.ActivityCount > researchThresholds.ProcessComplexityActivities {
		findings = append(findings, InefficiencyFinding{
			Type:               FindingProcessComplexity,
			Severity:           SeverityMedium,
			ActualValue:        float64(f.ActivityCount),
			ExpectedRange:      "8-15 activities",
			FrameworkViolation: frameworkMappings[FindingProcessComplexity],
		})
		severityScore += 1
	}

	return findings, severityScore, optimizationPotential(findings)
}

func optimizationPotential(findings []InefficiencyFinding) float64 {
	if len(findings) == 0 {
		return 0
	}
	total := 0.0
	for _, finding := range findings {
		total += optimizationWeights[finding.Type]
	}
	if total > optimizationPotentialCap {
		return optimizationPotentialCap
	}
	return total
}

// SeverityLevel buckets a severity score: high >= 5, medium >= 2, else low.
func SeverityLevel(score int) string {
	switch {
	case score >= 5:
		return SeverityHigh
	case score >= 2:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// LabelDataset labels every case in a feature table and attaches
// recommendations and the training label.
func LabelDataset(features []CaseFeatures) []LabeledCase {
	labeled := make([]LabeledCase, 0, len(features))
	for _, f := range features {
		findings, score, potential := LabelCase(f)

		primary := ""
		if len(findings) > 0 {
			primary = findings[0].Type
		}

		labeled = append(labeled, LabeledCase{
			CaseID:                      f.CaseID,
			InputFeatures:               f,
			Inefficiencies:              findings,
			SeverityScore:               score,
			TotalInefficiencyCount:      len(findings),
			OptimizationPotential:       potential,
			OptimizationRecommendations: BuildRecommendations(findings),
			TrainingLabel: TrainingLabel{
				HasInefficiencies:            len(findings) > 0,
				SeverityLevel:                SeverityLevel(score),
				PrimaryBottleneck:            primary,
				OptimizationPotentialPercent: potential,
			},
		})
	}
	return labeled
}

func datasetStats(dataset string, labeled []LabeledCase) DatasetStats {
	stats := DatasetStats{Dataset: dataset, TotalCases: len(labeled)}
	for _, c := range labeled {
		if c.TrainingLabel.HasInefficiencies {
			stats.Inefficient++
		}
		if c.TrainingLabel.SeverityLevel == SeverityHigh {
			stats.HighSeverity++
		}
	}
	return stats
}

// RunLabel labels every *_features.csv under cfg.ProcessedDir, writing one
// <dataset>_labeled.json per table plus the combined corpus document, and
// persists labeled rows for the validator to inspect.
func RunLabel(cfg Config, db *sql.DB) error {
	pattern := filepath.Join(cfg.ProcessedDir, "*_features.csv")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no feature tables found under %s (run extract first)", cfg.ProcessedDir)
	}
	sort.Strings(paths)

	var combined []LabeledCase
	for _, path := range paths {
		dataset := strings.TrimSuffix(filepath.Base(path), "_features.csv")

		features, err := ReadFeaturesCSV(path)
		if err != nil {
			log.Printf("label dataset=%s read error: %v", dataset, err)
			continue
		}

		labeled := LabelDataset(features)
		outPath := filepath.Join(cfg.ProcessedDir, dataset+"_labeled.json")
		if err := writeJSONFile(outPath, labeled); err != nil {
			return fmt.Errorf("write labeled cases for %s: %w", dataset, err)
		}
		if err := InsertLabeledCases(db, dataset, labeled); err != nil {
			return fmt.Errorf("store labeled cases for %s: %w", dataset, err)
		}

		stats := datasetStats(dataset, labeled)
		log.Printf("label dataset=%s cases=%d inefficient=%d (%.1f%%) high_severity=%d (%.1f%%) -> %s",
			dataset, stats.TotalCases, stats.Inefficient, stats.InefficientRate()*100,
			stats.HighSeverity, stats.HighSeverityRate()*100, outPath)

		combined = append(combined, labeled...)
	}

	combinedPath := filepath.Join(cfg.ProcessedDir, "combined_labeled_dataset.json")
	if err := writeJSONFile(combinedPath, combined); err != nil {
		return fmt.Errorf("write combined dataset: %w", err)
	}
	log.Printf("label combined cases=%d -> %s", len(combined), combinedPath)
	return nil
}

func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
