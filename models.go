package main

import "time"

// CaseEvent is one timestamped occurrence of a named activity within a case.
type CaseEvent struct {
	CaseID    string
	Activity  string
	Timestamp time.Time
}

// CaseFeatures is the per-case feature record consumed by the labeler.
// ApprovalTimeDays is nil when the case has no submit/approve event pair.
type CaseFeatures struct {
	CaseID            string   `json:"case_id"`
	TotalDurationDays float64  `json:"total_duration_days"`
	ActivityCount     int      `json:"activity_count"`
	UniqueActivities  int      `json:"unique_activities"`
	HasRejections     bool     `json:"has_rejections"`
	RejectionCount    int      `json:"rejection_count"`
	IsInternational   bool     `json:"is_international"`
	ApprovalTimeDays  *float64 `json:"approval_time_days,omitempty"`
}

// Finding types emitted by the labeler. The set is not closed: the
// recommendation tables also cover types no current rule produces.
const (
	FindingExcessiveDurationDomestic      = "excessive_duration_domestic"
	FindingExcessiveDurationInternational = "excessive_duration_international"
	FindingSupervisorApprovalBottleneck   = "supervisor_approval_bottleneck"
	FindingDirectorApprovalBottleneck     = "director_approval_bottleneck"
	FindingExcessiveRejections            = "excessive_rejections"
	FindingProcessComplexity              = "process_complexity"
	FindingLateSubmission                 = "late_submission"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// FrameworkViolation ties a finding back to the framework concept it breaks.
type FrameworkViolation struct {
	LeanWaste      string `json:"lean_waste"`
	AgilePrinciple string `json:"agile_principle"`
	Optimization   string `json:"optimization"`
}

// InefficiencyFinding is one detected violation of a research threshold.
// ExpectedRange, ExpectedRate and ResearchFinding are descriptive context
// from the published benchmarks; they are never compared against.
type InefficiencyFinding struct {
	Type               string             `json:"type"`
	Severity           string             `json:"severity"`
	ActualValue        float64            `json:"actual_value"`
	ExpectedRange      string             `json:"expected_range,omitempty"`
	ExpectedRate       string             `json:"expected_rate,omitempty"`
	ResearchFinding    string             `json:"research_finding,omitempty"`
	FrameworkViolation FrameworkViolation `json:"framework_violation"`
}

// Recommendation is the fixed optimization advice attached to one finding.
type Recommendation struct {
	InefficiencyType    string `json:"inefficiency_type"`
	Recommendation      string `json:"recommendation"`
	ExpectedImprovement string `json:"expected_improvement"`
	FrameworkBasis      string `json:"framework_basis"`
	LeanPrinciple       string `json:"lean_principle"`
	AgilePrinciple      string `json:"agile_principle"`
}

// TrainingLabel is the coarse per-case summary used as the training target.
type TrainingLabel struct {
	HasInefficiencies            bool    `json:"has_inefficiencies"`
	SeverityLevel                string  `json:"severity_level"`
	PrimaryBottleneck            string  `json:"primary_bottleneck,omitempty"`
	OptimizationPotentialPercent float64 `json:"optimization_potential_percent"`
}

// LabeledCase is the terminal artifact: one case with its features, findings,
// recommendations, and training label.
type LabeledCase struct {
	CaseID                      string                `json:"case_id"`
	InputFeatures               CaseFeatures          `json:"input_features"`
	Inefficiencies              []InefficiencyFinding `json:"inefficiencies"`
	SeverityScore               int                   `json:"severity_score"`
	TotalInefficiencyCount      int                   `json:"total_inefficiency_count"`
	OptimizationPotential       float64               `json:"optimization_potential"`
	OptimizationRecommendations []Recommendation      `json:"optimization_recommendations"`
	TrainingLabel               TrainingLabel         `json:"training_label"`
}

// DatasetStats summarizes one labeled dataset for operator logging.
type DatasetStats struct {
	Dataset      string
	TotalCases   int
	Inefficient  int
	HighSeverity int
}

func (s DatasetStats) InefficientRate() float64 {
	if s.TotalCases == 0 {
		return 0
	}
	return float64(s.Inefficient) / float64(s.TotalCases)
}

func (s DatasetStats) HighSeverityRate() float64 {
	if s.TotalCases == 0 {
		return 0
	}
	return float64(s.HighSeverity) / float64(s.TotalCases)
}
