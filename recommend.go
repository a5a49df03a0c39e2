package main

// Fixed recommendation text per inefficiency type. The tables also cover
// director bottlenecks and late submissions, which no current detection rule
// emits; keeping them means a future rule gets advice for free.
var recommendationTexts = map[string]string{
	FindingSupervisorApprovalBottleneck:   "Increase number of supervisors or implement delegation rules. Consider automated pre-approval for low-value requests.",
	FindingDirectorApprovalBottleneck:     "Implement escalation rules. Director approval should only be required for high-value or high-risk requests.",
	FindingExcessiveRejections:            "Implement pre-validation checks and automated compliance screening before submission.",
	FindingExcessiveDurationInternational: "Streamline international approval process. Consider regional approval authorities.",
	FindingExcessiveDurationDomestic:      "Implement automated approval for standard domestic travel below threshold amounts.",
	FindingProcessComplexity:              "Consolidate approval steps. Remove redundant activities and parallel process where possible.",
	FindingLateSubmission:                 "Implement automated reminder system and mobile expense reporting capabilities.",
}

var expectedImprovements = map[string]string{
	FindingSupervisorApprovalBottleneck:   "30-50% reduction in approval time",
	FindingDirectorApprovalBottleneck:     "40-60% reduction in high-level approval time",
	FindingExcessiveRejections:            "2-14 day reduction in rework cycles",
	FindingExcessiveDurationInternational: "20-30% reduction in total process time",
	FindingExcessiveDurationDomestic:      "40-60% reduction in total process time",
	FindingProcessComplexity:              "15-25% reduction in administrative overhead",
	FindingLateSubmission:                 "80% reduction in late submissions",
}

// Defaults for unmapped finding types. The type enumeration is not closed,
// so this fallback path must stay.
const (
	defaultRecommendation      = "Review and optimize process flow"
	defaultExpectedImprovement = "10-20% general improvement"
)

// RecommendationFor returns the fixed advice for a finding type, falling back
// to the documented default for unmapped types.
func RecommendationFor(findingType string) string {
	if text, ok := recommendationTexts[findingType]; ok {
		return text
	}
	return defaultRecommendation
}

// ExpectedImprovementFor mirrors RecommendationFor for the improvement text.
func ExpectedImprovementFor(findingType string) string {
	if text, ok := expectedImprovements[findingType]; ok {
		return text
	}
	return defaultExpectedImprovement
}

// BuildRecommendations maps each finding to its recommendation record,
// carrying over the framework violation context.
func BuildRecommendations(findings []InefficiencyFinding) []Recommendation {
	if len(findings) == 0 {
		return nil
	}
	recs := make([]Recommendation, 0, len(findings))
	for _, finding := range findings {
		rec := Recommendation{
			InefficiencyType:    finding.Type,
			Recommendation:      RecommendationFor(finding.Type),
			ExpectedImprovement: ExpectedImprovementFor(finding.Type),
			FrameworkBasis:      finding.FrameworkViolation.Optimization,
			LeanPrinciple:       finding.FrameworkViolation.LeanWaste,
			AgilePrinciple:      finding.FrameworkViolation.AgilePrinciple,
		}
		if rec.FrameworkBasis == "" {
			rec.FrameworkBasis = "general_process_improvement"
		}
		if rec.LeanPrinciple == "" {
			rec.LeanPrinciple = "unknown"
		}
		if rec.AgilePrinciple == "" {
			rec.AgilePrinciple = "unknown"
		}
		recs = append(recs, rec)
	}
	return recs
}
