package main

import (
	"strings"
	"testing"
)

func TestRecommendationForKnownTypes(t *testing.T) {
	for _, findingType := range []string{
		FindingExcessiveDurationDomestic,
		FindingExcessiveDurationInternational,
		FindingSupervisorApprovalBottleneck,
		FindingDirectorApprovalBottleneck,
		FindingExcessiveRejections,
		FindingProcessComplexity,
		FindingLateSubmission,
	} {
		if RecommendationFor(findingType) == defaultRecommendation {
			t.Errorf("type %s should have specific advice, got the default", findingType)
		}
		if ExpectedImprovementFor(findingType) == defaultExpectedImprovement {
			t.Errorf("type %s should have a specific improvement estimate, got the default", findingType)
		}
	}
}

func TestRecommendationForUnknownTypeFallsBack(t *testing.T) {
	if got := RecommendationFor("something_new"); got != defaultRecommendation {
		t.Errorf("expected default recommendation, got %q", got)
	}
	if got := ExpectedImprovementFor("something_new"); got != defaultExpectedImprovement {
		t.Errorf("expected default improvement, got %q", got)
	}
}

func TestBuildRecommendations(t *testing.T) {
	if recs := BuildRecommendations(nil); recs != nil {
		t.Errorf("no findings should produce no recommendations, got %+v", recs)
	}

	findings := []InefficiencyFinding{
		{
			Type: FindingSupervisorApprovalBottleneck,
			FrameworkViolation: FrameworkViolation{
				LeanWaste:      "waiting",
				AgilePrinciple: "working_software_over_documentation",
				Optimization:   "increase_supervisors_or_delegation",
			},
		},
		{Type: "unmapped_type"},
	}

	recs := BuildRecommendations(findings)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	mapped := recs[0]
	if mapped.InefficiencyType != FindingSupervisorApprovalBottleneck {
		t.Errorf("unexpected type %s", mapped.InefficiencyType)
	}
	if !strings.Contains(mapped.Recommendation, "supervisors") {
		t.Errorf("unexpected advice %q", mapped.Recommendation)
	}
	if mapped.FrameworkBasis != "increase_supervisors_or_delegation" || mapped.LeanPrinciple != "waiting" {
		t.Errorf("framework context not carried over: %+v", mapped)
	}

	fallback := recs[1]
	if fallback.Recommendation != defaultRecommendation || fallback.ExpectedImprovement != defaultExpectedImprovement {
		t.Errorf("unmapped type should use defaults: %+v", fallback)
	}
	if fallback.FrameworkBasis != "general_process_improvement" {
		t.Errorf("expected general framework basis, got %q", fallback.FrameworkBasis)
	}
	if fallback.LeanPrinciple != "unknown" || fallback.AgilePrinciple != "unknown" {
		t.Errorf("expected unknown principles, got %+v", fallback)
	}
}
