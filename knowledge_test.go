package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBuildAgileManifestoStructure(t *testing.T) {
	agile := BuildAgileManifesto()

	if len(agile.Values) != 4 {
		t.Errorf("expected 4 values, got %d", len(agile.Values))
	}
	if len(agile.Principles) != 12 {
		t.Errorf("expected 12 principles, got %d", len(agile.Principles))
	}
	if agile.Source == "" || agile.URL == "" {
		t.Error("manifesto must cite its source")
	}
	for i, v := range agile.Values {
		if v.Value == "" || v.WorkflowApplication == "" || v.InefficiencyDetection == "" {
			t.Errorf("value %d incomplete: %+v", i, v)
		}
	}
	for i, p := range agile.Principles {
		if p.Principle == "" || p.Measurement == "" {
			t.Errorf("principle %d incomplete: %+v", i, p)
		}
	}
	if len(agile.OperatingModelDesignPrinciples) == 0 {
		t.Error("design principles missing")
	}
}

func TestBuildLeanPrinciplesStructure(t *testing.T) {
	lean := BuildLeanPrinciples()

	if len(lean.SevenWastes) != 7 {
		t.Errorf("expected 7 wastes, got %d", len(lean.SevenWastes))
	}
	if len(lean.LeanPrinciples) != 5 {
		t.Errorf("expected 5 principles, got %d", len(lean.LeanPrinciples))
	}

	seen := map[string]bool{}
	for _, w := range lean.SevenWastes {
		if w.Waste == "" || w.Definition == "" || len(w.DetectionMethods) == 0 || len(w.OptimizationStrategies) == 0 {
			t.Errorf("waste incomplete: %+v", w)
		}
		if seen[w.Waste] {
			t.Errorf("duplicate waste %s", w.Waste)
		}
		seen[w.Waste] = true
	}
}

func TestBuildOperatingModelFrameworksStructure(t *testing.T) {
	om := BuildOperatingModelFrameworks()

	if len(om.McKinseyOrganizeToValue.Elements) != 5 {
		t.Errorf("expected 5 elements, got %d", len(om.McKinseyOrganizeToValue.Elements))
	}
	if len(om.TargetOperatingModel.Components) != 5 {
		t.Errorf("expected 5 target components, got %d", len(om.TargetOperatingModel.Components))
	}
	if len(om.AgileOperatingModel.ImplementationPatterns) != 3 {
		t.Errorf("expected 3 implementation patterns, got %d", len(om.AgileOperatingModel.ImplementationPatterns))
	}
}

func TestBuildDetectionRulesStructure(t *testing.T) {
	rules := BuildDetectionRules()

	if len(rules.AgileViolations) != 4 {
		t.Errorf("expected 4 agile violation rules, got %d", len(rules.AgileViolations))
	}
	if len(rules.LeanWasteDetection) != 7 {
		t.Errorf("expected 7 lean waste rules, got %d", len(rules.LeanWasteDetection))
	}
	if len(rules.OperatingModelViolations) != 3 {
		t.Errorf("expected 3 operating model rules, got %d", len(rules.OperatingModelViolations))
	}
	if len(rules.IntegratedOptimizationRecommendations) < 3 {
		t.Errorf("expected at least 3 integrated recommendation patterns, got %d",
			len(rules.IntegratedOptimizationRecommendations))
	}
	for _, rule := range rules.LeanWasteDetection {
		if rule.WasteType == "" || rule.DetectionRule == "" || rule.Optimization == "" {
			t.Errorf("lean rule incomplete: %+v", rule)
		}
	}
}

func TestBuildTrainingPromptsNonEmpty(t *testing.T) {
	prompts := BuildTrainingPrompts()
	for name, text := range map[string]string{
		"workflow_analysis":              prompts.WorkflowAnalysisPrompt,
		"optimization_recommendation":    prompts.OptimizationRecommendationPrompt,
		"framework_alignment_assessment": prompts.FrameworkAlignmentAssessmentPrompt,
		"process_mining_analysis":        prompts.ProcessMiningAnalysisPrompt,
		"stakeholder_impact_analysis":    prompts.StakeholderImpactAnalysisPrompt,
	} {
		if strings.TrimSpace(text) == "" {
			t.Errorf("prompt %s is empty", name)
		}
	}
	// Templates carry the substitution slot for the data they analyze.
	if !strings.Contains(prompts.WorkflowAnalysisPrompt, "{workflow_data}") {
		t.Error("workflow analysis prompt missing its data placeholder")
	}
}

func TestRunKnowledgeWritesAllDocuments(t *testing.T) {
	cfg := Config{KnowledgeDir: filepath.Join(t.TempDir(), "framework_knowledge")}

	if err := RunKnowledge(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, name := range knowledgeFiles {
		path := filepath.Join(cfg.KnowledgeDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Errorf("%s is not valid JSON: %v", name, err)
		}
	}

	// The combined document nests every section the validator inspects.
	data, _ := os.ReadFile(filepath.Join(cfg.KnowledgeDir, "complete_framework_knowledge.json"))
	var combined CombinedKnowledge
	if err := json.Unmarshal(data, &combined); err != nil {
		t.Fatalf("decode combined document: %v", err)
	}
	if len(combined.Agile.Principles) != 12 || len(combined.Lean.SevenWastes) != 7 {
		t.Error("combined document missing framework sections")
	}
	if combined.Metadata.Version == "" || combined.Metadata.CreationDate == "" {
		t.Error("combined document missing metadata")
	}
}

func TestBuildCombinedKnowledgeTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	combined := BuildCombinedKnowledge(now)
	if combined.Metadata.CreationDate != "2025-06-01 12:30:00" {
		t.Errorf("unexpected creation date %q", combined.Metadata.CreationDate)
	}
}
