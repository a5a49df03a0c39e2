package main

import (
	"fmt"
	"strings"
)

// WriteValidationReport persists the full report as JSON.
func WriteValidationReport(report ValidationReport, path string) error {
	return writeJSONFile(path, report)
}

// RenderValidationText formats the report for operators reading a terminal
// or a text artifact. One section per category, one line per check.
func RenderValidationText(report ValidationReport) string {
	var b strings.Builder

	rule := strings.Repeat("=", 64)
	b.WriteString(rule + "\n")
	b.WriteString("DEPLOYMENT VALIDATION REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", report.ValidationTimestamp)
	fmt.Fprintf(&b, "Bucket:    %s (%s)\n", report.Bucket, report.Region)
	b.WriteString("\n")

	if report.Error != "" {
		fmt.Fprintf(&b, "ERROR: %s\n", report.Error)
		b.WriteString(rule + "\n")
		fmt.Fprintf(&b, "STATUS: %s\n", report.Status)
		return b.String()
	}

	writeCategory(&b, "Infrastructure", weightInfrastructure, report.Infrastructure)
	writeCategory(&b, "Data Quality", weightDataQuality, report.DataQuality)
	writeCategory(&b, "Framework Knowledge", weightFrameworkKnowledge, report.FrameworkKnowledge)
	writeCategory(&b, "Research Compliance", weightResearchCompliance, report.ResearchCompliance)

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "OVERALL SCORE: %.1f / 100\n", report.OverallScore)
	fmt.Fprintf(&b, "STATUS: %s\n", report.Status)

	if len(report.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}
	b.WriteString(rule + "\n")

	return b.String()
}

func writeCategory(b *strings.Builder, title string, weight float64, cat CategoryResult) {
	fmt.Fprintf(b, "%s (weight %.0f%%): %.1f / 100\n", title, weight*100, cat.Score)
	for _, check := range cat.Checks {
		mark := "FAIL"
		if check.Passed {
			mark = "ok"
		}
		line := fmt.Sprintf("  [%-4s] %s", mark, check.Name)
		if check.Detail != "" {
			line += ": " + check.Detail
		}
		if check.Error != "" {
			line += " (error: " + check.Error + ")"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}
