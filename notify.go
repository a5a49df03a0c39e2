package main

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
)

// slackPoster is the one Slack call the notifier needs.
type slackPoster interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// PostValidationSummary posts a short score summary to the configured
// channel. The full report stays in the artifacts; Slack only gets the
// headline numbers.
func PostValidationSummary(api slackPoster, channelID string, report ValidationReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "*Deployment validation: %s* (%.1f/100)\n", report.Status, report.OverallScore)
	fmt.Fprintf(&b, "bucket `%s` region `%s`\n", report.Bucket, report.Region)
	fmt.Fprintf(&b, "infrastructure %.0f | data quality %.0f | framework knowledge %.0f | research compliance %.0f",
		report.Infrastructure.Score, report.DataQuality.Score,
		report.FrameworkKnowledge.Score, report.ResearchCompliance.Score)
	if report.Error != "" {
		fmt.Fprintf(&b, "\nvalidation error: %s", report.Error)
	}
	if len(report.Recommendations) > 0 {
		fmt.Fprintf(&b, "\ntop recommendation: %s", report.Recommendations[0])
	}

	_, _, err := api.PostMessage(channelID, slack.MsgOptionText(b.String(), false))
	if err != nil {
		return fmt.Errorf("post validation summary: %w", err)
	}
	return nil
}
