package main

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RunValidationLoop revalidates the deployment on a standard 5-field cron
// schedule, in the foreground, until the process is stopped.
// Examples: "0 6 * * *" (daily 6am), "0 6 * * 1" (Mondays 6am).
func RunValidationLoop(schedule string, runOnce func() ValidationReport) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		return fmt.Errorf("invalid validation schedule %q: %w", schedule, err)
	}

	log.Printf("validation scheduled (cron: %s)", schedule)
	for {
		now := time.Now()
		next := sched.Next(now)
		log.Printf("next validation at %s (in %s)", next.Format("Mon Jan 2 15:04"), next.Sub(now).Round(time.Minute))

		time.Sleep(next.Sub(now))

		report := runOnce()
		log.Printf("scheduled validation complete score=%.1f status=%s", report.OverallScore, report.Status)
	}
}
