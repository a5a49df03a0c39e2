package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/slack-go/slack"
)

const usageText = `usage: procmine <command> [flags]

commands:
  extract    load event logs and write per-case feature tables
  label      apply research thresholds to feature tables
  knowledge  generate the framework knowledge documents
  pipeline   extract, label and knowledge in sequence
  validate   score the cloud deployment (exit 0 ready, 1 warnings, 2 not ready)

validate flags:
  -region    override the AWS region
  -output    path for the JSON validation report
  -report    path for the text validation report
  -schedule  5-field cron expression for periodic revalidation
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	cfg := LoadConfig()

	switch os.Args[1] {
	case "extract":
		db := mustOpenDB(cfg)
		defer db.Close()
		if err := RunExtract(cfg, db); err != nil {
			log.Fatalf("extract failed: %v", err)
		}
	case "label":
		db := mustOpenDB(cfg)
		defer db.Close()
		if err := RunLabel(cfg, db); err != nil {
			log.Fatalf("label failed: %v", err)
		}
	case "knowledge":
		if err := RunKnowledge(cfg); err != nil {
			log.Fatalf("knowledge failed: %v", err)
		}
	case "pipeline":
		db := mustOpenDB(cfg)
		defer db.Close()
		if err := RunExtract(cfg, db); err != nil {
			log.Fatalf("pipeline extract failed: %v", err)
		}
		if err := RunLabel(cfg, db); err != nil {
			log.Fatalf("pipeline label failed: %v", err)
		}
		if err := RunKnowledge(cfg); err != nil {
			log.Fatalf("pipeline knowledge failed: %v", err)
		}
	case "validate":
		runValidate(cfg, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usageText)
		os.Exit(2)
	}
}

func mustOpenDB(cfg Config) *sql.DB {
	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	if err := SeedDefaultConfiguration(db); err != nil {
		log.Fatalf("Failed to seed configuration: %v", err)
	}
	return db
}

func runValidate(cfg Config, args []string) {
	flags := flag.NewFlagSet("validate", flag.ExitOnError)
	region := flags.String("region", "", "override the AWS region")
	jsonOut := flags.String("output", "", "path for the JSON validation report")
	textOut := flags.String("report", "", "path for the text validation report")
	schedule := flags.String("schedule", "", "5-field cron expression for periodic revalidation")
	flags.Parse(args)

	if *region != "" {
		cfg.AWSRegion = *region
	}

	db := mustOpenDB(cfg)
	defer db.Close()

	ctx := context.Background()
	store, err := NewS3Store(ctx, cfg.S3Bucket, cfg.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to init object store: %v", err)
	}
	validator := NewValidator(cfg, store, NewAnthropicModels(cfg.AnthropicAPIKey), db)

	var api *slack.Client
	if cfg.SlackChannelID != "" {
		api = slack.New(cfg.SlackBotToken)
	}

	runOnce := func() ValidationReport {
		report := validator.Run(ctx)
		persistValidationReport(cfg, db, api, report, *jsonOut, *textOut)
		return report
	}

	if *schedule != "" {
		if err := RunValidationLoop(*schedule, runOnce); err != nil {
			log.Fatalf("validate schedule failed: %v", err)
		}
		return
	}

	report := runOnce()
	fmt.Print(RenderValidationText(report))
	os.Exit(report.ExitCode())
}

// persistValidationReport stores the run and writes the optional report
// artifacts. Persistence failures are logged, not fatal: the report and its
// exit code still stand.
func persistValidationReport(cfg Config, db *sql.DB, api *slack.Client, report ValidationReport, jsonOut, textOut string) {
	doc, err := json.Marshal(report)
	if err != nil {
		log.Printf("validate marshal report error: %v", err)
	} else if err := InsertValidationRun(db, time.Now(), report.OverallScore, report.Status, doc); err != nil {
		log.Printf("validate store run error: %v", err)
	}

	if jsonOut != "" {
		if err := WriteValidationReport(report, jsonOut); err != nil {
			log.Printf("validate write json report error: %v", err)
		} else {
			log.Printf("validate wrote %s", jsonOut)
		}
	}
	if textOut != "" {
		if err := os.WriteFile(textOut, []byte(RenderValidationText(report)), 0644); err != nil {
			log.Printf("validate write text report error: %v", err)
		} else {
			log.Printf("validate wrote %s", textOut)
		}
	}

	if api != nil {
		if err := PostValidationSummary(api, cfg.SlackChannelID, report); err != nil {
			log.Printf("validate slack post error: %v", err)
		}
	}
}
