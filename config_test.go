package main

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "DATA_DIR", "PROCESSED_DIR", "KNOWLEDGE_DIR", "DB_PATH",
		"S3_BUCKET", "AWS_REGION", "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL",
		"SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "CHECK_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
	// Point at a path that does not exist so a developer's config.yaml
	// cannot leak into the test.
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := LoadConfig()

	if cfg.DataDir != "./data/bpi_challenge_2020" {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.ProcessedDir != "./data/processed" {
		t.Errorf("unexpected processed dir %q", cfg.ProcessedDir)
	}
	if cfg.KnowledgeDir != "./data/framework_knowledge" {
		t.Errorf("unexpected knowledge dir %q", cfg.KnowledgeDir)
	}
	if cfg.DBPath != "./procmine.db" {
		t.Errorf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.S3Bucket != "workflow-optimization-data" {
		t.Errorf("unexpected bucket %q", cfg.S3Bucket)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("unexpected region %q", cfg.AWSRegion)
	}
	if cfg.AnthropicModel != defaultAnthropicModel {
		t.Errorf("unexpected model %q", cfg.AnthropicModel)
	}
	if cfg.CheckTimeoutSeconds != 30 {
		t.Errorf("unexpected timeout %d", cfg.CheckTimeoutSeconds)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `data_dir: /srv/logs
s3_bucket: my-training-bucket
aws_region: eu-west-1
check_timeout_seconds: 10
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg := LoadConfig()

	if cfg.DataDir != "/srv/logs" {
		t.Errorf("yaml data_dir not applied: %q", cfg.DataDir)
	}
	if cfg.S3Bucket != "my-training-bucket" || cfg.AWSRegion != "eu-west-1" {
		t.Errorf("yaml bucket/region not applied: %q %q", cfg.S3Bucket, cfg.AWSRegion)
	}
	if cfg.CheckTimeoutSeconds != 10 {
		t.Errorf("yaml timeout not applied: %d", cfg.CheckTimeoutSeconds)
	}
	// Unset keys still fall back to defaults.
	if cfg.DBPath != "./procmine.db" {
		t.Errorf("default db path lost: %q", cfg.DBPath)
	}
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("aws_region: eu-west-1\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("AWS_REGION", "ap-southeast-2")
	t.Setenv("ANTHROPIC_MODEL", "claude-opus-4-1")
	t.Setenv("CHECK_TIMEOUT_SECONDS", "5")

	cfg := LoadConfig()

	if cfg.AWSRegion != "ap-southeast-2" {
		t.Errorf("env should win over yaml, got %q", cfg.AWSRegion)
	}
	if cfg.AnthropicModel != "claude-opus-4-1" {
		t.Errorf("env model not applied: %q", cfg.AnthropicModel)
	}
	if cfg.CheckTimeoutSeconds != 5 {
		t.Errorf("env timeout not applied: %d", cfg.CheckTimeoutSeconds)
	}
}
