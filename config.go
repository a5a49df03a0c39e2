package main

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir      string `yaml:"data_dir"`
	ProcessedDir string `yaml:"processed_dir"`
	KnowledgeDir string `yaml:"knowledge_dir"`
	DBPath       string `yaml:"db_path"`

	S3Bucket  string `yaml:"s3_bucket"`
	AWSRegion string `yaml:"aws_region"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`

	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`

	CheckTimeoutSeconds int `yaml:"check_timeout_seconds"`
}

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.DataDir, "DATA_DIR")
	envOverride(&cfg.ProcessedDir, "PROCESSED_DIR")
	envOverride(&cfg.KnowledgeDir, "KNOWLEDGE_DIR")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.S3Bucket, "S3_BUCKET")
	envOverride(&cfg.AWSRegion, "AWS_REGION")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.AnthropicModel, "ANTHROPIC_MODEL")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	envOverrideInt(&cfg.CheckTimeoutSeconds, "CHECK_TIMEOUT_SECONDS")

	// Defaults
	if cfg.DataDir == "" {
		cfg.DataDir = "./data/bpi_challenge_2020"
	}
	if cfg.ProcessedDir == "" {
		cfg.ProcessedDir = "./data/processed"
	}
	if cfg.KnowledgeDir == "" {
		cfg.KnowledgeDir = "./data/framework_knowledge"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./procmine.db"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "workflow-optimization-data"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.AnthropicModel == "" {
		cfg.AnthropicModel = defaultAnthropicModel
	}
	if cfg.CheckTimeoutSeconds == 0 {
		cfg.CheckTimeoutSeconds = 30
	}

	if cfg.CheckTimeoutSeconds < 1 {
		log.Fatalf("invalid check_timeout_seconds '%d': must be >= 1", cfg.CheckTimeoutSeconds)
	}
	if cfg.SlackChannelID != "" && cfg.SlackBotToken == "" {
		log.Fatalf("slack_bot_token is required when slack_channel_id is set")
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
