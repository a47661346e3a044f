// Package config holds typed runtime configuration with built-in defaults
// and environment overrides.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the root configuration for the hackfleet process.
type Config struct {
	Scheduler    *SchedulerConfig
	Orchestrator *OrchestratorConfig
	LLM          *LLMConfig
	Retention    *RetentionConfig
}

// Load builds the configuration from defaults plus environment overrides.
// The .env file (if any) is loaded by main before this is called.
func Load() *Config {
	return &Config{
		Scheduler:    LoadSchedulerConfig(),
		Orchestrator: LoadOrchestratorConfig(),
		LLM:          LoadLLMConfig(),
		Retention:    LoadRetentionConfig(),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
