package config

import "time"

// RetentionConfig controls the background cleanup service.
type RetentionConfig struct {
	// Interval is how often cleanup runs.
	Interval time.Duration

	// TraceRetention is how long agent traces are kept.
	TraceRetention time.Duration

	// ExecutionRetention is how long terminal orchestrator executions and
	// their graph snapshots are kept.
	ExecutionRetention time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Interval:           10 * time.Minute,
		TraceRetention:     24 * time.Hour,
		ExecutionRetention: 24 * time.Hour,
	}
}

// LoadRetentionConfig returns defaults with environment overrides applied.
func LoadRetentionConfig() *RetentionConfig {
	cfg := DefaultRetentionConfig()
	cfg.Interval = getEnvDuration("RETENTION_INTERVAL", cfg.Interval)
	cfg.TraceRetention = getEnvDuration("RETENTION_TRACES", cfg.TraceRetention)
	cfg.ExecutionRetention = getEnvDuration("RETENTION_EXECUTIONS", cfg.ExecutionRetention)
	return cfg
}
