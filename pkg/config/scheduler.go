package config

import "time"

// SchedulerConfig controls the global scheduler: how often it scans running
// stacks, how many cycles it dispatches concurrently, and when a running
// execution is considered stuck.
type SchedulerConfig struct {
	// TickInterval is how often the scheduler scans running stacks.
	TickInterval time.Duration

	// StuckCycleThreshold is how old a running OrchestratorExecution must be
	// before the scheduler reaps it and starts a fresh cycle.
	StuckCycleThreshold time.Duration

	// MaxConcurrentCycles bounds cycles dispatched at once across stacks.
	MaxConcurrentCycles int

	// GracefulShutdownTimeout is the max time to wait for in-flight cycles
	// during shutdown. Should be at least the cycle timeout.
	GracefulShutdownTimeout time.Duration
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TickInterval:            5 * time.Second,
		StuckCycleThreshold:     60 * time.Second,
		MaxConcurrentCycles:     50,
		GracefulShutdownTimeout: 60 * time.Second,
	}
}

// LoadSchedulerConfig returns defaults with environment overrides applied.
func LoadSchedulerConfig() *SchedulerConfig {
	cfg := DefaultSchedulerConfig()
	cfg.TickInterval = getEnvDuration("SCHEDULER_TICK_INTERVAL", cfg.TickInterval)
	cfg.StuckCycleThreshold = getEnvDuration("SCHEDULER_STUCK_THRESHOLD", cfg.StuckCycleThreshold)
	cfg.MaxConcurrentCycles = getEnvInt("SCHEDULER_MAX_CONCURRENT_CYCLES", cfg.MaxConcurrentCycles)
	cfg.GracefulShutdownTimeout = getEnvDuration("SCHEDULER_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	return cfg
}
