package config

import "time"

// OrchestratorConfig controls a single orchestration cycle: timeouts, work
// detection caching, and the adaptive pause bands.
type OrchestratorConfig struct {
	// CycleTimeout bounds one full detect-graph-execute-decide cycle.
	CycleTimeout time.Duration

	// NodeTimeout bounds a single agent node's execution.
	NodeTimeout time.Duration

	// WorkCacheTTL is the validity window of a WorkDetectionCache row.
	WorkCacheTTL time.Duration

	// FailurePause is the pause after a cycle with agent failures.
	FailurePause time.Duration

	// StabilizationPause is the brief pause after successful non-planner work.
	StabilizationPause time.Duration

	// MaxPause caps the adaptive pause duration.
	MaxPause time.Duration

	// RecordGraphs enables persisting an ExecutionGraph row per cycle.
	RecordGraphs bool
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		CycleTimeout:       60 * time.Second,
		NodeTimeout:        60 * time.Second,
		WorkCacheTTL:       5 * time.Second,
		FailurePause:       5 * time.Second,
		StabilizationPause: 1 * time.Second,
		MaxPause:           30 * time.Second,
		RecordGraphs:       true,
	}
}

// LoadOrchestratorConfig returns defaults with environment overrides applied.
func LoadOrchestratorConfig() *OrchestratorConfig {
	cfg := DefaultOrchestratorConfig()
	cfg.CycleTimeout = getEnvDuration("ORCHESTRATOR_CYCLE_TIMEOUT", cfg.CycleTimeout)
	cfg.NodeTimeout = getEnvDuration("ORCHESTRATOR_NODE_TIMEOUT", cfg.NodeTimeout)
	cfg.WorkCacheTTL = getEnvDuration("ORCHESTRATOR_WORK_CACHE_TTL", cfg.WorkCacheTTL)
	cfg.RecordGraphs = getEnvBool("ORCHESTRATOR_RECORD_GRAPHS", cfg.RecordGraphs)
	return cfg
}
