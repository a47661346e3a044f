package models

// OrchestrationStats aggregates orchestrator executions over a time window.
type OrchestrationStats struct {
	TotalCycles           int     `json:"total_cycles"`
	CompletedCycles       int     `json:"completed_cycles"`
	FailedCycles          int     `json:"failed_cycles"`
	AvgCycleDurationMs    float64 `json:"avg_cycle_duration_ms"`
	ContinueDecisions     int     `json:"continue_decisions"`
	PauseDecisions        int     `json:"pause_decisions"`
	AvgParallelExecutions float64 `json:"avg_parallel_executions"`
}
