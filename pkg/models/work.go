package models

// AgentWork is the work-detection verdict for a single agent.
type AgentWork struct {
	HasWork      bool        `json:"has_work"`
	Priority     int         `json:"priority"` // 0 = no work, 10 = critical
	Reason       string      `json:"reason,omitempty"`
	Dependencies []AgentType `json:"dependencies,omitempty"`
}

// WorkStatus is the full per-agent work-detection result for one stack.
type WorkStatus struct {
	Agents map[AgentType]AgentWork `json:"agents"`
}

// Get returns the work entry for the given agent (zero value if absent).
func (w WorkStatus) Get(agent AgentType) AgentWork {
	return w.Agents[agent]
}

// HasAnyWork reports whether at least one agent has work.
func (w WorkStatus) HasAnyWork() bool {
	for _, aw := range w.Agents {
		if aw.HasWork {
			return true
		}
	}
	return false
}

// MaxPriority returns the highest priority across all agents.
func (w WorkStatus) MaxPriority() int {
	max := 0
	for _, aw := range w.Agents {
		if aw.Priority > max {
			max = aw.Priority
		}
	}
	return max
}
