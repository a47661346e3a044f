package orchestrator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/models"
)

func testOrchestrator() *Orchestrator {
	return &Orchestrator{cfg: config.DefaultOrchestratorConfig()}
}

func TestDecide(t *testing.T) {
	o := testOrchestrator()

	t.Run("failures pause", func(t *testing.T) {
		d := o.decide(models.ExecutionAnalysis{SuccessCount: 2, FailureCount: 1})
		assert.Equal(t, models.DecisionPause, d.Kind)
		assert.Equal(t, 5*time.Second, d.PauseDuration)
		assert.Equal(t, "agent failures", d.Reason)
	})

	t.Run("planner success continues immediately", func(t *testing.T) {
		d := o.decide(models.ExecutionAnalysis{
			SuccessCount: 1,
			AgentsRun:    []models.AgentType{models.AgentPlanner},
		})
		assert.Equal(t, models.DecisionContinue, d.Kind)
	})

	t.Run("other success pauses briefly", func(t *testing.T) {
		d := o.decide(models.ExecutionAnalysis{
			SuccessCount: 2,
			AgentsRun:    []models.AgentType{models.AgentBuilder, models.AgentReviewer},
		})
		assert.Equal(t, models.DecisionPause, d.Kind)
		assert.Equal(t, 1*time.Second, d.PauseDuration)
	})

	t.Run("nothing ran pauses", func(t *testing.T) {
		d := o.decide(models.ExecutionAnalysis{})
		assert.Equal(t, models.DecisionPause, d.Kind)
		assert.Equal(t, 5*time.Second, d.PauseDuration)
	})
}

func TestAdaptivePause(t *testing.T) {
	o := testOrchestrator()

	pauseFor := func(maxPriority int) time.Duration {
		return o.adaptivePause(models.WorkStatus{Agents: map[models.AgentType]models.AgentWork{
			models.AgentBuilder: {Priority: maxPriority},
		}})
	}

	assert.Equal(t, 1*time.Second, pauseFor(5))
	assert.Equal(t, 1*time.Second, pauseFor(10))
	assert.Equal(t, 5*time.Second, pauseFor(3))
	assert.Equal(t, 5*time.Second, pauseFor(4))
	assert.Equal(t, 10*time.Second, pauseFor(0))
	assert.Equal(t, 10*time.Second, pauseFor(2))

	t.Run("pause is always within bounds", func(t *testing.T) {
		for p := 0; p <= 10; p++ {
			d := pauseFor(p)
			assert.GreaterOrEqual(t, d, 1*time.Second)
			assert.LessOrEqual(t, d, 30*time.Second)
		}
	})
}
