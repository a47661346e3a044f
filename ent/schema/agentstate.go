package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/hackfleet/hackfleet/pkg/models"
)

// AgentState holds the schema definition for the AgentState entity.
// One row per (stack, agent role): the agent's durable memory plus a short
// ring of recent thoughts. Peers hand work off through well-known memory
// fields (e.g. reviewer recommendations consumed by the planner).
type AgentState struct {
	ent.Schema
}

// Fields of the AgentState.
func (AgentState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_state_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Immutable(),
		field.Enum("agent_type").
			Values("planner", "builder", "communicator", "reviewer").
			Immutable(),
		field.JSON("memory", models.AgentMemory{}).
			Default(models.AgentMemory{ExecutionState: models.AgentIdle}).
			Comment("Typed memory bag: timers, cross-agent hand-off keys, execution guard"),
		field.JSON("context", []models.Thought{}).
			Optional().
			Comment("Short-term context: most recent thoughts, bounded ring"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentState.
func (AgentState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("agent_states").
			Field("stack_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentState.
func (AgentState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stack_id", "agent_type").
			Unique(),
	}
}
