package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentTrace holds the schema definition for the AgentTrace entity.
// Append-only observability record of one agent invocation.
type AgentTrace struct {
	ent.Schema
}

// Fields of the AgentTrace.
func (AgentTrace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trace_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Immutable(),
		field.Enum("agent_type").
			Values("planner", "builder", "communicator", "reviewer").
			Immutable(),
		field.Text("thought").
			Optional().
			Comment("Model thinking, truncated to 1000 chars"),
		field.String("action"),
		field.Text("result").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentTrace.
func (AgentTrace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("traces").
			Field("stack_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentTrace.
func (AgentTrace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stack_id", "created_at"),
		index.Fields("stack_id", "agent_type"),
	}
}
