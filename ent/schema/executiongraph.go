package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/hackfleet/hackfleet/pkg/models"
)

// ExecutionGraph holds the schema definition for the ExecutionGraph entity.
// Snapshot of one cycle's dependency graph with per-node results.
type ExecutionGraph struct {
	ent.Schema
}

// Fields of the ExecutionGraph.
func (ExecutionGraph) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("graph_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Immutable(),
		field.String("orchestrator_execution_id").
			Immutable(),
		field.JSON("graph", models.GraphSnapshot{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ExecutionGraph.
func (ExecutionGraph) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("execution_graphs").
			Field("stack_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionGraph.
func (ExecutionGraph) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stack_id", "created_at"),
		index.Fields("orchestrator_execution_id"),
	}
}
