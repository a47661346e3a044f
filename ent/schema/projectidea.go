package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectIdea holds the schema definition for the ProjectIdea entity.
// At most one per stack, upserted by the planner.
type ProjectIdea struct {
	ent.Schema
}

// Fields of the ProjectIdea.
func (ProjectIdea) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("idea_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("status").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProjectIdea.
func (ProjectIdea) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("project_idea").
			Field("stack_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProjectIdea.
func (ProjectIdea) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stack_id").
			Unique(),
	}
}
