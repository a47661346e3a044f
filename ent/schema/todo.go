package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Todo holds the schema definition for the Todo entity.
// Created and rewritten by the planner, status-transitioned by the builder.
type Todo struct {
	ent.Schema
}

// Fields of the Todo.
func (Todo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("todo_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Immutable(),
		field.Text("content").
			Comment("Task text; also the planner's update/delete match key"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "cancelled").
			Default("pending"),
		field.Int("priority").
			Default(5).
			Comment("1-10, higher runs first"),
		field.String("assigned_by").
			Default("planner"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Required when status becomes completed"),
	}
}

// Edges of the Todo.
func (Todo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("todos").
			Field("stack_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Todo.
func (Todo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stack_id"),
		index.Fields("stack_id", "status"),
	}
}
