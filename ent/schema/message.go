package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Inter-stack mail: direct, broadcast (no recipient), or visitor-originated.
// Messages are shared across stacks and deliberately have no owning edge, so
// deleting a stack does not erase conversations its peers can still see.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("from_stack_id").
			Optional().
			Nillable().
			Comment("Absent for visitor messages"),
		field.String("to_stack_id").
			Optional().
			Nillable().
			Comment("Absent means broadcast"),
		field.Enum("message_type").
			Values("broadcast", "direct", "visitor"),
		field.Text("content"),
		field.JSON("read_by", []string{}).
			Optional().
			Comment("Stack IDs that consumed this message; append-only set"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("to_stack_id"),
		index.Fields("message_type"),
		index.Fields("to_stack_id", "created_at"),
	}
}
