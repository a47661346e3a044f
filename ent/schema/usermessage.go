package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserMessage holds the schema definition for the UserMessage entity.
// A visitor question addressed to one stack; the communicator processes
// exactly one per cycle, oldest first.
type UserMessage struct {
	ent.Schema
}

// Fields of the UserMessage.
func (UserMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_message_id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable().
			Comment("Target stack"),
		field.String("sender_name"),
		field.Text("content"),
		field.Bool("processed").
			Default(false),
		field.String("response_id").
			Optional().
			Nillable().
			Comment("Message created as the reply"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UserMessage.
func (UserMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("user_messages").
			Field("team_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserMessage.
func (UserMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "processed"),
		index.Fields("team_id", "created_at"),
	}
}
