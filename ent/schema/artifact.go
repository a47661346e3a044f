package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// Append-only build output; versions are strictly increasing per stack and
// allocated inside the same transaction as the insert. The unique
// (stack_id, version) index backstops the invariant.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Immutable(),
		field.Int("version").
			Immutable().
			Comment("Monotonic per stack, starting at 1"),
		field.String("type").
			Default("html").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("created_by").
			Default("builder").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("artifacts").
			Field("stack_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stack_id", "version").
			Unique(),
		index.Fields("stack_id", "created_at"),
	}
}
