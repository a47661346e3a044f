package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/hackfleet/hackfleet/pkg/models"
)

// WorkDetectionCache holds the schema definition for the WorkDetectionCache
// entity. One live row per stack, upserted with a short TTL; advisory only,
// readers must ignore rows past valid_until.
type WorkDetectionCache struct {
	ent.Schema
}

// Fields of the WorkDetectionCache.
func (WorkDetectionCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cache_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Unique(),
		field.JSON("statuses", models.WorkStatus{}),
		field.Time("computed_at"),
		field.Time("valid_until"),
	}
}

// Edges of the WorkDetectionCache.
func (WorkDetectionCache) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("work_detection_cache").
			Field("stack_id").
			Unique().
			Required(),
	}
}

// Indexes of the WorkDetectionCache.
func (WorkDetectionCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("valid_until"),
	}
}
