package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the WebSocket catchup buffer.
// Rows are inserted by the event publisher in the same transaction as
// the pg_notify call; the auto-increment id is the catchup cursor, so
// this entity keeps ent's default integer id instead of a string key.
// Rows are transient: cleaned up when an execution reaches a terminal
// state and swept by TTL otherwise.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id").
			Default("").
			Comment("Execution scope for cleanup; empty for unscoped events"),
		field.String("channel").
			Comment("Logical channel, e.g. 'workflows' or 'workflow:wf-123'"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup queries filter by channel and walk ids forward.
		index.Fields("channel"),
		index.Fields("execution_id"),
		index.Fields("created_at"),
	}
}
