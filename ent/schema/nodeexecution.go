package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NodeExecution holds the schema definition for one DAG node's run
// within a workflow execution.
type NodeExecution struct {
	ent.Schema
}

// Fields of the NodeExecution.
func (NodeExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("node_execution_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("node_id").
			Comment("Manifest node id, e.g. 'BE.Impl'"),
		field.Enum("node_type").
			Values("action", "phase", "checkpoint", "notification", "interface").
			Default("action"),
		field.String("phase").
			Optional().
			Comment("Lifecycle phase the node belongs to"),
		field.Enum("status").
			Values("pending", "ready", "running", "completed", "failed", "skipped", "cancelled").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("wave").
			Default(0).
			Comment("Topological wave the scheduler placed the node in"),
		field.String("assigned_persona").
			Optional(),
		field.JSON("outputs", map[string]string{}).
			Optional().
			Comment("Key/value outputs the node reported"),
		field.JSON("artifacts", []string{}).
			Optional().
			Comment("Stamped artifact ids the node produced"),
		field.String("reason").
			Optional().
			Nillable().
			Comment("Failure or skip reason"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the NodeExecution.
func (NodeExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("node_executions").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the NodeExecution.
func (NodeExecution) Indexes() []ent.Index {
	return []ent.Index{
		// One state row per node per execution; the engine upserts it
		// on every transition.
		index.Fields("execution_id", "node_id").
			Unique(),
		index.Fields("status"),
	}
}
