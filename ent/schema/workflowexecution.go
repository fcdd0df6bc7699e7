package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowExecution holds the schema definition for one run of a
// workflow manifest against a requirement.
type WorkflowExecution struct {
	ent.Schema
}

// Fields of the WorkflowExecution.
func (WorkflowExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Comment("Manifest iteration id this execution runs"),
		field.Text("requirement").
			Comment("Natural-language requirement (full-text searchable)"),
		field.Enum("status").
			Values("pending", "in_progress", "cancelling", "completed", "failed", "cancelled", "timed_out", "gate_failed").
			Default("pending"),
		field.String("current_phase").
			Optional().
			Nillable().
			Comment("Lifecycle phase currently executing"),
		field.String("output_dir").
			Optional().
			Comment("Workspace the personas write into"),
		field.Int("total_nodes").
			Default(0),
		field.Int("completed_nodes").
			Default(0),
		field.JSON("constraints", map[string]string{}).
			Optional().
			Comment("Manifest constraints snapshot"),
		field.String("requested_by").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the execution was queued"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the execution"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention sweeps"),
	}
}

// Edges of the WorkflowExecution.
func (WorkflowExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node_executions", NodeExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("gate_evaluations", GateEvaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowExecution.
func (WorkflowExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workflow_id"),
		index.Fields("created_at"),
	}
}
