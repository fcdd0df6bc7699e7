package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GateEvaluation holds the schema definition for one entry- or
// exit-gate check of a phase. Every evaluation is recorded, pass or
// fail, so bypass rates can be computed against real denominators.
type GateEvaluation struct {
	ent.Schema
}

// Fields of the GateEvaluation.
func (GateEvaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gate_evaluation_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("workflow_id").
			Comment("Manifest iteration id, denormalized for reporting"),
		field.String("phase").
			Comment("Lifecycle phase the gate protects"),
		field.Enum("kind").
			Values("entry", "exit"),
		field.Bool("passed"),
		field.Float("score").
			Default(0).
			Comment("Composite quality score at evaluation time"),
		field.Int("iteration").
			Default(0).
			Comment("Remediation iteration the evaluation belongs to"),
		field.JSON("failed_gates", []string{}).
			Optional().
			Comment("Gate names that did not meet their thresholds"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the GateEvaluation.
func (GateEvaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("gate_evaluations").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GateEvaluation.
func (GateEvaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "phase", "kind"),
		index.Fields("created_at"),
		index.Fields("passed"),
	}
}
