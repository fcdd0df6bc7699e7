package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BypassRequest holds the schema definition for a governed exception
// to a quality gate. Rows are append-mostly: a request moves through
// proposed -> approved -> active -> expired/revoked (or -> rejected)
// and every transition is also mirrored to the audit log.
type BypassRequest struct {
	ent.Schema
}

// Fields of the BypassRequest.
func (BypassRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bypass_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Optional().
			Comment("Manifest iteration id the bypass applies to"),
		field.String("execution_id").
			Optional().
			Comment("Execution the bypass was raised from, when known"),
		field.String("gate").
			Comment("Gate name, e.g. 'test_coverage'"),
		field.String("phase").
			Comment("Lifecycle phase the gate belongs to"),
		field.Float("current_value").
			Default(0).
			Comment("Measured metric value at request time"),
		field.Float("threshold").
			Default(0).
			Comment("Required metric value the gate enforces"),
		field.Text("justification"),
		field.Enum("technical_risk").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Enum("business_risk").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Enum("security_risk").
			Values("low", "medium", "high", "critical").
			Default("low"),
		field.Enum("duration").
			Values("temporary", "permanent").
			Default("temporary"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Absolute expiry for temporary bypasses"),
		field.Text("remediation_plan").
			Optional().
			Comment("How the debt gets paid down; required for temporary bypasses"),
		field.JSON("compensating_controls", []string{}).
			Optional().
			Comment("Mitigations in place while the gate is bypassed"),
		field.JSON("follow_up_tasks", []string{}).
			Optional().
			Comment("Ticket references tracking the remediation"),
		field.String("requested_by"),
		field.Enum("status").
			Values("proposed", "approved", "rejected", "active", "expired", "revoked").
			Default("proposed"),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.String("approval_level").
			Optional().
			Comment("Authority tier that signed off, e.g. 'engineering_manager'"),
		field.String("adr_path").
			Optional().
			Comment("Architecture Decision Record documenting the exception"),
		field.String("rejection_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("decided_at").
			Optional().
			Nillable().
			Comment("When the approve/reject decision landed"),
		field.Time("closed_at").
			Optional().
			Nillable().
			Comment("When the bypass expired or was revoked"),
	}
}

// Indexes of the BypassRequest.
func (BypassRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gate", "phase"),
		index.Fields("status"),
		index.Fields("expires_at"),
		index.Fields("created_at"),
	}
}
