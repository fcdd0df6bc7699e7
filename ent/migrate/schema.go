// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BypassRequestsColumns holds the columns for the "bypass_requests" table.
	BypassRequestsColumns = []*schema.Column{
		{Name: "bypass_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "gate", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "current_value", Type: field.TypeFloat64, Default: 0},
		{Name: "threshold", Type: field.TypeFloat64, Default: 0},
		{Name: "justification", Type: field.TypeString, Size: 2147483647},
		{Name: "technical_risk", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "business_risk", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "security_risk", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "low"},
		{Name: "duration", Type: field.TypeEnum, Enums: []string{"temporary", "permanent"}, Default: "temporary"},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "remediation_plan", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "compensating_controls", Type: field.TypeJSON, Nullable: true},
		{Name: "follow_up_tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "requested_by", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"proposed", "approved", "rejected", "active", "expired", "revoked"}, Default: "proposed"},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approval_level", Type: field.TypeString, Nullable: true},
		{Name: "adr_path", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
	}
	// BypassRequestsTable holds the schema information for the "bypass_requests" table.
	BypassRequestsTable = &schema.Table{
		Name:       "bypass_requests",
		Columns:    BypassRequestsColumns,
		PrimaryKey: []*schema.Column{BypassRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bypassrequest_gate_phase",
				Unique:  false,
				Columns: []*schema.Column{BypassRequestsColumns[3], BypassRequestsColumns[4]},
			},
			{
				Name:    "bypassrequest_status",
				Unique:  false,
				Columns: []*schema.Column{BypassRequestsColumns[17]},
			},
			{
				Name:    "bypassrequest_expires_at",
				Unique:  false,
				Columns: []*schema.Column{BypassRequestsColumns[12]},
			},
			{
				Name:    "bypassrequest_created_at",
				Unique:  false,
				Columns: []*schema.Column{BypassRequestsColumns[22]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString, Default: ""},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_execution_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// GateEvaluationsColumns holds the columns for the "gate_evaluations" table.
	GateEvaluationsColumns = []*schema.Column{
		{Name: "gate_evaluation_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"entry", "exit"}},
		{Name: "passed", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "iteration", Type: field.TypeInt, Default: 0},
		{Name: "failed_gates", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// GateEvaluationsTable holds the schema information for the "gate_evaluations" table.
	GateEvaluationsTable = &schema.Table{
		Name:       "gate_evaluations",
		Columns:    GateEvaluationsColumns,
		PrimaryKey: []*schema.Column{GateEvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "gate_evaluations_workflow_executions_gate_evaluations",
				Columns:    []*schema.Column{GateEvaluationsColumns[9]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "gateevaluation_execution_id_phase_kind",
				Unique:  false,
				Columns: []*schema.Column{GateEvaluationsColumns[9], GateEvaluationsColumns[2], GateEvaluationsColumns[3]},
			},
			{
				Name:    "gateevaluation_created_at",
				Unique:  false,
				Columns: []*schema.Column{GateEvaluationsColumns[8]},
			},
			{
				Name:    "gateevaluation_passed",
				Unique:  false,
				Columns: []*schema.Column{GateEvaluationsColumns[4]},
			},
		},
	}
	// NodeExecutionsColumns holds the columns for the "node_executions" table.
	NodeExecutionsColumns = []*schema.Column{
		{Name: "node_execution_id", Type: field.TypeString, Unique: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "node_type", Type: field.TypeEnum, Enums: []string{"action", "phase", "checkpoint", "notification", "interface"}, Default: "action"},
		{Name: "phase", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "ready", "running", "completed", "failed", "skipped", "cancelled"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "wave", Type: field.TypeInt, Default: 0},
		{Name: "assigned_persona", Type: field.TypeString, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_id", Type: field.TypeString},
	}
	// NodeExecutionsTable holds the schema information for the "node_executions" table.
	NodeExecutionsTable = &schema.Table{
		Name:       "node_executions",
		Columns:    NodeExecutionsColumns,
		PrimaryKey: []*schema.Column{NodeExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "node_executions_workflow_executions_node_executions",
				Columns:    []*schema.Column{NodeExecutionsColumns[13]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "nodeexecution_execution_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{NodeExecutionsColumns[13], NodeExecutionsColumns[1]},
			},
			{
				Name:    "nodeexecution_status",
				Unique:  false,
				Columns: []*schema.Column{NodeExecutionsColumns[4]},
			},
		},
	}
	// WorkflowExecutionsColumns holds the columns for the "workflow_executions" table.
	WorkflowExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "requirement", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "cancelling", "completed", "failed", "cancelled", "timed_out", "gate_failed"}, Default: "pending"},
		{Name: "current_phase", Type: field.TypeString, Nullable: true},
		{Name: "output_dir", Type: field.TypeString, Nullable: true},
		{Name: "total_nodes", Type: field.TypeInt, Default: 0},
		{Name: "completed_nodes", Type: field.TypeInt, Default: 0},
		{Name: "constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "requested_by", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowExecutionsTable holds the schema information for the "workflow_executions" table.
	WorkflowExecutionsTable = &schema.Table{
		Name:       "workflow_executions",
		Columns:    WorkflowExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowexecution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[3]},
			},
			{
				Name:    "workflowexecution_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1]},
			},
			{
				Name:    "workflowexecution_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BypassRequestsTable,
		EventsTable,
		GateEvaluationsTable,
		NodeExecutionsTable,
		WorkflowExecutionsTable,
	}
)

func init() {
	GateEvaluationsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	NodeExecutionsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
}
