// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/ent/event"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/schema"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bypassrequestFields := schema.BypassRequest{}.Fields()
	_ = bypassrequestFields
	// bypassrequestDescCurrentValue is the schema descriptor for current_value field.
	bypassrequestDescCurrentValue := bypassrequestFields[5].Descriptor()
	// bypassrequest.DefaultCurrentValue holds the default value on creation for the current_value field.
	bypassrequest.DefaultCurrentValue = bypassrequestDescCurrentValue.Default.(float64)
	// bypassrequestDescThreshold is the schema descriptor for threshold field.
	bypassrequestDescThreshold := bypassrequestFields[6].Descriptor()
	// bypassrequest.DefaultThreshold holds the default value on creation for the threshold field.
	bypassrequest.DefaultThreshold = bypassrequestDescThreshold.Default.(float64)
	// bypassrequestDescCreatedAt is the schema descriptor for created_at field.
	bypassrequestDescCreatedAt := bypassrequestFields[22].Descriptor()
	// bypassrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	bypassrequest.DefaultCreatedAt = bypassrequestDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescExecutionID is the schema descriptor for execution_id field.
	eventDescExecutionID := eventFields[0].Descriptor()
	// event.DefaultExecutionID holds the default value on creation for the execution_id field.
	event.DefaultExecutionID = eventDescExecutionID.Default.(string)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	gateevaluationFields := schema.GateEvaluation{}.Fields()
	_ = gateevaluationFields
	// gateevaluationDescScore is the schema descriptor for score field.
	gateevaluationDescScore := gateevaluationFields[6].Descriptor()
	// gateevaluation.DefaultScore holds the default value on creation for the score field.
	gateevaluation.DefaultScore = gateevaluationDescScore.Default.(float64)
	// gateevaluationDescIteration is the schema descriptor for iteration field.
	gateevaluationDescIteration := gateevaluationFields[7].Descriptor()
	// gateevaluation.DefaultIteration holds the default value on creation for the iteration field.
	gateevaluation.DefaultIteration = gateevaluationDescIteration.Default.(int)
	// gateevaluationDescCreatedAt is the schema descriptor for created_at field.
	gateevaluationDescCreatedAt := gateevaluationFields[9].Descriptor()
	// gateevaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	gateevaluation.DefaultCreatedAt = gateevaluationDescCreatedAt.Default.(func() time.Time)
	nodeexecutionFields := schema.NodeExecution{}.Fields()
	_ = nodeexecutionFields
	// nodeexecutionDescAttempts is the schema descriptor for attempts field.
	nodeexecutionDescAttempts := nodeexecutionFields[6].Descriptor()
	// nodeexecution.DefaultAttempts holds the default value on creation for the attempts field.
	nodeexecution.DefaultAttempts = nodeexecutionDescAttempts.Default.(int)
	// nodeexecutionDescWave is the schema descriptor for wave field.
	nodeexecutionDescWave := nodeexecutionFields[7].Descriptor()
	// nodeexecution.DefaultWave holds the default value on creation for the wave field.
	nodeexecution.DefaultWave = nodeexecutionDescWave.Default.(int)
	workflowexecutionFields := schema.WorkflowExecution{}.Fields()
	_ = workflowexecutionFields
	// workflowexecutionDescTotalNodes is the schema descriptor for total_nodes field.
	workflowexecutionDescTotalNodes := workflowexecutionFields[6].Descriptor()
	// workflowexecution.DefaultTotalNodes holds the default value on creation for the total_nodes field.
	workflowexecution.DefaultTotalNodes = workflowexecutionDescTotalNodes.Default.(int)
	// workflowexecutionDescCompletedNodes is the schema descriptor for completed_nodes field.
	workflowexecutionDescCompletedNodes := workflowexecutionFields[7].Descriptor()
	// workflowexecution.DefaultCompletedNodes holds the default value on creation for the completed_nodes field.
	workflowexecution.DefaultCompletedNodes = workflowexecutionDescCompletedNodes.Default.(int)
	// workflowexecutionDescCreatedAt is the schema descriptor for created_at field.
	workflowexecutionDescCreatedAt := workflowexecutionFields[13].Descriptor()
	// workflowexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowexecution.DefaultCreatedAt = workflowexecutionDescCreatedAt.Default.(func() time.Time)
}
