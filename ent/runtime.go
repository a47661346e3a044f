// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/schema"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentstateFields := schema.AgentState{}.Fields()
	_ = agentstateFields
	// agentstateDescMemory is the schema descriptor for memory field.
	agentstateDescMemory := agentstateFields[3].Descriptor()
	// agentstate.DefaultMemory holds the default value on creation for the memory field.
	agentstate.DefaultMemory = agentstateDescMemory.Default.(models.AgentMemory)
	// agentstateDescCreatedAt is the schema descriptor for created_at field.
	agentstateDescCreatedAt := agentstateFields[5].Descriptor()
	// agentstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentstate.DefaultCreatedAt = agentstateDescCreatedAt.Default.(func() time.Time)
	// agentstateDescUpdatedAt is the schema descriptor for updated_at field.
	agentstateDescUpdatedAt := agentstateFields[6].Descriptor()
	// agentstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentstate.DefaultUpdatedAt = agentstateDescUpdatedAt.Default.(func() time.Time)
	// agentstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentstate.UpdateDefaultUpdatedAt = agentstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	agenttraceFields := schema.AgentTrace{}.Fields()
	_ = agenttraceFields
	// agenttraceDescCreatedAt is the schema descriptor for created_at field.
	agenttraceDescCreatedAt := agenttraceFields[6].Descriptor()
	// agenttrace.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttrace.DefaultCreatedAt = agenttraceDescCreatedAt.Default.(func() time.Time)
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescType is the schema descriptor for type field.
	artifactDescType := artifactFields[3].Descriptor()
	// artifact.DefaultType holds the default value on creation for the type field.
	artifact.DefaultType = artifactDescType.Default.(string)
	// artifactDescCreatedBy is the schema descriptor for created_by field.
	artifactDescCreatedBy := artifactFields[5].Descriptor()
	// artifact.DefaultCreatedBy holds the default value on creation for the created_by field.
	artifact.DefaultCreatedBy = artifactDescCreatedBy.Default.(string)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	executiongraphFields := schema.ExecutionGraph{}.Fields()
	_ = executiongraphFields
	// executiongraphDescCreatedAt is the schema descriptor for created_at field.
	executiongraphDescCreatedAt := executiongraphFields[4].Descriptor()
	// executiongraph.DefaultCreatedAt holds the default value on creation for the created_at field.
	executiongraph.DefaultCreatedAt = executiongraphDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	orchestratorexecutionFields := schema.OrchestratorExecution{}.Fields()
	_ = orchestratorexecutionFields
	// orchestratorexecutionDescStartedAt is the schema descriptor for started_at field.
	orchestratorexecutionDescStartedAt := orchestratorexecutionFields[3].Descriptor()
	// orchestratorexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	orchestratorexecution.DefaultStartedAt = orchestratorexecutionDescStartedAt.Default.(func() time.Time)
	projectideaFields := schema.ProjectIdea{}.Fields()
	_ = projectideaFields
	// projectideaDescStatus is the schema descriptor for status field.
	projectideaDescStatus := projectideaFields[4].Descriptor()
	// projectidea.DefaultStatus holds the default value on creation for the status field.
	projectidea.DefaultStatus = projectideaDescStatus.Default.(string)
	// projectideaDescCreatedAt is the schema descriptor for created_at field.
	projectideaDescCreatedAt := projectideaFields[5].Descriptor()
	// projectidea.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectidea.DefaultCreatedAt = projectideaDescCreatedAt.Default.(func() time.Time)
	// projectideaDescUpdatedAt is the schema descriptor for updated_at field.
	projectideaDescUpdatedAt := projectideaFields[6].Descriptor()
	// projectidea.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectidea.DefaultUpdatedAt = projectideaDescUpdatedAt.Default.(func() time.Time)
	// projectidea.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectidea.UpdateDefaultUpdatedAt = projectideaDescUpdatedAt.UpdateDefault.(func() time.Time)
	stackFields := schema.Stack{}.Fields()
	_ = stackFields
	// stackDescTotalCycles is the schema descriptor for total_cycles field.
	stackDescTotalCycles := stackFields[5].Descriptor()
	// stack.DefaultTotalCycles holds the default value on creation for the total_cycles field.
	stack.DefaultTotalCycles = stackDescTotalCycles.Default.(int)
	// stackDescCreatedAt is the schema descriptor for created_at field.
	stackDescCreatedAt := stackFields[6].Descriptor()
	// stack.DefaultCreatedAt holds the default value on creation for the created_at field.
	stack.DefaultCreatedAt = stackDescCreatedAt.Default.(func() time.Time)
	todoFields := schema.Todo{}.Fields()
	_ = todoFields
	// todoDescPriority is the schema descriptor for priority field.
	todoDescPriority := todoFields[4].Descriptor()
	// todo.DefaultPriority holds the default value on creation for the priority field.
	todo.DefaultPriority = todoDescPriority.Default.(int)
	// todoDescAssignedBy is the schema descriptor for assigned_by field.
	todoDescAssignedBy := todoFields[5].Descriptor()
	// todo.DefaultAssignedBy holds the default value on creation for the assigned_by field.
	todo.DefaultAssignedBy = todoDescAssignedBy.Default.(string)
	// todoDescCreatedAt is the schema descriptor for created_at field.
	todoDescCreatedAt := todoFields[6].Descriptor()
	// todo.DefaultCreatedAt holds the default value on creation for the created_at field.
	todo.DefaultCreatedAt = todoDescCreatedAt.Default.(func() time.Time)
	usermessageFields := schema.UserMessage{}.Fields()
	_ = usermessageFields
	// usermessageDescProcessed is the schema descriptor for processed field.
	usermessageDescProcessed := usermessageFields[4].Descriptor()
	// usermessage.DefaultProcessed holds the default value on creation for the processed field.
	usermessage.DefaultProcessed = usermessageDescProcessed.Default.(bool)
	// usermessageDescCreatedAt is the schema descriptor for created_at field.
	usermessageDescCreatedAt := usermessageFields[6].Descriptor()
	// usermessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	usermessage.DefaultCreatedAt = usermessageDescCreatedAt.Default.(func() time.Time)
}
