// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentStatesColumns holds the columns for the "agent_states" table.
	AgentStatesColumns = []*schema.Column{
		{Name: "agent_state_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"planner", "builder", "communicator", "reviewer"}},
		{Name: "memory", Type: field.TypeJSON},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "stack_id", Type: field.TypeString},
	}
	// AgentStatesTable holds the schema information for the "agent_states" table.
	AgentStatesTable = &schema.Table{
		Name:       "agent_states",
		Columns:    AgentStatesColumns,
		PrimaryKey: []*schema.Column{AgentStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_states_stacks_agent_states",
				Columns:    []*schema.Column{AgentStatesColumns[6]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentstate_stack_id_agent_type",
				Unique:  true,
				Columns: []*schema.Column{AgentStatesColumns[6], AgentStatesColumns[1]},
			},
		},
	}
	// AgentTracesColumns holds the columns for the "agent_traces" table.
	AgentTracesColumns = []*schema.Column{
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"planner", "builder", "communicator", "reviewer"}},
		{Name: "thought", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action", Type: field.TypeString},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "stack_id", Type: field.TypeString},
	}
	// AgentTracesTable holds the schema information for the "agent_traces" table.
	AgentTracesTable = &schema.Table{
		Name:       "agent_traces",
		Columns:    AgentTracesColumns,
		PrimaryKey: []*schema.Column{AgentTracesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_traces_stacks_traces",
				Columns:    []*schema.Column{AgentTracesColumns[6]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenttrace_stack_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentTracesColumns[6], AgentTracesColumns[5]},
			},
			{
				Name:    "agenttrace_stack_id_agent_type",
				Unique:  false,
				Columns: []*schema.Column{AgentTracesColumns[6], AgentTracesColumns[1]},
			},
		},
	}
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "type", Type: field.TypeString, Default: "html"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_by", Type: field.TypeString, Default: "builder"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "stack_id", Type: field.TypeString},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_stacks_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[7]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_stack_id_version",
				Unique:  true,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[1]},
			},
			{
				Name:    "artifact_stack_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[6]},
			},
		},
	}
	// ExecutionGraphsColumns holds the columns for the "execution_graphs" table.
	ExecutionGraphsColumns = []*schema.Column{
		{Name: "graph_id", Type: field.TypeString, Unique: true},
		{Name: "orchestrator_execution_id", Type: field.TypeString},
		{Name: "graph", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "stack_id", Type: field.TypeString},
	}
	// ExecutionGraphsTable holds the schema information for the "execution_graphs" table.
	ExecutionGraphsTable = &schema.Table{
		Name:       "execution_graphs",
		Columns:    ExecutionGraphsColumns,
		PrimaryKey: []*schema.Column{ExecutionGraphsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_graphs_stacks_execution_graphs",
				Columns:    []*schema.Column{ExecutionGraphsColumns[5]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executiongraph_stack_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionGraphsColumns[5], ExecutionGraphsColumns[3]},
			},
			{
				Name:    "executiongraph_orchestrator_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionGraphsColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "from_stack_id", Type: field.TypeString, Nullable: true},
		{Name: "to_stack_id", Type: field.TypeString, Nullable: true},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"broadcast", "direct", "visitor"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "read_by", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_to_stack_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2]},
			},
			{
				Name:    "message_message_type",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3]},
			},
			{
				Name:    "message_to_stack_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[6]},
			},
		},
	}
	// OrchestratorExecutionsColumns holds the columns for the "orchestrator_executions" table.
	OrchestratorExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "paused", "failed"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "decision", Type: field.TypeString, Nullable: true},
		{Name: "pause_duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "graph_summary", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "stack_id", Type: field.TypeString},
	}
	// OrchestratorExecutionsTable holds the schema information for the "orchestrator_executions" table.
	OrchestratorExecutionsTable = &schema.Table{
		Name:       "orchestrator_executions",
		Columns:    OrchestratorExecutionsColumns,
		PrimaryKey: []*schema.Column{OrchestratorExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "orchestrator_executions_stacks_orchestrator_executions",
				Columns:    []*schema.Column{OrchestratorExecutionsColumns[8]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orchestratorexecution_stack_id_status",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorExecutionsColumns[8], OrchestratorExecutionsColumns[1]},
			},
			{
				Name:    "orchestratorexecution_stack_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorExecutionsColumns[8], OrchestratorExecutionsColumns[2]},
			},
		},
	}
	// ProjectIdeasColumns holds the columns for the "project_ideas" table.
	ProjectIdeasColumns = []*schema.Column{
		{Name: "idea_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "stack_id", Type: field.TypeString, Unique: true},
	}
	// ProjectIdeasTable holds the schema information for the "project_ideas" table.
	ProjectIdeasTable = &schema.Table{
		Name:       "project_ideas",
		Columns:    ProjectIdeasColumns,
		PrimaryKey: []*schema.Column{ProjectIdeasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_ideas_stacks_project_idea",
				Columns:    []*schema.Column{ProjectIdeasColumns[6]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectidea_stack_id",
				Unique:  true,
				Columns: []*schema.Column{ProjectIdeasColumns[6]},
			},
		},
	}
	// StacksColumns holds the columns for the "stacks" table.
	StacksColumns = []*schema.Column{
		{Name: "stack_id", Type: field.TypeString, Unique: true},
		{Name: "participant_name", Type: field.TypeString},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"ideation", "building", "demo", "completed"}, Default: "ideation"},
		{Name: "execution_state", Type: field.TypeEnum, Enums: []string{"idle", "running", "paused", "stopped"}, Default: "idle"},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_cycles", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StacksTable holds the schema information for the "stacks" table.
	StacksTable = &schema.Table{
		Name:       "stacks",
		Columns:    StacksColumns,
		PrimaryKey: []*schema.Column{StacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stack_execution_state",
				Unique:  false,
				Columns: []*schema.Column{StacksColumns[3]},
			},
			{
				Name:    "stack_execution_state_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{StacksColumns[3], StacksColumns[4]},
			},
		},
	}
	// TodosColumns holds the columns for the "todos" table.
	TodosColumns = []*schema.Column{
		{Name: "todo_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "assigned_by", Type: field.TypeString, Default: "planner"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "stack_id", Type: field.TypeString},
	}
	// TodosTable holds the schema information for the "todos" table.
	TodosTable = &schema.Table{
		Name:       "todos",
		Columns:    TodosColumns,
		PrimaryKey: []*schema.Column{TodosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "todos_stacks_todos",
				Columns:    []*schema.Column{TodosColumns[7]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "todo_stack_id",
				Unique:  false,
				Columns: []*schema.Column{TodosColumns[7]},
			},
			{
				Name:    "todo_stack_id_status",
				Unique:  false,
				Columns: []*schema.Column{TodosColumns[7], TodosColumns[2]},
			},
		},
	}
	// UserMessagesColumns holds the columns for the "user_messages" table.
	UserMessagesColumns = []*schema.Column{
		{Name: "user_message_id", Type: field.TypeString, Unique: true},
		{Name: "sender_name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "response_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeString},
	}
	// UserMessagesTable holds the schema information for the "user_messages" table.
	UserMessagesTable = &schema.Table{
		Name:       "user_messages",
		Columns:    UserMessagesColumns,
		PrimaryKey: []*schema.Column{UserMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_messages_stacks_user_messages",
				Columns:    []*schema.Column{UserMessagesColumns[6]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usermessage_team_id_processed",
				Unique:  false,
				Columns: []*schema.Column{UserMessagesColumns[6], UserMessagesColumns[3]},
			},
			{
				Name:    "usermessage_team_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UserMessagesColumns[6], UserMessagesColumns[5]},
			},
		},
	}
	// WorkDetectionCachesColumns holds the columns for the "work_detection_caches" table.
	WorkDetectionCachesColumns = []*schema.Column{
		{Name: "cache_id", Type: field.TypeString, Unique: true},
		{Name: "statuses", Type: field.TypeJSON},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "valid_until", Type: field.TypeTime},
		{Name: "stack_id", Type: field.TypeString, Unique: true},
	}
	// WorkDetectionCachesTable holds the schema information for the "work_detection_caches" table.
	WorkDetectionCachesTable = &schema.Table{
		Name:       "work_detection_caches",
		Columns:    WorkDetectionCachesColumns,
		PrimaryKey: []*schema.Column{WorkDetectionCachesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_detection_caches_stacks_work_detection_cache",
				Columns:    []*schema.Column{WorkDetectionCachesColumns[4]},
				RefColumns: []*schema.Column{StacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workdetectioncache_valid_until",
				Unique:  false,
				Columns: []*schema.Column{WorkDetectionCachesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentStatesTable,
		AgentTracesTable,
		ArtifactsTable,
		ExecutionGraphsTable,
		MessagesTable,
		OrchestratorExecutionsTable,
		ProjectIdeasTable,
		StacksTable,
		TodosTable,
		UserMessagesTable,
		WorkDetectionCachesTable,
	}
)

func init() {
	AgentStatesTable.ForeignKeys[0].RefTable = StacksTable
	AgentTracesTable.ForeignKeys[0].RefTable = StacksTable
	ArtifactsTable.ForeignKeys[0].RefTable = StacksTable
	ExecutionGraphsTable.ForeignKeys[0].RefTable = StacksTable
	OrchestratorExecutionsTable.ForeignKeys[0].RefTable = StacksTable
	ProjectIdeasTable.ForeignKeys[0].RefTable = StacksTable
	TodosTable.ForeignKeys[0].RefTable = StacksTable
	UserMessagesTable.ForeignKeys[0].RefTable = StacksTable
	WorkDetectionCachesTable.ForeignKeys[0].RefTable = StacksTable
}
