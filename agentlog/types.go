// Package agentlog holds the agent mode workspace state: three
// parallel ordered logs of the agent's narrated activity — thoughts,
// actions, and execution steps.
package agentlog

import "time"

// ThoughtType classifies a narrated thought.
type ThoughtType string

const (
	ThoughtThinking  ThoughtType = "thinking"
	ThoughtPlanning  ThoughtType = "planning"
	ThoughtExecuting ThoughtType = "executing"
	ThoughtCompleted ThoughtType = "completed"
	ThoughtError     ThoughtType = "error"
)

// Thought is one entry in the thought log.
type Thought struct {
	Timestamp time.Time
	Type      ThoughtType
	Message   string
}

// ActionType classifies an action against the document.
type ActionType string

const (
	ActionRead             ActionType = "read"
	ActionWrite            ActionType = "write"
	ActionQuery            ActionType = "query"
	ActionFormula          ActionType = "formula"
	ActionPermissionDenied ActionType = "permission_denied"
)

// ActionStatus is the outcome of an action.
type ActionStatus string

const (
	StatusSuccess ActionStatus = "success"
	StatusError   ActionStatus = "error"
	StatusPending ActionStatus = "pending"
)

// Result is the tagged payload an action produced. It is a closed sum:
// ValueResult, TableResult, or ErrorResult. Renderers switch over the
// concrete type exhaustively.
type Result interface {
	isResult()
}

// ValueResult is a scalar result.
type ValueResult struct {
	Value string
}

// TableResult is a tabular result.
type TableResult struct {
	Columns []string
	Rows    [][]string
}

// ErrorResult is a failed action's payload.
type ErrorResult struct {
	Message string
}

func (ValueResult) isResult() {}
func (TableResult) isResult() {}
func (ErrorResult) isResult() {}

// Action is one entry in the action log.
type Action struct {
	ID          string
	Timestamp   time.Time
	Type        ActionType
	Description string
	Status      ActionStatus
	Duration    time.Duration // zero when not measured
	Result      Result        // nil when the action carried no payload
}

// StepStatus is the state of an execution step.
type StepStatus string

const (
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepError     StepStatus = "error"
)

// Step is one entry in the execution step log. Steps are not mutated
// after seeding.
type Step struct {
	ID       string
	Title    string
	Details  []string
	Duration time.Duration
	Status   StepStatus
}

// Snapshot is an atomic read of all three logs plus the pause flag.
// Observers render from a Snapshot so a Clear is never seen half done.
type Snapshot struct {
	Thoughts []Thought
	Actions  []Action
	Steps    []Step
	Paused   bool
}
