package agentlog

import (
	"time"

	"github.com/gridmate/gridmate/bus"
)

// sampleBase anchors the fixture timestamps. Fixed so that seeding is
// fully deterministic and usable as a golden fixture in tests.
var sampleBase = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// SeedSampleData populates the log with the fixed demonstration set:
// 4 thoughts, 4 actions, and 3 execution steps narrating one simulated
// analysis pass over a sales sheet. Seeding replaces any existing
// entries and notifies observers once, like Clear.
func (l *Log) SeedSampleData() {
	l.mu.Lock()
	l.thoughts = sampleThoughts()
	l.actions = sampleActions()
	l.steps = sampleSteps()
	l.mu.Unlock()

	l.publish(bus.EventLogSeeded, nil)
}

func sampleThoughts() []Thought {
	return []Thought{
		{
			Timestamp: sampleBase,
			Type:      ThoughtThinking,
			Message:   "Analyzing the request: summarize Q1 sales by region",
		},
		{
			Timestamp: sampleBase.Add(2 * time.Second),
			Type:      ThoughtPlanning,
			Message:   "Plan: read Sales!A1:D40, group by region, write summary to Summary!A1",
		},
		{
			Timestamp: sampleBase.Add(5 * time.Second),
			Type:      ThoughtExecuting,
			Message:   "Reading source range and computing regional totals",
		},
		{
			Timestamp: sampleBase.Add(11 * time.Second),
			Type:      ThoughtCompleted,
			Message:   "Summary written; 3 regions aggregated across 39 rows",
		},
	}
}

func sampleActions() []Action {
	return []Action{
		{
			ID:          "act-sample-1",
			Timestamp:   sampleBase.Add(5 * time.Second),
			Type:        ActionRead,
			Description: "Read range Sales!A1:D40",
			Status:      StatusSuccess,
			Duration:    120 * time.Millisecond,
			Result:      ValueResult{Value: "40 rows x 4 columns"},
		},
		{
			ID:          "act-sample-2",
			Timestamp:   sampleBase.Add(6 * time.Second),
			Type:        ActionQuery,
			Description: "Group revenue by region",
			Status:      StatusSuccess,
			Duration:    45 * time.Millisecond,
			Result: TableResult{
				Columns: []string{"Region", "Revenue"},
				Rows: [][]string{
					{"North", "128,400"},
					{"South", "97,210"},
					{"West", "143,850"},
				},
			},
		},
		{
			ID:          "act-sample-3",
			Timestamp:   sampleBase.Add(8 * time.Second),
			Type:        ActionFormula,
			Description: "Write =SUM(B2:B4) to Summary!B5",
			Status:      StatusPending,
		},
		{
			ID:          "act-sample-4",
			Timestamp:   sampleBase.Add(9 * time.Second),
			Type:        ActionPermissionDenied,
			Description: "Write to protected range Audit!A1:A10",
			Status:      StatusError,
			Duration:    3 * time.Millisecond,
			Result:      ErrorResult{Message: "range is protected by the document owner"},
		},
	}
}

func sampleSteps() []Step {
	return []Step{
		{
			ID:    "step-sample-1",
			Title: "Load source data",
			Details: []string{
				"Opened page Sales",
				"Read 40 rows from A1:D40",
				"Validated header row",
			},
			Duration: 180 * time.Millisecond,
			Status:   StepCompleted,
		},
		{
			ID:    "step-sample-2",
			Title: "Aggregate by region",
			Details: []string{
				"Grouped 39 data rows into 3 regions",
				"Computed revenue totals",
			},
			Duration: 60 * time.Millisecond,
			Status:   StepCompleted,
		},
		{
			ID:    "step-sample-3",
			Title: "Write summary",
			Details: []string{
				"Opened page Summary",
				"Writing totals to A1:B4",
			},
			Duration: 0,
			Status:   StepRunning,
		},
	}
}
