package entities

import "time"

// RunStatus tracks the outcome of a pipeline run.
//
// Mirrors the build-then-test gating of the original orchestration wrapper:
//   - failed:    a transform failed (schema error); nothing was published.
//   - blocked:   transforms succeeded but the quality gate found violations;
//     the fact table was NOT published and the violations are kept on the run.
//   - succeeded: transforms and quality gate passed; the snapshot is published.

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusBlocked   RunStatus = "blocked"
	RunStatusFailed    RunStatus = "failed"
)

// TransformResult records one executed node of the transform graph: its name,
// its declared upstreams, and how many rows it produced.

type TransformResult struct {
	Name      string   `json:"name"`
	Upstreams []string `json:"upstreams,omitempty"`
	RowCount  int      `json:"row_count"`
}

// PipelineRun is the persisted record of one end-to-end pipeline execution.
//
// Each run builds a complete, independent snapshot; a succeeding run
// supersedes the previously published one atomically (pointer flip in the
// warehouse), so there is no in-place mutation anywhere.

type PipelineRun struct {
	ID           string             `json:"id"`
	Status       RunStatus          `json:"status"`
	DryRun       bool               `json:"dry_run,omitempty"`
	StartedAt    time.Time          `json:"started_at"`
	FinishedAt   *time.Time         `json:"finished_at,omitempty"`
	Transforms   []TransformResult  `json:"transforms,omitempty"`
	Violations   []QualityViolation `json:"violations,omitempty"`
	FactRowCount int                `json:"fact_row_count"`
	Error        string             `json:"error,omitempty"`
}
