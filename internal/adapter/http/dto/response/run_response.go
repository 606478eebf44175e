package response

import (
	"time"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

type TransformResultResponse struct {
	Name      string   `json:"name"`
	Upstreams []string `json:"upstreams,omitempty"`
	RowCount  int      `json:"row_count"`
}

type RunResponse struct {
	RunID          string                    `json:"run_id"`
	Status         string                    `json:"status"`
	DryRun         bool                      `json:"dry_run"`
	StartedAt      time.Time                 `json:"started_at"`
	FinishedAt     *time.Time                `json:"finished_at,omitempty"`
	Transforms     []TransformResultResponse `json:"transforms,omitempty"`
	FactRowCount   int                       `json:"fact_row_count"`
	ViolationCount int                       `json:"violation_count"`
	Violations     []ViolationResponse       `json:"violations,omitempty"`
	Error          string                    `json:"error,omitempty"`
}

func FromPipelineRun(run entities.PipelineRun) RunResponse {
	res := RunResponse{
		RunID:          run.ID,
		Status:         string(run.Status),
		DryRun:         run.DryRun,
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
		FactRowCount:   run.FactRowCount,
		ViolationCount: len(run.Violations),
		Violations:     FromQualityViolations(run.Violations),
		Error:          run.Error,
	}
	for _, tr := range run.Transforms {
		res.Transforms = append(res.Transforms, TransformResultResponse{
			Name:      tr.Name,
			Upstreams: tr.Upstreams,
			RowCount:  tr.RowCount,
		})
	}
	return res
}
