package interfaces

import (
	"context"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// IRunRepository persists pipeline run records, including per-transform row
// counts and any quality violations, for inspection after the fact.

type IRunRepository interface {
	Create(ctx context.Context, run entities.PipelineRun) (entities.PipelineRun, error)
	Update(ctx context.Context, run entities.PipelineRun) (entities.PipelineRun, error)
	GetByID(ctx context.Context, id string) (entities.PipelineRun, error)
}
