package interfaces

import (
	"context"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// IRunNotifier announces a finished run to the external orchestration layer
// (the pass/fail signal consumer). The notifier is optional wiring: a nil
// notifier is tolerated and simply skipped.

type IRunNotifier interface {
	RunCompleted(ctx context.Context, run entities.PipelineRun) error
}
