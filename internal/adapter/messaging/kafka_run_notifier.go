package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase/interfaces"
)

// runCompletedEvent is the pass/fail signal consumed by the external
// orchestration layer. A blocked or failed status tells the consumer not to
// release downstream reporting.
type runCompletedEvent struct {
	RunID          string    `json:"run_id"`
	Status         string    `json:"status"`
	DryRun         bool      `json:"dry_run"`
	FactRowCount   int       `json:"fact_row_count"`
	ViolationCount int       `json:"violation_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// KafkaRunNotifier publishes run completions, keyed by run id.

type KafkaRunNotifier struct {
	w *kafka.Writer
}

var _ interfaces.IRunNotifier = (*KafkaRunNotifier)(nil)

func NewKafkaRunNotifier(w *kafka.Writer) *KafkaRunNotifier {
	return &KafkaRunNotifier{w: w}
}

func (n *KafkaRunNotifier) RunCompleted(ctx context.Context, run entities.PipelineRun) error {
	b, err := json.Marshal(runCompletedEvent{
		RunID:          run.ID,
		Status:         string(run.Status),
		DryRun:         run.DryRun,
		FactRowCount:   run.FactRowCount,
		ViolationCount: len(run.Violations),
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(run.ID),
		Value: b,
		Time:  time.Now(),
	})
}

func (n *KafkaRunNotifier) Close() error {
	return n.w.Close()
}
