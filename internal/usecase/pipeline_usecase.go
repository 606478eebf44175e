package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase/interfaces"
)

var (
	ErrInvalidRunID         = errors.New("invalid run id")
	ErrRunNotFound          = errors.New("pipeline run not found")
	ErrRunBlocked           = errors.New("pipeline run blocked by quality violations")
	ErrNoPublishedFactTable = errors.New("no published fact table")
	ErrUnknownUpstream      = errors.New("transform references unknown upstream")
	ErrCyclicTransformGraph = errors.New("transform graph contains a cycle")
)

// Transform node names, as reported in run records.
const (
	TransformStgCustomers    = "stg_customers"
	TransformStgOrders       = "stg_orders"
	TransformStgOrderItems   = "stg_order_items"
	TransformAggOrderItems   = "agg_order_items"
	TransformFctOrders       = "fct_orders"
	TransformCheckOrderValue = "check_order_value_non_negative"
)

const defaultFactOrdersLimit = 100

// RunOptions tweaks a single pipeline execution. DryRun executes every
// transform and the quality gate but never publishes the snapshot.
type RunOptions struct {
	DryRun bool
}

// IPipelineUseCase drives one-shot pipeline runs and exposes their artifacts.

type IPipelineUseCase interface {
	RunPipeline(ctx context.Context, opts RunOptions) (entities.PipelineRun, error)
	GetRun(ctx context.Context, id string) (entities.PipelineRun, error)
	ListViolations(ctx context.Context, runID string) ([]entities.QualityViolation, error)
	ListPublishedFactOrders(ctx context.Context, limit int) ([]entities.FactOrder, error)
}

// PipelineUseCase wires the sources, the transform graph and the warehouse
// into a run lifecycle:
//
//	running -> failed     (a transform errored; nothing published)
//	running -> blocked    (quality violations; snapshot withheld, rows kept)
//	running -> succeeded  (snapshot published, pointer flipped)
//
// The transform chain is an explicit DAG of named nodes, each declaring its
// upstreams; execution order and leaf parallelism are derived from the graph,
// never from declaration order.

type PipelineUseCase struct {
	source    interfaces.ISourceRepository
	warehouse interfaces.IWarehouseRepository
	runs      interfaces.IRunRepository
	notifier  interfaces.IRunNotifier

	staging     IStagingUseCase
	aggregation IAggregationUseCase
	facts       IFactAssemblyUseCase
	quality     IQualityCheckUseCase
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(source interfaces.ISourceRepository, warehouse interfaces.IWarehouseRepository, runs interfaces.IRunRepository, notifier interfaces.IRunNotifier) *PipelineUseCase {
	return &PipelineUseCase{
		source:      source,
		warehouse:   warehouse,
		runs:        runs,
		notifier:    notifier,
		staging:     NewStagingUseCase(),
		aggregation: NewAggregationUseCase(),
		facts:       NewFactAssemblyUseCase(),
		quality:     NewQualityCheckUseCase(),
	}
}

// runState holds the intermediate relations of one run. Each transform reads
// only its declared upstream slices and writes only its own, so transforms of
// the same wave may run concurrently without locking.
type runState struct {
	customers  []entities.Customer
	orders     []entities.Order
	items      []entities.OrderItem
	aggregates []entities.OrderItemAggregate
	factOrders []entities.FactOrder
	violations []entities.QualityViolation
}

type transform struct {
	name      string
	upstreams []string
	run       func(ctx context.Context, st *runState) (rowCount int, err error)
}

func (u *PipelineUseCase) transformGraph() []transform {
	return []transform{
		{
			name: TransformStgCustomers,
			run: func(ctx context.Context, st *runState) (int, error) {
				raw, err := u.source.FetchRawCustomers(ctx)
				if err != nil {
					return 0, err
				}
				st.customers, err = u.staging.StageCustomers(ctx, raw)
				return len(st.customers), err
			},
		},
		{
			name: TransformStgOrders,
			run: func(ctx context.Context, st *runState) (int, error) {
				raw, err := u.source.FetchRawOrders(ctx)
				if err != nil {
					return 0, err
				}
				st.orders, err = u.staging.StageOrders(ctx, raw)
				return len(st.orders), err
			},
		},
		{
			name: TransformStgOrderItems,
			run: func(ctx context.Context, st *runState) (int, error) {
				raw, err := u.source.FetchRawOrderItems(ctx)
				if err != nil {
					return 0, err
				}
				st.items, err = u.staging.StageOrderItems(ctx, raw)
				return len(st.items), err
			},
		},
		{
			name:      TransformAggOrderItems,
			upstreams: []string{TransformStgOrderItems},
			run: func(ctx context.Context, st *runState) (int, error) {
				st.aggregates = u.aggregation.AggregateOrderItems(ctx, st.items)
				return len(st.aggregates), nil
			},
		},
		{
			name:      TransformFctOrders,
			upstreams: []string{TransformStgOrders, TransformStgCustomers, TransformAggOrderItems},
			run: func(ctx context.Context, st *runState) (int, error) {
				st.factOrders = u.facts.AssembleFactOrders(ctx, st.orders, st.customers, st.aggregates)
				return len(st.factOrders), nil
			},
		},
		{
			name:      TransformCheckOrderValue,
			upstreams: []string{TransformFctOrders},
			run: func(ctx context.Context, st *runState) (int, error) {
				st.violations = u.quality.CheckFactOrders(ctx, st.factOrders)
				return len(st.violations), nil
			},
		},
	}
}

// executeGraph runs the DAG in topological waves. Every node whose upstreams
// have all completed joins the current wave; a wave's nodes run concurrently
// in an errgroup. An empty wave with nodes still pending means a cycle.
func executeGraph(ctx context.Context, graph []transform, st *runState) ([]entities.TransformResult, error) {
	known := make(map[string]bool, len(graph))
	for _, tr := range graph {
		known[tr.name] = true
	}
	for _, tr := range graph {
		for _, up := range tr.upstreams {
			if !known[up] {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownUpstream, tr.name, up)
			}
		}
	}

	done := make(map[string]bool, len(graph))
	results := make([]entities.TransformResult, 0, len(graph))
	pending := graph

	for len(pending) > 0 {
		var wave, next []transform
		for _, tr := range pending {
			ready := true
			for _, up := range tr.upstreams {
				if !done[up] {
					ready = false
					break
				}
			}
			if ready {
				wave = append(wave, tr)
			} else {
				next = append(next, tr)
			}
		}
		if len(wave) == 0 {
			return nil, ErrCyclicTransformGraph
		}

		counts := make([]int, len(wave))
		g, gctx := errgroup.WithContext(ctx)
		for i, tr := range wave {
			i, tr := i, tr
			g.Go(func() error {
				n, err := tr.run(gctx, st)
				if err != nil {
					return fmt.Errorf("transform %s: %w", tr.name, err)
				}
				counts[i] = n
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for i, tr := range wave {
			done[tr.name] = true
			results = append(results, entities.TransformResult{
				Name:      tr.name,
				Upstreams: tr.upstreams,
				RowCount:  counts[i],
			})
		}
		pending = next
	}
	return results, nil
}

func (u *PipelineUseCase) RunPipeline(ctx context.Context, opts RunOptions) (entities.PipelineRun, error) {
	run := entities.PipelineRun{
		ID:        uuid.NewString(),
		Status:    entities.RunStatusRunning,
		DryRun:    opts.DryRun,
		StartedAt: time.Now().UTC(),
	}
	log.Printf("[pipeline][usecase] run start run_id=%s dry_run=%v", run.ID, run.DryRun)

	if _, err := u.runs.Create(ctx, run); err != nil {
		log.Printf("[pipeline][usecase] run record create failed run_id=%s err=%v", run.ID, err)
		return entities.PipelineRun{}, err
	}

	st := &runState{}
	results, err := executeGraph(ctx, u.transformGraph(), st)
	if err != nil {
		log.Printf("[pipeline][usecase] transform failed run_id=%s err=%v", run.ID, err)
		run.Error = err.Error()
		return u.finishRun(ctx, run, entities.RunStatusFailed, err)
	}

	run.Transforms = results
	run.Violations = st.violations
	run.FactRowCount = len(st.factOrders)

	if len(st.violations) > 0 {
		log.Printf("[pipeline][usecase] quality gate failed run_id=%s violations=%d; publication withheld", run.ID, len(st.violations))
		return u.finishRun(ctx, run, entities.RunStatusBlocked, ErrRunBlocked)
	}

	if run.DryRun {
		log.Printf("[pipeline][usecase] dry run complete run_id=%s fact_rows=%d; publication skipped", run.ID, run.FactRowCount)
		return u.finishRun(ctx, run, entities.RunStatusSucceeded, nil)
	}

	if err := u.warehouse.PublishFactOrders(ctx, run.ID, st.factOrders); err != nil {
		log.Printf("[pipeline][usecase] publish failed run_id=%s err=%v", run.ID, err)
		run.Error = err.Error()
		return u.finishRun(ctx, run, entities.RunStatusFailed, err)
	}

	log.Printf("[pipeline][usecase] run success run_id=%s fact_rows=%d", run.ID, run.FactRowCount)
	return u.finishRun(ctx, run, entities.RunStatusSucceeded, nil)
}

// finishRun stamps the terminal status, persists the record and emits the
// completion signal. The original caller's error (if any) is passed through so
// handlers can map it; persistence failures take precedence over it.
func (u *PipelineUseCase) finishRun(ctx context.Context, run entities.PipelineRun, status entities.RunStatus, cause error) (entities.PipelineRun, error) {
	now := time.Now().UTC()
	run.Status = status
	run.FinishedAt = &now

	updated, err := u.runs.Update(ctx, run)
	if err != nil {
		log.Printf("[pipeline][usecase] run record update failed run_id=%s err=%v", run.ID, err)
		return run, err
	}

	if u.notifier == nil {
		log.Printf("[pipeline][usecase] run notifier not configured run_id=%s", run.ID)
	} else if err := u.notifier.RunCompleted(ctx, updated); err != nil {
		// The signal is advisory; a broker hiccup must not fail the run.
		log.Printf("[pipeline][usecase] run notification failed run_id=%s err=%v", run.ID, err)
	}

	return updated, cause
}

func (u *PipelineUseCase) GetRun(ctx context.Context, id string) (entities.PipelineRun, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PipelineRun{}, ErrInvalidRunID
	}

	run, err := u.runs.GetByID(ctx, id)
	if err != nil {
		return entities.PipelineRun{}, err
	}
	if run.ID == "" {
		return entities.PipelineRun{}, ErrRunNotFound
	}
	return run, nil
}

func (u *PipelineUseCase) ListViolations(ctx context.Context, runID string) ([]entities.QualityViolation, error) {
	run, err := u.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return run.Violations, nil
}

func (u *PipelineUseCase) ListPublishedFactOrders(ctx context.Context, limit int) ([]entities.FactOrder, error) {
	if limit <= 0 {
		limit = defaultFactOrdersLimit
	}

	runID, err := u.warehouse.PublishedRunID(ctx)
	if err != nil {
		return nil, err
	}
	if runID == "" {
		return nil, ErrNoPublishedFactTable
	}
	return u.warehouse.ListFactOrders(ctx, runID, limit)
}
