// Package bench times bulk enqueue and dequeue runs over independent versioned queues.
package bench

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-versionqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-versionqueue/pkg/settings"
)

// checkEvery is how many operations run between context checks.
const checkEvery = 1 << 16

// Result is the timing of one queue.
type Result struct {
	Worker  int
	Enqueue time.Duration
	Dequeue time.Duration
	Stats   queue.Stats
}

// Runner executes the timing harness.
type Runner struct {
	cfg    settings.Bench
	opts   []queue.Option
	logger *zap.Logger
}

// New creates a Runner. Each worker builds its own queue from queueCfg.
func New(cfg settings.Bench, queueCfg settings.Queue, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg: cfg,
		opts: []queue.Option{
			queue.WithElementCapacity(queueCfg.ElementCapacity),
			queue.WithVersionCapacity(queueCfg.VersionCapacity),
			queue.WithLogger(logger),
		},
		logger: logger,
	}
}

// Run performs cfg.Operations enqueues followed by the same number of
// dequeues on cfg.Parallel independent queues. It stops every worker on the
// first error or when ctx is done.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, r.cfg.Parallel)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < r.cfg.Parallel; w++ {
		w := w // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			res, err := r.runOne(ctx, w)
			if err != nil {
				return errors.Wrapf(err, "worker %d", w)
			}
			results[w] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, worker int) (Result, error) {
	q := queue.NewVersioned[int](r.opts...)
	n := r.cfg.Operations

	start := time.Now()
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		q.Enqueue(i)
	}
	enqueueTime := time.Since(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		v, err := q.Dequeue()
		if err != nil {
			return Result{}, err
		}
		if v != i {
			return Result{}, errors.Errorf("dequeued %d, want %d", v, i)
		}
	}
	dequeueTime := time.Since(start)

	res := Result{
		Worker:  worker,
		Enqueue: enqueueTime,
		Dequeue: dequeueTime,
		Stats:   q.Stats(),
	}
	r.logger.Info("bench worker done",
		zap.Int("worker", worker),
		zap.Int("operations", n),
		zap.Duration("enqueue", enqueueTime),
		zap.Duration("dequeue", dequeueTime),
		zap.Int("element_growths", res.Stats.ElementGrowths),
		zap.Int("version_growths", res.Stats.VersionGrowths),
	)
	return res, nil
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
