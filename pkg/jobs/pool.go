package jobs

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Task is one unit of work handed to a Pool.
type Task struct {
	Index int
	Name  string
}

// Handler processes a task.
type Handler func(context.Context, Task) error

// PoolConfig configures worker pool behaviour.
type PoolConfig struct {
	Workers    int
	BufferSize int
	Logger     *zap.Logger
}

// Pool runs a fixed batch of tasks on a bounded set of goroutines.
type Pool struct {
	name    string
	handler Handler

	workers    int
	bufferSize int
	logger     *zap.Logger
}

// NewPool builds a pool around handler.
func NewPool(name string, handler Handler, cfg PoolConfig) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = cfg.Workers * 4
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		name:       name,
		handler:    handler,
		workers:    cfg.Workers,
		bufferSize: cfg.BufferSize,
		logger:     cfg.Logger,
	}
}

// Run processes every task and returns the handler errors indexed like
// tasks. Tasks not started before ctx is cancelled report ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks []Task) []error {
	errs := make([]error, len(tasks))
	queue := make(chan int, p.bufferSize)

	workers := p.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				errs[idx] = p.handler(ctx, tasks[idx])
			}
		}()
	}
	p.logger.Sugar().Debugw("pool started", "pool", p.name, "workers", workers, "tasks", len(tasks))

	for idx := range tasks {
		queue <- idx
	}
	close(queue)
	wg.Wait()

	p.logger.Sugar().Debugw("pool finished", "pool", p.name)
	return errs
}
