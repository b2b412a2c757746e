package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
)

const (
	defaultWorkers     = 4
	defaultQueueSize   = 256
	defaultTaskTimeout = 30 * time.Second
)

// Task is one unit of background work with its own deadline.
type Task func(ctx context.Context)

// WorkerPool runs dispatched tasks on a fixed set of workers behind a
// bounded queue. Each task gets its own timeout and error isolation: a
// panicking or stalled task cannot affect ingestion or other tasks.
type WorkerPool struct {
	mu          sync.Mutex
	stopped     bool
	tasks       chan Task
	taskTimeout time.Duration
	logger      logger.Logger
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

// NewWorkerPool starts a pool with the given worker count and queue size.
// Non-positive values fall back to defaults.
func NewWorkerPool(workers, queueSize int, taskTimeout time.Duration, log logger.Logger) *WorkerPool {
	if workers <= 0 {
		workers = defaultWorkers
	}

	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	if taskTimeout <= 0 {
		taskTimeout = defaultTaskTimeout
	}

	pool := &WorkerPool{
		tasks:       make(chan Task, queueSize),
		taskTimeout: taskTimeout,
		logger:      log,
	}

	pool.wg.Add(workers)

	for i := 0; i < workers; i++ {
		go pool.worker()
	}

	return pool
}

// Dispatch hands a task to the pool without blocking. It reports false when
// the task was dropped because the queue is full or the pool has stopped.
func (p *WorkerPool) Dispatch(task Task) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return false
	}

	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

// Stop drains the queue and waits for in-flight tasks to finish. The lock
// keeps the close ordered against concurrent dispatches so they never hit
// a closed channel.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.tasks)
		p.mu.Unlock()
	})

	p.wg.Wait()
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for task := range p.tasks {
		p.runTask(task)
	}
}

func (p *WorkerPool) runTask(task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), p.taskTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Interface("panic", r).
				Msg("Recovered from panic in background task")
		}
	}()

	task(ctx)
}
