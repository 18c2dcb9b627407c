package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrQueueClosed is returned by Enqueue once Shutdown has begun: the
// task was not scheduled and never will be.
var ErrQueueClosed = errors.New("queue is shut down")

// WorkerQueue runs a pool of workers over a buffered channel and
// redelivers failed tasks on a bounded backoff schedule. Delivery is
// at-least-once: a task abandoned mid-flight by a crashing process is
// simply lost here (the record stays detectable at RECEIVED), while a
// failed Process call is re-enqueued until the schedule is exhausted.
type WorkerQueue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration
	delays  []time.Duration

	ch   chan Task
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
	timers map[*time.Timer]struct{}
}

type Option func(*WorkerQueue)

func WithWorkers(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.ch = make(chan Task, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// WithRetryDelays sets the backoff schedule. len(delays) is the number
// of retries after the first attempt; an empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(q *WorkerQueue) {
		q.delays = delays
	}
}

func NewWorkerQueue(proc Processor, logger *slog.Logger, opts ...Option) *WorkerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &WorkerQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		delays: []time.Duration{
			1 * time.Minute,
			2 * time.Minute,
			3 * time.Minute,
			5 * time.Minute,
			10 * time.Minute,
		},
		ch:     make(chan Task, 256),
		done:   make(chan struct{}),
		timers: make(map[*time.Timer]struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WorkerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for {
					select {
					case task := <-q.ch:
						q.handle(workerID, task)
					case <-q.done:
						// Drain whatever was already buffered, then stop.
						for {
							select {
							case task := <-q.ch:
								q.handle(workerID, task)
							default:
								q.logger.Info("worker stopped", "worker_id", workerID)
								return
							}
						}
					}
				}
			}(i + 1)
		}
	})
}

func (q *WorkerQueue) handle(workerID int, task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	err := q.proc.Process(ctx, task.DocumentID, task.StagingPath)
	cancel()

	if err != nil {
		q.logger.Error("processing failed",
			"worker_id", workerID,
			"task_id", task.ID,
			"document_id", task.DocumentID,
			"attempt", task.Attempt,
			"error", err,
		)
		q.scheduleRetry(task)
		return
	}
	q.logger.Info("task processed",
		"worker_id", workerID,
		"task_id", task.ID,
		"document_id", task.DocumentID,
		"attempt", task.Attempt,
	)
}

// Enqueue submits a task and returns its opaque id, assigning a fresh
// one when the caller left it empty. Returns ErrQueueClosed after
// Shutdown has begun; nothing is scheduled in that case.
func (q *WorkerQueue) Enqueue(_ context.Context, task Task) (string, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.SubmittedAt.IsZero() {
		task.SubmittedAt = time.Now()
	}

	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", task.DocumentID)
		return "", ErrQueueClosed
	}

	// Never send while holding q.mu: workers take the lock in
	// scheduleRetry, so a blocking send under the lock can deadlock
	// against a full channel.
	select {
	case q.ch <- task:
	default:
		q.logger.Warn("queue full, applying backpressure", "task_id", task.ID, "document_id", task.DocumentID)
		select {
		case q.ch <- task:
		case <-q.done:
			return "", ErrQueueClosed
		}
	}
	q.logger.Info("task queued", "task_id", task.ID, "document_id", task.DocumentID, "attempt", task.Attempt)
	return task.ID, nil
}

// scheduleRetry redelivers a failed task after the next backoff delay,
// or abandons it once the schedule is exhausted. The record is left in
// FAILED by the processor at that point.
func (q *WorkerQueue) scheduleRetry(task Task) {
	if task.Attempt >= len(q.delays) {
		q.logger.Error("task abandoned, retry schedule exhausted",
			"task_id", task.ID,
			"document_id", task.DocumentID,
			"attempts", task.Attempt+1,
		)
		return
	}

	delay := q.delays[task.Attempt]
	task.Attempt++

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("dropping retry: queue is shutting down", "task_id", task.ID)
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		q.mu.Lock()
		delete(q.timers, timer)
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return
		}
		select {
		case q.ch <- task:
			q.logger.Info("task redelivered", "task_id", task.ID, "document_id", task.DocumentID, "attempt", task.Attempt)
		case <-q.done:
		}
	})
	q.timers[timer] = struct{}{}
	q.logger.Info("retry scheduled", "task_id", task.ID, "document_id", task.DocumentID, "attempt", task.Attempt, "delay", delay)
}

// Shutdown stops intake, cancels pending retries and drains in-flight
// and buffered work, bounded by ctx.
func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for timer := range q.timers {
		timer.Stop()
		delete(q.timers, timer)
	}
	q.mu.Unlock()
	close(q.done)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
