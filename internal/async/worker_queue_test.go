package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// countingProcessor fails the first failures calls, then succeeds.
type countingProcessor struct {
	mu       sync.Mutex
	calls    int
	failures int
	done     chan struct{} // closed on first successful call
}

func newCountingProcessor(failures int) *countingProcessor {
	return &countingProcessor{failures: failures, done: make(chan struct{})}
}

func (p *countingProcessor) Process(_ context.Context, _ uuid.UUID, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failures {
		return errors.New("transient failure")
	}
	select {
	case <-p.done:
	default:
		close(p.done)
	}
	return nil
}

func (p *countingProcessor) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func waitClosed(t *testing.T, ch chan struct{}, timeout time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for processing")
	}
}

func TestEnqueueAssignsTaskID(t *testing.T) {
	proc := newCountingProcessor(0)
	q := NewWorkerQueue(proc, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	id, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if id == "" {
		t.Error("task id should never be empty")
	}
	waitClosed(t, proc.done, 2*time.Second)
}

func TestEnqueueKeepsCallerTaskID(t *testing.T) {
	proc := newCountingProcessor(0)
	q := NewWorkerQueue(proc, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	id, err := q.Enqueue(context.Background(), Task{ID: "task-42", DocumentID: uuid.New()})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if id != "task-42" {
		t.Errorf("id = %q, want the caller's id", id)
	}
}

func TestRetryUntilSuccess(t *testing.T) {
	proc := newCountingProcessor(2)
	q := NewWorkerQueue(proc, nil,
		WithWorkers(1),
		WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}),
	)
	defer q.Shutdown(context.Background())

	if _, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	waitClosed(t, proc.done, 5*time.Second)
	if got := proc.callCount(); got != 3 {
		t.Errorf("calls = %d, want 2 failures then 1 success", got)
	}
}

func TestAbandonAfterScheduleExhausted(t *testing.T) {
	proc := newCountingProcessor(1000) // never succeeds
	q := NewWorkerQueue(proc, nil,
		WithWorkers(1),
		WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond}),
	)
	defer q.Shutdown(context.Background())

	if _, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	// First attempt plus one redelivery per delay, then abandonment.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if proc.callCount() == 3 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := proc.callCount(); got != 3 {
		t.Fatalf("calls = %d, want exactly 3 attempts", got)
	}

	// No further redelivery after the schedule is exhausted.
	time.Sleep(50 * time.Millisecond)
	if got := proc.callCount(); got != 3 {
		t.Errorf("calls = %d after abandonment, want still 3", got)
	}
}

func TestNoRetriesWhenDisabled(t *testing.T) {
	proc := newCountingProcessor(1000)
	q := NewWorkerQueue(proc, nil,
		WithWorkers(1),
		WithRetryDelays(nil),
	)
	defer q.Shutdown(context.Background())

	if _, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	if got := proc.callCount(); got != 1 {
		t.Errorf("calls = %d with retries disabled, want 1", got)
	}
}

func TestShutdownDrainsQueuedTasks(t *testing.T) {
	var mu sync.Mutex
	processed := 0
	proc := processorFunc(func(context.Context, uuid.UUID, string) error {
		mu.Lock()
		processed++
		mu.Unlock()
		return nil
	})
	q := NewWorkerQueue(proc, nil, WithWorkers(2), WithQueueSize(32))

	const n = 10
	for i := 0; i < n; i++ {
		if _, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if processed != n {
		t.Errorf("processed = %d, want all %d queued tasks drained", processed, n)
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewWorkerQueue(newCountingProcessor(0), nil, WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // must not panic
}

func TestEnqueueAfterShutdown(t *testing.T) {
	q := NewWorkerQueue(newCountingProcessor(0), nil, WithWorkers(1))
	q.Shutdown(context.Background())

	_, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()})
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("err = %v, want ErrQueueClosed", err)
	}
}

// A full channel, a worker scheduling a retry, and a caller blocked in
// backpressure must all make progress against each other.
func TestBackpressureDoesNotBlockRetryBookkeeping(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0
	proc := processorFunc(func(context.Context, uuid.UUID, string) error {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-release
			return errors.New("transient failure")
		}
		return nil
	})

	q := NewWorkerQueue(proc, nil,
		WithWorkers(1),
		WithQueueSize(1),
		WithRetryDelays([]time.Duration{time.Millisecond}),
	)
	defer q.Shutdown(context.Background())

	// First task occupies the sole worker, second fills the buffer.
	if _, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	<-started
	if _, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	// Third submission hits backpressure and can only proceed once the
	// worker fails the first task, books its retry and drains the buffer.
	unblocked := make(chan error, 1)
	go func() {
		_, err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New()})
		unblocked <- err
	}()

	close(release)
	select {
	case err := <-unblocked:
		if err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue stayed blocked while the worker was scheduling a retry")
	}
}

// processorFunc adapts a function to the Processor interface.
type processorFunc func(ctx context.Context, documentID uuid.UUID, stagingPath string) error

func (f processorFunc) Process(ctx context.Context, documentID uuid.UUID, stagingPath string) error {
	return f(ctx, documentID, stagingPath)
}
