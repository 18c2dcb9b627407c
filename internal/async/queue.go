package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is the serializable unit of work the scheduler owns: which
// document to finalize and where its staged bytes live. Attempt counts
// redeliveries of the same task.
type Task struct {
	ID          string
	DocumentID  uuid.UUID
	StagingPath string
	Attempt     int
	SubmittedAt time.Time
}

// Queue is the minimal scheduler contract the pipeline depends on:
// enqueue a task, get back its opaque id, delivery is at-least-once.
type Queue interface {
	Enqueue(ctx context.Context, task Task) (string, error)
	Shutdown(ctx context.Context)
}

// Processor consumes one delivered task. Returning an error requests a
// retry under the queue's backoff policy.
type Processor interface {
	Process(ctx context.Context, documentID uuid.UUID, stagingPath string) error
}
