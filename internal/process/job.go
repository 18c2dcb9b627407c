// Package process consumes scheduled tasks and promotes staged files
// to permanent storage.
package process

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"docvault/constants"
	"docvault/internal/common"
	"docvault/internal/entity"
	"docvault/internal/repository"
	"docvault/internal/staging"
	"docvault/internal/storage"
)

// Job finalizes one document per delivered task: copy the staged file
// to permanent storage, set the locator, flip the status. The queue may
// redeliver the same task, so every step tolerates running twice.
type Job struct {
	repo   repository.DocumentRepository
	store  storage.Store
	logger *slog.Logger
}

func NewJob(repo repository.DocumentRepository, store storage.Store, logger *slog.Logger) *Job {
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{repo: repo, store: store, logger: logger}
}

// Process promotes the staged file for documentID and finalizes the
// record. Errors returned here go back to the queue's retry policy;
// nil means the task is settled (including the expected missing-file
// race under redelivery).
func (j *Job) Process(ctx context.Context, documentID uuid.UUID, stagingPath string) error {
	j.logger.Info("processing document", "document_id", documentID, "staging_path", stagingPath)

	doc, err := j.repo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// A scheduled task for a record that no longer exists means
			// a bug or corruption, not a transient fault.
			j.logger.Error("document not found for scheduled task", "document_id", documentID)
			return fmt.Errorf("document %s not found: %w", documentID, common.ErrIntegrity)
		}
		return fmt.Errorf("loading document %s: %w", documentID, err)
	}

	// Redundant redelivery of an already finalized document is a no-op;
	// a PROCESSED record must never regress.
	if doc.Status == constants.StatusProcessed {
		j.logger.Info("document already processed, skipping redelivery", "document_id", documentID)
		return nil
	}

	if !staging.Exists(stagingPath) {
		// Expected race under at-least-once delivery: the staged file
		// was evicted or consumed by a prior attempt. Settle as FAILED
		// without propagating.
		j.logger.Error("staging file missing", "document_id", documentID, "staging_path", stagingPath)
		if _, ferr := j.repo.MarkFailed(ctx, documentID); ferr != nil {
			j.logger.Error("could not mark document failed", "document_id", documentID, "error", ferr)
		}
		return nil
	}

	// Best-effort progress marker; losing this race is fine.
	if _, err := j.repo.MarkProcessing(ctx, documentID); err != nil {
		j.logger.Warn("could not mark document processing", "document_id", documentID, "error", err)
	}

	locator, err := j.promote(ctx, doc, stagingPath)
	if err != nil {
		j.fail(ctx, documentID, err)
		return err
	}

	ok, err := j.repo.MarkProcessed(ctx, documentID, locator)
	if err != nil {
		j.fail(ctx, documentID, err)
		return fmt.Errorf("finalizing document %s: %w", documentID, err)
	}
	if !ok {
		// A concurrent worker finalized first. Re-read to tell success
		// apart from a record that already failed terminally.
		current, gerr := j.repo.GetByID(ctx, documentID)
		if gerr == nil && current.Status == constants.StatusProcessed {
			j.logger.Info("document finalized by concurrent worker", "document_id", documentID)
			return nil
		}
		return fmt.Errorf("document %s is terminal, cannot finalize: %w", documentID, common.ErrIntegrity)
	}

	j.cleanupStaging(stagingPath)

	j.logger.Info("document processed",
		"document_id", documentID,
		"file_url", locator,
		"status", constants.StatusProcessed,
	)
	return nil
}

// promote copies (not moves) the staged file to permanent storage so a
// retry after a partial failure still finds its input.
func (j *Job) promote(ctx context.Context, doc *entity.Document, stagingPath string) (string, error) {
	src, err := os.Open(stagingPath)
	if err != nil {
		return "", fmt.Errorf("opening staging file: %w", err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			j.logger.Warn("closing staging file", "path", stagingPath, "error", cerr)
		}
	}()

	key := storage.ObjectKey(doc.ID, doc.Filename, doc.CreatedAt)
	locator, err := j.store.Put(ctx, key, src)
	if err != nil {
		return "", fmt.Errorf("promoting to permanent storage: %w", err)
	}
	return locator, nil
}

// fail makes a best-effort attempt to leave the record FAILED before
// the original error propagates. A failure to even write the status is
// logged alongside, never allowed to mask the processing error.
func (j *Job) fail(ctx context.Context, documentID uuid.UUID, cause error) {
	if _, err := j.repo.MarkFailed(ctx, documentID); err != nil {
		j.logger.Error("could not mark document failed",
			"document_id", documentID,
			"processing_error", cause,
			"status_error", err,
		)
	}
}

// cleanupStaging removes the staged file after a successful promotion.
// Deletion failure is non-fatal; stale files are cleaned out-of-band.
func (j *Job) cleanupStaging(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		j.logger.Warn("could not remove staging file", "path", path, "error", err)
		return
	}
	j.logger.Info("staging file removed", "path", path)
}
