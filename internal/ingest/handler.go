// Package ingest turns an upload request into a durable document
// record plus a scheduled processing task.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docvault/constants"
	"docvault/internal/async"
	"docvault/internal/common"
	"docvault/internal/repository"
	"docvault/internal/staging"
)

// Handler stages the payload, creates the document record and schedules
// the processing task, synchronously in the request path. The caller is
// only told "received" once all three are durable.
type Handler struct {
	writer *staging.Writer
	repo   repository.DocumentRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewHandler(writer *staging.Writer, repo repository.DocumentRepository, queue async.Queue, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		writer: writer,
		repo:   repo,
		queue:  queue,
		logger: logger,
	}
}

// Ingest processes one upload. Side effects are ordered so that each
// failure is isolated: a staging failure leaves no record, a record
// failure leaves only an orphan staging file, and a scheduling failure
// leaves the record at RECEIVED for the reconciliation sweep to find.
func (h *Handler) Ingest(ctx context.Context, req Request) (Result, error) {
	customerID, err := resolveCustomerID(req)
	if err != nil {
		h.logger.Error("customer resolution failed", "user_id", req.UserID, "role", req.UserRole.String(), "error", err)
		return Result{}, err
	}

	stagingPath, size, err := h.writer.Stage(req.EncodedFile, req.Filename)
	if err != nil {
		return Result{}, err
	}

	doc, err := h.repo.Create(ctx, repository.CreateDocumentParams{
		Filename:      req.Filename,
		ContentType:   req.ContentType,
		Size:          size,
		DocumentType:  req.DocumentType,
		Channel:       req.Channel,
		CorrelationID: req.CorrelationID,
		CustomerID:    customerID,
		UserID:        req.UserID,
	})
	if err != nil {
		return Result{}, common.OperationalError("creating document record", err)
	}

	jobID, err := h.queue.Enqueue(ctx, async.Task{
		DocumentID:  doc.ID,
		StagingPath: stagingPath,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		// The record stays at RECEIVED with no task; detectable by an
		// out-of-band reconciliation sweep.
		h.logger.Error("enqueue failed", "document_id", doc.ID, "error", err)
		return Result{}, common.OperationalError("scheduling processing task", err)
	}

	if req.CorrelationID == "" {
		if err := h.repo.SetCorrelationID(ctx, doc.ID, jobID); err != nil {
			return Result{}, common.OperationalError("backfilling correlation id", err)
		}
	}

	h.logger.Info("document ingested",
		"document_id", doc.ID,
		"job_id", jobID,
		"filename", doc.Filename,
		"size", doc.Size,
		"customer_id", customerID,
	)

	return Result{
		DocumentID: doc.ID,
		JobID:      jobID,
		Status:     doc.Status,
		Message:    fmt.Sprintf("Document received. Job %s queued for processing.", jobID),
	}, nil
}

// resolveCustomerID maps the caller's role onto the effective customer
// association. Clients always own their uploads; operators and admins
// must say which customer they act for.
func resolveCustomerID(req Request) (uuid.UUID, error) {
	switch req.UserRole {
	case constants.RoleClient:
		return req.UserID, nil
	case constants.RoleOperator, constants.RoleAdmin:
		if req.CustomerID == nil || *req.CustomerID == uuid.Nil {
			return uuid.Nil, common.ValidationError("customer id required for this role")
		}
		return *req.CustomerID, nil
	default:
		return uuid.Nil, common.AuthorizationError("role not recognized for this operation")
	}
}
