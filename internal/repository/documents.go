package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"docvault/constants"
	"docvault/gen/ent"
	entdoc "docvault/gen/ent/document"
	"docvault/internal/common"
	"docvault/internal/entity"
)

// CreateDocumentParams wraps the fields persisted when a document
// record is first created. Status is always RECEIVED at creation.
type CreateDocumentParams struct {
	Filename      string
	ContentType   string
	Size          int64
	DocumentType  constants.DocumentType
	Channel       constants.DocumentChannel
	CorrelationID string // empty means "backfill with the task id later"
	CustomerID    uuid.UUID
	UserID        uuid.UUID
}

type DocumentRepository interface {
	Create(ctx context.Context, p CreateDocumentParams) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	SetCorrelationID(ctx context.Context, id uuid.UUID, correlationID string) error
	// MarkProcessing advances RECEIVED -> PROCESSING. Losing the race is
	// not an error; the returned bool reports whether the row changed.
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	// MarkProcessed finalizes a non-terminal record with PROCESSED and
	// the storage locator. Returns false when the record was already
	// terminal (a concurrent worker won).
	MarkProcessed(ctx context.Context, id uuid.UUID, fileURL string) (bool, error)
	// MarkFailed finalizes a non-terminal record with FAILED. It never
	// overwrites PROCESSED or FAILED.
	MarkFailed(ctx context.Context, id uuid.UUID) (bool, error)
	Search(ctx context.Context, c SearchCriteria) ([]*entity.Document, int, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, p CreateDocumentParams) (*entity.Document, error) {
	builder := r.ent.Document.Create().
		SetFilename(p.Filename).
		SetContentType(p.ContentType).
		SetSize(p.Size).
		SetDocumentType(string(p.DocumentType)).
		SetChannel(string(p.Channel)).
		SetStatus(string(constants.StatusReceived)).
		SetCustomerID(p.CustomerID).
		SetUserID(p.UserID).
		SetCreatedAt(time.Now().UTC())
	if p.CorrelationID != "" {
		builder = builder.SetCorrelationID(p.CorrelationID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", p.Filename, "customer_id", p.CustomerID, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "filename", row.Filename, "status", row.Status)
	return toDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) SetCorrelationID(ctx context.Context, id uuid.UUID, correlationID string) error {
	err := r.ent.Document.
		UpdateOneID(id).
		SetCorrelationID(correlationID).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set correlation id", "document_id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Document.
		Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusEQ(string(constants.StatusReceived)),
		).
		SetStatus(string(constants.StatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("status transition to PROCESSING failed", "document_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *documentRepo) MarkProcessed(ctx context.Context, id uuid.UUID, fileURL string) (bool, error) {
	n, err := r.ent.Document.
		Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusIn(
				string(constants.StatusReceived),
				string(constants.StatusProcessing),
			),
		).
		SetStatus(string(constants.StatusProcessed)).
		SetFileURL(fileURL).
		Save(ctx)
	if err != nil {
		r.logger.Error("status transition to PROCESSED failed", "document_id", id, "error", err)
		return false, err
	}
	r.logger.Info("document processed", "document_id", id, "file_url", fileURL, "updated", n > 0)
	return n > 0, nil
}

func (r *documentRepo) MarkFailed(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Document.
		Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusIn(
				string(constants.StatusReceived),
				string(constants.StatusProcessing),
			),
		).
		SetStatus(string(constants.StatusFailed)).
		Save(ctx)
	if err != nil {
		r.logger.Error("status transition to FAILED failed", "document_id", id, "error", err)
		return false, err
	}
	r.logger.Warn("document marked failed", "document_id", id, "updated", n > 0)
	return n > 0, nil
}

func (r *documentRepo) Search(ctx context.Context, c SearchCriteria) ([]*entity.Document, int, error) {
	q := r.ent.Document.Query()

	if c.UserID != nil {
		q = q.Where(entdoc.UserID(*c.UserID))
	}
	if c.CustomerID != nil {
		q = q.Where(entdoc.CustomerID(*c.CustomerID))
	}
	if c.UploadDateStart != nil {
		q = q.Where(entdoc.CreatedAtGTE(*c.UploadDateStart))
	}
	if c.UploadDateEnd != nil {
		q = q.Where(entdoc.CreatedAtLTE(*c.UploadDateEnd))
	}
	if c.Filename != "" {
		q = q.Where(entdoc.FilenameContains(c.Filename))
	}
	if c.ContentType != "" {
		q = q.Where(entdoc.ContentTypeEQ(c.ContentType))
	}
	if c.DocumentType != nil {
		q = q.Where(entdoc.DocumentTypeEQ(string(*c.DocumentType)))
	}
	if c.Status != nil {
		q = q.Where(entdoc.StatusEQ(string(*c.Status)))
	}
	if c.Channel != nil {
		q = q.Where(entdoc.ChannelEQ(string(*c.Channel)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count documents", "error", err)
		return nil, 0, err
	}

	var opts []entsql.OrderTermOption
	if c.SortDirection == SortDesc {
		opts = append(opts, entsql.OrderDesc())
	}
	switch c.SortBy {
	case SortByFilename:
		q = q.Order(entdoc.ByFilename(opts...))
	case SortByDocumentType:
		q = q.Order(entdoc.ByDocumentType(opts...))
	case SortByStatus:
		q = q.Order(entdoc.ByStatus(opts...))
	default:
		q = q.Order(entdoc.ByCreatedAt(opts...))
	}

	rows, err := q.
		Offset((c.Page - 1) * c.PageSize).
		Limit(c.PageSize).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to search documents", "error", err)
		return nil, 0, err
	}

	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toDocument(row)
	}
	return out, total, nil
}

func toDocument(row *ent.Document) *entity.Document {
	d := &entity.Document{
		ID:           row.ID,
		Filename:     row.Filename,
		ContentType:  row.ContentType,
		Size:         row.Size,
		DocumentType: constants.DocumentType(row.DocumentType),
		Channel:      constants.DocumentChannel(row.Channel),
		Status:       constants.DocumentStatus(row.Status),
		CustomerID:   row.CustomerID,
		UserID:       row.UserID,
		CreatedAt:    row.CreatedAt,
	}
	if row.FileURL != nil {
		d.FileURL = *row.FileURL
	}
	if row.CorrelationID != nil {
		d.CorrelationID = *row.CorrelationID
	}
	return d
}
