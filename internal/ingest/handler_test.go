package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"docvault/constants"
	"docvault/internal/async"
	"docvault/internal/common"
	"docvault/internal/entity"
	"docvault/internal/repository"
	"docvault/internal/staging"
)

// fakeRepo records repository calls; Search and the status transitions
// are unused on the ingestion path.
type fakeRepo struct {
	created      []repository.CreateDocumentParams
	docs         map[uuid.UUID]*entity.Document
	correlations map[uuid.UUID]string
	createErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:         make(map[uuid.UUID]*entity.Document),
		correlations: make(map[uuid.UUID]string),
	}
}

func (f *fakeRepo) Create(_ context.Context, p repository.CreateDocumentParams) (*entity.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, p)
	doc := &entity.Document{
		ID:            uuid.New(),
		Filename:      p.Filename,
		ContentType:   p.ContentType,
		Size:          p.Size,
		DocumentType:  p.DocumentType,
		Channel:       p.Channel,
		Status:        constants.StatusReceived,
		CorrelationID: p.CorrelationID,
		CustomerID:    p.CustomerID,
		UserID:        p.UserID,
	}
	f.docs[doc.ID] = doc
	return doc, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return doc, nil
}

func (f *fakeRepo) SetCorrelationID(_ context.Context, id uuid.UUID, correlationID string) error {
	f.correlations[id] = correlationID
	return nil
}

func (f *fakeRepo) MarkProcessing(context.Context, uuid.UUID) (bool, error) { return false, nil }
func (f *fakeRepo) MarkProcessed(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (f *fakeRepo) MarkFailed(context.Context, uuid.UUID) (bool, error) { return false, nil }
func (f *fakeRepo) Search(context.Context, repository.SearchCriteria) ([]*entity.Document, int, error) {
	return nil, 0, nil
}

type fakeQueue struct {
	tasks      []async.Task
	enqueueErr error
}

func (f *fakeQueue) Enqueue(_ context.Context, task async.Task) (string, error) {
	if f.enqueueErr != nil {
		return "", f.enqueueErr
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	f.tasks = append(f.tasks, task)
	return task.ID, nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

func newTestHandler(t *testing.T) (*Handler, *fakeRepo, *fakeQueue) {
	t.Helper()
	repo := newFakeRepo()
	queue := &fakeQueue{}
	writer := staging.NewWriter(t.TempDir(), nil)
	return NewHandler(writer, repo, queue, nil), repo, queue
}

func uploadRequest(role constants.Role) Request {
	return Request{
		Filename:     "contract.pdf",
		EncodedFile:  base64.StdEncoding.EncodeToString([]byte("%PDF")),
		ContentType:  "application/pdf",
		DocumentType: constants.TypeContract,
		Channel:      constants.ChannelDigital,
		UserID:       uuid.New(),
		UserRole:     role,
	}
}

func TestIngestClientOwnsUpload(t *testing.T) {
	h, repo, queue := newTestHandler(t)

	req := uploadRequest(constants.RoleClient)
	// A client-supplied customer id is ignored; clients always upload
	// for themselves.
	other := uuid.New()
	req.CustomerID = &other

	res, err := h.Ingest(context.Background(), req)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d records, want 1", len(repo.created))
	}
	if repo.created[0].CustomerID != req.UserID {
		t.Errorf("customer id = %s, want the client's own user id %s", repo.created[0].CustomerID, req.UserID)
	}
	if len(queue.tasks) != 1 {
		t.Fatalf("enqueued %d tasks, want 1", len(queue.tasks))
	}
	if queue.tasks[0].DocumentID != res.DocumentID {
		t.Errorf("task document id = %s, want %s", queue.tasks[0].DocumentID, res.DocumentID)
	}
	if res.Status != constants.StatusReceived {
		t.Errorf("status = %s, want %s", res.Status, constants.StatusReceived)
	}
	if !strings.Contains(res.Message, res.JobID) {
		t.Errorf("message %q should reference job id %s", res.Message, res.JobID)
	}
}

func TestIngestOperatorRequiresCustomerID(t *testing.T) {
	for _, role := range []constants.Role{constants.RoleOperator, constants.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			h, repo, queue := newTestHandler(t)

			_, err := h.Ingest(context.Background(), uploadRequest(role))
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if len(repo.created) != 0 {
				t.Errorf("no record should exist after a rejected request")
			}
			if len(queue.tasks) != 0 {
				t.Errorf("no task should be scheduled after a rejected request")
			}
		})
	}
}

func TestIngestOperatorUploadsForCustomer(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	req := uploadRequest(constants.RoleOperator)
	customerID := uuid.New()
	req.CustomerID = &customerID

	if _, err := h.Ingest(context.Background(), req); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if repo.created[0].CustomerID != customerID {
		t.Errorf("customer id = %s, want %s", repo.created[0].CustomerID, customerID)
	}
	if repo.created[0].UserID != req.UserID {
		t.Errorf("user id = %s, want the operator's %s", repo.created[0].UserID, req.UserID)
	}
}

func TestIngestUnrecognizedRole(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	_, err := h.Ingest(context.Background(), uploadRequest(constants.RoleUnrecognized))
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("err = %v, want authorization error", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("no record should exist for an unrecognized role")
	}
}

func TestIngestMalformedPayloadLeavesNoRecord(t *testing.T) {
	h, repo, queue := newTestHandler(t)

	req := uploadRequest(constants.RoleClient)
	req.EncodedFile = "!!definitely not base64!!"

	_, err := h.Ingest(context.Background(), req)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(repo.created) != 0 || len(queue.tasks) != 0 {
		t.Errorf("rejected payload must leave no record and no task")
	}
}

func TestIngestBackfillsCorrelationID(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	res, err := h.Ingest(context.Background(), uploadRequest(constants.RoleClient))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.JobID == "" {
		t.Fatal("job id should not be empty")
	}
	if got := repo.correlations[res.DocumentID]; got != res.JobID {
		t.Errorf("backfilled correlation id = %q, want job id %q", got, res.JobID)
	}
}

func TestIngestKeepsCallerCorrelationID(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	req := uploadRequest(constants.RoleClient)
	req.CorrelationID = "order-1234"

	res, err := h.Ingest(context.Background(), req)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if repo.created[0].CorrelationID != "order-1234" {
		t.Errorf("correlation id = %q, want the caller's value", repo.created[0].CorrelationID)
	}
	if _, backfilled := repo.correlations[res.DocumentID]; backfilled {
		t.Errorf("caller-supplied correlation id must not be overwritten")
	}
}

func TestIngestRecordedSizeIsDecodedLength(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	req := uploadRequest(constants.RoleClient)
	req.EncodedFile = base64.StdEncoding.EncodeToString([]byte("%PDF"))

	if _, err := h.Ingest(context.Background(), req); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if repo.created[0].Size != 4 {
		t.Errorf("size = %d, want the decoded length 4", repo.created[0].Size)
	}
}

func TestIngestEnqueueFailure(t *testing.T) {
	h, repo, queue := newTestHandler(t)
	queue.enqueueErr = errors.New("queue unavailable")

	_, err := h.Ingest(context.Background(), uploadRequest(constants.RoleClient))
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("err = %v, want internal error", err)
	}
	// The record survives at RECEIVED for reconciliation.
	if len(repo.created) != 1 {
		t.Errorf("record should exist even though scheduling failed")
	}
}
