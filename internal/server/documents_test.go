package server

import (
	"context"
	"encoding/base64"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"docvault/constants"
	docspb "docvault/gen/proto/docs/v1"
	"docvault/internal/async"
	"docvault/internal/entity"
	"docvault/internal/ingest"
	"docvault/internal/repository"
	"docvault/internal/staging"
)

type fakeRepo struct {
	lastCriteria repository.SearchCriteria
	results      []*entity.Document
	docs         map[uuid.UUID]*entity.Document
}

func (f *fakeRepo) Create(_ context.Context, p repository.CreateDocumentParams) (*entity.Document, error) {
	doc := &entity.Document{
		ID:         uuid.New(),
		Filename:   p.Filename,
		Status:     constants.StatusReceived,
		CustomerID: p.CustomerID,
		UserID:     p.UserID,
		Size:       p.Size,
	}
	if f.docs == nil {
		f.docs = make(map[uuid.UUID]*entity.Document)
	}
	f.docs[doc.ID] = doc
	return doc, nil
}

func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	return nil, nil
}
func (f *fakeRepo) SetCorrelationID(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeRepo) MarkProcessing(context.Context, uuid.UUID) (bool, error)   { return false, nil }
func (f *fakeRepo) MarkProcessed(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (f *fakeRepo) MarkFailed(context.Context, uuid.UUID) (bool, error) { return false, nil }

func (f *fakeRepo) Search(_ context.Context, c repository.SearchCriteria) ([]*entity.Document, int, error) {
	f.lastCriteria = c
	return f.results, len(f.results), nil
}

type noopQueue struct{}

func (noopQueue) Enqueue(_ context.Context, task async.Task) (string, error) {
	return uuid.NewString(), nil
}
func (noopQueue) Shutdown(context.Context) {}

func newTestService(t *testing.T) (*DocumentsService, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	logger := slog.Default()
	writer := staging.NewWriter(t.TempDir(), logger)
	h := ingest.NewHandler(writer, repo, noopQueue{}, logger)
	return NewDocumentsService(h, repo, nil, logger), repo
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want a gRPC status", err)
	}
	if st.Code() != code {
		t.Fatalf("code = %s, want %s (%v)", st.Code(), code, err)
	}
}

func TestUploadDocumentValidation(t *testing.T) {
	svc, _ := newTestService(t)
	valid := func() *docspb.UploadDocumentRequest {
		return &docspb.UploadDocumentRequest{
			Filename:     "contract.pdf",
			EncodedFile:  base64.StdEncoding.EncodeToString([]byte("%PDF")),
			ContentType:  "application/pdf",
			DocumentType: "CONTRACT",
			Channel:      "DIGITAL",
			UserId:       uuid.NewString(),
			UserRole:     "CLIENT",
		}
	}

	tests := []struct {
		name   string
		mutate func(*docspb.UploadDocumentRequest)
	}{
		{"missing filename", func(r *docspb.UploadDocumentRequest) { r.Filename = " " }},
		{"missing payload", func(r *docspb.UploadDocumentRequest) { r.EncodedFile = "" }},
		{"missing content type", func(r *docspb.UploadDocumentRequest) { r.ContentType = "" }},
		{"unknown document type", func(r *docspb.UploadDocumentRequest) { r.DocumentType = "MEME" }},
		{"unknown channel", func(r *docspb.UploadDocumentRequest) { r.Channel = "FAX" }},
		{"bad user id", func(r *docspb.UploadDocumentRequest) { r.UserId = "not-a-uuid" }},
		{"bad customer id", func(r *docspb.UploadDocumentRequest) { r.CustomerId = "not-a-uuid" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := svc.UploadDocument(context.Background(), req)
			wantCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestUploadDocumentAccepted(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.UploadDocument(context.Background(), &docspb.UploadDocumentRequest{
		Filename:     "contract.pdf",
		EncodedFile:  base64.StdEncoding.EncodeToString([]byte("%PDF")),
		ContentType:  "application/pdf",
		DocumentType: "CONTRACT",
		Channel:      "DIGITAL",
		UserId:       uuid.NewString(),
		UserRole:     "CLIENT",
	})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}
	if resp.GetStatus() != "RECEIVED" {
		t.Errorf("status = %q, want RECEIVED", resp.GetStatus())
	}
	if resp.GetDocumentId() == "" || resp.GetJobId() == "" {
		t.Errorf("response must carry document and job ids: %+v", resp)
	}
}

func TestUploadDocumentUnrecognizedRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadDocument(context.Background(), &docspb.UploadDocumentRequest{
		Filename:     "contract.pdf",
		EncodedFile:  base64.StdEncoding.EncodeToString([]byte("%PDF")),
		ContentType:  "application/pdf",
		DocumentType: "CONTRACT",
		Channel:      "DIGITAL",
		UserId:       uuid.NewString(),
		UserRole:     "UnknownRole",
	})
	wantCode(t, err, codes.PermissionDenied)
}

func TestSearchConfinesNonAdminToOwnDocuments(t *testing.T) {
	svc, repo := newTestService(t)
	me := uuid.New()

	_, err := svc.SearchDocuments(context.Background(), &docspb.SearchDocumentsRequest{
		CurrentUserId:   me.String(),
		CurrentUserRole: "CLIENT",
	})
	if err != nil {
		t.Fatalf("SearchDocuments: %v", err)
	}
	if repo.lastCriteria.UserID == nil || *repo.lastCriteria.UserID != me {
		t.Errorf("non-admin search must be scoped to the caller, got %v", repo.lastCriteria.UserID)
	}
}

func TestSearchRejectsCrossUserForNonAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SearchDocuments(context.Background(), &docspb.SearchDocumentsRequest{
		CurrentUserId:   uuid.NewString(),
		CurrentUserRole: "OPERATOR",
		UserId:          uuid.NewString(),
	})
	wantCode(t, err, codes.PermissionDenied)
}

func TestSearchAdminSeesAnyUser(t *testing.T) {
	svc, repo := newTestService(t)
	other := uuid.New()

	_, err := svc.SearchDocuments(context.Background(), &docspb.SearchDocumentsRequest{
		CurrentUserId:   uuid.NewString(),
		CurrentUserRole: "ADMIN",
		UserId:          other.String(),
	})
	if err != nil {
		t.Fatalf("SearchDocuments: %v", err)
	}
	if repo.lastCriteria.UserID == nil || *repo.lastCriteria.UserID != other {
		t.Errorf("admin search should pass the requested user through, got %v", repo.lastCriteria.UserID)
	}
}

func TestSearchAppliesPaginationDefaults(t *testing.T) {
	svc, repo := newTestService(t)

	resp, err := svc.SearchDocuments(context.Background(), &docspb.SearchDocumentsRequest{
		CurrentUserId:   uuid.NewString(),
		CurrentUserRole: "ADMIN",
	})
	if err != nil {
		t.Fatalf("SearchDocuments: %v", err)
	}
	if repo.lastCriteria.Page != repository.DefaultPage || repo.lastCriteria.PageSize != repository.DefaultPageSize {
		t.Errorf("criteria = page %d size %d, want defaults", repo.lastCriteria.Page, repo.lastCriteria.PageSize)
	}
	if resp.GetPage() != repository.DefaultPage || resp.GetPageSize() != repository.DefaultPageSize {
		t.Errorf("response must echo the effective pagination: %+v", resp)
	}
}

func TestSearchValidation(t *testing.T) {
	svc, _ := newTestService(t)
	admin := func() *docspb.SearchDocumentsRequest {
		return &docspb.SearchDocumentsRequest{
			CurrentUserId:   uuid.NewString(),
			CurrentUserRole: "ADMIN",
		}
	}

	tests := []struct {
		name   string
		mutate func(*docspb.SearchDocumentsRequest)
	}{
		{"bad current user id", func(r *docspb.SearchDocumentsRequest) { r.CurrentUserId = "nope" }},
		{"bad date", func(r *docspb.SearchDocumentsRequest) { r.UploadDateStart = "15/03/2026" }},
		{"unknown status", func(r *docspb.SearchDocumentsRequest) { r.Status = "LIMBO" }},
		{"unknown sort field", func(r *docspb.SearchDocumentsRequest) { r.SortBy = "SIZE" }},
		{"oversized page", func(r *docspb.SearchDocumentsRequest) { r.PageSize = repository.MaxPageSize + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := admin()
			tt.mutate(req)
			_, err := svc.SearchDocuments(context.Background(), req)
			wantCode(t, err, codes.InvalidArgument)
		})
	}
}
