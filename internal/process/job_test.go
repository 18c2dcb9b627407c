package process

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"docvault/constants"
	"docvault/internal/common"
	"docvault/internal/entity"
	"docvault/internal/repository"
	"docvault/internal/storage"
)

// fakeRepo mimics the compare-and-set status transitions of the real
// repository: terminal states never change again.
type fakeRepo struct {
	docs map[uuid.UUID]*entity.Document

	markFailedCalls int
}

func newFakeRepo(docs ...*entity.Document) *fakeRepo {
	f := &fakeRepo{docs: make(map[uuid.UUID]*entity.Document)}
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return f
}

func (f *fakeRepo) Create(context.Context, repository.CreateDocumentParams) (*entity.Document, error) {
	panic("not used")
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeRepo) SetCorrelationID(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeRepo) MarkProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	doc, ok := f.docs[id]
	if !ok || doc.Status != constants.StatusReceived {
		return false, nil
	}
	doc.Status = constants.StatusProcessing
	return true, nil
}

func (f *fakeRepo) MarkProcessed(_ context.Context, id uuid.UUID, fileURL string) (bool, error) {
	doc, ok := f.docs[id]
	if !ok || doc.Status.IsTerminal() {
		return false, nil
	}
	doc.Status = constants.StatusProcessed
	doc.FileURL = fileURL
	return true, nil
}

func (f *fakeRepo) MarkFailed(_ context.Context, id uuid.UUID) (bool, error) {
	f.markFailedCalls++
	doc, ok := f.docs[id]
	if !ok || doc.Status.IsTerminal() {
		return false, nil
	}
	doc.Status = constants.StatusFailed
	return true, nil
}

func (f *fakeRepo) Search(context.Context, repository.SearchCriteria) ([]*entity.Document, int, error) {
	return nil, 0, nil
}

// failingStore rejects every Put.
type failingStore struct{}

func (failingStore) Put(context.Context, string, io.Reader) (string, error) {
	return "", errors.New("storage unavailable")
}

func receivedDoc() *entity.Document {
	return &entity.Document{
		ID:        uuid.New(),
		Filename:  "contract.pdf",
		Status:    constants.StatusReceived,
		CreatedAt: time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
}

func stageFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staged_contract.pdf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestJob(t *testing.T, repo repository.DocumentRepository) (*Job, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalStore(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewJob(repo, store, nil), root
}

func TestProcessPromotesAndFinalizes(t *testing.T) {
	doc := receivedDoc()
	repo := newFakeRepo(doc)
	job, root := newTestJob(t, repo)
	staged := stageFile(t, "%PDF payload")

	if err := job.Process(context.Background(), doc.ID, staged); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := repo.docs[doc.ID]
	if got.Status != constants.StatusProcessed {
		t.Errorf("status = %s, want %s", got.Status, constants.StatusProcessed)
	}
	want := filepath.Join(root, "2026", "03", doc.ID.String()+"_contract.pdf")
	if got.FileURL != want {
		t.Errorf("file url = %q, want %q", got.FileURL, want)
	}

	stored, err := os.ReadFile(got.FileURL)
	if err != nil {
		t.Fatalf("reading promoted file: %v", err)
	}
	if string(stored) != "%PDF payload" {
		t.Errorf("promoted bytes differ from staged bytes")
	}
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Errorf("staging file should be removed after promotion")
	}
}

func TestProcessRedeliveryIsNoOp(t *testing.T) {
	doc := receivedDoc()
	repo := newFakeRepo(doc)
	job, _ := newTestJob(t, repo)
	staged := stageFile(t, "payload")

	if err := job.Process(context.Background(), doc.ID, staged); err != nil {
		t.Fatalf("first Process: %v", err)
	}
	locator := repo.docs[doc.ID].FileURL

	// The staging file is gone by now; a redelivered task must settle
	// without touching the finalized record.
	if err := job.Process(context.Background(), doc.ID, staged); err != nil {
		t.Fatalf("redelivered Process: %v", err)
	}
	if repo.docs[doc.ID].Status != constants.StatusProcessed {
		t.Errorf("redelivery regressed status to %s", repo.docs[doc.ID].Status)
	}
	if repo.docs[doc.ID].FileURL != locator {
		t.Errorf("redelivery changed the locator")
	}
	if repo.markFailedCalls != 0 {
		t.Errorf("redelivery of a finalized document must not mark it failed")
	}
}

func TestProcessMissingStagingFileFails(t *testing.T) {
	doc := receivedDoc()
	repo := newFakeRepo(doc)
	job, _ := newTestJob(t, repo)

	err := job.Process(context.Background(), doc.ID, filepath.Join(t.TempDir(), "gone.pdf"))
	if err != nil {
		t.Fatalf("missing staging file must settle, not retry: %v", err)
	}
	if repo.docs[doc.ID].Status != constants.StatusFailed {
		t.Errorf("status = %s, want %s", repo.docs[doc.ID].Status, constants.StatusFailed)
	}
}

func TestProcessUnknownDocument(t *testing.T) {
	repo := newFakeRepo()
	job, _ := newTestJob(t, repo)

	err := job.Process(context.Background(), uuid.New(), stageFile(t, "payload"))
	if !errors.Is(err, common.ErrIntegrity) {
		t.Fatalf("err = %v, want integrity error", err)
	}
}

func TestProcessStorageFailure(t *testing.T) {
	doc := receivedDoc()
	repo := newFakeRepo(doc)
	job := NewJob(repo, failingStore{}, nil)
	staged := stageFile(t, "payload")

	err := job.Process(context.Background(), doc.ID, staged)
	if err == nil {
		t.Fatal("storage failure must propagate to the retry policy")
	}
	if !strings.Contains(err.Error(), "storage unavailable") {
		t.Errorf("err = %v, want the storage cause", err)
	}
	if repo.docs[doc.ID].Status != constants.StatusFailed {
		t.Errorf("status = %s, want %s before the retry", repo.docs[doc.ID].Status, constants.StatusFailed)
	}
	if _, serr := os.Stat(staged); serr != nil {
		t.Errorf("staging file must survive a failed attempt: %v", serr)
	}
}
