package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"docvault/constants"
	"docvault/internal/entity"
	"docvault/internal/repository"
)

type fakeRepo struct {
	docs []*entity.Document
}

func (f *fakeRepo) Create(context.Context, repository.CreateDocumentParams) (*entity.Document, error) {
	panic("not used")
}
func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*entity.Document, error) { return nil, nil }
func (f *fakeRepo) SetCorrelationID(context.Context, uuid.UUID, string) error    { return nil }
func (f *fakeRepo) MarkProcessing(context.Context, uuid.UUID) (bool, error)      { return false, nil }
func (f *fakeRepo) MarkProcessed(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (f *fakeRepo) MarkFailed(context.Context, uuid.UUID) (bool, error) { return false, nil }

func (f *fakeRepo) Search(context.Context, repository.SearchCriteria) ([]*entity.Document, int, error) {
	return f.docs, len(f.docs), nil
}

func TestExportDocumentsXLSX(t *testing.T) {
	repo := &fakeRepo{docs: []*entity.Document{
		{
			ID:            uuid.New(),
			Filename:      "contract.pdf",
			ContentType:   "application/pdf",
			Size:          1234,
			DocumentType:  constants.TypeContract,
			Channel:       constants.ChannelDigital,
			Status:        constants.StatusProcessed,
			FileURL:       "/store/2026/03/contract.pdf",
			CorrelationID: "corr-1",
			CustomerID:    uuid.New(),
			CreatedAt:     time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			Filename:     "passport.jpg",
			ContentType:  "image/jpeg",
			Size:         99,
			DocumentType: constants.TypePassport,
			Channel:      constants.ChannelBackoffice,
			Status:       constants.StatusReceived,
			CustomerID:   uuid.New(),
			CreatedAt:    time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewService(repo, nil)

	data, err := svc.ExportDocumentsXLSX(context.Background(), repository.SearchCriteria{})
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatalf("reading sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 documents", len(rows))
	}
	if rows[0][1] != "Filename" {
		t.Errorf("header = %q, want Filename", rows[0][1])
	}
	if rows[1][1] != "contract.pdf" || rows[2][1] != "passport.jpg" {
		t.Errorf("document rows out of order: %v / %v", rows[1], rows[2])
	}
	if rows[1][4] != "PROCESSED" {
		t.Errorf("status cell = %q, want PROCESSED", rows[1][4])
	}
}

func TestExportValidatesCriteria(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.ExportDocumentsXLSX(context.Background(), repository.SearchCriteria{
		PageSize: repository.MaxPageSize + 1,
	})
	if err == nil {
		t.Fatal("out-of-bounds criteria must be rejected")
	}
}
