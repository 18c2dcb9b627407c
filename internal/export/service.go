package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"docvault/internal/repository"
)

// Service is a tiny façade over the document repository that produces
// XLSX bytes for exports.
type Service struct {
	docsRepo repository.DocumentRepository
	logger   *slog.Logger
}

func NewService(repo repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docsRepo: repo, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) for the given
// search criteria. Pagination applies to the export too, so a bounded
// page of at most MaxPageSize rows is rendered.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, criteria repository.SearchCriteria) ([]byte, error) {
	start := time.Now()

	criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	docs, total, err := s.docsRepo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded At",
		"Filename",
		"Document Type",
		"Channel",
		"Status",
		"Size (bytes)",
		"Content Type",
		"Correlation ID",
		"Customer ID",
		"Storage Location",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.CreatedAt.UTC().Format(time.RFC3339))
		write(2, d.Filename)
		write(3, string(d.DocumentType))
		write(4, string(d.Channel))
		write(5, string(d.Status))
		write(6, d.Size)
		write(7, d.ContentType)
		write(8, d.CorrelationID)
		write(9, d.CustomerID.String())
		write(10, d.FileURL)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // uploaded at
	_ = f.SetColWidth(sheet, "B", "B", 32) // filename
	_ = f.SetColWidth(sheet, "C", "E", 18) // type/channel/status
	_ = f.SetColWidth(sheet, "H", "J", 38) // ids + location

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	s.logger.Info("documents exported",
		"rows", row-2,
		"total_matching", total,
		"elapsed", time.Since(start),
	)
	return buf.Bytes(), nil
}
