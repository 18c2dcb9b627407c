package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"docvault/constants"
	docspb "docvault/gen/proto/docs/v1"
	"docvault/internal/common"
	"docvault/internal/export"
	"docvault/internal/ingest"
	"docvault/internal/repository"
	"docvault/internal/utils"
)

type DocumentsService struct {
	docspb.UnimplementedDocumentsServiceServer
	handler  *ingest.Handler
	docsRepo repository.DocumentRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewDocumentsService(h *ingest.Handler, repo repository.DocumentRepository, exp *export.Service, logger *slog.Logger) *DocumentsService {
	return &DocumentsService{
		handler:  h,
		docsRepo: repo,
		exporter: exp,
		logger:   logger,
	}
}

// UploadDocument implements docspb.DocumentsServiceServer
func (s *DocumentsService) UploadDocument(ctx context.Context, req *docspb.UploadDocumentRequest) (*docspb.UploadDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if req.GetEncodedFile() == "" {
		return nil, status.Error(codes.InvalidArgument, "encoded_file is required")
	}
	if strings.TrimSpace(req.GetContentType()) == "" {
		return nil, status.Error(codes.InvalidArgument, "content_type is required")
	}
	if !constants.IsDocumentType(req.GetDocumentType()) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown document type %q", req.GetDocumentType())
	}
	if !constants.IsChannel(req.GetChannel()) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown channel %q", req.GetChannel())
	}

	userID, err := uuid.Parse(strings.TrimSpace(req.GetUserId()))
	if err != nil {
		s.logger.Error("invalid user_id format for upload", "user_id", req.GetUserId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}

	var customerID *uuid.UUID
	if raw := strings.TrimSpace(req.GetCustomerId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "customer_id must be a UUID")
		}
		customerID = &id
	}

	s.logger.Info("starting document upload", "filename", filename, "user_id", userID)
	r, err := s.handler.Ingest(ctx, ingest.Request{
		Filename:      filename,
		EncodedFile:   req.GetEncodedFile(),
		ContentType:   strings.TrimSpace(req.GetContentType()),
		DocumentType:  constants.DocumentType(req.GetDocumentType()),
		Channel:       constants.DocumentChannel(req.GetChannel()),
		CustomerID:    customerID,
		CorrelationID: strings.TrimSpace(req.GetCorrelationId()),
		UserID:        userID,
		UserRole:      constants.ParseRole(req.GetUserRole()),
	})
	if err != nil {
		return nil, common.ToStatus(err)
	}

	return &docspb.UploadDocumentResponse{
		DocumentId: r.DocumentID.String(),
		JobId:      r.JobID,
		Status:     string(r.Status),
		Message:    r.Message,
	}, nil
}

// SearchDocuments implements docspb.DocumentsServiceServer
func (s *DocumentsService) SearchDocuments(ctx context.Context, req *docspb.SearchDocumentsRequest) (*docspb.SearchDocumentsResponse, error) {
	criteria, err := s.buildCriteria(req)
	if err != nil {
		return nil, common.ToStatus(err)
	}

	docs, total, err := s.docsRepo.Search(ctx, *criteria)
	if err != nil {
		s.logger.Error("document search failed", "error", err)
		return nil, status.Error(codes.Internal, "search failed")
	}

	return &docspb.SearchDocumentsResponse{
		Documents:  utils.ToPBDocuments(docs),
		TotalCount: int32(total),
		Page:       int32(criteria.Page),
		PageSize:   int32(criteria.PageSize),
	}, nil
}

// ExportDocuments implements docspb.DocumentsServiceServer
func (s *DocumentsService) ExportDocuments(ctx context.Context, req *docspb.ExportDocumentsRequest) (*docspb.ExportDocumentsResponse, error) {
	criteria, err := s.buildCriteria(req.GetCriteria())
	if err != nil {
		return nil, common.ToStatus(err)
	}

	data, err := s.exporter.ExportDocumentsXLSX(ctx, *criteria)
	if err != nil {
		s.logger.Error("document export failed", "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	return &docspb.ExportDocumentsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("documents-%s.xlsx", time.Now().UTC().Format("20060102")),
	}, nil
}

// buildCriteria maps the wire request onto repository search criteria
// and applies the visibility rule: non-admin callers are confined to
// their own documents.
func (s *DocumentsService) buildCriteria(req *docspb.SearchDocumentsRequest) (*repository.SearchCriteria, error) {
	if req == nil {
		return nil, common.ValidationError("search criteria are required")
	}

	currentUserID, err := uuid.Parse(strings.TrimSpace(req.GetCurrentUserId()))
	if err != nil {
		return nil, common.ValidationError("current_user_id must be a UUID")
	}
	isAdmin := constants.ParseRole(req.GetCurrentUserRole()) == constants.RoleAdmin

	c := repository.SearchCriteria{
		Filename:      strings.TrimSpace(req.GetFilename()),
		ContentType:   strings.TrimSpace(req.GetContentType()),
		SortBy:        repository.SortBy(strings.TrimSpace(req.GetSortBy())),
		SortDirection: repository.SortDirection(strings.TrimSpace(req.GetSortDirection())),
		Page:          int(req.GetPage()),
		PageSize:      int(req.GetPageSize()),
	}

	if raw := strings.TrimSpace(req.GetUserId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.ValidationError("user_id must be a UUID")
		}
		c.UserID = &id
	}
	if !isAdmin {
		if c.UserID != nil && *c.UserID != currentUserID {
			return nil, common.AuthorizationError("admin role required to view other users' documents")
		}
		c.UserID = &currentUserID
	}

	if raw := strings.TrimSpace(req.GetCustomerId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.ValidationError("customer_id must be a UUID")
		}
		c.CustomerID = &id
	}

	parseDate := func(raw string) (*time.Time, error) {
		if raw == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, common.ValidationErrorf("invalid date %q", raw)
		}
		return &t, nil
	}
	if c.UploadDateStart, err = parseDate(strings.TrimSpace(req.GetUploadDateStart())); err != nil {
		return nil, err
	}
	if c.UploadDateEnd, err = parseDate(strings.TrimSpace(req.GetUploadDateEnd())); err != nil {
		return nil, err
	}

	if raw := req.GetDocumentType(); raw != "" {
		if !constants.IsDocumentType(raw) {
			return nil, common.ValidationErrorf("unknown document type %q", raw)
		}
		t := constants.DocumentType(raw)
		c.DocumentType = &t
	}
	if raw := req.GetStatus(); raw != "" {
		if !constants.IsStatus(raw) {
			return nil, common.ValidationErrorf("unknown status %q", raw)
		}
		st := constants.DocumentStatus(raw)
		c.Status = &st
	}
	if raw := req.GetChannel(); raw != "" {
		if !constants.IsChannel(raw) {
			return nil, common.ValidationErrorf("unknown channel %q", raw)
		}
		ch := constants.DocumentChannel(raw)
		c.Channel = &ch
	}

	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
