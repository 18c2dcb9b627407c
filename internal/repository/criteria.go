package repository

import (
	"time"

	"github.com/google/uuid"

	"docvault/constants"
	"docvault/internal/common"
)

// Pagination bounds for document search.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortBy is the closed set of sortable columns.
type SortBy string

const (
	SortByUploadDate   SortBy = "UPLOAD_DATE"
	SortByFilename     SortBy = "FILENAME"
	SortByDocumentType SortBy = "DOCUMENT_TYPE"
	SortByStatus       SortBy = "STATUS"
)

// SortDirection orders a sort ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SearchCriteria filters, sorts and paginates a document search.
// Zero-valued filters are ignored.
type SearchCriteria struct {
	UserID          *uuid.UUID
	CustomerID      *uuid.UUID
	UploadDateStart *time.Time
	UploadDateEnd   *time.Time
	Filename        string // substring match
	ContentType     string // exact match
	DocumentType    *constants.DocumentType
	Status          *constants.DocumentStatus
	Channel         *constants.DocumentChannel
	SortBy          SortBy
	SortDirection   SortDirection
	Page            int
	PageSize        int
}

// Normalize applies pagination defaults in place.
func (c *SearchCriteria) Normalize() {
	if c.Page == 0 {
		c.Page = DefaultPage
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.SortBy == "" {
		c.SortBy = SortByUploadDate
	}
	if c.SortDirection == "" {
		c.SortDirection = SortAsc
	}
}

// Validate enforces pagination and sort bounds after Normalize.
func (c *SearchCriteria) Validate() error {
	if c.Page < DefaultPage {
		return common.ValidationErrorf("page must be >= %d", DefaultPage)
	}
	if c.PageSize < 1 {
		return common.ValidationError("page size must be greater than 0")
	}
	if c.PageSize > MaxPageSize {
		return common.ValidationErrorf("page size cannot exceed %d", MaxPageSize)
	}
	switch c.SortBy {
	case SortByUploadDate, SortByFilename, SortByDocumentType, SortByStatus:
	default:
		return common.ValidationErrorf("unknown sort field %q", string(c.SortBy))
	}
	switch c.SortDirection {
	case SortAsc, SortDesc:
	default:
		return common.ValidationErrorf("unknown sort direction %q", string(c.SortDirection))
	}
	return nil
}
