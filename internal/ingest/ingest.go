package ingest

import (
	"github.com/google/uuid"

	"docvault/constants"
)

// Request carries one upload through the handler. UserID and UserRole
// come from the already-authenticated caller; CustomerID and
// CorrelationID are optional depending on role.
type Request struct {
	Filename      string
	EncodedFile   string // base64 payload
	ContentType   string
	DocumentType  constants.DocumentType
	Channel       constants.DocumentChannel
	CustomerID    *uuid.UUID
	CorrelationID string
	UserID        uuid.UUID
	UserRole      constants.Role
}

// Result is the synchronous acknowledgment: the record exists and a
// task is scheduled, processing has not happened yet.
type Result struct {
	DocumentID uuid.UUID
	JobID      string
	Status     constants.DocumentStatus
	Message    string
}
