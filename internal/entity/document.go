package entity

import (
	"time"

	"github.com/google/uuid"

	"docvault/constants"
)

// Document represents a document record for data transfer between layers.
type Document struct {
	ID            uuid.UUID                 `json:"id"`
	Filename      string                    `json:"filename"`
	ContentType   string                    `json:"content_type"`
	Size          int64                     `json:"size"`
	DocumentType  constants.DocumentType    `json:"document_type"`
	Channel       constants.DocumentChannel `json:"channel"`
	Status        constants.DocumentStatus  `json:"status"`
	FileURL       string                    `json:"file_url,omitempty"`
	CorrelationID string                    `json:"correlation_id,omitempty"`
	CustomerID    uuid.UUID                 `json:"customer_id"`
	UserID        uuid.UUID                 `json:"user_id"`
	CreatedAt     time.Time                 `json:"created_at"`
}
