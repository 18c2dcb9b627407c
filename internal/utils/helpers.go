package utils

import (
	"time"

	docspb "docvault/gen/proto/docs/v1"
	"docvault/internal/entity"
)

func ToPBDocument(d *entity.Document) *docspb.Document {
	return &docspb.Document{
		Id:            d.ID.String(),
		Filename:      d.Filename,
		ContentType:   d.ContentType,
		Size:          d.Size,
		DocumentType:  string(d.DocumentType),
		Channel:       string(d.Channel),
		Status:        string(d.Status),
		FileUrl:       d.FileURL,
		CorrelationId: d.CorrelationID,
		CustomerId:    d.CustomerID.String(),
		UserId:        d.UserID.String(),
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocuments(docs []*entity.Document) []*docspb.Document {
	out := make([]*docspb.Document, len(docs))
	for i, d := range docs {
		out[i] = ToPBDocument(d)
	}
	return out
}
