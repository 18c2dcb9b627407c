// Package storage is the permanent home for promoted documents.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// Store writes promoted document payloads. Put is an idempotent
// overwrite: redelivered tasks may write the same key again and must
// land on the same locator.
type Store interface {
	// Put copies r to the object at key and returns a stable locator
	// for it, creating intermediate directories/prefixes as needed.
	Put(ctx context.Context, key string, r io.Reader) (string, error)
}

// ObjectKey partitions the permanent namespace by upload year/month and
// document id, so concurrent writes never collide.
func ObjectKey(documentID uuid.UUID, filename string, createdAt time.Time) string {
	return path.Join(
		fmt.Sprintf("%d", createdAt.Year()),
		fmt.Sprintf("%02d", int(createdAt.Month())),
		fmt.Sprintf("%s_%s", documentID, path.Base(filename)),
	)
}
