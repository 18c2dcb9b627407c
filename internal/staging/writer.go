// Package staging writes uploaded payloads to a temporary location
// until the processing job promotes them to permanent storage.
package staging

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"docvault/internal/common"
)

// Writer stages decoded upload payloads on the local filesystem.
type Writer struct {
	dir    string
	logger *slog.Logger
}

func NewWriter(dir string, logger *slog.Logger) *Writer {
	if dir == "" {
		dir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, logger: logger}
}

// Stage decodes a base64 payload and writes it to a collision-free
// path under the staging directory. The returned size is the decoded
// byte length actually written, never a client-declared value.
// A malformed payload is a validation error; a write failure is an
// operational error and fails the whole ingestion attempt.
func (w *Writer) Stage(encoded, filename string) (string, int64, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		w.logger.Error("failed to decode payload", "filename", filename, "error", err)
		return "", 0, common.ValidationError("encoded file is not valid base64")
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", 0, common.OperationalError("creating staging directory", err)
	}

	// Fresh uuid prefix keeps concurrent uploads of the same filename
	// from colliding.
	name := fmt.Sprintf("%s_%s", uuid.New(), filepath.Base(filename))
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		w.logger.Error("failed to write staging file", "path", path, "error", err)
		return "", 0, common.OperationalError("writing file to staging", err)
	}

	w.logger.Info("file staged", "path", path, "size", len(raw))
	return path, int64(len(raw)), nil
}

// Exists reports whether a staged file is still present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
