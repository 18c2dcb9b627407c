package staging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"docvault/internal/common"
)

func TestStageWritesDecodedPayload(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)

	payload := []byte("%PDF-1.7 test payload")
	path, size, err := w.Stage(base64.StdEncoding.EncodeToString(payload), "contract.pdf")
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if size != int64(len(payload)) {
		t.Errorf("size = %d, want %d", size, len(payload))
	}
	if filepath.Dir(path) != dir {
		t.Errorf("staged outside staging dir: %s", path)
	}
	if !strings.HasSuffix(path, "_contract.pdf") {
		t.Errorf("staged name should keep the original filename: %s", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading staged file: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("staged bytes differ from decoded payload")
	}
}

func TestStageSizeIsDecodedLength(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)

	payload := make([]byte, 5*1024*1024)
	rnd := rand.New(rand.NewSource(42))
	rnd.Read(payload)

	_, size, err := w.Stage(base64.StdEncoding.EncodeToString(payload), "scan.bin")
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if size != 5*1024*1024 {
		t.Errorf("size = %d, want %d", size, 5*1024*1024)
	}
}

func TestStageRejectsMalformedBase64(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)

	_, _, err := w.Stage("not!!valid@@base64", "contract.pdf")
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading staging dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("malformed payload must not leave a staged file, found %d entries", len(entries))
	}
}

func TestStageStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)

	path, _, err := w.Stage(base64.StdEncoding.EncodeToString([]byte("x")), "../../etc/passwd")
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path components must not escape the staging dir: %s", path)
	}
}

func TestStageConcurrentSameFilename(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)
	encoded := base64.StdEncoding.EncodeToString([]byte("same content"))

	const n = 16
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, _, err := w.Stage(encoded, "invoice.pdf")
			if err != nil {
				t.Errorf("Stage: %v", err)
				return
			}
			paths[i] = p
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, p := range paths {
		if seen[p] {
			t.Fatalf("duplicate staging path %s", p)
		}
		seen[p] = true
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)

	path, _, err := w.Stage(base64.StdEncoding.EncodeToString([]byte("x")), "a.txt")
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if !Exists(path) {
		t.Errorf("Exists(%s) = false for a freshly staged file", path)
	}
	if Exists(filepath.Join(dir, "nothing-here")) {
		t.Errorf("Exists reported a missing file as present")
	}
}
