package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestObjectKeyLayout(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	createdAt := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	got := ObjectKey(id, "contract.pdf", createdAt)
	want := "2026/03/6ba7b810-9dad-11d1-80b4-00c04fd430c8_contract.pdf"
	if got != want {
		t.Errorf("ObjectKey = %q, want %q", got, want)
	}
}

func TestObjectKeyStripsPathComponents(t *testing.T) {
	key := ObjectKey(uuid.New(), "dir/sub/../../contract.pdf", time.Now().UTC())
	if strings.Contains(key, "..") {
		t.Errorf("key must not carry path traversal: %q", key)
	}
	if strings.Count(key, "/") != 2 {
		t.Errorf("key should be year/month/name, got %q", key)
	}
}

func TestLocalStorePut(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStore(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	locator, err := s.Put(context.Background(), "2026/03/doc_contract.pdf", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !filepath.IsAbs(locator) {
		t.Errorf("locator should be absolute, got %q", locator)
	}
	if want := filepath.Join(root, "2026", "03", "doc_contract.pdf"); locator != want {
		t.Errorf("locator = %q, want %q", locator, want)
	}

	got, err := os.ReadFile(locator)
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("stored bytes = %q, want %q", got, "payload")
	}
}

func TestLocalStorePutOverwrites(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}

	first, err := s.Put(context.Background(), "2026/03/doc", strings.NewReader("first write, longer"))
	if err != nil {
		t.Fatalf("first Put: %v", err)
	}
	second, err := s.Put(context.Background(), "2026/03/doc", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("second Put: %v", err)
	}
	if first != second {
		t.Errorf("redelivered writes must land on the same locator: %q vs %q", first, second)
	}

	got, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("stored bytes = %q, want the overwrite to win fully", got)
	}
}

func TestLocalStorePutCancelledContext(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Put(ctx, "2026/03/doc", strings.NewReader("x")); err == nil {
		t.Error("Put with a cancelled context should fail")
	}
}
