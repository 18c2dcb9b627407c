package common

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/docs")

	cfg := LoadConfig()
	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("grpc addr = %q", cfg.Server.GRPCAddr)
	}
	if cfg.Queue.Workers != 4 || cfg.Queue.Size != 256 {
		t.Errorf("queue defaults = %d workers, %d size", cfg.Queue.Workers, cfg.Queue.Size)
	}
	if got := cfg.Queue.RetryDelays; len(got) != 5 || got[0] != time.Minute || got[4] != 10*time.Minute {
		t.Errorf("retry delays = %v", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadConfigRetryDelaysFromEnv(t *testing.T) {
	t.Setenv("QUEUE_RETRY_DELAYS", "30s, 1m,5m")

	cfg := LoadConfig()
	want := []time.Duration{30 * time.Second, time.Minute, 5 * time.Minute}
	if len(cfg.Queue.RetryDelays) != len(want) {
		t.Fatalf("delays = %v, want %v", cfg.Queue.RetryDelays, want)
	}
	for i := range want {
		if cfg.Queue.RetryDelays[i] != want[i] {
			t.Errorf("delays[%d] = %v, want %v", i, cfg.Queue.RetryDelays[i], want[i])
		}
	}
}

func TestLoadConfigBadRetryDelaysFallsBack(t *testing.T) {
	t.Setenv("QUEUE_RETRY_DELAYS", "soon,later")

	cfg := LoadConfig()
	if len(cfg.Queue.RetryDelays) != 5 {
		t.Errorf("unparseable schedule should fall back to the default, got %v", cfg.Queue.RetryDelays)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		t.Setenv("DB_URL", "postgres://localhost/docs")
		return LoadConfig()
	}

	cfg := base()
	cfg.Database.DSN = ""
	if err := cfg.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("missing DB_URL: err = %v", err)
	}

	cfg = base()
	cfg.Storage.Backend = "gcs"
	if err := cfg.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("gcs without bucket: err = %v", err)
	}
	cfg.Storage.GCSBucket = "documents"
	if err := cfg.Validate(); err != nil {
		t.Errorf("gcs with bucket: %v", err)
	}

	cfg = base()
	cfg.Queue.Workers = 0
	if err := cfg.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("zero workers: err = %v", err)
	}
}
