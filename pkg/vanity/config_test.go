package vanity

import (
	"errors"
	"runtime"
	"testing"
)

func TestDefaultSearchConfig(t *testing.T) {
	cfg := DefaultSearchConfig()

	if !cfg.CaseSensitive {
		t.Error("Expected CaseSensitive to default to true")
	}
	if cfg.BatchSize != 1000 {
		t.Errorf("Expected BatchSize 1000, got %d", cfg.BatchSize)
	}
	if cfg.CheckInterval != 100 {
		t.Errorf("Expected CheckInterval 100, got %d", cfg.CheckInterval)
	}
	if cfg.WorkerCount() != runtime.NumCPU()*3 {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU()*3, cfg.WorkerCount())
	}
}

func TestSearchConfig_Validate(t *testing.T) {
	valid := DefaultSearchConfig()
	valid.Target = "abc"

	tests := []struct {
		name   string
		mutate func(*SearchConfig)
		want   error
	}{
		{"valid", func(c *SearchConfig) {}, nil},
		{"empty target", func(c *SearchConfig) { c.Target = "" }, ErrEmptyTarget},
		{"negative workers", func(c *SearchConfig) { c.Workers = -2 }, ErrInvalidWorkers},
		{"negative per cpu", func(c *SearchConfig) { c.WorkersPerCPU = -1 }, ErrInvalidWorkers},
		{"zero batch", func(c *SearchConfig) { c.BatchSize = 0 }, ErrInvalidBatch},
		{"zero check", func(c *SearchConfig) { c.CheckInterval = 0 }, ErrInvalidBatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSearchConfig_WorkerCountOverride(t *testing.T) {
	cfg := DefaultSearchConfig()
	cfg.Workers = 5
	if cfg.WorkerCount() != 5 {
		t.Errorf("WorkerCount() = %d, want 5", cfg.WorkerCount())
	}
	cfg.Workers = 0
	cfg.WorkersPerCPU = 1
	if cfg.WorkerCount() != runtime.NumCPU() {
		t.Errorf("WorkerCount() = %d, want NumCPU", cfg.WorkerCount())
	}
}
