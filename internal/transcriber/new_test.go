package transcriber

import (
	"testing"

	"github.com/nguyentantai21042004/subgen/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		method   string
		wantName string
	}{
		{config.MethodMLX, "mlx"},
		{config.MethodFaster, "faster"},
		{config.MethodWyoming, "wyoming"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			tr, err := New(testConfig(tt.method), &fakeExecutor{}, testLogger())
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.method, err)
			}
			if tr.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", tr.Name(), tt.wantName)
			}
		})
	}
}

func TestNewUnknownMethod(t *testing.T) {
	cfg := testConfig(config.MethodMLX)
	cfg.Method = "bogus"

	if _, err := New(cfg, &fakeExecutor{}, testLogger()); err == nil {
		t.Error("New() expected error for unknown method")
	}
}
