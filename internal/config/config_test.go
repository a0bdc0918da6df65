package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eventtools/eventkv/internal/exit"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	eventFile := filepath.Join(tempDir, "event.txt")
	if err := os.WriteFile(eventFile, []byte(`one:"0x154"`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         []string
		wantFile     string
		wantExitCode int
	}{
		{
			name:     "single_file_argument",
			args:     []string{"eventkv", eventFile},
			wantFile: eventFile,
		},
		{
			name:         "empty_args",
			args:         nil,
			wantExitCode: exit.CodeUsage,
		},
		{
			name:         "no_positional_argument",
			args:         []string{"eventkv"},
			wantExitCode: exit.CodeUsage,
		},
		{
			name:         "too_many_arguments",
			args:         []string{"eventkv", eventFile, "extra"},
			wantExitCode: exit.CodeUsage,
		},
		{
			name:         "missing_file",
			args:         []string{"eventkv", filepath.Join(tempDir, "absent.txt")},
			wantExitCode: exit.CodeError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, result := Parse(tt.args)
			if tt.wantExitCode != 0 {
				if result == nil {
					t.Fatalf("Parse() expected failure, got config %+v", cfg)
				}
				if result.ExitCode != tt.wantExitCode {
					t.Fatalf("Parse() exit code = %d, want %d", result.ExitCode, tt.wantExitCode)
				}
				if result.Message == "" {
					t.Fatal("Parse() failure carries no message")
				}
				return
			}
			if result != nil {
				t.Fatalf("Parse() unexpected failure: %s", result.Message)
			}
			if cfg.InputFile != tt.wantFile {
				t.Fatalf("Parse() InputFile = %q, want %q", cfg.InputFile, tt.wantFile)
			}
		})
	}
}

func TestUsageMentionsInvocation(t *testing.T) {
	t.Parallel()

	if !strings.Contains(Usage(), "eventkv <file>") {
		t.Fatalf("Usage() does not describe the invocation:\n%s", Usage())
	}
}
