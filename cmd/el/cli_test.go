package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/madprops/el/internal/config"
	"github.com/madprops/el/internal/element"
)

// runCLI runs the app with args and stdin, returning stdout and the Run error.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCLIWith(t, config.DefaultConfig(), nil, stdin, args...)
	return out, err
}

func runCLIWith(t *testing.T, cfg *config.Config, termWidth func() int, stdin string, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()

	els, err := element.Load()
	if err != nil {
		t.Fatalf("failed to load elements: %v", err)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	var stdout bytes.Buffer
	app := newCLIApp(appDeps{
		elements:  els,
		cfg:       cfg,
		logger:    zap.New(core),
		stdin:     strings.NewReader(stdin),
		stdout:    &stdout,
		termWidth: termWidth,
	})

	runErr := app.Run(positionalArgs(append([]string{"el"}, args...)))
	return stdout.String(), logs, runErr
}

func TestCLI_QueryArgument(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		header string
	}{
		{"symbol", []string{"fe"}, "Iron (Fe)"},
		{"number", []string{"8"}, "Oxygen (O)"},
		{"name", []string{"GOLD"}, "Gold (Au)"},
		{"fuzzy", []string{"carbn"}, "Carbon (C)"},
		{"no color flag", []string{"--no-color", "he"}, "Helium (He)"},
		{"no color alias", []string{"-n", "1"}, "Hydrogen (H)"},
		{"extra args ignored", []string{"ne", "fe"}, "Neon (Ne)"},
		{"negative number", []string{"-5"}, "Tin (Sn)"},
		{"negative number after flag", []string{"-n", "-5"}, "Tin (Sn)"},
		{"explicit separator", []string{"--", "-5"}, "Tin (Sn)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !strings.HasPrefix(out, "\n"+tt.header+"\n\n") {
				t.Errorf("output does not start with header %q:\n%s", tt.header, out)
			}
			if strings.Contains(out, promptLabel) {
				t.Errorf("prompt shown although a query was given")
			}
			if strings.Contains(out, "\x1b[") {
				t.Errorf("unexpected escape codes in non-terminal output")
			}
		})
	}
}

func TestCLI_QuietExits(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no match", []string{"qwxzvbnmpl"}},
		{"unknown number", []string{"9999"}},
		{"blank query", []string{"   "}},
		{"empty query", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Run() error = %v, want nil", err)
			}
			if out != "" {
				t.Errorf("output = %q, want empty", out)
			}
		})
	}
}

func TestCLI_NoMatchLogsDebug(t *testing.T) {
	_, logs, err := runCLIWith(t, config.DefaultConfig(), nil, "", "qwxzvbnmpl")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	entries := logs.FilterMessage("no element matched").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("level = %v, want debug", entries[0].Level)
	}
	if entries[0].ContextMap()["query"] != "qwxzvbnmpl" {
		t.Errorf("query field = %v", entries[0].ContextMap()["query"])
	}
}

func TestCLI_Prompt(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		header string // empty means no element output
	}{
		{"line", "carbn\n", "Carbon (C)"},
		{"no trailing newline", "8", "Oxygen (O)"},
		{"only first line read", "fe\nau\n", "Iron (Fe)"},
		{"closed stdin", "", ""},
		{"blank line", "  \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.stdin)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			wantPrompt := promptLabel + ": "
			if !strings.HasPrefix(out, wantPrompt) {
				t.Fatalf("output does not start with prompt: %q", out)
			}
			rest := strings.TrimPrefix(out, wantPrompt)

			if tt.header == "" {
				if rest != "" {
					t.Errorf("output after prompt = %q, want empty", rest)
				}
				return
			}
			if !strings.HasPrefix(rest, "\n"+tt.header+"\n") {
				t.Errorf("output after prompt does not start with %q:\n%s", tt.header, rest)
			}
		})
	}
}

func TestCLI_TerminalWidth(t *testing.T) {
	out, _, err := runCLIWith(t, config.DefaultConfig(), func() int { return 40 }, "", "hydrogen")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Summary values wrap at 40 - len("Summary") - 5 columns.
	limit := 40 - len("Summary") - 5
	inSummary := false
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "Summary: "):
			inSummary = true
			line = strings.TrimPrefix(line, "Summary: ")
		case inSummary && strings.HasPrefix(line, " "):
		default:
			inSummary = false
			continue
		}
		if n := len(strings.TrimSpace(line)); n > limit {
			t.Errorf("summary line %q is %d columns, limit %d", line, n, limit)
		}
	}
}

func TestCLI_ConfigMaxWidth(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxWidth = 30
	cfg.NoColor = true

	out, _, err := runCLIWith(t, cfg, nil, "", "1")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "\nSummary: ") {
		t.Fatalf("missing summary:\n%s", out)
	}
	continuation := strings.Repeat(" ", len("Summary")+2)
	if !strings.Contains(out, "\n"+continuation) {
		t.Errorf("expected wrapped summary continuation lines:\n%s", out)
	}
}

func TestCLI_UnknownFlag(t *testing.T) {
	if _, err := runCLI(t, "", "--bogus", "fe"); err == nil {
		t.Fatal("Run() expected error for unknown flag")
	}
}

func TestCLI_Help(t *testing.T) {
	out, err := runCLI(t, "", "--help")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "--no-color") {
		t.Errorf("help output missing --no-color flag:\n%s", out)
	}
}

func TestPositionalArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"plain query", []string{"el", "fe"}, []string{"el", "fe"}},
		{"flag kept", []string{"el", "-n", "fe"}, []string{"el", "-n", "fe"}},
		{"negative number", []string{"el", "-5"}, []string{"el", "--", "-5"}},
		{"after flag", []string{"el", "--no-color", "-12"}, []string{"el", "--no-color", "--", "-12"}},
		{"existing separator", []string{"el", "--", "-5"}, []string{"el", "--", "-5"}},
		{"unknown flag untouched", []string{"el", "-x"}, []string{"el", "-x"}},
		{"bare dash", []string{"el", "-"}, []string{"el", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := positionalArgs(tt.in)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") || len(got) != len(tt.want) {
				t.Errorf("positionalArgs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read failed") }

func TestPrompt_ReadError(t *testing.T) {
	var out bytes.Buffer
	if got := prompt(failingReader{}, &out, "Query"); got != "" {
		t.Errorf("prompt() = %q, want empty", got)
	}
	if out.String() != "Query: " {
		t.Errorf("prompt output = %q, want %q", out.String(), "Query: ")
	}
}
