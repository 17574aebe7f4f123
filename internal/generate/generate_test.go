package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nibzard/hyprhelp/internal/config"
	"github.com/nibzard/hyprhelp/internal/keybinds"
	"github.com/nibzard/hyprhelp/internal/logging"
	"github.com/nibzard/hyprhelp/internal/render"
	"github.com/nibzard/hyprhelp/internal/resolve"
)

const sampleKeybinds = `### KEYBINDINGS
$mainMod = SUPER

### Applications
bind = SUPER, RETURN, exec, kitty # open terminal
bind = $mainMod, E, exec, thunar # file manager
bind = SUPER, RETURN

### Mouse
bindm = $mainMod, mouse:272, movewindow
`

func testConfig(t *testing.T, candidates ...string) *config.Config {
	t.Helper()
	return &config.Config{
		CandidatePaths: candidates,
		OutputFile:     filepath.Join(t.TempDir(), "hypr_help.md"),
		Format:         "markdown",
	}
}

func testLogger(t *testing.T) (*logging.DebugLog, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts := logging.DefaultOptions()
	opts.Mirror = &buf
	opts.ReportTimestamp = false
	return logging.Discard(opts), &buf
}

func writeKeybinds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Keybinds.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	path := writeKeybinds(t, sampleKeybinds)
	missing := filepath.Join(t.TempDir(), "missing.conf")
	cfg := testConfig(t, missing, path)
	logger, logBuf := testLogger(t)

	report, err := Run(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Found || report.ConfigPath != path {
		t.Errorf("report = %+v", report)
	}
	if report.Lines != 10 || report.Binds != 3 {
		t.Errorf("Lines = %d, Binds = %d, want 10 and 3", report.Lines, report.Binds)
	}

	got, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	want := "# ⌨️ Hyprland Keybindings\n\n" +
		"| Keys | Action | Description |\n" +
		"| :--- | :--- | :--- |\n" +
		"| | **Applications** | |\n" +
		"| `⌘ + ⏎` | kitty | open terminal |\n" +
		"| `⌘ + E` | thunar | file manager |\n" +
		"| | **Mouse** | |\n" +
		"| `⌘ + mouse:272` | movewindow |  |\n"
	if string(got) != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}

	logText := logBuf.String()
	for _, needle := range []string{"Checking path", missing, "Found config", "Read lines", "Parsed bindings", "Wrote help content"} {
		if !strings.Contains(logText, needle) {
			t.Errorf("log missing %q:\n%s", needle, logText)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testConfig(t, writeKeybinds(t, sampleKeybinds))
	logger, _ := testLogger(t)

	if _, err := Run(context.Background(), cfg, logger); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(cfg.OutputFile)
	if _, err := Run(context.Background(), cfg, logger); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(cfg.OutputFile)

	if !bytes.Equal(first, second) {
		t.Error("output changed between identical runs")
	}
}

func TestRunNotFound(t *testing.T) {
	dir := t.TempDir()
	candidates := []string{
		filepath.Join(dir, "a", "Keybinds.conf"),
		filepath.Join(dir, "b", "Keybinds.conf"),
		filepath.Join(dir, "c", "Keybinds.conf"),
	}
	cfg := testConfig(t, candidates...)
	logger, logBuf := testLogger(t)

	report, err := Run(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("not found must not be fatal, got %v", err)
	}
	if report.Found {
		t.Error("report.Found should be false")
	}

	got, _ := os.ReadFile(cfg.OutputFile)
	doc := string(got)
	if !strings.HasPrefix(doc, "# ❌ Error") {
		t.Errorf("expected error document, got:\n%s", doc)
	}
	last := -1
	for _, p := range candidates {
		if strings.Count(doc, "- "+p) != 1 {
			t.Errorf("candidate %s should be listed once", p)
		}
		idx := strings.Index(doc, p)
		if idx < last {
			t.Errorf("candidate %s listed out of order", p)
		}
		last = idx
	}
	if !strings.Contains(logBuf.String(), "Keybinds file not found") {
		t.Error("log should record the missing file")
	}
}

func TestRunReadError(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	logger, logBuf := testLogger(t)

	report, err := Run(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("read failure must not be fatal, got %v", err)
	}
	if report.ReadErr == nil {
		t.Error("report.ReadErr should be set")
	}

	got, _ := os.ReadFile(cfg.OutputFile)
	if !strings.HasPrefix(string(got), "# ❌ Error\n\nFailed to read "+dir+": ") {
		t.Errorf("unexpected document:\n%s", got)
	}
	if n := strings.Count(string(got), dir); n != 1 {
		t.Errorf("path should appear once in the document, got %d:\n%s", n, got)
	}
	if !strings.Contains(logBuf.String(), "Exception reading file") {
		t.Error("log should record the read exception")
	}
}

func TestRunInvalidUTF8(t *testing.T) {
	path := writeKeybinds(t, "### Apps\nbind = SUPER, RETURN, exec, k\xffitty # bad \xfe\n")
	cfg := testConfig(t, path)
	logger, logBuf := testLogger(t)

	report, err := Run(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("undecodable file must not be fatal, got %v", err)
	}
	if !errors.Is(report.ReadErr, keybinds.ErrInvalidUTF8) {
		t.Errorf("report.ReadErr = %v, want ErrInvalidUTF8", report.ReadErr)
	}

	got, _ := os.ReadFile(cfg.OutputFile)
	want := "# ❌ Error\n\nFailed to read " + path + ": line 2: invalid UTF-8"
	if string(got) != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	if !strings.Contains(logBuf.String(), "Exception reading file") {
		t.Error("log should record the read exception")
	}
}

func TestRunWriteFailure(t *testing.T) {
	cfg := testConfig(t, writeKeybinds(t, sampleKeybinds))
	cfg.OutputFile = filepath.Join(t.TempDir(), "missing-dir", "hypr_help.md")
	logger, logBuf := testLogger(t)

	if _, err := Run(context.Background(), cfg, logger); err == nil {
		t.Fatal("expected write failure")
	}
	if !strings.Contains(logBuf.String(), "Exception writing output") {
		t.Error("log should record the write exception")
	}
}

func TestRunCanceled(t *testing.T) {
	cfg := testConfig(t, writeKeybinds(t, sampleKeybinds))
	logger, _ := testLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, cfg, logger); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(cfg.OutputFile); !os.IsNotExist(err) {
		t.Error("no output should be written after cancellation")
	}
}

func TestRunFormats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, data []byte)
	}{
		{
			format: "html",
			check: func(t *testing.T, data []byte) {
				if !bytes.Contains(data, []byte("<table>")) {
					t.Errorf("expected html table:\n%s", data)
				}
			},
		},
		{
			format: "json",
			check: func(t *testing.T, data []byte) {
				var doc struct {
					Rows []render.Row `json:"rows"`
				}
				if err := json.Unmarshal(data, &doc); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(doc.Rows) != 5 {
					t.Errorf("got %d rows, want 5", len(doc.Rows))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := testConfig(t, writeKeybinds(t, sampleKeybinds))
			cfg.Format = tt.format
			logger, _ := testLogger(t)

			report, err := Run(context.Background(), cfg, logger)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if string(report.Format) != tt.format {
				t.Errorf("report.Format = %q", report.Format)
			}
			data, _ := os.ReadFile(cfg.OutputFile)
			tt.check(t, data)
		})
	}
}

func TestLoad(t *testing.T) {
	logger, _ := testLogger(t)

	t.Run("not found", func(t *testing.T) {
		_, err := Load([]string{filepath.Join(t.TempDir(), "nope")}, logger)
		if !errors.Is(err, resolve.ErrNotFound) {
			t.Errorf("Load() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("read error", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load([]string{dir}, logger)
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("Load() error = %v, want *ReadError", err)
		}
		if readErr.Path != dir {
			t.Errorf("ReadError.Path = %q, want %q", readErr.Path, dir)
		}
	})

	t.Run("parsed", func(t *testing.T) {
		path := writeKeybinds(t, sampleKeybinds)
		src, err := Load([]string{path}, logger)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if src.Path != path || src.Result.Binds != 3 {
			t.Errorf("unexpected source: %+v", src)
		}
	})
}
