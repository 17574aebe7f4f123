// Package generate runs the keybinding help pipeline: resolve the config
// file, parse it, render the document and write it out.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nibzard/hyprhelp/internal/config"
	"github.com/nibzard/hyprhelp/internal/keybinds"
	"github.com/nibzard/hyprhelp/internal/output"
	"github.com/nibzard/hyprhelp/internal/render"
	"github.com/nibzard/hyprhelp/internal/resolve"
)

// Logger is the debug log used by every step.
type Logger interface {
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// ReadError wraps a failure to read a config file that did exist.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// newReadError drops the *fs.PathError wrapper, which repeats the path.
func newReadError(path string, err error) *ReadError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &ReadError{Path: path, Err: err}
}

// Source is a resolved and parsed keybinding file.
type Source struct {
	Path   string
	Result *keybinds.Result
}

// Report summarizes a run.
type Report struct {
	ConfigPath string
	Found      bool
	ReadErr    error
	Lines      int
	Binds      int
	OutputFile string
	Format     render.Format
}

// Load resolves the first existing candidate and parses it. It returns
// resolve.ErrNotFound or a *ReadError on failure.
func Load(candidates []string, logger Logger) (*Source, error) {
	path, err := resolve.Resolve(candidates, logger)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, newReadError(path, err)
	}
	defer file.Close()

	result, err := keybinds.Parse(file)
	if err != nil {
		return nil, newReadError(path, err)
	}
	logger.Info("Read lines", "count", result.Lines, "path", path)

	return &Source{Path: path, Result: result}, nil
}

// Build loads the keybinding file and renders a document. Failures to find
// or read the file are turned into error documents, so Build never fails.
func Build(cfg *config.Config, logger Logger) (render.Document, *Report) {
	report := &Report{
		OutputFile: cfg.OutputFile,
		Format:     cfg.OutputFormat(),
	}

	src, err := Load(cfg.CandidatePaths, logger)
	var readErr *ReadError
	switch {
	case err == nil:
	case errors.As(err, &readErr):
		report.ConfigPath = readErr.Path
		report.Found = true
		report.ReadErr = readErr.Err
		logger.Error("Exception reading file", "path", readErr.Path, "err", readErr.Err)
		return render.ReadError(readErr.Path, readErr.Err), report
	default:
		logger.Error("Keybinds file not found", "checked", len(cfg.CandidatePaths))
		return render.NotFound(cfg.CandidatePaths), report
	}

	report.ConfigPath = src.Path
	report.Found = true
	report.Lines = src.Result.Lines
	report.Binds = src.Result.Binds
	logger.Info("Parsed bindings", "count", src.Result.Binds)

	return render.TableDocument(src.Result.Items, render.DefaultSubstitutions()), report
}

// Run builds the document and writes it to cfg.OutputFile in cfg.Format.
// Only a failure to produce or write the output is returned as an error.
func Run(ctx context.Context, cfg *config.Config, logger Logger) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, report := Build(cfg, logger)

	data, err := doc.Encode(report.Format)
	if err != nil {
		logger.Error("Exception encoding output", "format", report.Format, "err", err)
		return report, err
	}
	if err := output.WriteFile(cfg.OutputFile, data); err != nil {
		logger.Error("Exception writing output", "err", err)
		return report, err
	}
	logger.Info("Wrote help content", "path", cfg.OutputFile, "format", report.Format)

	return report, nil
}
