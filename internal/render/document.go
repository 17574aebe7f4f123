package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/nibzard/hyprhelp/internal/keybinds"
)

// Format selects how a document is encoded on disk.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ParseFormat normalizes a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected markdown, html or json)", s)
	}
}

// Document is a rendered result: either the keybinding table or an error page.
type Document struct {
	Markdown string
	Rows     []Row
	// Error is set for error documents.
	Error   string
	Checked []string
}

// IsError reports whether the document describes a failure.
func (d Document) IsError() bool {
	return d.Error != ""
}

// TableDocument renders parsed items.
func TableDocument(items []keybinds.Item, subs Substitutions) Document {
	return Document{
		Markdown: Markdown(items, subs),
		Rows:     Rows(items, subs),
	}
}

// NotFound builds the document written when no candidate path exists.
func NotFound(candidates []string) Document {
	checked := append([]string(nil), candidates...)
	return Document{
		Markdown: NotFoundDocument(candidates),
		Error:    "Keybinds file not found.",
		Checked:  checked,
	}
}

// ReadError builds the document written when the config could not be read.
func ReadError(path string, err error) Document {
	return Document{
		Markdown: ReadErrorDocument(path, err),
		Error:    fmt.Sprintf("Failed to read %s: %v", path, err),
	}
}

type tableJSON struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

type errorJSON struct {
	Error   string   `json:"error"`
	Checked []string `json:"checked,omitempty"`
}

// Encode returns the document bytes in the given format.
func (d Document) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatMarkdown, "":
		return []byte(d.Markdown), nil
	case FormatHTML:
		return markdownToHTML(d.Markdown)
	case FormatJSON:
		if d.IsError() {
			return encodeJSON(errorJSON{Error: d.Error, Checked: d.Checked})
		}
		rows := d.Rows
		if rows == nil {
			rows = []Row{}
		}
		return encodeJSON(tableJSON{Title: Title, Rows: rows})
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

var htmlMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func markdownToHTML(src string) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlMarkdown.Convert([]byte(src), &buf); err != nil {
		return nil, fmt.Errorf("markdown to html: %w", err)
	}
	return buf.Bytes(), nil
}
