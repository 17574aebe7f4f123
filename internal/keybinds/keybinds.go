package keybinds

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Parse for a file that is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Kind identifies what a parsed line produced.
type Kind int

const (
	// KindHeader is a section separator.
	KindHeader Kind = iota + 1
	// KindBind is a bind directive.
	KindBind
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindBind:
		return "bind"
	default:
		return "unknown"
	}
}

const (
	headerMarker  = "###"
	bindPrefix    = "bind"
	bannerSection = "KEYBINDINGS"

	// maxLineSize bounds a single config line.
	maxLineSize = 1024 * 1024
)

// bindPattern captures mods, key and action. Only the first two commas split
// fields; the action keeps any remaining commas.
var bindPattern = regexp.MustCompile(`(bind[deml]*)\s*=\s*([^,]*),\s*([^,]+),\s*(.+)`)

// Bind is a single parsed bind directive.
type Bind struct {
	Directive string `json:"directive"`
	Mods      string `json:"mods"`
	Key       string `json:"key"`
	Action    string `json:"action"`
	Comment   string `json:"comment,omitempty"`
}

// Item is one classified line. Section is set for KindHeader, Bind for KindBind.
type Item struct {
	Kind    Kind
	Section string
	Bind    Bind
}

// Header returns a section item.
func Header(label string) Item {
	return Item{Kind: KindHeader, Section: label}
}

// BindItem returns a bind item.
func BindItem(b Bind) Item {
	return Item{Kind: KindBind, Bind: b}
}

// Result holds the items of a parsed file in source order.
type Result struct {
	Items []Item
	// Lines is the number of lines read.
	Lines int
	// Binds is the number of bind items produced.
	Binds int
}

// ParseLine classifies a single line. The boolean is false when the line
// produces no item.
func ParseLine(line string) (Item, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Item{}, false
	}

	if strings.HasPrefix(line, headerMarker) {
		section := strings.TrimSpace(strings.ReplaceAll(line, "#", ""))
		if section == "" || section == bannerSection {
			return Item{}, false
		}
		return Header(section), true
	}

	if strings.HasPrefix(line, bindPrefix) && strings.Contains(line, "=") {
		b, ok := parseBind(line)
		if !ok {
			return Item{}, false
		}
		return BindItem(b), true
	}

	return Item{}, false
}

func parseBind(line string) (Bind, bool) {
	directive, comment, _ := strings.Cut(line, "#")
	directive = strings.TrimSpace(directive)
	comment = strings.TrimSpace(comment)

	m := bindPattern.FindStringSubmatch(directive)
	if m == nil {
		return Bind{}, false
	}
	return Bind{
		Directive: m[1],
		Mods:      strings.TrimSpace(m[2]),
		Key:       strings.TrimSpace(m[3]),
		Action:    strings.TrimSpace(m[4]),
		Comment:   comment,
	}, true
}

// Parse reads every line from r and returns the classified items. Errors
// from r are returned as is.
func Parse(r io.Reader) (*Result, error) {
	result := &Result{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		result.Lines++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", result.Lines, ErrInvalidUTF8)
		}
		item, ok := ParseLine(line)
		if !ok {
			continue
		}
		if item.Kind == KindBind {
			result.Binds++
		}
		result.Items = append(result.Items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
