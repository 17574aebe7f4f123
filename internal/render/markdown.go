// Package render turns parsed keybindings into reference documents.
package render

import (
	"fmt"
	"strings"

	"github.com/nibzard/hyprhelp/internal/keybinds"
)

const (
	// Title is the heading of the keybinding document.
	Title = "⌨️ Hyprland Keybindings"

	errorTitle  = "❌ Error"
	tableHeader = "| Keys | Action | Description |\n"
	tableAlign  = "| :--- | :--- | :--- |\n"
)

// Row is a display-ready table row.
type Row struct {
	Section string `json:"section,omitempty"`
	Keys    string `json:"keys,omitempty"`
	Action  string `json:"action,omitempty"`
	Comment string `json:"description,omitempty"`
}

// IsSection reports whether the row is a section separator.
func (r Row) IsSection() bool {
	return r.Section != ""
}

// Rows converts items to display rows, preserving order.
func Rows(items []keybinds.Item, subs Substitutions) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case keybinds.KindHeader:
			rows = append(rows, Row{Section: item.Section})
		case keybinds.KindBind:
			rows = append(rows, bindRow(item.Bind, subs))
		}
	}
	return rows
}

func bindRow(b keybinds.Bind, subs Substitutions) Row {
	mods := subs.Apply(b.Mods)
	key := subs.Apply(b.Key)
	keys := key
	if mods != "" {
		keys = mods + " + " + key
	}
	return Row{
		Keys:    keys,
		Action:  subs.Apply(b.Action),
		Comment: b.Comment,
	}
}

// Markdown renders the keybinding table document.
func Markdown(items []keybinds.Item, subs Substitutions) string {
	var b strings.Builder
	b.WriteString("# " + Title + "\n\n")
	b.WriteString(tableHeader)
	b.WriteString(tableAlign)
	for _, row := range Rows(items, subs) {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row Row) {
	if row.IsSection() {
		fmt.Fprintf(b, "| | **%s** | |\n", row.Section)
		return
	}
	fmt.Fprintf(b, "| `%s` | %s | %s |\n", row.Keys, row.Action, row.Comment)
}

// NotFoundDocument lists every checked candidate path.
func NotFoundDocument(candidates []string) string {
	lines := make([]string, 0, len(candidates))
	for _, p := range candidates {
		lines = append(lines, "- "+p)
	}
	return "# " + errorTitle + "\n\nKeybinds file not found. Checked:\n" + strings.Join(lines, "\n")
}

// ReadErrorDocument reports a config file that existed but could not be read.
func ReadErrorDocument(path string, err error) string {
	return fmt.Sprintf("# %s\n\nFailed to read %s: %v", errorTitle, path, err)
}
