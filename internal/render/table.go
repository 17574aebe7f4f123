package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	keysStyle    = cellStyle.Foreground(lipgloss.Color("12"))
	sectionStyle = cellStyle.Bold(true).Foreground(lipgloss.Color("13"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Table renders rows as a bordered terminal table. A width of zero lets the
// table size itself to its content.
func Table(rows []Row, width int) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		if row.IsSection() {
			data = append(data, []string{"", row.Section, ""})
			continue
		}
		data = append(data, []string{row.Keys, row.Action, row.Comment})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Keys", "Action", "Description").
		Rows(data...).
		StyleFunc(func(r, c int) lipgloss.Style {
			switch {
			case r == table.HeaderRow:
				return headerStyle
			case r >= 0 && r < len(rows) && rows[r].IsSection():
				return sectionStyle
			case c == 0:
				return keysStyle
			default:
				return cellStyle
			}
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.String()
}
