package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-scripts/mdextract/pkg/common"
)

// maxCellWidth truncates long cells so previews stay readable in a terminal
const maxCellWidth = 60

var (
	previewHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				PaddingLeft(1).
				PaddingRight(1)

	previewCellStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	previewBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63"))
)

// URLPreview renders URL rows as a bordered terminal table
func URLPreview(rows []common.URLRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{clip(r.URL), clip(r.Owner), clip(r.DatasetName)})
	}
	return render([]string{"URL", "Owner", "Dataset Name"}, cells)
}

// TablePreview renders list item rows as a bordered terminal table
func TablePreview(rows []common.TableRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{clip(r.Name), clip(r.Message), clip(r.Category)})
	}
	return render([]string{"Name", "Message", "Category"}, cells)
}

func render(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(previewBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return previewHeaderStyle
			}
			return previewCellStyle
		})
	return t.String()
}

// clip keeps the first line of s and shortens it to maxCellWidth runes
func clip(s string) string {
	first, rest, multiline := strings.Cut(s, "\n")
	r := []rune(first)
	if len(r) > maxCellWidth {
		return string(r[:maxCellWidth-1]) + "…"
	}
	if multiline && rest != "" {
		return first + " …"
	}
	return first
}
