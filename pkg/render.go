package tabula

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
)

// RenderText pads every cell to the width of its column and joins cells
// with tabs and rows with newlines.
func RenderText(cells [][]string) string {
	var widths []int
	for _, row := range cells {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}

			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, len(cells))
	for r, row := range cells {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}

		lines[r] = strings.Join(padded, "\t")
	}

	return strings.Join(lines, "\n")
}

// WriteBox renders the table with box-drawing borders.
func (t *Table) WriteBox(w io.Writer) {
	tw := t.newWriter(w)
	tw.Render()
}

// WriteMarkdown renders the table as a GitHub-flavoured markdown table.
func (t *Table) WriteMarkdown(w io.Writer) {
	tw := t.newWriter(w)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")
	tw.Render()
}

func (t *Table) newWriter(w io.Writer) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeader(t.Header())

	for _, row := range t.Rows {
		tw.Append(row.Cells())
	}

	return tw
}
