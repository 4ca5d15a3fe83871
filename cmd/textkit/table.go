package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one column of a rendered table.
type column struct {
	title string
	align text.Align
}

func leftColumn(title string) column  { return column{title: title, align: text.AlignLeft} }
func rightColumn(title string) column { return column{title: title, align: text.AlignRight} }

// renderTable renders rows under the given columns with rounded borders. Titles keep their
// case. Short rows are padded with empty cells and extra cells are dropped.
func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))

	for i, c := range columns {
		header[i] = c.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: c.align, AlignHeader: text.AlignLeft}
	}

	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		cells := make(table.Row, len(columns))
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = row[i]
			}
		}

		tw.AppendRow(cells)
	}

	return tw.Render()
}
