package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var (
	movieHeaders = []string{"Title", "Year", "Director", "Actors", "Genre"}
	movieAligns  = []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft}
)

func renderMovieTable(movies []movie.Movie) string {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{m.Title, m.YearText(), orUnknown(m.Director), orUnknown(m.Actors), orUnknown(m.Genre)})
	}
	return renderTable(movieHeaders, rows, movieAligns)
}

func orUnknown(s string) string {
	if s == movie.Unknown {
		return "-"
	}
	return s
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    60,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
