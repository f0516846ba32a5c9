package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/tuidrill/internal/model"
)

// DefaultReferenceColumns is the grid width used when the terminal size is unknown.
const DefaultReferenceColumns = 3

// ReferenceColumns picks how many prompt/answer pairs fit side by side in width.
func ReferenceColumns(entries []model.ReferenceEntry, width int) int {
	if width <= 0 {
		return DefaultReferenceColumns
	}
	promptWidth, answerWidth := 0, 0
	for _, e := range entries {
		promptWidth = max(promptWidth, displayWidth(e.Prompt))
		answerWidth = max(answerWidth, displayWidth(e.Answer))
	}
	// Two separating spaces per pair plus the gap column.
	cell := promptWidth + answerWidth + 3
	cols := width / max(cell, 1)
	return min(max(cols, 1), DefaultReferenceColumns)
}

// RenderReference prints entries row-major in a grid of columns pairs.
func RenderReference(w io.Writer, title string, entries []model.ReferenceEntry, columns int) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries.")
		return err
	}
	if columns <= 0 {
		columns = DefaultReferenceColumns
	}
	rows := make([][]string, 0, (len(entries)+columns-1)/columns)
	for start := 0; start < len(entries); start += columns {
		row := make([]string, 0, columns*3)
		for i := start; i < start+columns && i < len(entries); i++ {
			if i > start {
				row = append(row, "")
			}
			row = append(row, entries[i].Prompt, entries[i].Answer)
		}
		rows = append(rows, row)
	}
	for _, line := range formatTable(nil, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
