package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// styledCell is one rendered fragment button with its display width.
type styledCell struct {
	s     string
	width int
}

const cellGap = 1

func buildFragmentCells(fragments []string, focus int) []styledCell {
	out := make([]styledCell, 0, len(fragments))
	for i, f := range fragments {
		style := fragmentStyle
		if i == focus {
			style = focusedFragmentStyle
		}
		out = append(out, styledCell{
			s:     style.Render(f),
			width: runewidth.StringWidth(f) + style.GetHorizontalPadding(),
		})
	}
	return out
}

// wrapCells greedily packs cells into rows no wider than width and returns
// the cell indices of each row. A cell wider than width gets a row to itself.
func wrapCells(cells []styledCell, width int) [][]int {
	if len(cells) == 0 {
		return nil
	}
	var rows [][]int
	row := []int{}
	rowWidth := 0
	for i, c := range cells {
		need := c.width
		if len(row) > 0 {
			need += cellGap
		}
		if width > 0 && len(row) > 0 && rowWidth+need > width {
			rows = append(rows, row)
			row = []int{}
			rowWidth = 0
			need = c.width
		}
		row = append(row, i)
		rowWidth += need
	}
	return append(rows, row)
}

func renderCellRows(cells []styledCell, rows [][]int) string {
	lines := make([]string, 0, len(rows))
	gap := strings.Repeat(" ", cellGap)
	for _, row := range rows {
		var b strings.Builder
		for j, idx := range row {
			if j > 0 {
				b.WriteString(gap)
			}
			b.WriteString(cells[idx].s)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func locate(rows [][]int, idx int) (row, col int) {
	for r, cells := range rows {
		for c, i := range cells {
			if i == idx {
				return r, c
			}
		}
	}
	return 0, 0
}

// moveFocus moves the focused cell by dCol within the flat order or by dRow
// rows, clamping the column to the target row's length.
func moveFocus(rows [][]int, focus, dRow, dCol int) int {
	total := 0
	for _, r := range rows {
		total += len(r)
	}
	if total == 0 {
		return 0
	}
	if dCol != 0 {
		next := focus + dCol
		if next < 0 {
			next = 0
		}
		if next >= total {
			next = total - 1
		}
		return next
	}
	row, col := locate(rows, focus)
	target := row + dRow
	if target < 0 || target >= len(rows) {
		return focus
	}
	if col >= len(rows[target]) {
		col = len(rows[target]) - 1
	}
	return rows[target][col]
}
