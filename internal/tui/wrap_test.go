package tui

import (
	"reflect"
	"strings"
	"testing"
)

func cellsOfWidth(widths ...int) []styledCell {
	cells := make([]styledCell, len(widths))
	for i, w := range widths {
		cells[i] = styledCell{s: strings.Repeat("x", w), width: w}
	}
	return cells
}

func TestWrapCellsBreaksAtWidth(t *testing.T) {
	rows := wrapCells(cellsOfWidth(5, 5, 5), 11)
	want := [][]int{{0, 1}, {2}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("expected %v, got %v", want, rows)
	}
}

func TestWrapCellsOversizedCellGetsOwnRow(t *testing.T) {
	rows := wrapCells(cellsOfWidth(3, 20, 3), 10)
	want := [][]int{{0}, {1}, {2}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("expected %v, got %v", want, rows)
	}
}

func TestWrapCellsNoWidthKeepsSingleRow(t *testing.T) {
	rows := wrapCells(cellsOfWidth(4, 4, 4), 0)
	if len(rows) != 1 || len(rows[0]) != 3 {
		t.Fatalf("expected a single row, got %v", rows)
	}
	if wrapCells(nil, 10) != nil {
		t.Fatalf("expected no rows for no cells")
	}
}

func TestRenderCellRows(t *testing.T) {
	cells := cellsOfWidth(1, 2, 3)
	out := renderCellRows(cells, [][]int{{0, 1}, {2}})
	if out != "x xx\nxxx" {
		t.Fatalf("unexpected render %q", out)
	}
}

func TestMoveFocus(t *testing.T) {
	rows := [][]int{{0, 1, 2}, {3, 4}, {5}}
	cases := []struct {
		name             string
		focus, dRow, dCol int
		want             int
	}{
		{"right", 1, 0, 1, 2},
		{"right wraps to next row", 2, 0, 1, 3},
		{"left clamps", 0, 0, -1, 0},
		{"right clamps", 5, 0, 1, 5},
		{"down keeps column", 1, 1, 0, 4},
		{"down clamps column", 2, 1, 0, 4},
		{"down to short row", 4, 1, 0, 5},
		{"up from top stays", 1, -1, 0, 1},
		{"up", 3, -1, 0, 0},
	}
	for _, tc := range cases {
		if got := moveFocus(rows, tc.focus, tc.dRow, tc.dCol); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestBuildFragmentCellsMarksFocus(t *testing.T) {
	cells := buildFragmentCells([]string{"engine", "unit"}, 1)
	if cells[0].s != fragmentStyle.Render("engine") {
		t.Fatalf("expected plain style for unfocused fragment")
	}
	if cells[1].s != focusedFragmentStyle.Render("unit") {
		t.Fatalf("expected focus style for focused fragment")
	}
	if cells[0].width != 8 {
		t.Fatalf("expected padded width 8, got %d", cells[0].width)
	}
}
