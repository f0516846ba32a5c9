package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/tuidrill/internal/model"
)

func TestAccuracy(t *testing.T) {
	cases := []struct {
		correct, total int
		want           float64
	}{
		{1, 2, 50},
		{0, 0, 0},
		{3, 3, 100},
		{0, 4, 0},
	}
	for _, tc := range cases {
		if got := Accuracy(tc.correct, tc.total); got != tc.want {
			t.Fatalf("Accuracy(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestRunMetrics(t *testing.T) {
	run := RunMetrics([]model.SessionRecord{
		{Total: 4, Correct: 2},
		{Total: 6, Correct: 6},
	})
	if run.Sessions != 2 || run.Correct != 8 || run.Total != 10 {
		t.Fatalf("unexpected totals: %+v", run)
	}
	if run.Accuracy != 80 || run.Last != 100 {
		t.Fatalf("unexpected percentages: %+v", run)
	}
	if len(run.Scores) != 2 || run.Scores[0] != 50 {
		t.Fatalf("unexpected scores: %v", run.Scores)
	}
	if empty := RunMetrics(nil); empty.Sessions != 0 || empty.Accuracy != 0 {
		t.Fatalf("unexpected empty run: %+v", empty)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 50, 100}); got != " +@" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{70, 70}); got != "++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestFormatMisses(t *testing.T) {
	lines := FormatMisses([]model.Miss{{Item: model.Item{Prompt: "B", Answer: "-..."}, Expected: "-..."}})
	if len(lines) != 1 || lines[0] != "B: -..." {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestRenderMissAggregates(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMissAggregates(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No misses yet.") {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
	buf.Reset()
	err := RenderMissAggregates(&buf, []model.MissAggregate{{Prompt: "Q", Expected: "--.-", Count: 4}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Q      --.-        4") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderReferenceGrid(t *testing.T) {
	entries := []model.ReferenceEntry{
		{Prompt: "A", Answer: ".-"},
		{Prompt: "B", Answer: "-..."},
		{Prompt: "C", Answer: "-.-."},
		{Prompt: "D", Answer: "-.."},
	}
	var buf bytes.Buffer
	if err := RenderReference(&buf, "Morse", entries, 3); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected title and 2 rows, got %q", lines)
	}
	if lines[0] != "Morse" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[1] != "A .-   B -...  C -.-." {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if lines[2] != "D -.." {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestReferenceColumns(t *testing.T) {
	entries := []model.ReferenceEntry{{Prompt: "ABS", Answer: "anti-lock braking system"}}
	if got := ReferenceColumns(entries, 0); got != DefaultReferenceColumns {
		t.Fatalf("expected default columns, got %d", got)
	}
	if got := ReferenceColumns(entries, 40); got != 1 {
		t.Fatalf("expected 1 column, got %d", got)
	}
	if got := ReferenceColumns(entries, 500); got != DefaultReferenceColumns {
		t.Fatalf("expected columns capped at %d, got %d", DefaultReferenceColumns, got)
	}
}
