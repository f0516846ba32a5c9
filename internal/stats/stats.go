// Package stats contains score calculations and plain-text reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/tuidrill/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Accuracy returns correct/total as a percentage, or 0 for an empty total.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}

// Run summarizes the sessions finished so far in this process.
type Run struct {
	Sessions int
	Correct  int
	Total    int
	Accuracy float64
	Last     float64
	Scores   []float64
}

// RunMetrics folds session records into run-level totals.
func RunMetrics(sessions []model.SessionRecord) Run {
	run := Run{Sessions: len(sessions)}
	if len(sessions) == 0 {
		return run
	}
	run.Scores = make([]float64, len(sessions))
	for i, s := range sessions {
		run.Correct += s.Correct
		run.Total += s.Total
		run.Scores[i] = Accuracy(s.Correct, s.Total)
	}
	run.Accuracy = Accuracy(run.Correct, run.Total)
	run.Last = run.Scores[len(run.Scores)-1]
	return run
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// FormatMisses renders "prompt: expected" lines for the given misses.
func FormatMisses(misses []model.Miss) []string {
	lines := make([]string, len(misses))
	for i, m := range misses {
		lines[i] = fmt.Sprintf("%s: %s", m.Item.Prompt, m.Expected)
	}
	return lines
}

// RenderMissAggregates prints the most missed prompts as an aligned table.
func RenderMissAggregates(w io.Writer, aggs []model.MissAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No misses yet.")
		return err
	}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, []string{agg.Prompt, agg.Expected, fmt.Sprintf("%d", agg.Count)})
	}
	for _, line := range formatTable([]string{"Prompt", "Answer", "Misses"}, rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
