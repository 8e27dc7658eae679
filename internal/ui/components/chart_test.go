package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestChartRenderEmpty(t *testing.T) {
	t.Parallel()
	out := NewChart().Render(nil, nil)
	if !strings.Contains(out, "No sessions yet") {
		t.Fatalf("expected empty-state message, got %q", out)
	}
}

func TestChartRenderLegendAndAxis(t *testing.T) {
	t.Parallel()
	chart := Chart{Width: 20, Height: 6}
	out := chart.Render(
		[]string{"2026-08-01", "2026-08-02", "2026-08-03"},
		[]ChartSeries{
			{Name: "Combined", Values: []float64{200, 150, 50}, Style: lipgloss.NewStyle(), Rune: '●'},
			{Name: "Cash", Values: []float64{200, 150, 150}, Style: lipgloss.NewStyle(), Rune: '○'},
		},
	)
	for _, want := range []string{"● Combined", "○ Cash", "2026-08-01", "2026-08-03"} {
		if !strings.Contains(out, want) {
			t.Fatalf("chart output missing %q:\n%s", want, out)
		}
	}
}

func TestRowForClampsToGrid(t *testing.T) {
	t.Parallel()
	if row := rowFor(100, 0, 100, 10); row != 0 {
		t.Fatalf("max value must land on top row, got %d", row)
	}
	if row := rowFor(0, 0, 100, 10); row != 9 {
		t.Fatalf("min value must land on bottom row, got %d", row)
	}
}

func TestColForSpreadsAcrossWidth(t *testing.T) {
	t.Parallel()
	if col := colFor(0, 5, 40); col != 0 {
		t.Fatalf("first point must be at column 0, got %d", col)
	}
	if col := colFor(4, 5, 40); col != 39 {
		t.Fatalf("last point must be at the final column, got %d", col)
	}
	if col := colFor(0, 1, 40); col != 0 {
		t.Fatalf("single point must be at column 0, got %d", col)
	}
}
