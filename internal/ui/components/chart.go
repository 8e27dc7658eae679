package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokerlog/internal/ui/theme"
)

// ChartSeries is one line on the cumulative profit chart.
type ChartSeries struct {
	Name   string
	Values []float64
	Style  lipgloss.Style
	Rune   rune
}

// Chart renders cumulative profit lines on a character grid. Columns map to
// session order, rows to the shared value range across all visible series.
type Chart struct {
	Width  int
	Height int
}

func NewChart() Chart {
	return Chart{Width: 60, Height: 12}
}

func (c Chart) Render(labels []string, series []ChartSeries) string {
	if len(labels) == 0 {
		return theme.Muted.Render("No sessions yet. Log one to see the profit curve.")
	}
	width := c.Width
	if width < 10 {
		width = 10
	}
	height := c.Height
	if height < 4 {
		height = 4
	}

	lo, hi := valueRange(series)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	grid := make([][]string, height)
	for row := range grid {
		grid[row] = make([]string, width)
		for col := range grid[row] {
			grid[row][col] = " "
		}
	}
	// zero line, when it falls inside the range
	if lo < 0 && hi > 0 {
		zeroRow := rowFor(0, lo, hi, height)
		for col := 0; col < width; col++ {
			grid[zeroRow][col] = theme.Muted.Render("·")
		}
	}

	for _, s := range series {
		for i, value := range s.Values {
			col := colFor(i, len(s.Values), width)
			row := rowFor(value, lo, hi, height)
			grid[row][col] = s.Style.Render(string(s.Rune))
		}
	}

	var sb strings.Builder
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%9.0f ", hi)))
	sb.WriteString("\n")
	for row := 0; row < height; row++ {
		sb.WriteString(strings.Repeat(" ", 10))
		sb.WriteString(strings.Join(grid[row], ""))
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%9.0f ", lo)))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %s → %s", labels[0], labels[len(labels)-1])))
	sb.WriteString("\n")

	legend := make([]string, 0, len(series))
	for _, s := range series {
		legend = append(legend, s.Style.Render(string(s.Rune)+" "+s.Name))
	}
	sb.WriteString(strings.Repeat(" ", 10))
	sb.WriteString(strings.Join(legend, theme.Muted.Render("   ")))
	return sb.String()
}

func valueRange(series []ChartSeries) (lo, hi float64) {
	first := true
	for _, s := range series {
		for _, v := range s.Values {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if first {
		return 0, 0
	}
	return lo, hi
}

func colFor(index, count, width int) int {
	if count <= 1 {
		return 0
	}
	col := index * (width - 1) / (count - 1)
	if col >= width {
		col = width - 1
	}
	return col
}

func rowFor(value, lo, hi float64, height int) int {
	frac := (value - lo) / (hi - lo)
	row := int(float64(height-1) * (1 - frac))
	if row < 0 {
		row = 0
	}
	if row >= height {
		row = height - 1
	}
	return row
}
