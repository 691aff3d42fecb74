package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-crossfilter/crossfilter"
)

// brushDrawerLines is the height of the brush drawer, border excluded.
const brushDrawerLines = 4

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func (m *model) brushDrawerView(width int) string {
	b := &m.ui.brush
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	fig := m.result.Figures[b.view].Descriptor
	xLine := rangeScrubberLine("x "+fig.X.Label, b.xFull, b.x, innerWidth)
	yLine := rangeScrubberLine("y "+fig.Y.Label, b.yFull, b.y, innerWidth)

	m.brushHelp.Width = innerWidth
	helpLine := fmt.Sprintf("step %s%%  ", formatValue(b.clampedStep()*100)) + m.brushHelp.ShortHelpView(BrushKeys.ShortHelp())
	errorLine := ""
	if b.errorMsg != "" {
		errorLine = "Error: " + b.errorMsg
	}

	lines := []string{
		lineStyle.Render(fmt.Sprintf("Brushing view %d: %s", b.view+1, brushSummary(fig, *b))),
		lineStyle.Render(xLine),
		lineStyle.Render(yLine),
		lineStyle.Render(helpLine),
	}
	if errorLine != "" {
		lines[0] = lineStyle.Render(errorLine)
	}
	return brushArea.Width(width).Render(strings.Join(lines, "\n"))
}

// brushSummary previews how many rows applying the brush would select.
func brushSummary(d crossfilter.RenderDescriptor, b brushState) string {
	n := brushSelection(d, b).Len()
	if n == 1 {
		return "1 row inside"
	}
	return fmt.Sprintf("%d rows inside", n)
}

// rangeScrubberLine draws the full axis as a bar with the brushed range
// marked, e.g. "x depth  8  ---[====]------  30".
func rangeScrubberLine(label string, full, r axisRange, width int) string {
	minLabel := formatValue(full.lo)
	maxLabel := formatValue(full.hi)
	label = truncatePlain(label, 16)
	padding := 2
	barWidth := width - runeWidth(label) - len(minLabel) - len(maxLabel) - padding*3
	if barWidth < 10 || full.width() <= 0 {
		return fmt.Sprintf("%s: %s - %s", label, formatValue(r.lo), formatValue(r.hi))
	}

	bar := []rune(strings.Repeat("-", barWidth))
	startPos := int(float64(barWidth-1) * (r.lo - full.lo) / full.width())
	endPos := int(float64(barWidth-1) * (r.hi - full.lo) / full.width())
	startPos = clamp(startPos, 0, barWidth-1)
	endPos = clamp(endPos, 0, barWidth-1)
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	return fmt.Sprintf("%s  %s  %s  %s", label, minLabel, string(bar), maxLabel)
}
