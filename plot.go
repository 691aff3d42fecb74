package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-crossfilter/config"
	"github.com/andareed/siftly-crossfilter/crossfilter"
	"github.com/andareed/siftly-crossfilter/logging"
)

const (
	// figure pixels per terminal row
	pixelsPerRow = 30
	minPlotRows  = 4
	yLabelWidth  = 7
	// braille cells are 2 dots wide and 4 tall
	dotsPerCellX = 2
	dotsPerCellY = 4
	brailleBlank = 0x2800
)

// brailleBits[x][y] is the dot for column x, row y of a cell.
var brailleBits = [dotsPerCellX][dotsPerCellY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// palette holds terminal colours for points. Each point colour is blended
// over the background by its alpha, since a braille dot cannot be
// translucent.
type palette struct {
	highlight  lipgloss.Color
	muted      lipgloss.Color
	brush      lipgloss.Color
	background lipgloss.Color
}

func newPalette(c config.Colors) palette {
	bg := mustHex(c.Background, "#1c1c1c")
	hi := mustHex(c.Highlight, "#fc8d59")
	mu := mustHex(c.Muted, "#2c7bb6")
	return palette{
		highlight:  lipgloss.Color(bg.BlendRgb(hi, c.HighlightAlpha).Clamped().Hex()),
		muted:      lipgloss.Color(bg.BlendRgb(mu, c.MutedAlpha).Clamped().Hex()),
		brush:      lipgloss.Color(bg.BlendRgb(hi, 0.15).Clamped().Hex()),
		background: lipgloss.Color(bg.Hex()),
	}
}

func mustHex(s, fallback string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		logging.Warnf("plot: bad colour %q (%v), using %s", s, err, fallback)
		c, _ = colorful.Hex(fallback)
	}
	return c
}

// plotRows turns a figure height in pixels into raster rows, capped by the
// rows the terminal has left.
func plotRows(figureHeight, available int) int {
	rows := figureHeight / pixelsPerRow
	if available > 0 {
		rows = min(rows, available)
	}
	return max(minPlotRows, rows)
}

// raster is a braille bitmap of one view, one entry per terminal cell.
type raster struct {
	cols, rows int
	dots       []uint8
	lit        []bool // cell holds at least one highlighted point
	brushed    []bool // cell centre lies inside the brush
}

func newRaster(cols, rows int) raster {
	return raster{
		cols:    cols,
		rows:    rows,
		dots:    make([]uint8, cols*rows),
		lit:     make([]bool, cols*rows),
		brushed: make([]bool, cols*rows),
	}
}

// dotIndex maps v in r onto 0..n-1.
func dotIndex(v float64, r axisRange, n int) int {
	if n <= 1 || r.width() <= 0 {
		return 0
	}
	i := int(math.Round((v - r.lo) / r.width() * float64(n-1)))
	return clamp(i, 0, n-1)
}

// dotValue is the inverse of dotIndex for the centre of dot i.
func dotValue(i float64, r axisRange, n int) float64 {
	if n <= 1 {
		return r.lo
	}
	return r.lo + i/float64(n-1)*r.width()
}

func rasterize(d crossfilter.RenderDescriptor, cols, rows int, brush *brushState) raster {
	r := newRaster(cols, rows)
	xr, okX := axisExtent(d.X)
	yr, okY := axisExtent(d.Y)
	if cols <= 0 || rows <= 0 || !okX || !okY {
		return r
	}
	nx, ny := cols*dotsPerCellX, rows*dotsPerCellY

	for _, p := range d.Points {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		px := dotIndex(p.X, xr, nx)
		py := ny - 1 - dotIndex(p.Y, yr, ny)
		cell := (py/dotsPerCellY)*cols + px/dotsPerCellX
		r.dots[cell] |= brailleBits[px%dotsPerCellX][py%dotsPerCellY]
		if p.Highlighted {
			r.lit[cell] = true
		}
	}

	if brush != nil && brush.open && brush.view == d.View {
		for row := range rows {
			cy := dotValue(float64(ny-1)-(float64(row*dotsPerCellY)+1.5), yr, ny)
			for col := range cols {
				cx := dotValue(float64(col*dotsPerCellX)+0.5, xr, nx)
				r.brushed[row*cols+col] = brush.x.contains(cx) && brush.y.contains(cy)
			}
		}
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// lines renders the raster with highlighted cells in the highlight colour.
// Runs of cells with the same style are rendered together.
func (r raster) lines(p palette) []string {
	out := make([]string, r.rows)
	for row := range r.rows {
		var b strings.Builder
		var run strings.Builder
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cellStyleFor(runStyle, p).Render(run.String()))
			run.Reset()
		}
		for col := range r.cols {
			i := row*r.cols + col
			style := 0
			if r.lit[i] {
				style = 1
			}
			if r.brushed[i] {
				style |= 2
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			if r.dots[i] == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(brailleBlank + int(r.dots[i])))
			}
		}
		flush()
		out[row] = b.String()
	}
	return out
}

func cellStyleFor(style int, p palette) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(p.muted)
	if style&1 != 0 {
		s = s.Foreground(p.highlight)
	}
	if style&2 != 0 {
		s = s.Background(p.brush)
	}
	return s
}

// axisTick labels an axis end: the category name on categorical axes,
// otherwise the value.
func axisTick(a crossfilter.Axis, v float64) string {
	if len(a.Categories) > 0 {
		i := int(math.Round(v))
		if i >= 0 && i < len(a.Categories) {
			return a.Categories[i]
		}
		return ""
	}
	if math.IsNaN(v) {
		return "n/a"
	}
	return formatValue(v)
}

type plotPanel struct {
	view      int
	fig       crossfilter.Figure
	selection crossfilter.Selection
	active    bool
	width     int // outer width, border included
	rows      int
	palette   palette
	brush     *brushState
}

// render draws one view: a title, the y range, the raster and the x range,
// or the view's error in place of the raster.
func (pp plotPanel) render() string {
	inner := max(0, pp.width-2)
	d := pp.fig.Descriptor

	title := fmt.Sprintf("%d ", pp.view+1)
	if pp.fig.Err == nil {
		title += fmt.Sprintf("%s × %s", d.X.Label, d.Y.Label)
	}
	if !pp.selection.IsNone() {
		title += " · sel " + pp.selection.String()
	}
	title = truncate.StringWithTail(title, uint(inner), "…")

	var body []string
	if pp.fig.Err != nil {
		msg := wordwrap.String(pp.fig.Err.Error(), max(10, inner-2))
		body = strings.Split(msg, "\n")
		for len(body) < pp.rows+2 {
			body = append(body, "")
		}
		body = body[:pp.rows+2]
	} else {
		body = pp.plotBody(inner)
	}

	style := panelStyle
	if pp.active {
		style = activePanelStyle
	}
	content := titleStyle.Render(title) + "\n" + strings.Join(body, "\n")
	return style.Width(inner).Render(content)
}

func (pp plotPanel) plotBody(inner int) []string {
	d := pp.fig.Descriptor
	cols := max(1, inner-yLabelWidth-1)
	r := rasterize(d, cols, pp.rows, pp.brush)
	lines := r.lines(pp.palette)

	yr, _ := axisExtent(d.Y)
	body := make([]string, 0, pp.rows+2)
	for i, line := range lines {
		label := ""
		switch i {
		case 0:
			label = axisTick(d.Y, yr.hi)
		case len(lines) - 1:
			label = axisTick(d.Y, yr.lo)
		}
		label = truncate.StringWithTail(label, yLabelWidth, "…")
		body = append(body, axisStyle.Render(fmt.Sprintf("%*s", yLabelWidth, label))+"│"+line)
	}

	xr, _ := axisExtent(d.X)
	body = append(body, strings.Repeat(" ", yLabelWidth)+"└"+strings.Repeat("─", cols))
	lo := axisTick(d.X, xr.lo)
	hi := axisTick(d.X, xr.hi)
	gap := max(1, cols+1-runeWidth(lo)-runeWidth(hi))
	ticks := truncate.StringWithTail(lo+strings.Repeat(" ", gap)+hi, uint(cols+1), "…")
	body = append(body, strings.Repeat(" ", yLabelWidth)+axisStyle.Render(ticks))
	return body
}
