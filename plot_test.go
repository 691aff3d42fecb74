package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-crossfilter/config"
	"github.com/andareed/siftly-crossfilter/crossfilter"
)

func unitDescriptor(points ...crossfilter.Point) crossfilter.RenderDescriptor {
	return crossfilter.RenderDescriptor{
		Points: points,
		X:      crossfilter.Axis{Label: "x", Min: 0, Max: 1},
		Y:      crossfilter.Axis{Label: "y", Min: 0, Max: 1},
	}
}

func TestPlotRows(t *testing.T) {
	assert.Equal(t, 20, plotRows(600, 0))
	assert.Equal(t, 15, plotRows(450, 100))
	assert.Equal(t, 12, plotRows(800, 12))
	assert.Equal(t, minPlotRows, plotRows(600, 1))
}

func TestDotIndex(t *testing.T) {
	r := axisRange{lo: 0, hi: 10}
	assert.Equal(t, 0, dotIndex(0, r, 5))
	assert.Equal(t, 4, dotIndex(10, r, 5))
	assert.Equal(t, 2, dotIndex(5, r, 5))
	assert.Equal(t, 4, dotIndex(99, r, 5))
	assert.Equal(t, 0, dotIndex(5, axisRange{lo: 1, hi: 1}, 5))
}

func TestRasterizeSetsBrailleDots(t *testing.T) {
	d := unitDescriptor(
		crossfilter.Point{Row: 0, X: 0, Y: 0, Highlighted: true},
		crossfilter.Point{Row: 1, X: 1, Y: 1},
	)
	r := rasterize(d, 1, 1, nil)
	require.Len(t, r.dots, 1)
	// bottom-left dot of column 0 and top dot of column 1
	assert.Equal(t, uint8(0x40|0x08), r.dots[0])
	assert.True(t, r.lit[0])
	assert.False(t, r.brushed[0])
}

func TestRasterizeSkipsNonFinite(t *testing.T) {
	d := unitDescriptor(crossfilter.Point{Row: 0, X: nan(), Y: 0.5})
	r := rasterize(d, 2, 2, nil)
	for _, dots := range r.dots {
		assert.Zero(t, dots)
	}
}

func TestRasterizeIsDeterministic(t *testing.T) {
	d := unitDescriptor(
		crossfilter.Point{Row: 0, X: 0.1, Y: 0.9},
		crossfilter.Point{Row: 1, X: 0.5, Y: 0.5, Highlighted: true},
		crossfilter.Point{Row: 2, X: 0.9, Y: 0.2},
	)
	p := newPalette(config.Default().Colors)
	a := rasterize(d, 8, 4, nil).lines(p)
	b := rasterize(d, 8, 4, nil).lines(p)
	assert.Equal(t, a, b)
	assert.Len(t, a, 4)
}

func TestRasterizeMarksBrush(t *testing.T) {
	d := unitDescriptor()
	brush := &brushState{open: true, x: axisRange{lo: 0, hi: 0.5}, y: axisRange{lo: 0, hi: 1}}
	r := rasterize(d, 4, 1, brush)
	assert.Equal(t, []bool{true, true, false, false}, r.brushed)

	brush.view = 2
	r = rasterize(d, 4, 1, brush)
	assert.Equal(t, []bool{false, false, false, false}, r.brushed)
}

func TestNewPaletteBlendsOverBackground(t *testing.T) {
	p := newPalette(config.Colors{
		Highlight:      "#ffffff",
		HighlightAlpha: 0.5,
		Muted:          "#ffffff",
		MutedAlpha:     1,
		Background:     "#000000",
	})
	assert.Equal(t, lipgloss.Color("#808080"), p.highlight)
	assert.Equal(t, lipgloss.Color("#ffffff"), p.muted)
	assert.Equal(t, lipgloss.Color("#000000"), p.background)
}

func TestNewPaletteFallsBackOnBadColour(t *testing.T) {
	c := config.Default().Colors
	c.Background = "not-a-colour"
	p := newPalette(c)
	assert.Equal(t, lipgloss.Color("#1c1c1c"), p.background)
}

func TestAxisTick(t *testing.T) {
	cat := crossfilter.Axis{Categories: []string{"flank", "gap", "peak"}}
	assert.Equal(t, "flank", axisTick(cat, 0))
	assert.Equal(t, "peak", axisTick(cat, 2))
	assert.Equal(t, "", axisTick(cat, 7))

	assert.Equal(t, "0.25", axisTick(crossfilter.Axis{}, 0.25))
	assert.Equal(t, "n/a", axisTick(crossfilter.Axis{}, nan()))
}

func TestPlotPanelRender(t *testing.T) {
	d := unitDescriptor(crossfilter.Point{Row: 0, X: 0.5, Y: 0.5, Highlighted: true})
	d.X.Label, d.Y.Label = "gc content", "depth %"
	pp := plotPanel{
		view:      0,
		fig:       crossfilter.Figure{Descriptor: d},
		selection: crossfilter.None(),
		active:    true,
		width:     40,
		rows:      5,
		palette:   newPalette(config.Default().Colors),
	}
	out := pp.render()
	assert.Contains(t, out, "1 gc content × depth %")
	assert.Equal(t, 40, lipgloss.Width(out))
	// border + title + rows + axis line + ticks
	assert.Equal(t, 2+1+5+2, lipgloss.Height(out))
}

func TestPlotPanelRendersViewError(t *testing.T) {
	pp := plotPanel{
		view:    2,
		fig:     crossfilter.Figure{Err: errors.New("column \"depth\" is not numeric")},
		width:   40,
		rows:    5,
		palette: newPalette(config.Default().Colors),
	}
	out := pp.render()
	assert.True(t, strings.Contains(out, "is not numeric"))
	assert.Equal(t, 2+1+5+2, lipgloss.Height(out))
}
