package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func stripANSI(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			in = true
		case in && r == 'm':
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "regi", truncatePlain("regions.tsv", 4))
	assert.Equal(t, "", truncatePlain("regions.tsv", 0))
	assert.Equal(t, "ab  ", padRightPlain("ab", 4))
	assert.Equal(t, "abcd", padRightPlain("abcd", 2))
	assert.Equal(t, 2, runeWidth("▸ "))
	assert.Equal(t, 4, runeWidth("染色"))
}

func TestAnsiColor(t *testing.T) {
	assert.Equal(t, termenv.CSI+"38;2;255;0;0m", ansiFg(lipgloss.Color("#ff0000")))
	assert.Equal(t, termenv.CSI+"48;2;0;0;0m", ansiBg(lipgloss.Color("#000000")))
	assert.Equal(t, termenv.CSI+"49m", ansiBg(lipgloss.Color("")))
	assert.Equal(t, "", ansiFg(lipgloss.Color("240")))
}

func TestRenderFooter(t *testing.T) {
	st := footerState{
		Mode:          "BRUSH",
		FileName:      "regions.tsv",
		ActiveView:    1,
		ViewMode:      "percentile",
		Height:        600,
		Highlighted:   2,
		TotalRows:     5,
		StatusMessage: "✓ Export 2 regions",
		Legend:        "(? help)",
	}
	out := renderFooter(120, st, defaultFooterStyles())
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)

	top := stripANSI(lines[0])
	assert.Contains(t, top, " BRUSH ")
	assert.Contains(t, top, "▸ regions.tsv")
	assert.Contains(t, top, "[VIEW 2: percentile] · [HEIGHT: 600px]")
	assert.True(t, strings.HasSuffix(top, "Highlighted 2/5"))
	assert.Equal(t, 120, runeWidth(top))

	bottom := stripANSI(lines[1])
	assert.True(t, strings.HasPrefix(bottom, "✓ Export 2 regions"))
	assert.True(t, strings.HasSuffix(bottom, "(? help)"))
	assert.Equal(t, 120, runeWidth(bottom))
}

func TestRenderFooterNarrow(t *testing.T) {
	out := renderFooter(30, footerState{Highlighted: 10, TotalRows: 10}, defaultFooterStyles())
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, runeWidth(stripANSI(line)), 30)
	}
	assert.Empty(t, renderFooter(0, footerState{}, defaultFooterStyles()))
}

func TestNoticeText(t *testing.T) {
	assert.Equal(t, "", noticeText("", noticeError))
	assert.Equal(t, "✓ saved", noticeText("saved", noticeSuccess))
	assert.Equal(t, "× failed", noticeText("failed", noticeError))
	assert.Equal(t, "ℹ loaded", noticeText("loaded", noticeInfo))
}
