package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type footerState struct {
	Mode      string
	ModeInput string

	FileName string

	ActiveView int
	ViewMode   string
	Height     int

	Highlighted int
	TotalRows   int

	StatusMessage string
	StatusAlert   bool
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	AlertFG    lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#fc8d59"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		AlertFG:    lipgloss.Color("#fc8d59"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "VIEW"
	}
	if st.Highlighted < 0 {
		st.Highlighted = 0
	}
	if st.TotalRows < 0 {
		st.TotalRows = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	gapW := 1

	rightPlain := fmt.Sprintf(" Highlighted %d/%d", st.Highlighted, st.TotalRows)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	statusPlain := viewStatusLabel(st)
	modeColW := clamp(leftW/5, 8, 16)
	statusColW := runeWidth(statusPlain)
	fileColW := leftW - modeColW - statusColW - 2*gapW
	if fileColW < 0 {
		deficit := -fileColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 6 {
			shrink := min(deficit, modeColW-6)
			modeColW -= shrink
		}
		fileColW = leftW - modeColW - statusColW - 2*gapW
		if fileColW < 0 {
			modeColW = max(0, modeColW+fileColW)
			fileColW = 0
		}
	}

	innerModeW := max(0, modeColW-2)
	modePillW := modeColW
	if runeWidth(st.Mode) <= innerModeW {
		modePillW = runeWidth(st.Mode) + 2
	}
	if slack := modeColW - modePillW; slack > 0 {
		modeColW = modePillW
		fileColW += slack
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	statusSeg := applyFG(padRightPlain(truncatePlain(statusPlain, statusColW), statusColW), styles.DimFG, styles.TextFG)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + statusSeg
	if actual := modeColW + fileColW + statusColW + 2*gapW; actual < leftW {
		left += strings.Repeat(" ", leftW-actual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

// viewStatusLabel summarises the focused view and the shared figure height.
func viewStatusLabel(st footerState) string {
	viewMode := st.ViewMode
	if viewMode == "" {
		viewMode = "raw"
	}
	return fmt.Sprintf("[VIEW %d: %s] · [HEIGHT: %dpx]", st.ActiveView+1, viewMode, st.Height)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := max(0, width-legendW)

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	msgFG := styles.StatusFG
	if st.StatusAlert {
		msgFG = styles.AlertFG
	}
	linePlain := applyFG(msgPlain, msgFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(st.Mode, max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	remaining := colW
	filePlain := truncatePlain("▸ "+name, remaining)
	remaining -= runeWidth(filePlain)

	inputPlain := ""
	if input := st.ModeInput; remaining > 0 && input != "" {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runeWidth(inputPlain)
	}
	remaining = max(0, remaining)

	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + strings.Repeat(" ", remaining)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func modeLabel(md mode) string {
	switch md {
	case modeBrush:
		return "BRUSH"
	case modeCommand:
		return "COMMAND"
	default:
		return "VIEW"
	}
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string { return ansiColor(false, c) }
func ansiBg(c lipgloss.Color) string { return ansiColor(true, c) }

// ansiColor always emits truecolor, independent of the detected profile, so
// the bar renders the same in tests and terminals.
func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if _, err := colorful.Hex(s); err != nil {
		return ""
	}
	return termenv.CSI + termenv.RGBColor(s).Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
