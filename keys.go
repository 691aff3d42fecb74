package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit           key.Binding
	NextView       key.Binding
	PrevView       key.Binding
	PickView       key.Binding
	Brush          key.Binding
	ClearSelection key.Binding
	ClearAll       key.Binding
	NextX          key.Binding
	PrevX          key.Binding
	NextY          key.Binding
	PrevY          key.Binding
	Percentile     key.Binding
	Taller         key.Binding
	Shorter        key.Binding
	Command        key.Binding
	Open           key.Binding
	Export         key.Binding
	CopyRegions    key.Binding
	OpenHelp       key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	PrevView: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous view"),
	),
	PickView: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "focus view"),
	),
	Brush: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "brush a selection"),
	),
	ClearSelection: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear view selection"),
	),
	ClearAll: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear all selections"),
	),
	NextX: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next x column"),
	),
	PrevX: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous x column"),
	),
	NextY: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "next y column"),
	),
	PrevY: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "previous y column"),
	),
	Percentile: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "raw / percentile"),
	),
	Taller: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "taller figures"),
	),
	Shorter: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "shorter figures"),
	),
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command (x, y, mode, h, open, export)"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open TSV"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export regions"),
	),
	CopyRegions: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy regions"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

// ShortHelp is the footer legend.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenHelp, k.Brush, k.ClearSelection, k.Percentile, k.Export, k.Quit}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.PrevView, k.PickView, k.NextX, k.PrevX, k.NextY, k.PrevY, k.Percentile},
		{k.Brush, k.ClearSelection, k.ClearAll},
		{k.Taller, k.Shorter, k.Command},
		{k.Open, k.Export, k.CopyRegions, k.OpenHelp, k.Quit},
	}
}

// BrushKeymap is active while a brush is open.
type BrushKeymap struct {
	Move   key.Binding
	Resize key.Binding
	Step   key.Binding
	Reset  key.Binding
	Apply  key.Binding
	Cancel key.Binding
}

var BrushKeys = BrushKeymap{
	Move: key.NewBinding(
		key.WithKeys("left", "right", "up", "down", "h", "j", "k", "l"),
		key.WithHelp("←↓↑→", "move"),
	),
	Resize: key.NewBinding(
		key.WithKeys("shift+left", "shift+right", "shift+up", "shift+down", "H", "J", "K", "L"),
		key.WithHelp("shift+←↓↑→", "resize"),
	),
	Step: key.NewBinding(
		key.WithKeys("+", "=", "-"),
		key.WithHelp("-/+", "step"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

func (k BrushKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Resize, k.Step, k.Reset, k.Apply, k.Cancel}
}

func (k BrushKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
