package main

import (
	"fmt"
	"strings"
)

type Command int

const (
	CmdNone Command = iota
	CmdLine
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdLine
	default:
		return CmdNone
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdLine:
		return ":"
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdLine:
		return "x <col>  y <col>  mode raw|pct  h <px>  view <n>  open <file>  export [file]"
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	return m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}

// parsedCommand is one line typed after ':'.
type parsedCommand struct {
	verb string
	arg  string
}

var commandAliases = map[string]string{
	"x":          "x",
	"y":          "y",
	"m":          "mode",
	"mode":       "mode",
	"h":          "height",
	"height":     "height",
	"v":          "view",
	"view":       "view",
	"o":          "open",
	"open":       "open",
	"e":          "export",
	"w":          "export",
	"export":     "export",
	"clear":      "clear",
	"clear-all":  "clear-all",
	"q":          "quit",
	"quit":       "quit",
	"percentile": "mode",
}

func parseCommandLine(line string) (parsedCommand, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return parsedCommand{}, fmt.Errorf("empty command")
	}
	word, arg, _ := strings.Cut(line, " ")
	verb, ok := commandAliases[strings.ToLower(word)]
	if !ok {
		return parsedCommand{}, fmt.Errorf("unknown command %q", word)
	}
	arg = strings.TrimSpace(arg)
	if word == "percentile" && arg == "" {
		arg = "percentile"
	}
	switch verb {
	case "x", "y", "mode", "height", "view", "open":
		if arg == "" {
			return parsedCommand{}, fmt.Errorf("%s needs an argument", verb)
		}
	}
	return parsedCommand{verb: verb, arg: arg}, nil
}

// matchColumn resolves what the user typed to a selectable column: an exact
// name, a case-insensitive name, or a unique case-insensitive prefix.
// Spaces match underscores, so axis labels can be typed as shown.
func matchColumn(selectable []string, typed string) (string, error) {
	want := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(typed), " ", "_"))
	var prefixed []string
	for _, c := range selectable {
		if c == typed {
			return c, nil
		}
		lc := strings.ToLower(c)
		if lc == want {
			return c, nil
		}
		if strings.HasPrefix(lc, want) {
			prefixed = append(prefixed, c)
		}
	}
	switch len(prefixed) {
	case 0:
		return "", fmt.Errorf("no column matches %q", typed)
	case 1:
		return prefixed[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous: %s", typed, strings.Join(prefixed, ", "))
	}
}
