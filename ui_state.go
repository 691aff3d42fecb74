package main

type mode int

const (
	modeView mode = iota
	modeBrush
	modeCommand
)

type uiState struct {
	mode       mode
	command    CommandInput
	activeView int
	brush      brushState
	noticeMsg  string
	noticeKind noticeKind
	noticeSeq  int
}
