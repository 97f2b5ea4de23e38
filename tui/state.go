package tui

type state int

const (
	groupsState state = iota + 1
	tokensState
)
