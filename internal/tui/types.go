package tui

import "time"

type stage int

const (
	stageBooting stage = iota
	stageView
)

// DefaultWidth is the classic teletext frame width in cells.
const DefaultWidth = 40

const (
	fetchTimeout = 15 * time.Second
	clockFormat  = "02.01. 15:04:05"
)
