package model

import "time"

// Shared defaults used by the CLI binary and the TUI.
const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultPipPath      = "pip"
	DefaultSkin         = "default"
	DefaultChartTopN    = 15
)
