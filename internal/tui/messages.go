package tui

import (
	"time"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
)

// ClickedMsg reports that a showcase's click handler ran. It may originate
// from a timer goroutine and reaches the program through a Dispatcher.
type ClickedMsg struct {
	Showcase string
	Event    components.Event
}

// StateChangedMsg asks for a re-render after a control armed, fired or was
// cancelled.
type StateChangedMsg struct{}

// CopiedMsg carries the outcome of copying markup to the clipboard.
type CopiedMsg struct {
	Err error
}

// clearStatusMsg dismisses the status line if it has not changed since.
type clearStatusMsg struct {
	id int
}

const statusTimeout = 3 * time.Second
