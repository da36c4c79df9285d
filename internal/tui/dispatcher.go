package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
	"github.com/alexisbeaulieu97/bookmeza/internal/showcase"
)

// DefaultDispatchBuffer bounds the messages queued ahead of the program.
const DefaultDispatchBuffer = 256

// Dispatcher delivers messages produced outside the event loop, such as
// debounced click handlers firing on timer goroutines, to a running program.
// Send never blocks, so handlers invoked synchronously from Update are safe;
// messages keep their order.
type Dispatcher struct {
	queue chan tea.Msg
	log   *logger.Logger
}

// NewDispatcher creates a dispatcher queueing up to buffer messages.
func NewDispatcher(buffer int, log *logger.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = DefaultDispatchBuffer
	}
	return &Dispatcher{queue: make(chan tea.Msg, buffer), log: log}
}

// Send queues msg, dropping it when the queue is full.
func (d *Dispatcher) Send(msg tea.Msg) bool {
	select {
	case d.queue <- msg:
		return true
	default:
		d.log.WithField("msg", msg).Warn("dispatch queue full, message dropped")
		return false
	}
}

// Run forwards queued messages to send until ctx is cancelled. Pass
// (*tea.Program).Send as send.
func (d *Dispatcher) Run(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.queue:
			send(msg)
		}
	}
}

// GalleryDeps routes gallery callbacks through the dispatcher.
func (d *Dispatcher) GalleryDeps(log *logger.Logger) showcase.GalleryDeps {
	return showcase.GalleryDeps{
		Logger: log,
		OnClick: func(title string, ev components.Event) {
			d.Send(ClickedMsg{Showcase: title, Event: ev})
		},
		OnStateChange: func() {
			d.Send(StateChangedMsg{})
		},
	}
}
