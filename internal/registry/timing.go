package registry

import "time"

const (
	// DefaultDebounceTime is the suggested debounce window for rapid-fire controls.
	DefaultDebounceTime = 300 * time.Millisecond
	// DefaultDoubleClickPreventionTime is used when a control requests the
	// double-submit guard without an explicit delay.
	DefaultDoubleClickPreventionTime = 400 * time.Millisecond
)

// EffectiveDelay resolves the delay a click guard arms: an explicit positive
// delay wins, otherwise the guard default applies when the guard is requested.
func EffectiveDelay(explicit time.Duration, preventDoubleClick bool) time.Duration {
	if explicit > 0 {
		return explicit
	}
	if preventDoubleClick {
		return DefaultDoubleClickPreventionTime
	}
	return 0
}
