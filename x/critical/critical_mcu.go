//go:build tinygo

package critical

import "runtime/interrupt"

// State is the saved interrupt state.
type State = interrupt.State

// Enter masks interrupts and returns the previous state.
func Enter() State { return interrupt.Disable() }

// Exit restores the interrupt state saved by Enter.
func Exit(st State) { interrupt.Restore(st) }
