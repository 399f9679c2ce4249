package core

// Action represents a semantic driver action, abstracted from physical key
// presses so the key map can be tested without a terminal.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, h, a - paddle left while held
	ActionRight         // Right arrow, l, d - paddle right while held
	ActionPause         // Space, p - toggle pause
	ActionReset         // r - start a fresh round
	ActionHelp          // ? - toggle full help
	ActionStats         // Tab - toggle the stats panel
	ActionQuit          // q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionStats:
		return "Stats"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
