package domain

// Input is a discrete command fed to the application state machine.
type Input int

const (
	InputSelect Input = iota
	InputSelectHeld
	InputBack
	InputUp
	InputDown
	InputDownHeld
	InputTap
)

// String returns the log name of the input.
func (i Input) String() string {
	switch i {
	case InputSelect:
		return "select"
	case InputSelectHeld:
		return "select_held"
	case InputBack:
		return "back"
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputDownHeld:
		return "down_held"
	case InputTap:
		return "tap"
	}
	return "unknown"
}
