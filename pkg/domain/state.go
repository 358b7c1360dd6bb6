package domain

// AppState identifies the screen the application state machine is on.
type AppState int

const (
	StatePickDie AppState = iota
	StatePickCount
	StateAddGroupPrompt
	StateRolling
	StateResults
)

// String returns the log name of the state.
func (s AppState) String() string {
	switch s {
	case StatePickDie:
		return "PICK_DIE"
	case StatePickCount:
		return "PICK_COUNT"
	case StateAddGroupPrompt:
		return "ADD_GROUP_PROMPT"
	case StateRolling:
		return "ROLLING"
	case StateResults:
		return "RESULTS"
	}
	return "UNKNOWN"
}

// MarshalText lets snapshots serialize the state by name.
func (s AppState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
