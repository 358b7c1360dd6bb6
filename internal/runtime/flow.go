package runtime

import "github.com/aretw0/tumble/pkg/domain"

// Guards that qualify a transition.
const (
	GuardGroups     = "groups"
	GuardNoGroups   = "no groups"
	GuardLastGroup  = "rewind last group"
	GuardQuickRoll  = "quick roll"
	GuardQuickSaved = "quick roll, saved groups"
)

// TriggerFinish is the trigger of the timer-driven Rolling exit.
const TriggerFinish = "finish"

// Transition is one edge of the application state machine.
type Transition struct {
	From    domain.AppState
	Trigger string
	Guard   string
	To      domain.AppState
	// Exit marks the edge that asks the host to close instead of entering To.
	Exit bool
}

// Transitions lists the state-changing edges handled by Dispatch and the
// roll sequencer. Edges that only re-render are omitted.
func Transitions() []Transition {
	on := func(i domain.Input) string { return i.String() }
	return []Transition{
		{From: domain.StatePickDie, Trigger: on(domain.InputSelect), To: domain.StatePickCount},
		{From: domain.StatePickDie, Trigger: on(domain.InputSelectHeld), Guard: GuardQuickRoll, To: domain.StateRolling},
		{From: domain.StatePickDie, Trigger: on(domain.InputBack), Guard: GuardGroups, To: domain.StateAddGroupPrompt},
		{From: domain.StatePickDie, Trigger: on(domain.InputBack), Guard: GuardNoGroups, Exit: true},

		{From: domain.StatePickCount, Trigger: on(domain.InputSelect), To: domain.StateAddGroupPrompt},
		{From: domain.StatePickCount, Trigger: on(domain.InputSelectHeld), Guard: GuardQuickRoll, To: domain.StateRolling},
		{From: domain.StatePickCount, Trigger: on(domain.InputBack), To: domain.StatePickDie},

		{From: domain.StateAddGroupPrompt, Trigger: on(domain.InputSelect), To: domain.StatePickDie},
		{From: domain.StateAddGroupPrompt, Trigger: on(domain.InputSelectHeld), Guard: GuardGroups, To: domain.StateRolling},
		{From: domain.StateAddGroupPrompt, Trigger: on(domain.InputBack), Guard: GuardLastGroup, To: domain.StatePickCount},

		{From: domain.StateRolling, Trigger: TriggerFinish, To: domain.StateResults},

		{From: domain.StateResults, Trigger: on(domain.InputSelect), To: domain.StatePickDie},
		{From: domain.StateResults, Trigger: on(domain.InputSelect), Guard: GuardQuickSaved, To: domain.StateAddGroupPrompt},
		{From: domain.StateResults, Trigger: on(domain.InputBack), To: domain.StatePickDie},
		{From: domain.StateResults, Trigger: on(domain.InputSelectHeld), To: domain.StateRolling},
		{From: domain.StateResults, Trigger: on(domain.InputUp), To: domain.StateRolling},
	}
}
