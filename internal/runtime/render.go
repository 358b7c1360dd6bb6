package runtime

import "github.com/aretw0/tumble/pkg/domain"

// Hint labels shown next to the buttons.
const (
	HintRoll    = "Hold Roll"
	HintSkip    = "Hold Skip"
	HintReroll  = "RR"
	HintClear   = "Clear"
	HintConfirm = "Confirm"
)

func (e *Engine) render() {
	e.last = e.snapshot()
	e.renderer.Render(e.last)
}

func (e *Engine) snapshot() domain.Snapshot {
	s := domain.Snapshot{
		State:        e.state,
		RollingValue: domain.Unset,
		ConfirmClear: e.confirmClear,
		Hints:        e.hints(),
		QuickRoll:    e.quickRoll,
		Scroll:       e.scroll,
		Inventory:    e.inv.View(),
	}

	switch e.state {
	case domain.StateRolling:
		s.RollingValue = e.rolling
		s.Progress = e.seq.progress()
		s.Animating = e.seq.animating()
		s.Skipping = e.seq.skipping()
	case domain.StateResults:
		s.RollingValue = e.rolling
	}
	return s
}

func (e *Engine) hints() [3]string {
	var h [3]string
	switch e.state {
	case domain.StatePickDie, domain.StatePickCount:
		h[domain.HintMiddle] = HintRoll
	case domain.StateAddGroupPrompt:
		if e.inv.HasGroups() {
			h[domain.HintMiddle] = HintRoll
			h[domain.HintBottom] = HintClear
			if e.confirmClear {
				h[domain.HintBottom] = HintConfirm
			}
		}
	case domain.StateRolling:
		h[domain.HintMiddle] = HintSkip
	case domain.StateResults:
		h[domain.HintTop] = HintReroll
		h[domain.HintMiddle] = HintRoll
	}
	return h
}
