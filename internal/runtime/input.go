package runtime

import "github.com/aretw0/tumble/pkg/domain"

func (e *Engine) handlePickDie(input domain.Input) {
	switch input {
	case domain.InputSelect:
		e.inv.ResetCount()
		e.transition(domain.StatePickCount)
	case domain.InputSelectHeld:
		e.beginQuickRoll()
	case domain.InputBack:
		if e.inv.HasGroups() {
			e.transition(domain.StateAddGroupPrompt)
			return
		}
		e.requestExit()
	case domain.InputUp:
		e.inv.StepKind(1)
		e.render()
	case domain.InputDown, domain.InputDownHeld:
		e.inv.StepKind(-1)
		e.render()
	}
}

func (e *Engine) handlePickCount(input domain.Input) {
	switch input {
	case domain.InputSelect:
		if err := e.inv.CommitGroup(); err != nil {
			e.logger.Warn("cannot add group", "err", err, "groups", e.inv.GroupCount())
			e.render()
			return
		}
		e.inv.ResetCount()
		e.transition(domain.StateAddGroupPrompt)
	case domain.InputSelectHeld:
		e.beginQuickRoll()
	case domain.InputBack:
		e.transition(domain.StatePickDie)
	case domain.InputUp:
		e.inv.StepCount(1)
		e.render()
	case domain.InputDown:
		e.inv.StepCount(-1)
		e.render()
	case domain.InputDownHeld:
		e.inv.ResetCount()
		e.render()
	}
}

func (e *Engine) handleAddGroupPrompt(input domain.Input) {
	switch input {
	case domain.InputSelect:
		if e.confirmClear {
			e.inv.Clear()
			e.inv.ResetCount()
			e.confirmClear = false
			e.logger.Info("groups cleared")
		}
		e.transition(domain.StatePickDie)
	case domain.InputSelectHeld:
		if e.inv.HasGroups() {
			e.beginRoll()
			return
		}
		e.beginQuickRoll()
	case domain.InputBack:
		switch {
		case e.confirmClear:
			e.confirmClear = false
			e.render()
		case e.inv.RewindLastGroup():
			e.transition(domain.StatePickCount)
		default:
			e.transition(domain.StatePickDie)
		}
	case domain.InputDown, domain.InputDownHeld:
		if e.inv.HasGroups() {
			e.confirmClear = true
			e.render()
		}
	}
}

func (e *Engine) handleRolling(input domain.Input) {
	switch input {
	case domain.InputSelect, domain.InputSelectHeld, domain.InputBack, domain.InputTap:
		e.seq.requestSkip()
		if e.state == domain.StateRolling {
			e.render()
		}
	}
}

func (e *Engine) handleResults(input domain.Input) {
	switch input {
	case domain.InputSelect, domain.InputBack:
		e.leaveResults()
	case domain.InputSelectHeld, domain.InputUp:
		e.beginRoll()
	case domain.InputDown:
		if e.scroll < e.inv.GroupCount()-1 {
			e.scroll++
		}
		e.render()
	case domain.InputDownHeld:
		e.scroll = 0
		e.render()
	}
}

// leaveResults puts a quick-rolled inventory back, or clears the finished roll.
func (e *Engine) leaveResults() {
	if e.quickRoll {
		e.restoreQuickRoll()
		if e.inv.HasGroups() {
			e.transition(domain.StateAddGroupPrompt)
			return
		}
		e.transition(domain.StatePickDie)
		return
	}
	e.inv.Clear()
	e.inv.ResetCount()
	e.transition(domain.StatePickDie)
}
