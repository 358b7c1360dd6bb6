package runtime

import (
	"time"

	"github.com/aretw0/tumble/pkg/domain"
)

func (e *Engine) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, SessionID: e.sessionID}
}

func (e *Engine) emitStateEnter(s domain.AppState) {
	if e.hooks.OnStateEnter != nil {
		e.hooks.OnStateEnter(e.ctx, &domain.StateEvent{EventBase: e.event(domain.EventStateEnter), State: s})
	}
}

func (e *Engine) emitStateLeave(s domain.AppState) {
	if e.hooks.OnStateLeave != nil {
		e.hooks.OnStateLeave(e.ctx, &domain.StateEvent{EventBase: e.event(domain.EventStateLeave), State: s})
	}
}

func (e *Engine) emitSessionStart() {
	if e.hooks.OnSessionStart != nil {
		e.hooks.OnSessionStart(e.ctx, &domain.SessionEvent{
			EventBase: e.event(domain.EventSessionStart),
			Quick:     e.quickRoll,
			Dice:      e.inv.TotalDice(),
		})
	}
}

func (e *Engine) emitSessionFinish(skipped bool) {
	if e.hooks.OnSessionFinish != nil {
		e.hooks.OnSessionFinish(e.ctx, &domain.SessionEvent{
			EventBase: e.event(domain.EventSessionFinish),
			Quick:     e.quickRoll,
			Dice:      e.inv.TotalDice(),
			Skipped:   skipped,
		})
	}
}

func (e *Engine) emitRollCommit(c commit, completed, total int) {
	if e.hooks.OnRollCommit != nil {
		e.hooks.OnRollCommit(e.ctx, &domain.RollEvent{
			EventBase: e.event(domain.EventRollCommit),
			Kind:      c.kind,
			Group:     c.group,
			Die:       c.die,
			Value:     c.value,
			Animated:  c.animated,
			Completed: completed,
			Total:     total,
		})
	}
}

func (e *Engine) emitQuickRollRestore() {
	if e.hooks.OnQuickRollRestore != nil {
		base := e.event(domain.EventQuickRestore)
		e.hooks.OnQuickRollRestore(e.ctx, &base)
	}
}

func (e *Engine) emitExit() {
	if e.hooks.OnExit != nil {
		base := e.event(domain.EventExit)
		e.hooks.OnExit(e.ctx, &base)
	}
}
