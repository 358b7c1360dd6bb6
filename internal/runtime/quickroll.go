package runtime

import (
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
)

const quickRollKey = "quick-roll"

// beginQuickRoll parks the configured inventory and rolls a single die of the
// selected kind in its place.
func (e *Engine) beginQuickRoll() {
	if e.quickRoll {
		e.logger.Warn("quick roll refused", "err", domain.ErrQuickRollActive)
		return
	}

	kind := e.inv.SelectedKind()
	temp := inventory.New()
	err := temp.Select(kind, 1)
	if err == nil {
		err = temp.CommitGroup()
	}
	if err != nil {
		e.logger.Error("quick roll setup failed", "err", err, "kind", kind)
		return
	}

	if err := e.stash.Save(e.ctx, quickRollKey, e.inv); err != nil {
		e.logger.Error("quick roll setup failed", "err", err, "kind", kind)
		return
	}

	e.inv = temp
	e.quickRoll = true
	e.logger.Info("quick roll", "kind", kind)
	e.beginRoll()
}

// restoreQuickRoll swaps the parked inventory back in. The temporary
// inventory is dropped entirely.
func (e *Engine) restoreQuickRoll() {
	if !e.quickRoll {
		return
	}
	e.quickRoll = false

	saved, err := e.stash.Load(e.ctx, quickRollKey)
	if err != nil {
		e.logger.Error("quick roll restore failed", "err", err)
		e.inv = inventory.New()
		return
	}
	if err := e.stash.Delete(e.ctx, quickRollKey); err != nil {
		e.logger.Warn("quick roll stash cleanup failed", "err", err)
	}

	e.inv = saved
	e.logger.Info("quick roll complete, restoring configuration", "groups", saved.GroupCount())
	e.emitQuickRollRestore()
}
