package runner

import "github.com/aretw0/tumble/pkg/domain"

// Action is the effect of one key press.
type Action struct {
	Input domain.Input
	// Quit ends the session without going through the engine.
	Quit bool
}

// KeyMap maps raw key sequences to actions.
type KeyMap map[string]Action

// DefaultKeyMap binds arrows and vi keys for navigation, Enter or Space for
// select, Tab or r for a held select, Esc or Backspace for back, PgDn or J for
// a held down, and Ctrl+C, Ctrl+D or q to quit.
func DefaultKeyMap() KeyMap {
	sel := Action{Input: domain.InputSelect}
	held := Action{Input: domain.InputSelectHeld}
	back := Action{Input: domain.InputBack}
	up := Action{Input: domain.InputUp}
	down := Action{Input: domain.InputDown}
	downHeld := Action{Input: domain.InputDownHeld}
	quit := Action{Quit: true}

	return KeyMap{
		"\r": sel, "\n": sel, " ": sel,
		"\t": held, "r": held, "R": held,
		"\x1b": back, "\x7f": back, "\b": back, "b": back,
		"\x1b[A": up, "\x1bOA": up, "k": up,
		"\x1b[B": down, "\x1bOB": down, "j": down,
		"\x1b[6~": downHeld, "J": downHeld,
		"t": {Input: domain.InputTap},
		"\x03": quit, "\x04": quit, "q": quit,
	}
}

// Decode splits buf into key sequences and returns the mapped actions in
// order. Unbound sequences are dropped.
func (m KeyMap) Decode(buf []byte) []Action {
	var out []Action
	for i := 0; i < len(buf); {
		n := seqLen(buf[i:])
		if a, ok := m[string(buf[i:i+n])]; ok {
			out = append(out, a)
		}
		i += n
	}
	return out
}

// seqLen returns the length of the key sequence at the start of buf. CSI and
// SS3 escapes run to their final byte; anything else is one byte.
func seqLen(buf []byte) int {
	if len(buf) < 2 || buf[0] != 0x1b {
		return 1
	}
	switch buf[1] {
	case 'O':
		if len(buf) >= 3 {
			return 3
		}
		return 2
	case '[':
		for j := 2; j < len(buf); j++ {
			if buf[j] >= 0x40 && buf[j] <= 0x7e {
				return j + 1
			}
		}
		return len(buf)
	}
	return 1
}
