package input

import "github.com/gdamore/tcell/v2"

// Action is a single immediate command decoded from one key press. No
// action takes arguments and repeating one is harmless.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPageDown
	ActionPageUp
	ActionToggleRulers
	ActionToggleHelp
)

// ActionFor decodes a key event into an Action. Unbound keys map to
// ActionNone.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyCtrlD:
		return ActionPageDown
	case tcell.KeyCtrlU:
		return ActionPageUp
	case tcell.KeyCtrlR:
		return ActionToggleRulers
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'h':
			return ActionMoveLeft
		case 'l':
			return ActionMoveRight
		case 'k':
			return ActionMoveUp
		case 'j':
			return ActionMoveDown
		case '?':
			return ActionToggleHelp
		}
	}
	return ActionNone
}
