package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tunnelman/core"
)

// KeyTable maps terminal keys to game actions
type KeyTable struct {
	// Special keys (arrows, tab, escape)
	Keys map[tcell.Key]core.Action
	// Printable rune bindings
	Runes map[rune]core.Action
}

// DefaultKeyTable returns the default bindings: arrows and vi keys move,
// space squirts, z sonar, tab drops gold, escape gives up the life, q quits the session
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]core.Action{
			tcell.KeyUp:     core.ActionUp,
			tcell.KeyDown:   core.ActionDown,
			tcell.KeyLeft:   core.ActionLeft,
			tcell.KeyRight:  core.ActionRight,
			tcell.KeyTab:    core.ActionDropGold,
			tcell.KeyEscape: core.ActionQuit,
		},
		Runes: map[rune]core.Action{
			'h': core.ActionLeft,
			'j': core.ActionDown,
			'k': core.ActionUp,
			'l': core.ActionRight,
			' ': core.ActionSquirt,
			'z': core.ActionSonar,
			'Z': core.ActionSonar,
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (core.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.Keys[ev.Key()]
	return a, ok
}

// Rune aliases for keys that are awkward as bare YAML scalars
var runeAliases = map[string]rune{
	"space": ' ',
}

// Apply rebinds actions from an action name -> key name map
// The new key replaces every previous binding of that action
func (kt *KeyTable) Apply(overrides map[string]string) error {
	for actionName, keyName := range overrides {
		action, ok := core.ParseAction(actionName)
		if !ok || action == core.ActionNone {
			return fmt.Errorf("keymap: unknown action %q", actionName)
		}

		key, r, err := parseKeyName(keyName)
		if err != nil {
			return fmt.Errorf("keymap: action %q: %w", actionName, err)
		}

		kt.unbind(action)
		if key == tcell.KeyRune {
			kt.Runes[r] = action
		} else {
			kt.Keys[key] = action
		}
	}
	return nil
}

func (kt *KeyTable) unbind(action core.Action) {
	for k, a := range kt.Keys {
		if a == action {
			delete(kt.Keys, k)
		}
	}
	for r, a := range kt.Runes {
		if a == action {
			delete(kt.Runes, r)
		}
	}
}

// parseKeyName accepts a single character, a rune alias or a tcell key name
func parseKeyName(name string) (tcell.Key, rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return tcell.KeyRune, r, nil
	}
	if runes := []rune(name); len(runes) == 1 {
		return tcell.KeyRune, runes[0], nil
	}
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, 0, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown key %q", name)
}
