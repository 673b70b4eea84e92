package input

import (
	"fmt"
	"maps"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// Rune aliases for keys that cannot be written as a single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in config, lower case
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
}

// KeyTable binds runes and special keys to actions
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyTable is WASD plus arrows, space to stop, q/esc/ctrl-c to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionNorth,
			's': ActionSouth,
			'd': ActionEast,
			'a': ActionWest,
			' ': ActionStop,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionNorth,
			tcell.KeyDown:   ActionSouth,
			tcell.KeyRight:  ActionEast,
			tcell.KeyLeft:   ActionWest,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Lookup resolves a key event to its bound action
// Upper-case runes fall back to their lower-case binding.
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return kt.Keys[ev.Key()]
	}
	r := ev.Rune()
	// Some terminals report ctrl-c as a rune with the ctrl modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C') {
		if a, ok := kt.Keys[tcell.KeyCtrlC]; ok {
			return a
		}
	}
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	return kt.Runes[unicode.ToLower(r)]
}

// keymapFile is the TOML shape: a [keys] table of key name -> action name
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return ParseBindings(f.Keys)
}

// ParseBindings resolves key name -> action name pairs into a sparse KeyTable
// Single characters and rune aliases bind runes; other names bind special keys.
func ParseBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}
	for keyStr, actionName := range bindings {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = action
			continue
		}
		k, ok := keyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[keys] %w: %q", ErrUnknownKey, keyStr)
		}
		kt.Keys[k] = action
	}
	return kt, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// MergeKeyTable returns base overridden by override
// Entries bound to ActionNone delete the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = a
		}
	}
	return result
}
