package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
k = "north"
j = "south"
l = "east"
h = "west"
space = "none"
enter = "stop"
q = "none"
`)
	override, err := LoadKeyConfig(data)
	require.NoError(t, err)

	assert.Equal(t, ActionNorth, override.Runes['k'])
	assert.Equal(t, ActionStop, override.Keys[tcell.KeyEnter])
	assert.Equal(t, ActionNone, override.Runes[' '])

	merged := MergeKeyTable(DefaultKeyTable(), override)
	assert.Equal(t, ActionWest, merged.Runes['h'])
	assert.Equal(t, ActionNorth, merged.Runes['w'], "defaults kept")
	_, ok := merged.Runes[' ']
	assert.False(t, ok, "none unbinds")
	_, ok = merged.Runes['q']
	assert.False(t, ok)
	assert.Equal(t, ActionQuit, merged.Keys[tcell.KeyEscape])

	// Base is untouched
	assert.Equal(t, ActionStop, DefaultKeyTable().Runes[' '])
}

func TestLoadKeyConfigErrors(t *testing.T) {
	_, err := LoadKeyConfig([]byte("[keys]\nk = \"jump\"\n"))
	assert.True(t, errors.Is(err, ErrUnknownAction))

	_, err = LoadKeyConfig([]byte("[keys]\nhyper = \"north\"\n"))
	assert.True(t, errors.Is(err, ErrUnknownKey))

	_, err = LoadKeyConfig([]byte("[keys\n"))
	assert.Error(t, err)
}

func TestLoadKeyConfigEmpty(t *testing.T) {
	kt, err := LoadKeyConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, kt.Runes)
	assert.Empty(t, kt.Keys)
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" North ")
	require.NoError(t, err)
	assert.Equal(t, ActionNorth, a)
	assert.Equal(t, "north", a.String())

	_, ok := ActionStop.Direction()
	assert.False(t, ok)
}

func TestCustomTableHandler(t *testing.T) {
	override, err := ParseBindings(map[string]string{"k": "north", "w": "none"})
	require.NoError(t, err)
	h, _ := newTestHandler(0)
	h.table = MergeKeyTable(DefaultKeyTable(), override)

	h.HandleEvent(runeKey('w'))
	assert.False(t, h.Poll().Held)
	h.HandleEvent(runeKey('k'))
	assert.True(t, h.Poll().Held)
}
