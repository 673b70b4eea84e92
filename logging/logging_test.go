package logging

import (
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f := SetupDir(dir, false, "debug")
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, stdlog.Writer())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory when disabled")
}

func TestSetupEnabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f := SetupDir(dir, true, "info")
	require.NotNil(t, f)
	t.Cleanup(func() {
		f.Close()
		disable()
	})

	log.Info().Int("seed", 42).Msg("Started")
	stdlog.Println("stdlib line")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seed":42`)
	assert.Contains(t, string(data), "stdlib line")

	assert.NotEqual(t, os.Stdout, stdlog.Writer())
	assert.NotEqual(t, os.Stderr, stdlog.Writer())
}

func TestSetupRotation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0644))

	f := SetupDir(dir, true, "")
	require.NotNil(t, f)
	t.Cleanup(func() {
		f.Close()
		disable()
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}
