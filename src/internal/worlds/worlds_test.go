package worlds

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saya-palworld/saya/src/internal/log"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf, &buf)
	t.Cleanup(func() { log.SetOutput(nil, nil) })
	return &buf
}

func makeWorlds(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0755))
	}
	return dir
}

func TestList(t *testing.T) {
	dir := makeWorlds(t, "B2C4", "A1F3")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".writetest"), nil, 0644))

	assert.Equal(t, []string{"A1F3", "B2C4"}, List(dir))
}

func TestList_MissingDirectory(t *testing.T) {
	logs := captureLogs(t)

	names := List(filepath.Join(t.TempDir(), "SaveGames", "0"))

	assert.Empty(t, names)
	assert.Contains(t, logs.String(), "[WRN]")
	assert.Contains(t, logs.String(), "assuming there are none")
}

func TestList_PathIsAFile(t *testing.T) {
	captureLogs(t)
	path := filepath.Join(t.TempDir(), "0")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.Empty(t, List(path))
}

func TestSelect_None(t *testing.T) {
	logs := captureLogs(t)

	s := Select(nil)

	assert.False(t, s.Selected())
	assert.False(t, s.Ambiguous())
	assert.Empty(t, s.World)
	assert.Contains(t, logs.String(), "first time setup")
}

func TestSelect_One(t *testing.T) {
	logs := captureLogs(t)

	s := Select([]string{"World1"})

	assert.True(t, s.Selected())
	assert.False(t, s.Ambiguous())
	assert.Equal(t, "World1", s.World)
	assert.Contains(t, logs.String(), "World World1 detected")
}

func TestSelect_Many(t *testing.T) {
	logs := captureLogs(t)

	s := Select([]string{"World1", "World2"})

	assert.True(t, s.Selected())
	assert.True(t, s.Ambiguous())
	assert.Equal(t, "World1", s.World)
	assert.Equal(t, []string{"World1", "World2"}, s.Candidates)
	assert.Contains(t, logs.String(), "[WRN]")
	assert.Contains(t, logs.String(), "Picking World1")
}

func TestDiscover(t *testing.T) {
	captureLogs(t)

	s := Discover(makeWorlds(t, "Home"))
	assert.Equal(t, "Home", s.World)
}
