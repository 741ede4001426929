package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".planar", "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "json"))
	require.NoError(t, store.Set("output.precision", 6))
	require.NoError(t, store.Set("output.color", false))

	assert.Equal(t, "json", store.GetString("output.format"))
	assert.Equal(t, 6, store.GetInt("output.precision"))
	assert.False(t, store.GetBool("output.color"))

	// Wrong types and missing keys
	assert.Equal(t, "", store.GetString("output.precision"))
	assert.Equal(t, 0, store.GetInt("output.format"))
	assert.False(t, store.GetBool("missing"))
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "json"))
	require.NoError(t, store.Set("distance.metric", "manhattan"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")
	assert.Contains(t, string(data), "[distance]")
	assert.NotContains(t, string(data), `"output.format"`)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("output.precision", 3))
	require.NoError(t, store.Set("distance.metric", "manhattan"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// TOML integers come back as int64 and are converted.
	assert.Equal(t, 3, reopened.GetInt("output.precision"))
	assert.Equal(t, "manhattan", reopened.GetString("distance.metric"))
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[output]
format = "json"
color = false

[distance]
metric = "manhattan"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "json", store.GetString("output.format"))
	assert.False(t, store.GetBool("output.color"))
	assert.Equal(t, "manhattan", store.GetString("distance.metric"))
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["manual.key"] = "manual_value"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "manual_value", reopened.GetString("manual.key"))
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory so the write fails.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"output": map[string]any{"format": "json", "precision": int64(2)},
		"top":    true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"output.format":    "json",
		"output.precision": int64(2),
		"top":              true,
	}, flat)
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"output.format": "json",
		"output.color":  true,
		"top":           1,
		"top.child":     2,
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"output": map[string]any{"format": "json", "color": true},
		"top":    1,
	}, nested)
}
