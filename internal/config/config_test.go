package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile is a helper to create a file w/ content in dir
func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestManager() (*Manager, *bytes.Buffer) {
	var notice bytes.Buffer
	return NewManager().WithNotice(&notice), &notice
}

func TestNewDefaultFromEmbedded(t *testing.T) {
	cfg := NewDefaultFromEmbedded()

	assert.Equal(t, "", cfg.Author.Name)
	assert.Equal(t, "", cfg.Author.Mail)
	assert.Equal(t, "", cfg.Editor.File)
	assert.Equal(t, "end", cfg.Editor.Cursor)
	assert.False(t, cfg.Editor.Backup)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Debug)
}

func TestLoadCreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nested", "config.toml")

	m, notice := newTestManager()
	require.NoError(t, m.Load(configPath))

	assert.FileExists(t, configPath)
	assert.FileExists(t, filepath.Join(dir, "nested", TemplatesFileName))
	assert.Contains(t, notice.String(), "Created default config.toml")
	assert.Equal(t, "end", m.Config().Editor.Cursor)
	assert.Nil(t, m.Config().TemplateOverrides())
}

func TestLoadMergesUserConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfigFile(t, dir, "config.toml", `
[author]
name = "Ada Lovelace"
mail = "ada@example.com"

[editor]
file = "/tmp/addon.py"
backup = true
`)

	m, notice := newTestManager()
	require.NoError(t, m.Load(configPath))

	cfg := m.Config()
	assert.Equal(t, "Ada Lovelace", cfg.Author.Name)
	assert.Equal(t, "ada@example.com", cfg.Author.Mail)
	assert.Equal(t, "/tmp/addon.py", cfg.Editor.File)
	assert.True(t, cfg.Editor.Backup)
	// defaults survive for keys the user did not set
	assert.Equal(t, "end", cfg.Editor.Cursor)
	assert.Empty(t, notice.String())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfigFile(t, dir, "config.toml", "[author]\nname = \"From File\"\n")

	t.Setenv("SNIP_AUTHOR", "From Env")
	t.Setenv("SNIP_FILE", "/env/script.py")

	m, _ := newTestManager()
	require.NoError(t, m.Load(configPath))

	assert.Equal(t, "From Env", m.Config().Author.Name)
	assert.Equal(t, "/env/script.py", m.Config().Editor.File)
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfigFile(t, dir, "config.toml", "this is [not toml")

	m, _ := newTestManager()
	assert.Error(t, m.Load(configPath))
}

func TestLoadUserTemplates(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfigFile(t, dir, "config.toml", "")
	writeConfigFile(t, dir, TemplatesFileName, `
[templates.panel.normal]
text = '''
class CLASS_NAME(bpy.types.Panel):
    bl_label = "LABEL"
'''

[templates.operator.modal-draw]
text = "class CLASS_NAME: pass"
`)

	m, _ := newTestManager()
	require.NoError(t, m.Load(configPath))

	overrides := m.Config().TemplateOverrides()
	require.Len(t, overrides, 2)
	assert.Equal(t, "class CLASS_NAME(bpy.types.Panel):\n    bl_label = \"LABEL\"\n", overrides["panel"]["normal"])
	assert.Equal(t, "class CLASS_NAME: pass", overrides["operator"]["modal-draw"])
}

func TestLoadUserTemplatesRejectsEmptyText(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfigFile(t, dir, "config.toml", "")
	writeConfigFile(t, dir, TemplatesFileName, "[templates.panel.normal]\ntext = \"   \"\n")

	m, _ := newTestManager()
	err := m.Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no text")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	m, _ := newTestManager()
	require.NoError(t, m.Load(configPath))

	m.Viper().Set("author.name", "Grace Hopper")
	require.NoError(t, m.Save())
	assert.Equal(t, "Grace Hopper", m.Config().Author.Name)

	reloaded, _ := newTestManager()
	require.NoError(t, reloaded.Load(configPath))
	assert.Equal(t, "Grace Hopper", reloaded.Config().Author.Name)
}

func TestSaveWithoutConfigFile(t *testing.T) {
	m, _ := newTestManager()
	assert.Error(t, m.Save())
}
