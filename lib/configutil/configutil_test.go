package configutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Domain string `json:"domain"`
	Token  string `json:"token"`
	Count  int    `json:"count"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")

	err := os.WriteFile(path, []byte(`{
	// comments and trailing commas are allowed
	domain: "dbx3hf-qe.myshopify.com",
	count: 3,
}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "dbx3hf-qe.myshopify.com", config.Domain)
	require.Equal(t, 3, config.Count)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
	domain: "dbx3hf-qe.myshopify.com",
	token: "committed",
}`), 0644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
	token: "secret",
	count: 50,
}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "dbx3hf-qe.myshopify.com", config.Domain)
	require.Equal(t, "secret", config.Token)
	require.Equal(t, 50, config.Count)
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
	domain: "localhost",
}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "localhost", config.Domain)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
