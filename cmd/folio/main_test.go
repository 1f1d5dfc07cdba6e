package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/scaffold"
)

func TestToTitle(t *testing.T) {
	assert.Equal(t, "My Site", toTitle("my-site"))
	assert.Equal(t, "Folio", toTitle("folio"))
	assert.Equal(t, "", toTitle(""))
}

func TestConfigKeys(t *testing.T) {
	keys := configKeys()
	assert.Contains(t, keys, "admin_password")
	assert.Contains(t, keys, "content_dir")
	assert.NotContains(t, keys, "reveal")
}

func TestWriteTemplates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-site")
	var out bytes.Buffer
	err := writeTemplates(&out, dir, scaffold.Data{
		ProjectName: "my-site",
		ModuleName:  "example.com/me/my-site",
		SiteName:    "My Site",
	})
	require.NoError(t, err)

	gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(gomod), "module example.com/me/my-site"))

	main, err := os.ReadFile(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(main), `Name:           "My Site"`)

	assert.FileExists(t, filepath.Join(dir, ".env.example"))
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))
	assert.Contains(t, out.String(), "created")
}

func TestWriteSampleContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeSampleContent(&bytes.Buffer{}, dir))

	p, files, err := content.LoadDir(filepath.Join(dir, "content"), content.Portfolio{})
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, content.Default().Profile.FullName(), p.Profile.FullName())
}
