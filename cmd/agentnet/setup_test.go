package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentnet/agentnet-cli/pkg/bootstrap"
	"github.com/agentnet/agentnet-cli/pkg/config"
)

func TestCheckLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("numpy==1.2.3\n"), 0o644))
	app := filepath.Join(dir, "agentnet-annotator")
	require.NoError(t, os.Mkdir(app, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app, "package.json"), []byte(`{"name": "agentnet-annotator"}`), 0o644))

	origReq, origApp := requirements, appDir
	t.Cleanup(func() { requirements, appDir = origReq, origApp })
	requirements = filepath.Join(dir, "requirements.txt")
	appDir = app

	assert.NoError(t, checkLayout())
}

func TestCheckLayoutMissingApp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("numpy==1.2.3\n"), 0o644))

	origReq, origApp := requirements, appDir
	t.Cleanup(func() { requirements, appDir = origReq, origApp })
	requirements = filepath.Join(dir, "requirements.txt")
	appDir = filepath.Join(dir, "missing")

	assert.Error(t, checkLayout())
}

func TestResolvePackageManagerFromConfig(t *testing.T) {
	pm, err := resolvePackageManager(&config.CLIConfig{PackageManager: "pnpm"})
	require.NoError(t, err)
	assert.Equal(t, bootstrap.PNPM, pm)

	_, err = resolvePackageManager(&config.CLIConfig{PackageManager: "bogus"})
	assert.Error(t, err)
}
