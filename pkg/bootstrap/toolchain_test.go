package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConda lays down a bin/conda file under base so the locator sees a
// valid toolchain there.
func writeConda(t *testing.T, base string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "bin", "conda"), []byte("#!/bin/sh\n"), 0o755))
}

func TestLocateToolchainFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	writeConda(t, first)
	writeConda(t, second)

	tc, err := LocateToolchain(context.Background(), []string{first, second}, nil)
	require.NoError(t, err)
	assert.Equal(t, first, tc.Base)
}

func TestLocateToolchainSkipsMissingCandidates(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	present := filepath.Join(dir, "present")
	writeConda(t, present)

	installerCalled := false
	installer := func(ctx context.Context) error {
		installerCalled = true
		return nil
	}

	tc, err := LocateToolchain(context.Background(), []string{missing, present}, installer)
	require.NoError(t, err)
	assert.Equal(t, present, tc.Base)
	assert.False(t, installerCalled, "installer must not run when a candidate exists")
}

func TestLocateToolchainRunsInstallerOnce(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "miniconda3")

	installerCalls := 0
	installer := func(ctx context.Context) error {
		installerCalls++
		writeConda(t, base)
		return nil
	}

	tc, err := LocateToolchain(context.Background(), []string{base}, installer)
	require.NoError(t, err)
	assert.Equal(t, base, tc.Base)
	assert.Equal(t, 1, installerCalls)
}

func TestLocateToolchainNotFound(t *testing.T) {
	dir := t.TempDir()
	candidates := []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}

	_, err := LocateToolchain(context.Background(), candidates, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToolchainNotFound)
	assert.NotEmpty(t, Remediation(err))
}

func TestLocateToolchainInstallerFailure(t *testing.T) {
	dir := t.TempDir()
	installer := func(ctx context.Context) error {
		return os.ErrPermission
	}

	_, err := LocateToolchain(context.Background(), []string{filepath.Join(dir, "a")}, installer)
	assert.ErrorIs(t, err, ErrToolchainNotFound)
}

func TestCandidateBasesOverrideFirst(t *testing.T) {
	candidates := CandidateBases("/opt/custom-conda")
	require.NotEmpty(t, candidates)
	assert.Equal(t, "/opt/custom-conda", candidates[0])

	defaults := CandidateBases("")
	assert.Len(t, candidates, len(defaults)+1)
}

func TestToolchainPaths(t *testing.T) {
	tc := &Toolchain{Base: "/opt/miniconda3"}
	assert.Equal(t, "/opt/miniconda3/bin/conda", tc.Conda())
	assert.Equal(t, "/opt/miniconda3/envs/agentnet", tc.EnvRoot("agentnet"))
	assert.Equal(t, "/opt/miniconda3/envs/agentnet/bin", tc.EnvBinDir("agentnet"))
}
