// Copyright 2025 AgentNet, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bootstrap provisions and activates the machine-local development
// environment for the AgentNet annotator: the conda toolchain, the named
// conda environment with its pinned Python, the Node.js runtime, and the
// two dependency manifests the annotator consumes.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/agentnet/agentnet-cli/pkg/util"
	pkgerrors "github.com/pkg/errors"
)

const (
	MinicondaInstallerURL = "https://repo.anaconda.com/miniconda/Miniconda3-latest-%s-%s.sh"

	// Pinned runtime versions the annotator is developed against
	PythonVersion  = "3.11"
	NodeVersion    = "20"
	NodeConstraint = ">=18"

	DefaultEnvName = "agentnet"
)

// Toolchain is a located conda installation. Base is the toolchain base
// directory under which environment roots and shared executables live.
type Toolchain struct {
	Base string
}

func (t *Toolchain) Conda() string {
	return filepath.Join(t.Base, "bin", "conda")
}

func (t *Toolchain) BinDir() string {
	return filepath.Join(t.Base, "bin")
}

func (t *Toolchain) EnvRoot(name string) string {
	return filepath.Join(t.Base, "envs", name)
}

func (t *Toolchain) EnvBinDir(name string) string {
	return filepath.Join(t.EnvRoot(name), "bin")
}

// InstallFunc installs a missing tool. It is invoked at most once per
// locate attempt.
type InstallFunc func(ctx context.Context) error

// CandidateBases returns the ordered list of conda base directories to
// probe. An explicit override (flag, env var, or CLI config) is always
// first; well-known install prefixes follow.
func CandidateBases(override string) []string {
	var candidates []string
	if override != "" {
		candidates = append(candidates, util.ExpandUser(override))
	}
	for _, c := range []string{
		"~/miniconda3",
		"~/anaconda3",
		"/opt/miniconda3",
		"/opt/homebrew/Caskroom/miniconda/base",
		"/usr/local/miniconda3",
	} {
		candidates = append(candidates, util.ExpandUser(c))
	}
	return candidates
}

// LocateToolchain finds the first candidate base directory that contains a
// conda executable. When none match and an installer is provided, the
// installer runs once and the candidates are rescanned. Failure after that
// is ErrToolchainNotFound.
func LocateToolchain(ctx context.Context, candidates []string, installer InstallFunc) (*Toolchain, error) {
	if tc := scanCandidates(candidates); tc != nil {
		return tc, nil
	}
	if installer != nil {
		if err := installer(ctx); err != nil {
			return nil, fmt.Errorf("%w: installer failed: %v", ErrToolchainNotFound, err)
		}
		if tc := scanCandidates(candidates); tc != nil {
			return tc, nil
		}
	}
	return nil, fmt.Errorf("%w: tried %s", ErrToolchainNotFound, strings.Join(candidates, ", "))
}

func scanCandidates(candidates []string) *Toolchain {
	for _, base := range candidates {
		tc := &Toolchain{Base: base}
		if util.PathExists(tc.Conda()) {
			return tc
		}
	}
	return nil
}

// MinicondaInstaller downloads the official installer script and runs it in
// batch mode against the given prefix.
func MinicondaInstaller(cmdr Commander, prefix string) InstallFunc {
	return func(ctx context.Context) error {
		url := fmt.Sprintf(MinicondaInstallerURL, installerOS(), installerArch())
		script, err := downloadInstaller(ctx, url)
		if err != nil {
			return err
		}
		defer os.Remove(script)
		return cmdr.Run(ctx, "bash", script, "-b", "-p", util.ExpandUser(prefix))
	}
}

func downloadInstaller(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to download miniconda installer")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download miniconda installer: %s", resp.Status)
	}

	f, err := os.CreateTemp("", "miniconda-*.sh")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func installerOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "MacOSX"
	default:
		return "Linux"
	}
}

func installerArch() string {
	switch runtime.GOARCH {
	case "arm64":
		if runtime.GOOS == "darwin" {
			return "arm64"
		}
		return "aarch64"
	default:
		return "x86_64"
	}
}

// Determine if `cmd` is a binary in PATH or a known alias
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return (err == nil || CommandIsAlias(cmd))
}

// Determine if `cmd` is a known alias
func CommandIsAlias(cmd string) bool {
	if runtime.GOOS == "windows" {
		return false
	}
	out, err := exec.Command("alias", cmd).Output()
	if err != nil {
		return false
	}
	output := strings.TrimSpace(string(out))
	return strings.HasPrefix(output, cmd+"=")
}
