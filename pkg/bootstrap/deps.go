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

package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/agentnet/agentnet-cli/pkg/util"
)

// Installer installs the two dependency manifests into a provisioned
// environment. Either failure is fatal; there is no partial-success
// continuation and no rollback of already installed packages.
type Installer struct {
	Toolchain *Toolchain
	Exec      Commander
	EnvName   string
}

// InstallAll installs the Python manifest first and the app's JS
// dependencies second. A failing Python install aborts the run before the
// JS step begins.
func (i *Installer) InstallAll(ctx context.Context, manifestPath, appDir string, pm WebPackageManager) error {
	if err := i.InstallPythonDeps(ctx, manifestPath); err != nil {
		return err
	}
	return i.InstallWebDeps(ctx, appDir, pm)
}

// InstallPythonDeps installs the flat requirements manifest with the
// environment's own pip, so packages land inside the environment rather
// than the system interpreter.
func (i *Installer) InstallPythonDeps(ctx context.Context, manifestPath string) error {
	if !util.PathExists(manifestPath) {
		return fmt.Errorf("%w: manifest %s does not exist", ErrDependencyInstallFailed, manifestPath)
	}
	pip := filepath.Join(i.Toolchain.EnvBinDir(i.EnvName), "pip")
	log.Info("Installing Python dependencies", "manifest", manifestPath)
	if err := i.Exec.Run(ctx, pip, "install", "-r", manifestPath); err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyInstallFailed, err)
	}
	return nil
}

// InstallWebDeps runs the package manager's install in the annotator app
// directory. The app's own manifest is opaque to this tool.
func (i *Installer) InstallWebDeps(ctx context.Context, appDir string, pm WebPackageManager) error {
	if !util.DirExists(appDir) {
		return fmt.Errorf("%w: app directory %s does not exist", ErrDependencyInstallFailed, appDir)
	}
	log.Info("Installing app dependencies", "dir", appDir, "pm", pm)
	code, err := i.Exec.RunInteractive(ctx, ProcOpts{
		Dir:  appDir,
		Name: string(pm),
		Args: []string{"install"},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyInstallFailed, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: %s install exited with code %d", ErrDependencyInstallFailed, pm, code)
	}
	return nil
}
