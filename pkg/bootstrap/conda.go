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
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/agentnet/agentnet-cli/pkg/util"
)

// Provisioner ensures the named conda environment exists with the pinned
// Python version, and that the Node.js runtime is installed into it.
type Provisioner struct {
	Toolchain *Toolchain
	Exec      Commander
	Confirm   Confirmer
}

// ProvisionOpts controls a single Provision call.
type ProvisionOpts struct {
	EnvName       string
	PythonVersion string
	// Recreate requests destructive recreation of an existing environment.
	// The Confirmer still has to approve it; any non-affirmative answer
	// keeps the environment untouched.
	Recreate bool
}

type condaEnvList struct {
	Envs []string `json:"envs"`
}

// EnvExists queries conda for the named environment.
func (p *Provisioner) EnvExists(ctx context.Context, name string) (bool, error) {
	out, err := p.Exec.Output(ctx, p.Toolchain.Conda(), "env", "list", "--json")
	if err != nil {
		return false, err
	}
	var list condaEnvList
	if err := json.Unmarshal(out, &list); err != nil {
		return false, fmt.Errorf("failed to parse conda env list: %w", err)
	}
	for _, envPath := range list.Envs {
		if filepath.Base(envPath) == name {
			return true, nil
		}
	}
	return false, nil
}

// Provision is idempotent: calling it twice without Recreate never errors
// and never duplicates work.
func (p *Provisioner) Provision(ctx context.Context, opts ProvisionOpts) error {
	if opts.EnvName == "" {
		opts.EnvName = DefaultEnvName
	}
	if opts.PythonVersion == "" {
		opts.PythonVersion = PythonVersion
	}

	exists, err := p.EnvExists(ctx, opts.EnvName)
	if err != nil {
		return err
	}

	if exists {
		if !opts.Recreate {
			log.Info("Environment already exists, reusing", "env", opts.EnvName)
			return nil
		}
		ok, err := p.Confirm.Confirm(ctx, fmt.Sprintf("Remove and recreate environment [%s]?", opts.EnvName))
		if err != nil {
			return err
		}
		if !ok {
			log.Info("Keeping existing environment", "env", opts.EnvName)
			return nil
		}
		log.Warn("Removing environment", "env", opts.EnvName)
		if err := p.Exec.Run(ctx, p.Toolchain.Conda(), "env", "remove", "-n", opts.EnvName, "-y"); err != nil {
			return err
		}
	}

	log.Info("Creating environment", "env", opts.EnvName, "python", opts.PythonVersion)
	return p.Exec.Run(ctx,
		p.Toolchain.Conda(), "create", "-n", opts.EnvName,
		"python="+opts.PythonVersion, "-y",
	)
}

// EnsureNode installs the Node.js runtime into the environment when it is
// not already present there.
func (p *Provisioner) EnsureNode(ctx context.Context, envName string) error {
	if util.PathExists(filepath.Join(p.Toolchain.EnvBinDir(envName), "node")) {
		log.Info("Node.js runtime already present", "env", envName)
		return nil
	}
	log.Info("Installing Node.js runtime", "env", envName, "version", NodeVersion)
	return p.Exec.Run(ctx,
		p.Toolchain.Conda(), "install", "-n", envName,
		"-c", "conda-forge", "nodejs="+NodeVersion, "-y",
	)
}
