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
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/agentnet/agentnet-cli/pkg/util"
)

// EnvContext is the activation state of a conda environment, held as an
// explicit value instead of mutated process globals. It only turns into
// real environment variables at the single point where the child process
// is launched.
type EnvContext struct {
	EnvName string
	EnvRoot string

	// prepended to PATH, highest priority first
	pathPrepend []string
	// identity variables conda sub-invocations expect
	vars map[string]string
	// extra entries merged from the .env credentials file
	extra map[string]string
}

// Activate makes a previously provisioned environment's executables
// reachable without the full conda activation machinery: prepend the env's
// bin dir and the toolchain's own bin dir to PATH and set the conda
// identity variables. Fails with ErrEnvironmentNotFound when the env root
// is absent.
func Activate(tc *Toolchain, envName string) (*EnvContext, error) {
	envRoot := tc.EnvRoot(envName)
	if !util.DirExists(envRoot) {
		return nil, fmt.Errorf("%w: %s", ErrEnvironmentNotFound, envRoot)
	}

	return &EnvContext{
		EnvName:     envName,
		EnvRoot:     envRoot,
		pathPrepend: []string{filepath.Join(envRoot, "bin"), tc.BinDir()},
		vars: map[string]string{
			"CONDA_PREFIX":      envRoot,
			"CONDA_DEFAULT_ENV": envName,
			"CONDA_EXE":         tc.Conda(),
		},
	}, nil
}

// Merge adds credential entries loaded from the .env file. Later merges
// win over earlier ones; activation identity variables always win over
// merged entries.
func (e *EnvContext) Merge(env map[string]string) {
	if e.extra == nil {
		e.extra = make(map[string]string, len(env))
	}
	for k, v := range env {
		e.extra[k] = v
	}
}

// NodePath returns the path of the node executable inside the environment.
func (e *EnvContext) NodePath() string {
	return filepath.Join(e.EnvRoot, "bin", "node")
}

// Environ materializes the context as a process environment, layering on
// top of the parent's: parent env, then .env entries, then identity vars,
// with the activated PATH last.
func (e *EnvContext) Environ() []string {
	merged := map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}
	for k, v := range e.extra {
		merged[k] = v
	}
	for k, v := range e.vars {
		merged[k] = v
	}

	pathParts := e.pathPrepend
	if existing := merged["PATH"]; existing != "" {
		pathParts = append(pathParts, existing)
	}
	merged["PATH"] = strings.Join(pathParts, string(os.PathListSeparator))

	environ := make([]string, 0, len(merged))
	for k, v := range merged {
		environ = append(environ, k+"="+v)
	}
	return environ
}

// VerifyNode checks that the environment's node executable exists and
// satisfies the pinned version constraint.
func VerifyNode(ctx context.Context, cmdr Commander, envCtx *EnvContext) error {
	nodePath := envCtx.NodePath()
	if !util.PathExists(nodePath) {
		return fmt.Errorf("%w: %s does not exist", ErrRuntimeUnavailable, nodePath)
	}

	out, err := cmdr.Output(ctx, nodePath, "--version")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRuntimeUnavailable, err)
	}
	return CheckNodeVersion(strings.TrimSpace(string(out)))
}

// CheckNodeVersion validates `node --version` output (e.g. "v20.11.1")
// against the supported constraint.
func CheckNodeVersion(raw string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return fmt.Errorf("%w: unparseable node version %q", ErrRuntimeUnavailable, raw)
	}
	constraint, err := semver.NewConstraint(NodeConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: node %s does not satisfy %s", ErrRuntimeUnavailable, v, NodeConstraint)
	}
	return nil
}
