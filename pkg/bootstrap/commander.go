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
	"errors"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	pkgerrors "github.com/pkg/errors"
)

// ProcOpts describes a child process spawned with full stdio passthrough.
type ProcOpts struct {
	Dir  string
	Env  []string
	Name string
	Args []string
}

// Commander abstracts subprocess execution so provisioning logic can be
// exercised in tests with canned results instead of real tool invocations.
type Commander interface {
	// Run executes a command, discarding stdout unless verbose logging is
	// enabled. A non-zero exit is returned as an error.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// RunInteractive executes a command with inherited stdio and returns
	// the child's exit code.
	RunInteractive(ctx context.Context, opts ProcOpts) (int, error)
}

type execCommander struct {
	verbose bool
}

// NewCommander returns a Commander backed by os/exec. When verbose is set,
// child output is streamed to the terminal instead of being discarded.
func NewCommander(verbose bool) Commander {
	return &execCommander{verbose: verbose}
}

func (e *execCommander) Run(ctx context.Context, name string, args ...string) error {
	log.Debug("exec", "cmd", name, "args", args)
	cmd := exec.CommandContext(ctx, name, args...)
	if e.verbose {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return pkgerrors.Wrapf(err, "%s failed", name)
	}
	return nil
}

func (e *execCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	log.Debug("exec", "cmd", name, "args", args)
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "%s failed", name)
	}
	return out, nil
}

func (e *execCommander) RunInteractive(ctx context.Context, opts ProcOpts) (int, error) {
	log.Debug("exec interactive", "cmd", opts.Name, "args", opts.Args, "dir", opts.Dir)
	cmd := exec.CommandContext(ctx, opts.Name, opts.Args...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	// Non-zero exit is a result, not a failure of the launcher itself
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
