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
	"errors"
)

// Provisioning and activation failures are fatal and never retried. Each
// sentinel maps to a remediation line printed alongside the error so the
// user always knows the exact next command to run.
var (
	ErrToolchainNotFound       = errors.New("conda toolchain not found")
	ErrEnvironmentNotFound     = errors.New("conda environment not found")
	ErrRuntimeUnavailable      = errors.New("node runtime unavailable")
	ErrDependencyInstallFailed = errors.New("dependency install failed")
)

// Remediation returns the next command the user should run to recover from
// err, or an empty string when the error has no canned remedy.
func Remediation(err error) string {
	switch {
	case errors.Is(err, ErrToolchainNotFound):
		return "run `agentnet setup`, or point --conda-base (or AGENTNET_CONDA_BASE) at your conda installation"
	case errors.Is(err, ErrEnvironmentNotFound):
		return "run `agentnet setup` to create the environment"
	case errors.Is(err, ErrRuntimeUnavailable):
		return "run `agentnet setup` to install the Node.js runtime into the environment"
	case errors.Is(err, ErrDependencyInstallFailed):
		return "fix the failing manifest and run `agentnet setup` again"
	default:
		return ""
	}
}
