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
)

// State names one step of the start sequence.
type State string

const (
	StateInit            State = "init"
	StateLoadConfig      State = "load-config"
	StateLocateToolchain State = "locate-toolchain"
	StateActivateEnv     State = "activate-env"
	StateVerifyRuntime   State = "verify-runtime"
	StateLaunch          State = "launch"
	StateDone            State = "done"
)

// Step pairs a state with its transition. Transitions are one-directional;
// the first failure aborts the run.
type Step struct {
	State State
	Run   func(ctx context.Context) error
}

// Runner executes steps strictly in order with a single failure rule: the
// first error stops the sequence, wrapped with the state it occurred in.
// There are no retries and no backoff.
type Runner struct {
	steps []Step
	state State
}

func NewRunner(steps ...Step) *Runner {
	return &Runner{steps: steps, state: StateInit}
}

// State reports the state the runner last entered.
func (r *Runner) State() State {
	return r.state
}

func (r *Runner) Run(ctx context.Context) error {
	for _, step := range r.steps {
		r.state = step.State
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.State, err)
		}
	}
	r.state = StateDone
	return nil
}
