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

	"github.com/charmbracelet/huh"

	"github.com/agentnet/agentnet-cli/pkg/util"
)

// Confirmer answers yes/no questions before destructive operations. The
// default answer is always no; anything short of an explicit affirmative
// preserves existing state.
type Confirmer interface {
	Confirm(ctx context.Context, title string) (bool, error)
}

type huhConfirmer struct{}

// NewConfirmer returns a Confirmer backed by an interactive terminal form.
func NewConfirmer() Confirmer {
	return huhConfirmer{}
}

func (huhConfirmer) Confirm(ctx context.Context, title string) (bool, error) {
	var ok bool
	if err := huh.NewForm(huh.NewGroup(huh.NewConfirm().
		Title(title).
		Value(&ok).
		Affirmative("Yes").
		Negative("No").
		Inline(true).
		WithTheme(util.Theme))).
		RunWithContext(ctx); err != nil {
		return false, err
	}
	return ok, nil
}

// StaticConfirmer always answers with a fixed value. It backs --yes runs
// and non-interactive sessions, and stands in for the terminal in tests.
type StaticConfirmer bool

func (s StaticConfirmer) Confirm(ctx context.Context, title string) (bool, error) {
	return bool(s), nil
}
