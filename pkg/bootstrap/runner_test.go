package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRunsStepsInOrder(t *testing.T) {
	var order []State
	step := func(s State) Step {
		return Step{State: s, Run: func(ctx context.Context) error {
			order = append(order, s)
			return nil
		}}
	}

	r := NewRunner(
		step(StateLoadConfig),
		step(StateLocateToolchain),
		step(StateActivateEnv),
		step(StateVerifyRuntime),
		step(StateLaunch),
	)
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []State{
		StateLoadConfig,
		StateLocateToolchain,
		StateActivateEnv,
		StateVerifyRuntime,
		StateLaunch,
	}, order)
	assert.Equal(t, StateDone, r.State())
}

func TestRunnerAbortsOnFirstFailure(t *testing.T) {
	boom := errors.New("env missing")
	launched := false

	r := NewRunner(
		Step{State: StateLoadConfig, Run: func(ctx context.Context) error { return nil }},
		Step{State: StateActivateEnv, Run: func(ctx context.Context) error { return boom }},
		Step{State: StateLaunch, Run: func(ctx context.Context) error {
			launched = true
			return nil
		}},
	)

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), string(StateActivateEnv))
	assert.False(t, launched, "launch must not run after a failed activation")
	assert.Equal(t, StateActivateEnv, r.State())
}
