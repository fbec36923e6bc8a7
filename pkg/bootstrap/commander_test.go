package bootstrap

import (
	"context"
	"strings"
)

// fakeCommander records every invocation and serves canned results, so
// provisioning logic can be exercised without real tool invocations.
type fakeCommander struct {
	calls    []string
	outputs  map[string][]byte
	failures map[string]error
	exitCode int
}

func newFakeCommander() *fakeCommander {
	return &fakeCommander{
		outputs:  map[string][]byte{},
		failures: map[string]error{},
	}
}

func render(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (f *fakeCommander) record(name string, args ...string) string {
	call := render(name, args...)
	f.calls = append(f.calls, call)
	return call
}

func (f *fakeCommander) Run(ctx context.Context, name string, args ...string) error {
	call := f.record(name, args...)
	return f.failures[call]
}

func (f *fakeCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	call := f.record(name, args...)
	if err := f.failures[call]; err != nil {
		return nil, err
	}
	return f.outputs[call], nil
}

func (f *fakeCommander) RunInteractive(ctx context.Context, opts ProcOpts) (int, error) {
	call := f.record(opts.Name, opts.Args...)
	if err := f.failures[call]; err != nil {
		return -1, err
	}
	return f.exitCode, nil
}

// callsMatching returns recorded calls containing the given substring.
func (f *fakeCommander) callsMatching(substr string) []string {
	var matched []string
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			matched = append(matched, c)
		}
	}
	return matched
}
