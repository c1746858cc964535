package loader

import (
	"github.com/BaizeAI/volume-loader/internal/pkg/docker"
)

type fakeVolumeChecker struct {
	exists bool
	err    error
	names  []string
}

func (f *fakeVolumeChecker) VolumeExists(name string) (bool, error) {
	f.names = append(f.names, name)
	return f.exists, f.err
}

type fakeConfirmer struct {
	abort bool
	calls int
}

func (f *fakeConfirmer) Confirm() bool {
	f.calls++
	return f.abort
}

type recordingExecutor struct {
	err      error
	commands []docker.Command
}

func (r *recordingExecutor) Execute(cmd docker.Command) error {
	r.commands = append(r.commands, cmd)
	return r.err
}

func staticPath(path string) func(string) (string, error) {
	return func(string) (string, error) {
		return path, nil
	}
}
