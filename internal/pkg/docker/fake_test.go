package docker

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strconv"
	"testing"
	"text/template"
)

type out struct {
	stdout string
	stderr string
	exit   int
}

// fakeCommand puts a scripted executable named cmd on PATH. Each invocation
// records its arguments and replays the next entry of outputs.
type fakeCommand struct {
	t       *testing.T
	cmd     string
	path    string
	outputs []out
}

var fakeCommandTemplate = template.Must(template.New("fakeCommand").Parse(`#!/usr/bin/env bash
index=0
if [ -f "{{.path}}/.{{.cmd}}_index" ]; then
	index=$(cat "{{.path}}/.{{.cmd}}_index")
fi
echo $((index+1)) > "{{.path}}/.{{.cmd}}_index"
echo "$*" > "{{.path}}/.{{.cmd}}_input_$index"
cat "{{.path}}/.{{.cmd}}_output_$index"
cat "{{.path}}/.{{.cmd}}_stderr_$index" 1>&2
exit $(cat "{{.path}}/.{{.cmd}}_exit_$index")
`))

func (f *fakeCommand) Inject() error {
	if f.path == "" {
		f.path = f.t.TempDir()
	}
	for i, o := range f.outputs {
		if err := os.WriteFile(path.Join(f.path, fmt.Sprintf(".%s_output_%d", f.cmd, i)), []byte(o.stdout), 0600); err != nil {
			return err
		}
		if err := os.WriteFile(path.Join(f.path, fmt.Sprintf(".%s_stderr_%d", f.cmd, i)), []byte(o.stderr), 0600); err != nil {
			return err
		}
		if err := os.WriteFile(path.Join(f.path, fmt.Sprintf(".%s_exit_%d", f.cmd, i)), []byte(strconv.Itoa(o.exit)), 0600); err != nil {
			return err
		}
	}

	shell := bytes.NewBuffer(nil)
	err := fakeCommandTemplate.Execute(shell, map[string]interface{}{
		"path": f.path,
		"cmd":  f.cmd,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(path.Join(f.path, f.cmd), shell.Bytes(), 0755) // nolint: gosec
}

func (f *fakeCommand) GetInput(index int) ([]byte, error) {
	return os.ReadFile(path.Join(f.path, fmt.Sprintf(".%s_input_%d", f.cmd, index)))
}

func (f *fakeCommand) GetAllInputs() [][]byte {
	var inputs [][]byte
	for i := 0; ; i++ {
		input, err := f.GetInput(i)
		if err != nil {
			break
		}
		inputs = append(inputs, input)
	}
	return inputs
}

func (f *fakeCommand) WithContext(run func()) {
	if err := f.Inject(); err != nil {
		f.t.Fatalf("failed to inject fake command %s: %s", f.cmd, err)
	}
	f.t.Setenv("PATH", fmt.Sprintf("%s:%s", f.path, os.Getenv("PATH")))
	run()
}
