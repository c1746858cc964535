package loader

import (
	"fmt"
	"io"

	"github.com/BaizeAI/volume-loader/internal/pkg/docker"
)

var _ Executor = &DryRunExecutor{}

// DryRunExecutor prints commands instead of running them.
type DryRunExecutor struct {
	Out io.Writer
}

func (e *DryRunExecutor) Execute(cmd docker.Command) error {
	_, err := fmt.Fprintln(e.Out, cmd.String())
	return err
}
