package docker

import (
	"github.com/kanisterio/safecli"

	"github.com/BaizeAI/volume-loader/pkg/utils"
)

// Command is a docker CLI invocation.
type Command struct {
	builder *safecli.Builder
}

// NewCommand returns a Command running binary with args.
func NewCommand(binary string, args ...string) Command {
	b := safecli.NewBuilder(binary)
	b.AppendLoggable(args...)

	return Command{builder: b}
}

// Args returns the argv of the command, binary first.
func (c Command) Args() []string {
	if c.builder == nil {
		return nil
	}

	return c.builder.Build()
}

// String renders the command as a single shell command line.
func (c Command) String() string {
	return utils.JoinShellArgs(c.Args())
}
