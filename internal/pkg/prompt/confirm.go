package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/BaizeAI/volume-loader/pkg/log"
)

const abortQuestion = "Abort the current operation? [Y/n]: "

// Confirmer asks the operator whether to abort. Confirm returning true means
// the operation must not proceed.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewTerminalConfirmer reads answers from stdin and writes the question to
// stdout.
func NewTerminalConfirmer() *Confirmer {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Warnf("stdin is not a terminal, the confirmation answer will be read from it as is")
	}

	return NewConfirmer(os.Stdin, os.Stdout)
}

// Confirm reads one line of input. Anything but an explicit "n" or "no",
// including a read failure, is taken as a request to abort.
func (c *Confirmer) Confirm() bool {
	_, _ = fmt.Fprint(c.out, abortQuestion)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		log.Debugf("failed to read confirmation answer, err: %s", err)
		return true
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "no":
		return false
	default:
		return true
	}
}
