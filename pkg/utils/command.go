package utils

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ExecuteCommandWithAllOutput runs cmd, streaming its output to the process
// stdout and stderr while also capturing both streams.
func ExecuteCommandWithAllOutput(logger *logrus.Entry, cmd *exec.Cmd) (*bytes.Buffer, *bytes.Buffer, error) {
	outBuffer, errBuffer := RedirectCmdOutput(cmd, true)

	return runCommand(logger, cmd, outBuffer, errBuffer)
}

// ExecuteCommandSilently runs cmd and only captures its output.
func ExecuteCommandSilently(logger *logrus.Entry, cmd *exec.Cmd) (*bytes.Buffer, *bytes.Buffer, error) {
	outBuffer, errBuffer := RedirectCmdOutput(cmd, false)

	return runCommand(logger, cmd, outBuffer, errBuffer)
}

func ExecuteCommandWithOutput(logger *logrus.Entry, cmd *exec.Cmd) (*bytes.Buffer, error) {
	outBuffer, _, err := ExecuteCommandWithAllOutput(logger, cmd)

	return outBuffer, err
}

func ExecuteCommand(logger *logrus.Entry, cmd *exec.Cmd) error {
	_, err := ExecuteCommandWithOutput(logger, cmd)
	return err
}

func runCommand(logger *logrus.Entry, cmd *exec.Cmd, outBuffer, errBuffer *bytes.Buffer) (*bytes.Buffer, *bytes.Buffer, error) {
	logger = logger.WithField("command", cmd.String())
	logger.Debug("executing command")

	err := cmd.Run()
	logger.Debugf("command output: %s", outBuffer.String())
	if err != nil {
		logger.Errorf("command failed to execute, error: %s", strings.TrimSpace(errBuffer.String()))
		return outBuffer, errBuffer, fmt.Errorf("failed to execute command %s, err: %w", cmd.String(), err)
	}

	return outBuffer, errBuffer, nil
}

// RedirectCmdOutput points the stdout and stderr of cmd at fresh buffers,
// teeing into the process streams when passthrough is set.
func RedirectCmdOutput(cmd *exec.Cmd, passthrough bool) (*bytes.Buffer, *bytes.Buffer) {
	var outBuffer, errBuffer *bytes.Buffer

	if passthrough {
		outBuffer, cmd.Stdout = NewWrappedOutputWriter(os.Stdout)
		errBuffer, cmd.Stderr = NewWrappedOutputWriter(os.Stderr)
	} else {
		outBuffer, cmd.Stdout = NewWrappedOutputWriter(nil)
		errBuffer, cmd.Stderr = NewWrappedOutputWriter(nil)
	}

	return outBuffer, errBuffer
}
