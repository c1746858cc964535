package docker

import (
	"bufio"
	"os"
	"os/exec"
	"strings"

	"github.com/kanisterio/errkit"
	"github.com/sirupsen/logrus"

	"github.com/BaizeAI/volume-loader/internal/pkg/constants"
	"github.com/BaizeAI/volume-loader/pkg/log"
	"github.com/BaizeAI/volume-loader/pkg/utils"
)

// Client talks to the container runtime through its CLI.
type Client struct {
	binary string
}

func NewClient(binary string) *Client {
	if binary == "" {
		binary = constants.DefaultDockerBinary
	}

	return &Client{binary: binary}
}

func (c *Client) Binary() string {
	return c.binary
}

// VolumeExists reports whether a volume named name is present in the
// runtime's volume inventory.
func (c *Client) VolumeExists(name string) (bool, error) {
	// The name filter matches substrings, so the output is compared exactly.
	cmd := NewCommand(c.binary, "volume", "ls", "--quiet", "--filter", "name="+name)
	logger := log.WithFields(logrus.Fields{
		"volume": name,
	})

	stdout, _, err := utils.ExecuteCommandSilently(logger, c.command(cmd))
	if err != nil {
		return false, errkit.Wrap(err, "failed to list docker volumes", "volume", name)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == name {
			return true, nil
		}
	}

	return false, nil
}

// Execute runs cmd to completion, streaming its output to the operator.
func (c *Client) Execute(cmd Command) error {
	logger := log.WithFields(logrus.Fields{
		"binary": c.binary,
	})
	logger.Infof("running %s", cmd)

	return utils.ExecuteCommand(logger, c.command(cmd))
}

func (c *Client) command(cmd Command) *exec.Cmd {
	args := cmd.Args()
	if len(args) == 0 {
		args = []string{c.binary}
	}

	execCmd := exec.Command(args[0], args[1:]...) // #nosec G204
	execCmd.Env = os.Environ()

	return execCmd
}
