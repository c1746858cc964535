package volumeloader

import (
	"fmt"

	"github.com/kanisterio/errkit"
	"github.com/spf13/cobra"

	"github.com/BaizeAI/volume-loader/internal/pkg/docker"
	"github.com/BaizeAI/volume-loader/internal/pkg/loader"
)

// ErrNotRestored is returned when the archive was not extracted without a
// fatal error occurring, e.g. the operator aborted.
var ErrNotRestored = errkit.NewSentinelErr("archive was not restored")

var newDockerClient = func(binary string) dockerClient {
	return docker.NewClient(binary)
}

type dockerClient interface {
	loader.VolumeChecker
	loader.Executor
}

type LoadFlags struct {
	Interactive  bool
	DryRun       bool
	Image        string
	DockerBinary string
}

func newLoadCommand(rootFlags *RootFlags) *cobra.Command {
	flags := new(LoadFlags)

	loadCmd := &cobra.Command{
		Use:   "load <volume> <archive>",
		Short: "Extract an archive into a docker volume",
		Long: fmt.Sprintf(`Extract an archive into a docker volume using an ephemeral container.

The decompression command is chosen from the archive extension (%s).
When the volume already exists, --interactive asks whether to abort;
otherwise the archive is extracted into the existing volume.`, joinedExtensions()),
	}

	loadCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Ask before extracting into an existing volume")
	loadCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the container invocation instead of running it")
	loadCmd.Flags().StringVar(&flags.Image, "image", "", "Image of the extraction container (default from config, alpine)")
	loadCmd.Flags().StringVar(&flags.DockerBinary, "docker-binary", "", "Container runtime CLI (default from config, docker)")

	loadCmd.Args = newLoadValidateArgsFunc()
	loadCmd.RunE = newLoadRunEFunc(rootFlags, flags)

	return loadCmd
}

func newLoadValidateArgsFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 || args[0] == "" || args[1] == "" {
			return fmt.Errorf("arguments <volume> and <archive> are required")
		}

		return nil
	}
}

func newLoadRunEFunc(rootFlags *RootFlags, flags *LoadFlags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		image := flags.Image
		dockerBinary := flags.DockerBinary
		if rootFlags.config != nil {
			if image == "" {
				image = rootFlags.config.Image
			}
			if dockerBinary == "" {
				dockerBinary = rootFlags.config.DockerBinary
			}
		}

		client := newDockerClient(dockerBinary)
		opts := []loader.Option{
			loader.WithImage(image),
			loader.WithDockerBinary(dockerBinary),
			loader.WithVolumeChecker(client),
			loader.WithExecutor(client),
		}
		if flags.DryRun {
			opts = append(opts, loader.WithExecutor(&loader.DryRunExecutor{Out: cmd.OutOrStdout()}))
		}

		ok, err := loader.New(args[0], args[1], flags.Interactive, opts...).Load()
		if err != nil {
			return fmt.Errorf("failed to load archive %s into volume %s: %w", args[1], args[0], err)
		}
		if !ok {
			return ErrNotRestored
		}

		return nil
	}
}
