package volumeloader

import (
	"github.com/spf13/cobra"

	"github.com/BaizeAI/volume-loader/config"
	"github.com/BaizeAI/volume-loader/pkg/log"
)

type RootFlags struct {
	ConfigPath string
	Debug      bool

	config *config.Configuration
}

func NewCommand() *cobra.Command {
	flags := new(RootFlags)

	rootCmd := &cobra.Command{
		Use:           "volume-loader",
		Short:         "Restore archives into docker volumes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = newPersistentPreRunEFunc(flags)

	rootCmd.AddCommand(newLoadCommand(flags))
	rootCmd.AddCommand(newFormatsCommand())

	return rootCmd
}

func newPersistentPreRunEFunc(flags *RootFlags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			return err
		}
		if flags.Debug {
			cfg.Debug = true
		}

		log.InitEngine(&log.Config{
			Output: cfg.LogOutput,
			Debug:  cfg.Debug,
		})
		flags.config = cfg

		return nil
	}
}
