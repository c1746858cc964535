package volumeloader

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/BaizeAI/volume-loader/internal/pkg/loader"
)

var supportedOutputs = []string{"table", "yaml", "json"}

type format struct {
	Extension string `json:"extension" yaml:"extension"`
	Command   string `json:"command" yaml:"command"`
}

func newFormatsCommand() *cobra.Command {
	var output string

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List the supported archive extensions and their decompression commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !lo.Contains(supportedOutputs, output) {
				return fmt.Errorf("output %s is not supported, supported outputs are %s", output, strings.Join(supportedOutputs, ", "))
			}

			return printFormats(cmd.OutOrStdout(), output)
		},
	}

	formatsCmd.Flags().StringVarP(&output, "output", "o", "table", fmt.Sprintf("Output format (%s)", strings.Join(supportedOutputs, "|")))

	return formatsCmd
}

func listFormats() []format {
	return lo.Map(loader.SupportedExtensions(), func(ext string, _ int) format {
		return format{
			Extension: ext,
			Command:   lo.Must(loader.ExtractCommand(ext)),
		}
	})
}

func joinedExtensions() string {
	return strings.Join(loader.SupportedExtensions(), ", ")
}

func printFormats(w io.Writer, output string) error {
	formats := listFormats()

	switch output {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(formats); err != nil {
			return err
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(formats)
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "EXTENSION\tCOMMAND")
		for _, f := range formats {
			fmt.Fprintf(tw, "%s\t%s\n", f.Extension, f.Command)
		}
		return tw.Flush()
	}
}
