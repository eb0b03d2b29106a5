package commands

import (
	"fmt"
	"os"

	"github.com/confpw/kconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newFmtCommand() *cobra.Command {
	var (
		minimal       bool
		stripComments bool
		output        string
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Re-serialize a config file",
		Long: `Parse a config file and print it back.

By default the output is a faithful round trip of the input (modulo
per-line whitespace). --strip-comments drops comment and blank lines,
--minimal additionally sorts the remaining entries by key.`,
		Example: `  # Round-trip a kernel config
  kconf fmt .config

  # Canonical minimal form, written back to a file
  kconf fmt --minimal -o defconfig .config`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFile(args[0])
			if err != nil {
				return err
			}
			log.Debug().Str("file", args[0]).Int("entries", cfg.Len()).Str("prefix", cfg.Prefix()).Msg("parsed")

			var out string
			switch {
			case minimal:
				out = kconfig.FormatMinimal(cfg)
			case stripComments:
				out = kconfig.Format(cfg, kconfig.FormatOptions{})
			default:
				out = kconfig.FormatDefault(cfg)
			}

			if output != "" {
				return os.WriteFile(output, []byte(out+"\n"), 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().BoolVar(&minimal, "minimal", false, "drop comments and sort entries by key")
	cmd.Flags().BoolVar(&stripComments, "strip-comments", false, "drop comment and blank lines")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
