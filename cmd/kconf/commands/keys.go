package commands

import (
	"fmt"

	"github.com/confpw/kconfig"
	"github.com/spf13/cobra"
)

func newKeysCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List the keys of a config file",
		Example: `  # All USB-related options
  kconf keys --pattern 'USB*' .config`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFile(args[0])
			if err != nil {
				return err
			}
			if pattern != "" {
				cfg, err = kconfig.FilterPattern(cfg, pattern)
				if err != nil {
					return err
				}
			}
			for _, k := range cfg.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "only keys matching this glob pattern")

	return cmd
}
