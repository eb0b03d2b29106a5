package commands

import (
	"fmt"

	"github.com/confpw/kconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check config files for structural problems",
		Long: `Parse config files and validate every entry: keyed entries must have
well-formed keys, values must fit their kind and hex values must not be
negative. Parsing itself never fails; validation reports what the
lenient parser preserved but could not type.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed bool
			for _, fn := range args {
				cfg, err := loadFile(fn)
				if err != nil {
					return err
				}
				if err := kconfig.ValidateConfig(cfg); err != nil {
					failed = true
					log.Error().Str("file", fn).Msg(err.Error())

					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d entries)\n", fn, cfg.Len())
			}
			if failed {
				return fmt.Errorf("validation failed")
			}

			return nil
		},
	}

	return cmd
}
