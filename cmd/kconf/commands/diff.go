package commands

import (
	"fmt"

	"github.com/confpw/kconfig"
	"github.com/spf13/cobra"
)

func newDiffCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "diff <base> <target>",
		Short: "Compare two config files key by key",
		Long: `Compare two config files and report added, removed and changed keys.
Comments and blank lines do not participate. The exit status is 1 when
the configs differ, like diff(1).`,
		Example: `  kconf diff .config.old .config`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := loadFile(args[0])
			if err != nil {
				return err
			}
			target, err := loadFile(args[1])
			if err != nil {
				return err
			}

			d := kconfig.Diff(base, target)
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), kconfig.FormatDiff(d, base.Prefix()))
			}
			if !d.Empty() {
				return fmt.Errorf("configs differ")
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the report, only set the exit status")

	return cmd
}
