package commands

import (
	"fmt"

	"github.com/confpw/kconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMergeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge <base> <fragment>...",
		Short: "Merge fragment files into a base config",
		Long: `Merge one or more fragment files into a base config, the way the
kernel's merge_config.sh assembles a .config from overlays.

A fragment entry replaces the same-key base entry in place; keys the
base does not have are appended. Later fragments win.`,
		Example: `  kconf merge defconfig debug.config -o .config`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := kconfig.NewStack(args[0], args[1:]...)
			st.Prefix = prefix
			if err := st.LoadAll(); err != nil {
				return err
			}
			merged := st.Merged()
			log.Info().Int("entries", merged.Len()).Int("fragments", len(args)-1).Msg("merged")

			if output != "" {
				return st.SaveMerged(output)
			}
			fmt.Fprintln(cmd.OutOrStdout(), kconfig.FormatDefault(merged))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write merged config to file instead of stdout")

	return cmd
}
