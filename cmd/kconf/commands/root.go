// Package commands implements the kconf command line interface.
package commands

import (
	"fmt"

	"github.com/confpw/kconfig"
	"github.com/spf13/cobra"
)

var prefix string

// Execute runs the root command.
func Execute(version, commit string) error {
	return newRootCommand(version, commit).Execute()
}

func newRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kconf",
		Short: "Inspect and transform Kconfig-style config files",
		Long: `kconf parses, merges, diffs and reformats Kconfig-style
configuration files (Linux .config, Buildroot defconfig and friends).

Parsing is lossless: comments, blank lines and unknown lines survive a
round trip. The key prefix (CONFIG_, BR2_, ...) is inferred per file
unless forced with --prefix.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "", "force the key prefix instead of inferring it")

	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newMergeCommand())
	rootCmd.AddCommand(newDiffCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newKeysCommand())

	return rootCmd
}

// loadFile loads one config file, honoring the global --prefix flag.
func loadFile(path string) (*kconfig.Config, error) {
	if prefix != "" {
		return kconfig.LoadFile(path, kconfig.WithPrefix(prefix))
	}

	return kconfig.LoadFile(path)
}
