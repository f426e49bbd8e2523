// Package cmd wires the lvmatch command tree.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmatch/internal/config"
)

// NewRootCmd builds the lvmatch command tree with its own viper instance,
// so independent trees (tests) never share configuration state.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "lvmatch",
		Short: "Minimum-cost bipartite matching solver",
		Long: `lvmatch computes a minimum-cost assignment between the rows and the
columns of a non-negative weight matrix read from a YAML or JSON file.

The solver is exact and memoized but exponential in the matrix size;
it is meant for small instances (see --max-size).`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./lvmatch.yaml or $HOME/.config/lvmatch/lvmatch.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(newSolveCmd(v))

	return rootCmd
}

// loadConfig reads the config file named by --config (if any), the
// environment and bound flags into a validated Config.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := config.Init(v, cfgFile); err != nil {
		return nil, err
	}

	return config.Load(v)
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
