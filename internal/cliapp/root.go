// Package cliapp wires the patterncore demo binary's command tree,
// grounded on internal/cli/root.go: a cobra root command carrying a
// --config flag, persistent flags bound onto viper at init time, and
// subcommands that read their settings back out of viper into a
// cliconfig.Config.
package cliapp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appVersion = "0.1.0"

	rootCmd = &cobra.Command{
		Use:   "patterncore",
		Short: "patterncore - a generic pattern-algebra graph toolkit",
		Long: `patterncore builds labeled graphs out of self-similar patterns
(points, relationships, walks, and arbitrary containers over them) and
runs traversal, shortest-path, and transform algorithms over the result
without ever assuming "node" and "edge" are different kinds of thing.`,
		Version: appVersion,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the build-time version string.
func SetVersion(version string) {
	if version != "" {
		appVersion = version
		rootCmd.Version = version
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .patterncore/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		fmt.Fprintf(os.Stderr, "failed to bind verbose flag: %v\n", err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".patterncore")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}
