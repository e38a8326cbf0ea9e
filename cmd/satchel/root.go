// Root command for the satchel CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/satchel"
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// cfg holds the configuration loaded by PersistentPreRunE so all
// subcommands can read it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:           "satchel",
	Short:         "Satchel is a typed-collection toolkit",
	Version:       satchel.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(b64Cmd)
	rootCmd.AddCommand(strCmd)
}

// outputJSON reports whether output should be JSON, from the --json flag or
// the config.yaml output key.
func outputJSON() bool {
	if flagJSON {
		return true
	}
	return cfg != nil && cfg.GetString(cfgKeyOutput) == outputFormatJSON
}
