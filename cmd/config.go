package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the effective configuration as YAML, after defaults,
config.yaml, environment variables and flags have been merged.

Examples:
  sakedb config`,
		RunE: runConfig,
	}

	return configCmd
}

func runConfig(_ *cobra.Command, _ []string) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Configuration file: <em>%s</em>",
		config.ConfigFilePath(cfg.HomeDir))
	fmt.Println(string(out))
	return nil
}
