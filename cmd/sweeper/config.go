package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration sweeper would use, as YAML.

With --defaults, print the built-in default file instead; it is a good
starting point for ~/.sweeper/config.yaml.

Examples:
  sweeper config
  sweeper config --config ./my.yaml
  sweeper config --defaults > ~/.sweeper/config.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	data, err := config.Marshal(appConfig)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# source: %s\n", appConfig.Source)
	fmt.Print(string(data))
}
