package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathbreak/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The config is looked up in this order: --config, ~/.mathbreak/config.yaml,
./configs/mathbreak.yaml, then the built-in defaults. The --difficulty preset
is applied on top.

Examples:
  mathbreak config
  mathbreak config --difficulty hard
  mathbreak config --default > ~/.mathbreak/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaultConfig {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "# source: %s, difficulty: %s\n", source, preset)
	_, err = os.Stdout.Write(data)
	return err
}
