package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/f1race/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective race configuration",
	Long: `Print the race configuration as YAML, after applying the same
search order play and sim use: --config, ~/.f1race/configs, ./configs,
then the built-in defaults. Redirect the output to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		race, err := loadRace()
		if err != nil {
			return err
		}
		data, err := config.Marshal(race)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
