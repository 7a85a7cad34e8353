package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/writeguide/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a writeguide configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the content store and display settings and writes .writeguide.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
