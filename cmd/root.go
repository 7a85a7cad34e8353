package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/writeguide/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	sourceArg string
)

var rootCmd = &cobra.Command{
	Use:   "writeguide",
	Short: "Browse bilingual writing-improvement points",
	Long: `WriteGuide browses a store of bilingual (Chinese/English) writing
points. Each point shows an original sentence, its improved versions and the
reasons for the change. The store is a directory or an HTTP base URL holding
data/manifest.json and one data/<id>.json file per point.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&sourceArg, "source", "s", "", "content store (directory or http(s) URL), overrides the config")
}
