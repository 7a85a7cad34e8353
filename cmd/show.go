package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/writeguide/internal/browser"
	"github.com/ziadkadry99/writeguide/internal/present"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render one point and print it",
	Long: `Resolves the id as a location fragment, loads the point exactly as the
browser would, and prints the result as markdown, html or text. Ids that
are not in the manifest print the introduction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(showFormat)
		switch format {
		case "markdown", "md", "html", "text":
		default:
			return fmt.Errorf("unknown format %q: must be markdown, html or text", showFormat)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, "")
		if err != nil {
			return err
		}
		defer logger.Sync()

		screen, err := browser.Snapshot(cmd.Context(), browser.Options{
			Store:        store,
			History:      browser.StaticHistory(args[0]),
			Logger:       logger.Named("browser"),
			NarrowWidth:  cfg.NarrowWidth,
			DiscardStale: cfg.DiscardStale,
		})
		if err != nil {
			return err
		}

		if err := writeScreen(cmd.OutOrStdout(), format, screen); err != nil {
			return err
		}

		switch {
		case screen.NavError != "":
			return fmt.Errorf("could not load the manifest from %s", store.Source())
		case screen.Phase == browser.PhaseRenderError:
			return fmt.Errorf("could not load %s", screen.Selected)
		}
		return nil
	},
}

func writeScreen(w io.Writer, format string, s browser.Screen) error {
	switch format {
	case "html":
		r, err := present.NewHTMLRenderer()
		if err != nil {
			return err
		}
		return r.Page(w, s)
	case "text":
		_, err := io.WriteString(w, present.Text(s.View))
		return err
	default:
		_, err := io.WriteString(w, present.Markdown(s.View))
		return err
	}
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "markdown", "output format: markdown, html or text")
	rootCmd.AddCommand(showCmd)
}
