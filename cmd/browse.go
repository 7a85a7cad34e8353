package cmd

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ziadkadry99/writeguide/internal/browser"
	"github.com/ziadkadry99/writeguide/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [#id]",
	Short: "Browse the content store in the terminal",
	Long: `Opens the terminal browser. The optional argument is the starting
location fragment, e.g. "#unit-1-point-1". Unknown fragments fall back to
the introduction. Logs go to log.file, or writeguide.log in the temp
directory, so they do not draw over the screen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, cfg.BrowseLogFile())
		if err != nil {
			return err
		}
		defer logger.Sync()

		initial := ""
		if len(args) == 1 {
			initial = args[0]
		}
		history := browser.NewMemoryHistory(initial)
		width := tui.NewWidthTracker(terminalWidth())
		display := &tui.ProgramDisplay{}

		ctrl := browser.New(browser.Options{
			Store:        store,
			History:      history,
			Viewport:     width,
			Display:      display,
			Logger:       logger.Named("browser"),
			NarrowWidth:  cfg.NarrowWidth,
			DiscardStale: cfg.DiscardStale,
		})

		g, gctx := errgroup.WithContext(cmd.Context())
		ctx, cancel := context.WithCancel(gctx)
		defer cancel()

		p := tea.NewProgram(tui.New(ctrl, history, width, tui.Options{}),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)
		display.Attach(p)

		logger.Info("browser starting",
			zap.String("source", store.Source()),
			zap.String("fragment", history.Fragment()))

		g.Go(func() error {
			err := ctrl.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
		g.Go(func() error {
			// Quitting the program stops the controller.
			defer cancel()
			_, err := p.Run()
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			return err
		})
		return g.Wait()
	},
}

// terminalWidth seeds the viewport until the first resize event arrives.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
