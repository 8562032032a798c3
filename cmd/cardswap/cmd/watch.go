package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/fyerfyer/cardswap/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd 表示watch命令，用于实时显示对清单文件的编辑
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Show edits to a list file as they are saved",
	Long: `Load a list file and keep watching it. Every time the file is saved the preview is
printed again, showing the changes against the list as it was when watching started.
Press Ctrl+C to stop watching.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		text, err := readList(file)
		if err != nil {
			return err
		}

		service := GetSessionService()
		view, err := service.Create(text)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		defer func() { _ = service.Delete(view.ID) }()

		debounce, _ := cmd.Flags().GetDuration("debounce")
		out := cmd.OutOrStdout()

		w := watch.New(file, func(text string) {
			updated, err := service.Apply(view.ID, func(s *checklist.Store) error {
				s.ReconcileText(text)
				return nil
			})
			if err != nil {
				logger.Warn("failed to reconcile edited list", zap.Error(err))
				return
			}
			fmt.Fprintln(out)
			_ = showView(cmd, updated)
		}, watch.WithDebounce(debounce), watch.WithLogger(logger))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(out, "Watching %s (press Ctrl+C to stop)...\n\n", file)
		if err := showView(cmd, view); err != nil {
			return err
		}
		if err := w.Run(ctx); err != nil {
			return err
		}

		fmt.Fprintln(out, "\nWatching stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("debounce", 0, "Wait this long after the last change before refreshing (default 100ms)")
}
