package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/fyerfyer/cardswap/internal/match"
	"github.com/fyerfyer/cardswap/workpool"
	"github.com/spf13/cobra"
)

// matchCmd 表示match命令，用于在多位收藏者中寻找最佳交换对象
var matchCmd = &cobra.Command{
	Use:   "match [my-file] [partner-files...]",
	Short: "Rank partners by the swaps you could make with them",
	Long: `Read your list and the lists of several partners, and rank the partners by how many
swaps are possible: cards they have spare that you are missing, against cards you have
spare that they are missing.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readList(args[0])
		if err != nil {
			return err
		}
		mine := checklist.Parse(text)

		partners := make([]match.Partner, 0, len(args)-1)
		for _, path := range args[1:] {
			partners = append(partners, match.Partner{Name: listName(path), Path: path})
		}

		workers, _ := cmd.Flags().GetInt("workers")
		pool := workpool.New(
			workpool.WithFixedPoolSize(workers),
			workpool.WithQueueCapacity(len(partners)),
			workpool.WithLogger(logger),
		)
		if err := pool.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = pool.Shutdown(ctx)
		}()

		results, err := match.Rank(cmd.Context(), pool, mine, partners)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PARTNER\tSWAPS\tYOU GET\tYOU GIVE")
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(w, "%s\t-\terror: %v\t\n", r.Partner, r.Err)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
				r.Partner,
				r.Trade.Swaps(),
				formatOrDash(r.Trade.Receive),
				formatOrDash(r.Trade.Give))
		}
		return w.Flush()
	},
}

func formatOrDash(items []checklist.Item) string {
	if len(items) == 0 {
		return "-"
	}
	return checklist.FormatItems(items)
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Int("workers", 4, "Number of partner lists read in parallel")
}
