package cmd

import (
	"github.com/fyerfyer/cardswap/checklist"
	"github.com/spf13/cobra"
)

// foundCmd 表示found命令，用于把找到的物品从缺少清单中划掉
var foundCmd = &cobra.Command{
	Use:   "found [items...]",
	Short: "Remove found items from the missing list",
	Long: `Remove one or more items from the missing list.
Items can be separated by spaces, commas, semicolons or "--".
Items that are not in the missing list are reported and left alone.`,
	Example: `  cardswap found -f lista.txt 12 40 --write
  cardswap found "3, 7 -- 9"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := parseArgs(args)

		return withTarget(cmd, func(s *checklist.Store) error {
			if len(items) == 1 {
				s.RemoveMissing(items[0])
				return nil
			}
			return s.ApplyFoundBatch(items)
		})
	},
}

func init() {
	rootCmd.AddCommand(foundCmd)
	addTargetFlags(foundCmd)
}
