package cmd

import (
	"github.com/fyerfyer/cardswap/checklist"
	"github.com/spf13/cobra"
)

// addCmd 表示add命令，用于向重复清单添加物品
var addCmd = &cobra.Command{
	Use:   "add [items...]",
	Short: "Add items to the duplicates list",
	Long: `Add one or more items to the duplicates list, keeping it in ascending order.
Items still in the missing list are rejected: a card you are missing cannot be a duplicate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := parseArgs(args)
		return withTarget(cmd, func(s *checklist.Store) error {
			return s.AddDoubles(items)
		})
	},
}

// removeCmd 表示remove命令，用于从重复清单中移除物品
var removeCmd = &cobra.Command{
	Use:   "remove [items...]",
	Short: "Remove items from the duplicates list",
	Long: `Remove one copy of each given item from the duplicates list.
Items not in the duplicates list are reported and left alone.`,
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := parseArgs(args)
		return withTarget(cmd, func(s *checklist.Store) error {
			return s.RemoveDoubles(items)
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	addTargetFlags(addCmd)
	addTargetFlags(removeCmd)
}
