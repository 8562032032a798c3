package cmd

import (
	"path/filepath"
	"strings"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/spf13/cobra"
)

// compareCmd 表示compare命令，用于比较两位收藏者的重复清单
var compareCmd = &cobra.Command{
	Use:   "compare [file-a] [file-b]",
	Short: "Find possible swaps between two collectors",
	Long: `Compare the duplicates lists of two list files.
Shows the items each collector has that the other does not, ignoring how many copies they hold.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		textA, err := readList(args[0])
		if err != nil {
			return err
		}
		textB, err := readList(args[1])
		if err != nil {
			return err
		}

		result, err := checklist.CompareText(textA, textB)
		if err != nil {
			return err
		}

		nameA, _ := cmd.Flags().GetString("name-a")
		nameB, _ := cmd.Flags().GetString("name-b")
		if nameA == "" {
			nameA = listName(args[0])
		}
		if nameB == "" {
			nameB = listName(args[1])
		}
		return newPrinter(cmd).Comparison(result, nameA, nameB)
	},
}

// listName 使用不带扩展名的文件名作为收藏者名称
func listName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().String("name-a", "", "Name of the first collector (default: file name)")
	compareCmd.Flags().String("name-b", "", "Name of the second collector (default: file name)")
}
