package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/spf13/cobra"
)

// generateCmd 表示generate命令，用于生成一份新的清单
var generateCmd = &cobra.Command{
	Use:   "generate [count]",
	Short: "Generate a new list with items 1 to count all missing",
	Long: `Generate the text of a new collection where every item from 1 to count is missing
and there are no duplicates yet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", checklist.ErrInvalidCount, args[0])
		}
		if count > cfg.Server.MaxGenerate {
			return fmt.Errorf("%w: %d exceeds the maximum of %d", checklist.ErrInvalidCount, count, cfg.Server.MaxGenerate)
		}

		lists, err := checklist.Generate(count)
		if err != nil {
			return err
		}
		text := checklist.Serialize(lists, checklist.FormatTimestamp(now()))

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}

		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated a list of %d items in %s\n", count, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "Write the list to a file instead of stdout")
}
