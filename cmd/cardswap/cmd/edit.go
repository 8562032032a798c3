package cmd

import (
	"fmt"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/spf13/cobra"
)

// editCmd 表示edit命令，用手工编辑后的文本替换当前清单
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace the current lists with edited text",
	Long: `Replace the current lists with hand-edited text, read from --from or given with --text.
The loaded list stays the reference for the diff, so the preview shows what the edit changed.
Edited text is trusted: it is not checked against the conflict rules.`,
	Example: `  cardswap edit -f lista.txt --from lista-modificata.txt
  cardswap edit --text "Carte mancanti: 1 -- 4"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		text, _ := cmd.Flags().GetString("text")

		// 检查是否同时指定了from和text
		if from != "" && cmd.Flags().Changed("text") {
			return fmt.Errorf("cannot specify both --from and --text flags at the same time")
		}

		if from != "" {
			edited, err := readList(from)
			if err != nil {
				return err
			}
			text = edited
		} else if !cmd.Flags().Changed("text") {
			return fmt.Errorf("must specify either --from or --text flag")
		}

		return withTarget(cmd, func(s *checklist.Store) error {
			s.ReconcileText(text)
			return nil
		})
	},
}

// dismissCmd 表示dismiss命令，用于清除冲突提示
var dismissCmd = &cobra.Command{
	Use:   "dismiss",
	Short: "Clear the conflict warnings of the last operation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTarget(cmd, func(s *checklist.Store) error {
			s.DismissConflicts()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(dismissCmd)
	addTargetFlags(editCmd)
	addTargetFlags(dismissCmd)

	editCmd.Flags().String("from", "", "File containing the edited list ('-' for stdin)")
	editCmd.Flags().String("text", "", "Edited list text")
}
