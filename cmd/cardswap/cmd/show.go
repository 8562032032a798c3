package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd 表示show命令，用于显示带差异标记的清单
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the lists with changes highlighted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTarget(cmd)
		if err != nil {
			return err
		}
		service := GetSessionService()
		if t.transient {
			defer func() { _ = service.Delete(t.id) }()
		}

		view, err := service.Get(t.id)
		if err != nil {
			return err
		}
		return showView(cmd, view)
	},
}

// textCmd 表示text命令，用于输出可复制粘贴的标准文本
var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Print the current lists as shareable text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTarget(cmd)
		if err != nil {
			return err
		}
		service := GetSessionService()
		if t.transient {
			defer func() { _ = service.Delete(t.id) }()
		}

		view, err := service.Get(t.id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), view.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(textCmd)

	showCmd.Flags().StringP("file", "f", "", "List file to show (default: the current session)")
	textCmd.Flags().StringP("file", "f", "", "List file to normalize (default: the current session)")
}
