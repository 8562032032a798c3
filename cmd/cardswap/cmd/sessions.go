package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fyerfyer/cardswap/internal/session"
	"github.com/spf13/cobra"
)

// loadCmd 表示load命令，用于加载清单文件作为当前会话
var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load a list file as the current session",
	Long: `Load a list file and make it the current session.
The loaded lists are the reference for every later diff.
Later commands without --file act on this session, and --write saves back to this file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		text, err := readList(file)
		if err != nil {
			return err
		}

		view, err := GetSessionService().Create(text)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		active.id = view.ID
		if file != "-" {
			active.file = file
		} else {
			active.file = ""
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %s as session %s\n", file, view.ID)
		return showView(cmd, view)
	},
}

// useCmd 表示use命令，用于切换当前会话
var useCmd = &cobra.Command{
	Use:   "use [session-id]",
	Short: "Switch the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := GetSessionService().Get(args[0])
		if err != nil {
			return err
		}
		active.id = view.ID
		active.file = ""

		fmt.Fprintf(cmd.OutOrStdout(), "Using session %s\n", view.ID)
		return nil
	},
}

// sessionsCmd 表示sessions命令，用于列出所有会话
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List all sessions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		infos := GetSessionService().List()

		// 检查是否有会话
		if len(infos) == 0 {
			fmt.Fprintln(out, "No sessions available.")
			return
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			// 详细模式：显示每个会话的完整信息
			fmt.Fprintf(out, "Found %d session(s):\n\n", len(infos))
			for i, info := range infos {
				if i > 0 {
					fmt.Fprintln(out, "---")
				}
				fmt.Fprint(out, session.FormatInfo(info))
			}
			return
		}

		// 表格模式
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tMISSING\tDOUBLES\tLAST CHANGE\t")
		for _, info := range infos {
			marker := ""
			if info.ID == active.id {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				info.ID,
				humanize.Comma(int64(info.Missing)),
				humanize.Comma(int64(info.Doubles)),
				humanize.Time(info.UpdatedAt),
				marker)
		}
		w.Flush()
	},
}

// closeCmd 表示close命令，用于删除会话
var closeCmd = &cobra.Command{
	Use:   "close [session-id]",
	Short: "Discard a session (default: the current one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := active.id
		if len(args) == 1 {
			id = strings.TrimSpace(args[0])
		}
		if id == "" {
			return errNoSession
		}

		if err := GetSessionService().Delete(id); err != nil {
			return err
		}
		if id == active.id {
			active.id, active.file = "", ""
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session %s closed.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(closeCmd)

	sessionsCmd.Flags().BoolP("verbose", "v", false, "Show detailed information for each session")
}
