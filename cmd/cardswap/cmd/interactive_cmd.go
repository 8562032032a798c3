package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// interactiveCmd 表示交互式命令，用于启动一个REPL
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive session",
	Long: `Start an interactive session.
Load a list with 'load FILE', then run found, add, remove, edit and show without --file.
Type 'exit' or 'quit' to exit, or press Ctrl+C.`,
	Aliases: []string{"i", "shell"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runInteractiveMode(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractiveMode(in io.Reader, out, errOut io.Writer) {
	fmt.Fprintln(out, "cardswap interactive mode")
	fmt.Fprintln(out, "Type 'help' for available commands or 'exit' to quit")

	// 设置信号处理，捕获Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// 创建一个channel，用于通知主循环何时退出
	doneChan := make(chan struct{})
	stopped := make(chan struct{})
	defer close(stopped)

	// 创建一个goroutine来处理信号
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(out, "\nReceived interrupt signal, exiting...")
			close(doneChan)
		case <-stopped:
		}
	}()

	scanner := bufio.NewScanner(in)

	for {
		// 检查是否应该退出
		select {
		case <-doneChan:
			return
		default:
		}

		fmt.Fprint(out, prompt())

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Fprintln(out, "Exiting...")
			return
		}

		executeCommand(input, out, errOut)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "Error reading input: %v\n", err)
	}
}

// prompt 提示符中显示当前会话对应的文件
func prompt() string {
	switch {
	case active.file != "":
		return fmt.Sprintf("[%s]> ", active.file)
	case active.id != "":
		return fmt.Sprintf("[%s]> ", active.id[:8])
	default:
		return "> "
	}
}

func executeCommand(input string, out, errOut io.Writer) {
	// 使用shellwords解析命令行参数
	parser := shellwords.NewParser()
	args, err := parser.Parse(input)
	if err != nil {
		fmt.Fprintf(errOut, "Error parsing command: %v\n", err)
		return
	}

	if len(args) == 0 {
		return
	}

	if target, _, err := rootCmd.Find(args); err == nil {
		if target.Name() == "interactive" {
			fmt.Fprintln(errOut, "Already in interactive mode")
			return
		}
		// 上一次执行留下的参数值不能带到这一次
		resetFlags(target)
	}

	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// 如果遇到错误，捕获错误而不是退出程序
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
}

// resetFlags 将命令及其继承的参数恢复为默认值
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.InheritedFlags().VisitAll(reset)
}
