package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/fyerfyer/cardswap/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoSession 既没有指定文件也没有当前会话
var errNoSession = errors.New("no list loaded: pass --file or run 'load' first")

// active 交互模式中的当前会话
var active struct {
	id   string
	file string
}

// addTargetFlags 为作用于清单的命令添加文件参数
func addTargetFlags(c *cobra.Command) {
	c.Flags().StringP("file", "f", "", "List file to operate on (default: the current session)")
	c.Flags().BoolP("write", "w", false, "Write the updated list back to the file")
}

// target 描述一次命令作用的会话
type target struct {
	id   string
	file string
	// 临时会话在命令结束后删除
	transient bool
}

// resolveTarget 指定了文件时从文件创建临时会话，否则使用当前会话
func resolveTarget(cmd *cobra.Command) (target, error) {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		if active.id == "" {
			return target{}, errNoSession
		}
		return target{id: active.id, file: active.file}, nil
	}

	text, err := readList(file)
	if err != nil {
		return target{}, err
	}
	view, err := GetSessionService().Create(text)
	if err != nil {
		return target{}, fmt.Errorf("failed to load %s: %w", file, err)
	}
	return target{id: view.ID, file: file, transient: true}, nil
}

// withTarget 在目标会话上执行操作，输出预览和冲突，按需写回文件
func withTarget(cmd *cobra.Command, fn func(*checklist.Store) error) error {
	t, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	service := GetSessionService()
	if t.transient {
		defer func() { _ = service.Delete(t.id) }()
	}

	view, err := service.Apply(t.id, fn)
	if err != nil {
		return err
	}
	logger.Debug("list updated",
		zap.String("session", t.id),
		zap.Int("missing", view.Missing),
		zap.Int("doubles", view.Doubles),
	)

	if err := showView(cmd, view); err != nil {
		return err
	}

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		return nil
	}
	if t.file == "" || t.file == "-" {
		return errors.New("--write needs a list file")
	}
	if err := os.WriteFile(t.file, []byte(view.Text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", t.file, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", t.file)
	return nil
}

// showView 输出会话的预览和冲突提示
func showView(cmd *cobra.Command, view session.View) error {
	p := newPrinter(cmd)
	if err := p.Preview(view.Preview); err != nil {
		return err
	}
	return p.Conflicts(view.Conflicts)
}

// readList 读取清单文件，"-" 表示标准输入
func readList(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// parseArgs 把命令参数解析为编号，参数之间可以使用任意分隔符
func parseArgs(args []string) []checklist.Item {
	return checklist.ParseItems(strings.Join(args, " "))
}
