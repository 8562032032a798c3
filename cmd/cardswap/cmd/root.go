package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/fyerfyer/cardswap/internal/config"
	"github.com/fyerfyer/cardswap/internal/logging"
	"github.com/fyerfyer/cardswap/internal/metrics"
	"github.com/fyerfyer/cardswap/internal/render"
	"github.com/fyerfyer/cardswap/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// 配置文件路径
	cfgFile string
	// 是否在输出中使用 "-" 和 "+" 标记差异
	markers bool

	cfg        *config.Config
	logger     = zap.NewNop()
	appMetrics *metrics.Metrics
	// 会话服务实例，所有命令共享
	sessionSvc *session.InMemoryService
	// 时间戳使用的时区
	location = time.Local
)

// rootCmd 表示CLI工具的根命令
var rootCmd = &cobra.Command{
	Use:   "cardswap",
	Short: "Manage missing and duplicate card lists",
	Long: `cardswap keeps track of the cards a collector is missing and the duplicates
available for swapping. Lists are exchanged as plain text, edits are shown as a
diff against the loaded list, and two duplicate lists can be compared to find
possible trades.

Run without arguments to start an interactive session.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		// 如果没有子命令被调用，显示帮助信息
		_ = cmd.Help()
	},
}

// Execute 运行根命令并处理任何错误
// 没有参数时直接进入交互模式
func Execute() {
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"interactive"})
	}

	err := rootCmd.Execute()
	shutdown()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (YAML)")
	rootCmd.PersistentFlags().BoolVar(&markers, "markers", false, "prefix removed items with '-' and added items with '+'")
}

// initConfig 读取配置并创建共享的服务，只在第一次执行命令时生效
func initConfig(cmd *cobra.Command, args []string) error {
	if cfg != nil {
		return nil
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	loc, err := loaded.Location()
	if err != nil {
		return err
	}

	l, err := logging.New(loaded.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg = loaded
	location = loc
	logger = l
	appMetrics = metrics.New()
	sessionSvc = session.NewInMemoryService(
		session.WithStoreOptions(
			checklist.WithLocation(loc),
			checklist.WithListener(appMetrics.Observe),
		),
	)

	logger.Debug("configuration loaded",
		zap.String("config", cfgFile),
		zap.String("timezone", loc.String()),
	)
	return nil
}

// shutdown 关闭会话服务并刷新日志
func shutdown() {
	if sessionSvc != nil {
		_ = sessionSvc.Close()
	}
	_ = logger.Sync()
}

// now 返回配置时区的当前时间
func now() time.Time {
	return time.Now().In(location)
}

// GetSessionService 返回会话服务实例，供子命令使用
func GetSessionService() session.Service {
	return sessionSvc
}

// newPrinter 创建输出到命令标准输出的Printer
func newPrinter(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout(), render.WithMarkers(markers))
}
