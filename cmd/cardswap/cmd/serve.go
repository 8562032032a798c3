package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fyerfyer/cardswap/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd 表示serve命令，用于启动HTTP服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the list sessions over HTTP",
	Long: `Start the HTTP API. Sessions live in memory and are discarded after the configured idle time.
Press Ctrl+C to stop the server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		gin.SetMode(gin.ReleaseMode)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, GetSessionService(), appMetrics, logger, server.WithClock(now))
		if err := srv.Run(ctx); err != nil {
			logger.Error("http server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (overrides the config file)")
}
