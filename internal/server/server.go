package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fyerfyer/cardswap/internal/config"
	"github.com/fyerfyer/cardswap/internal/metrics"
	"github.com/fyerfyer/cardswap/internal/ratelimit"
	"github.com/fyerfyer/cardswap/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// limiterIdle 客户端限流状态保留的时间
const limiterIdle = 10 * time.Minute

// Server 清单会话的HTTP服务
type Server struct {
	cfg     *config.Config
	svc     session.Service
	metrics *metrics.Metrics
	limiter *ratelimit.KeyedLimiter
	logger  *zap.Logger
	router  *gin.Engine
	now     func() time.Time
}

// Option HTTP服务的配置选项
type Option func(*Server)

// WithClock 设置生成清单时间戳使用的时间来源
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// New 创建HTTP服务并注册所有路由
// 配置的每秒请求数为0时不启用限流
func New(cfg *config.Config, svc session.Service, m *metrics.Metrics, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		svc:     svc,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		s.limiter = ratelimit.NewKeyedLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			ratelimit.WithMaxWaitTime(cfg.RateLimit.MaxWait),
		)
	}
	m.TrackSessions(svc.Len)

	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(s.recovery(), s.requestLogger(), s.observe())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api")
	if s.limiter != nil {
		api.Use(s.rateLimit())
	}

	api.POST("/checklists", s.handleGenerate)
	api.POST("/compare", s.handleCompare)

	sessions := api.Group("/sessions")
	sessions.POST("", s.handleCreate)
	sessions.GET("", s.handleList)
	sessions.GET("/:id", s.handleGet)
	sessions.DELETE("/:id", s.handleDelete)
	sessions.POST("/:id/found", s.handleFound)
	sessions.POST("/:id/doubles", s.handleAddDoubles)
	sessions.DELETE("/:id/doubles", s.handleRemoveDoubles)
	sessions.POST("/:id/doubles/remove", s.handleRemoveDoubles)
	sessions.DELETE("/:id/missing/:item", s.handleRemoveMissing)
	sessions.PUT("/:id/text", s.handleReconcile)
	sessions.DELETE("/:id/conflicts", s.handleDismiss)

	return r
}

// Handler 返回服务的HTTP处理器
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务直到ctx被取消，然后在配置的时间内优雅关闭
// 运行期间定期清理空闲会话和限流状态
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		s.sweep(gctx)
		return nil
	})

	return g.Wait()
}

func (s *Server) sweep(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Sessions.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ttl := s.cfg.Sessions.IdleTTL; ttl > 0 {
				if n := s.svc.Evict(ttl); n > 0 {
					s.logger.Info("evicted idle sessions", zap.Int("count", n))
				}
			}
			if s.limiter != nil {
				s.limiter.Sweep(limiterIdle)
			}
		}
	}
}
