package workpool

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// WorkPoolOption 是用于配置工作池的函数选项
type WorkPoolOption func(*WorkPoolConfig)

// WorkPoolConfig 包含工作池的所有配置选项
type WorkPoolConfig struct {
	// 工作协程数量
	workers int

	// 等待执行的任务数量上限，队列满时Submit阻塞
	queueCapacity int

	// 单个任务的默认超时，0表示不限制
	defaultTaskTimeout time.Duration

	logger *zap.Logger
}

// DefaultConfig 返回工作池的默认配置
func DefaultConfig() WorkPoolConfig {
	return WorkPoolConfig{
		workers:            runtime.NumCPU(),
		queueCapacity:      64,
		defaultTaskTimeout: 0,
		logger:             zap.NewNop(),
	}
}

// WithFixedPoolSize 设置工作协程数量
func WithFixedPoolSize(size int) WorkPoolOption {
	return func(c *WorkPoolConfig) {
		if size > 0 {
			c.workers = size
		}
	}
}

// WithQueueCapacity 设置任务队列容量
func WithQueueCapacity(capacity int) WorkPoolOption {
	return func(c *WorkPoolConfig) {
		if capacity >= 0 {
			c.queueCapacity = capacity
		}
	}
}

// WithDefaultTaskTimeout 设置任务默认超时时间
func WithDefaultTaskTimeout(timeout time.Duration) WorkPoolOption {
	return func(c *WorkPoolConfig) {
		c.defaultTaskTimeout = timeout
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) WorkPoolOption {
	return func(c *WorkPoolConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
