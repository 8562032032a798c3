package workpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotRunning 工作池未启动或已关闭时提交任务返回
var ErrNotRunning = errors.New("work pool is not running")

// WorkPoolStatus 工作池的状态
type WorkPoolStatus int

const (
	// StatusIdle 空闲状态
	StatusIdle WorkPoolStatus = iota
	// StatusRunning 运行状态
	StatusRunning
	// StatusStopped 已停止
	StatusStopped
)

// String 返回工作池状态的字符串表示
func (s WorkPoolStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// WorkPool 管理固定数量的工作协程，处理提交的任务
type WorkPool struct {
	config WorkPoolConfig

	tasks chan *TaskHandle

	// status 和 tasks 的关闭由 statusLock 保护
	status     WorkPoolStatus
	statusLock sync.RWMutex

	workerWg sync.WaitGroup
	metrics  counters

	// 工作池上下文，用于关闭超时后取消所有任务
	ctx    context.Context
	cancel context.CancelFunc
}

// New 创建一个新的工作池
func New(options ...WorkPoolOption) *WorkPool {
	config := DefaultConfig()
	for _, option := range options {
		option(&config)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &WorkPool{
		config: config,
		tasks:  make(chan *TaskHandle, config.queueCapacity),
		status: StatusIdle,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start 启动工作池，开始处理任务
func (wp *WorkPool) Start() error {
	wp.statusLock.Lock()
	defer wp.statusLock.Unlock()

	switch wp.status {
	case StatusRunning:
		return errors.New("work pool already running")
	case StatusStopped:
		return errors.New("work pool is stopped")
	}

	wp.status = StatusRunning
	for i := 0; i < wp.config.workers; i++ {
		wp.workerWg.Add(1)
		go wp.runWorker()
	}

	wp.config.logger.Debug("work pool started", zap.Int("workers", wp.config.workers))
	return nil
}

// Submit 提交一个任务，队列已满时阻塞直到有空位或ctx结束
func (wp *WorkPool) Submit(ctx context.Context, task TaskFunc) (*TaskHandle, error) {
	wp.statusLock.RLock()
	defer wp.statusLock.RUnlock()

	if wp.status != StatusRunning {
		return nil, fmt.Errorf("%w: current status %s", ErrNotRunning, wp.status)
	}

	handle := newTaskHandle(wp.ctx, uuid.NewString(), task, wp.config.defaultTaskTimeout)
	select {
	case wp.tasks <- handle:
	case <-ctx.Done():
		handle.cancel()
		return nil, ctx.Err()
	}

	wp.metrics.submitted.Add(1)
	return handle, nil
}

// Shutdown 停止接收任务并等待已提交的任务完成
// ctx结束时取消所有未完成的任务并返回ctx的错误
func (wp *WorkPool) Shutdown(ctx context.Context) error {
	wp.statusLock.Lock()
	if wp.status != StatusRunning {
		wp.status = StatusStopped
		wp.statusLock.Unlock()
		wp.cancel()
		return nil
	}
	wp.status = StatusStopped
	close(wp.tasks)
	wp.statusLock.Unlock()

	doneCh := make(chan struct{})
	go func() {
		wp.workerWg.Wait()
		close(doneCh)
	}()

	select {
	case <-doneCh:
		wp.cancel()
		wp.config.logger.Debug("work pool shutdown complete")
		return nil
	case <-ctx.Done():
		wp.cancel()
		<-doneCh
		wp.config.logger.Warn("work pool shutdown deadline exceeded, remaining tasks canceled")
		return ctx.Err()
	}
}

// Status 返回工作池的当前状态
func (wp *WorkPool) Status() WorkPoolStatus {
	wp.statusLock.RLock()
	defer wp.statusLock.RUnlock()
	return wp.status
}

// GetMetrics 返回工作池的指标快照
func (wp *WorkPool) GetMetrics() Metrics {
	return wp.metrics.snapshot()
}

// WorkerCount 返回工作协程数量
func (wp *WorkPool) WorkerCount() int {
	return wp.config.workers
}

// runWorker 工作协程主循环，任务通道关闭后退出
func (wp *WorkPool) runWorker() {
	defer wp.workerWg.Done()

	for handle := range wp.tasks {
		start := time.Now()
		status := handle.run()
		elapsed := time.Since(start)

		wp.metrics.taskFinished(status, elapsed)
		if status != TaskStatusCompleted {
			wp.config.logger.Debug("task finished",
				zap.String("task", handle.id),
				zap.Stringer("status", status),
				zap.Duration("elapsed", elapsed),
				zap.Error(handle.err),
			)
		}
	}
}
