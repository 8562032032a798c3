package workpool

import (
	"context"
	"errors"
	"sync"
	"time"
)

// TaskStatus 表示任务的状态
type TaskStatus int

const (
	// TaskStatusPending 等待执行
	TaskStatusPending TaskStatus = iota
	// TaskStatusRunning 执行中
	TaskStatusRunning
	// TaskStatusCompleted 已完成
	TaskStatusCompleted
	// TaskStatusFailed 执行失败
	TaskStatusFailed
	// TaskStatusCanceled 已取消
	TaskStatusCanceled
)

// String 返回任务状态的字符串表示
func (s TaskStatus) String() string {
	switch s {
	case TaskStatusPending:
		return "Pending"
	case TaskStatusRunning:
		return "Running"
	case TaskStatusCompleted:
		return "Completed"
	case TaskStatusFailed:
		return "Failed"
	case TaskStatusCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// TaskFunc 工作池执行的任务
type TaskFunc func(ctx context.Context) (any, error)

// TaskHandle 表示已提交到工作池的任务，可用于检查状态和获取结果
type TaskHandle struct {
	id     string
	task   TaskFunc
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	status TaskStatus
	result any
	err    error
	done   chan struct{}
}

func newTaskHandle(ctx context.Context, id string, task TaskFunc, timeout time.Duration) *TaskHandle {
	var (
		taskCtx context.Context
		cancel  context.CancelFunc
	)
	if timeout > 0 {
		taskCtx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		taskCtx, cancel = context.WithCancel(ctx)
	}

	return &TaskHandle{
		id:     id,
		task:   task,
		ctx:    taskCtx,
		cancel: cancel,
		status: TaskStatusPending,
		done:   make(chan struct{}),
	}
}

// ID 返回任务的唯一标识符
func (h *TaskHandle) ID() string {
	return h.id
}

// Status 返回任务的当前状态
func (h *TaskHandle) Status() TaskStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Result 返回任务的结果，任务尚未完成时阻塞
func (h *TaskHandle) Result() (any, error) {
	<-h.done
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.result, h.err
}

// Wait 等待任务完成或ctx结束
func (h *TaskHandle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run 执行任务并记录结果
func (h *TaskHandle) run() TaskStatus {
	h.mu.Lock()
	h.status = TaskStatusRunning
	h.mu.Unlock()

	var (
		result any
		err    error
	)
	if ctxErr := h.ctx.Err(); ctxErr != nil {
		// 排队期间已被取消
		err = ctxErr
	} else {
		result, err = h.task(h.ctx)
	}
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.result = result
	h.err = err
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.status = TaskStatusCanceled
	case err != nil:
		h.status = TaskStatusFailed
	default:
		h.status = TaskStatusCompleted
	}
	close(h.done)
	return h.status
}
