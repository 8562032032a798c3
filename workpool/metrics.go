package workpool

import (
	"sync/atomic"
	"time"
)

// Metrics 工作池的运行时指标快照
type Metrics struct {
	TotalTasks     uint64        // 总提交任务数
	CompletedTasks uint64        // 成功完成的任务数
	FailedTasks    uint64        // 返回错误的任务数
	CanceledTasks  uint64        // 因取消或超时结束的任务数
	AvgProcessTime time.Duration // 平均处理时间
}

// counters 由工作协程并发更新的计数器
type counters struct {
	submitted        atomic.Uint64
	completed        atomic.Uint64
	failed           atomic.Uint64
	canceled         atomic.Uint64
	totalProcessTime atomic.Int64
}

func (c *counters) taskFinished(status TaskStatus, processingTime time.Duration) {
	c.totalProcessTime.Add(int64(processingTime))
	switch status {
	case TaskStatusCompleted:
		c.completed.Add(1)
	case TaskStatusCanceled:
		c.canceled.Add(1)
	default:
		c.failed.Add(1)
	}
}

// snapshot 返回当前指标
func (c *counters) snapshot() Metrics {
	m := Metrics{
		TotalTasks:     c.submitted.Load(),
		CompletedTasks: c.completed.Load(),
		FailedTasks:    c.failed.Load(),
		CanceledTasks:  c.canceled.Load(),
	}
	if finished := m.CompletedTasks + m.FailedTasks + m.CanceledTasks; finished > 0 {
		m.AvgProcessTime = time.Duration(c.totalProcessTime.Load() / int64(finished))
	}
	return m
}

// TaskSuccessRate 返回成功完成的任务比例
func (m Metrics) TaskSuccessRate() float64 {
	finished := m.CompletedTasks + m.FailedTasks + m.CanceledTasks
	if finished == 0 {
		return 0
	}
	return float64(m.CompletedTasks) / float64(finished)
}
