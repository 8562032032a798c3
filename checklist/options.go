package checklist

import "time"

// Options 定义清单存储的配置选项
type Options struct {
	// 时间来源，用于生成"最后修改"时间戳
	Clock func() time.Time

	// 事件监听器列表
	Listeners []Listener
}

// Option 函数类型用于设置存储选项
type Option func(*Options)

// DefaultOptions 返回默认的存储选项
func DefaultOptions() *Options {
	return &Options{
		Clock:     time.Now,
		Listeners: nil,
	}
}

// WithClock 设置时间来源
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// WithLocation 让时间戳使用指定时区
func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		if loc == nil {
			return
		}
		clock := o.Clock
		o.Clock = func() time.Time {
			return clock().In(loc)
		}
	}
}

// WithListener 添加事件监听器
func WithListener(listener Listener) Option {
	return func(o *Options) {
		if listener != nil {
			o.Listeners = append(o.Listeners, listener)
		}
	}
}
