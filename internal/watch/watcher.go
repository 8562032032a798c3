package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler 接收文件变化后的完整文本
type Handler func(text string)

// Watcher 监视单个清单文件，文件内容稳定后把最新文本交给Handler
// 监视的是文件所在目录，编辑器用重命名方式保存时也能收到变化
type Watcher struct {
	path     string
	handler  Handler
	debounce time.Duration
	logger   *zap.Logger
}

// Option 监视器配置选项
type Option func(*Watcher)

// WithDebounce 设置合并连续变化的时间窗口
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New 创建监视path的Watcher
func New(path string, handler Handler, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		handler:  handler,
		debounce: 100 * time.Millisecond,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run 开始监视，直到ctx被取消
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching checklist file", zap.String("path", w.path))

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-timerC:
			timer = nil
			timerC = nil
			w.flush()
		}
	}
}

func (w *Watcher) flush() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("failed to read checklist file", zap.String("path", w.path), zap.Error(err))
		return
	}
	if w.handler != nil {
		w.handler(string(data))
	}
}
