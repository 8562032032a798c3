package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher_DeliversLatestText(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "lista.txt")
	require.NoError(t, os.WriteFile(path, []byte("Carte mancanti:\n1"), 0o644))

	var mu sync.Mutex
	var received []string
	w := New(path, func(text string) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, text)
	}, WithDebounce(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	const updated = "Carte mancanti:\n1 -- 2"
	require.Eventually(t, func() bool {
		// 监视器可能尚未开始，重复写入直到收到通知
		_ = os.WriteFile(path, []byte(updated), 0o644)
		mu.Lock()
		defer mu.Unlock()
		return len(received) > 0
	}, 5*time.Second, 50*time.Millisecond)

	// 同一目录下的其他文件不触发
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	for _, text := range received {
		assert.Equal(t, updated, text)
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope", "lista.txt"), func(string) {})

	err := w.Run(context.Background())
	assert.Error(t, err)
}
