package session

import (
	"sync"
	"testing"
	"time"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Carte mancanti:\n1 -- 2 -- 3\n\nCarte doppie:\n5\n\nUltima modifica: 18/10/2026, 10:00:00"

// fakeClock 可手动推进的时间来源
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*InMemoryService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)}
	svc := NewInMemoryService(
		WithClock(clock.Now),
		WithStoreOptions(checklist.WithClock(clock.Now)),
	)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, clock
}

func TestInMemoryService_CreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.Create(sampleText)
	require.NoError(t, err)
	require.NotEmpty(t, view.ID)
	assert.Equal(t, 3, view.Missing)
	assert.Equal(t, 1, view.Doubles)
	assert.Equal(t, "18/10/2026, 12:00:00", view.Preview.Timestamp)

	got, err := svc.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Text, got.Text)
}

func TestInMemoryService_CreateRejectsBlank(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create("   ")
	assert.ErrorIs(t, err, checklist.ErrEmptyInput)
	assert.Equal(t, 0, svc.Len())
}

func TestInMemoryService_Generate(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.Generate(4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Missing)
	assert.Contains(t, view.Text, "1 -- 2 -- 3 -- 4")

	_, err = svc.Generate(-1)
	assert.ErrorIs(t, err, checklist.ErrInvalidCount)
}

func TestInMemoryService_ApplyReportsConflicts(t *testing.T) {
	svc, clock := newTestService(t)
	view, err := svc.Create(sampleText)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	updated, err := svc.Apply(view.ID, func(s *checklist.Store) error {
		return s.ApplyFoundBatch([]checklist.Item{2, 9})
	})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Missing)
	assert.Equal(t, []checklist.Item{9}, updated.Conflicts.MissingRemoval)
	assert.Contains(t, updated.Messages, checklist.ConflictMissingRemoval)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestInMemoryService_ApplyError(t *testing.T) {
	svc, clock := newTestService(t)
	view, err := svc.Create(sampleText)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = svc.Apply(view.ID, func(s *checklist.Store) error {
		return s.AddDoubles(nil)
	})
	assert.ErrorIs(t, err, checklist.ErrEmptyInput)

	got, err := svc.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt, "failed operations do not count as activity")
}

func TestInMemoryService_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Apply("missing", func(*checklist.Store) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.Delete("missing"), ErrSessionNotFound)
}

func TestInMemoryService_ListAndDelete(t *testing.T) {
	svc, clock := newTestService(t)

	first, err := svc.Create(sampleText)
	require.NoError(t, err)
	clock.Advance(time.Second)
	second, err := svc.Generate(2)
	require.NoError(t, err)

	infos := svc.List()
	require.Len(t, infos, 2)
	assert.Equal(t, first.ID, infos[0].ID)
	assert.Equal(t, second.ID, infos[1].ID)

	require.NoError(t, svc.Delete(first.ID))
	assert.Equal(t, 1, svc.Len())
}

func TestInMemoryService_Export(t *testing.T) {
	svc, _ := newTestService(t)
	view, err := svc.Create(sampleText)
	require.NoError(t, err)

	_, err = svc.Apply(view.ID, func(s *checklist.Store) error {
		s.RemoveMissing(1)
		return nil
	})
	require.NoError(t, err)

	data, err := svc.Export(view.ID)
	require.NoError(t, err)
	assert.Equal(t, []checklist.Item{1, 2, 3}, data.Original.Missing)
	assert.Equal(t, []checklist.Item{2, 3}, data.Current.Missing)
}

func TestInMemoryService_Evict(t *testing.T) {
	svc, clock := newTestService(t)

	stale, err := svc.Create(sampleText)
	require.NoError(t, err)
	clock.Advance(time.Hour)
	fresh, err := svc.Create(sampleText)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Evict(30*time.Minute))

	_, err = svc.Get(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestInMemoryService_Close(t *testing.T) {
	svc, _ := newTestService(t)
	view, err := svc.Create(sampleText)
	require.NoError(t, err)

	require.NoError(t, svc.Close())

	_, err = svc.Get(view.ID)
	assert.ErrorIs(t, err, ErrServiceClosed)
	_, err = svc.Create(sampleText)
	assert.ErrorIs(t, err, ErrServiceClosed)
}

func TestInMemoryService_ConcurrentApply(t *testing.T) {
	svc, _ := newTestService(t)
	view, err := svc.Generate(1)
	require.NoError(t, err)
	_, err = svc.Apply(view.ID, func(s *checklist.Store) error {
		s.RemoveMissing(1)
		return nil
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Apply(view.ID, func(s *checklist.Store) error {
				return s.AddDoubles([]checklist.Item{7})
			})
			_, _ = svc.Get(view.ID)
		}()
	}
	wg.Wait()

	got, err := svc.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Doubles)
}

func TestFormatInfo(t *testing.T) {
	info := Info{
		ID:        "abc",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		UpdatedAt: time.Now().Add(-3 * time.Minute),
		Missing:   1234,
		Doubles:   5,
	}

	out := FormatInfo(info)
	assert.Contains(t, out, "Session: abc")
	assert.Contains(t, out, "Missing: 1,234")
	assert.Contains(t, out, "Created: 2 hours ago")
	assert.Contains(t, out, "Last change: 3 minutes ago")
}
