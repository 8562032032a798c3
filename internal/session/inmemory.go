package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/google/uuid"
)

var _ Service = (*InMemoryService)(nil)

// InMemoryService 实现了Service接口的内存存储版本
// 清单存储本身不是并发安全的，所有对存储的访问都在服务锁内完成
type InMemoryService struct {
	// 会话ID到会话的映射
	sessions map[string]*entry
	// 保护映射和存储的互斥锁
	mu sync.RWMutex
	// 服务是否已关闭
	closed bool

	storeOpts []checklist.Option
	now       func() time.Time
}

// entry 包含清单存储及其元数据
type entry struct {
	store     *checklist.Store
	createdAt time.Time
	updatedAt time.Time
}

// Option 内存服务的配置选项
type Option func(*InMemoryService)

// WithStoreOptions 设置新建清单存储时使用的选项
func WithStoreOptions(opts ...checklist.Option) Option {
	return func(s *InMemoryService) {
		s.storeOpts = append(s.storeOpts, opts...)
	}
}

// WithClock 设置记录会话时间使用的时间来源
func WithClock(now func() time.Time) Option {
	return func(s *InMemoryService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewInMemoryService 创建一个新的内存会话服务
func NewInMemoryService(opts ...Option) *InMemoryService {
	s := &InMemoryService{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create 从粘贴的文本创建一个新会话
func (s *InMemoryService) Create(text string) (View, error) {
	store := checklist.NewStore(s.storeOpts...)
	if err := store.LoadText(text); err != nil {
		return View{}, err
	}
	return s.add(store)
}

// Generate 创建一个新生成的清单会话
func (s *InMemoryService) Generate(count int) (View, error) {
	lists, err := checklist.Generate(count)
	if err != nil {
		return View{}, err
	}

	store := checklist.NewStore(s.storeOpts...)
	store.Load(lists)
	return s.add(store)
}

func (s *InMemoryService) add(store *checklist.Store) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return View{}, ErrServiceClosed
	}

	now := s.now()
	id := uuid.NewString()
	e := &entry{
		store:     store,
		createdAt: now,
		updatedAt: now,
	}
	s.sessions[id] = e

	return e.view(id), nil
}

// lookup 在持有锁的情况下查找会话
func (s *InMemoryService) lookup(id string) (*entry, error) {
	if s.closed {
		return nil, ErrServiceClosed
	}
	e, exists := s.sessions[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return e, nil
}

// Get 获取会话的当前视图
func (s *InMemoryService) Get(id string) (View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.lookup(id)
	if err != nil {
		return View{}, err
	}
	return e.view(id), nil
}

// List 按创建时间列出所有会话
func (s *InMemoryService) List() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Info, 0, len(s.sessions))
	for id, e := range s.sessions {
		result = append(result, e.info(id))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// Apply 在会话的清单存储上执行一次操作
// fn 返回错误时会话的更新时间不变，错误原样返回
func (s *InMemoryService) Apply(id string, fn func(*checklist.Store) error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(id)
	if err != nil {
		return View{}, err
	}

	if err := fn(e.store); err != nil {
		return View{}, err
	}
	e.updatedAt = s.now()

	return e.view(id), nil
}

// Export 导出会话的原始快照和当前状态
func (s *InMemoryService) Export(id string) (Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.lookup(id)
	if err != nil {
		return Data{}, err
	}

	return Data{
		Info:     e.info(id),
		Original: e.store.Original(),
		Current:  e.store.Current(),
	}, nil
}

// Delete 删除会话
func (s *InMemoryService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// Evict 删除空闲超过idle的会话
func (s *InMemoryService) Evict(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	evicted := 0
	for id, e := range s.sessions {
		if e.updatedAt.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len 返回会话数量
func (s *InMemoryService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close 关闭服务并丢弃所有会话
func (s *InMemoryService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.sessions = make(map[string]*entry)
	return nil
}

func (e *entry) info(id string) Info {
	current := e.store.Current()
	return Info{
		ID:        id,
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
		Missing:   len(current.Missing),
		Doubles:   len(current.Doubles),
	}
}

func (e *entry) view(id string) View {
	conflicts := e.store.Conflicts()
	return View{
		Info:      e.info(id),
		Preview:   e.store.Preview(),
		Text:      e.store.Text(),
		Conflicts: conflicts,
		Messages:  conflicts.Messages(),
	}
}
