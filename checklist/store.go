package checklist

import (
	"fmt"
	"strings"

	"github.com/fyerfyer/cardswap/set"
)

// snapshot 一对清单的可变表示
type snapshot struct {
	missing *set.Multiset[Item]
	doubles *set.Multiset[Item]
}

func newSnapshot(lists Lists) snapshot {
	return snapshot{
		missing: set.NewMultiset(lists.Missing...),
		doubles: set.NewMultiset(lists.Doubles...),
	}
}

func (s snapshot) lists() Lists {
	return Lists{
		Missing: s.missing.ToSlice(),
		Doubles: s.doubles.ToSlice(),
	}
}

// Store 单个用户的清单状态
//
// original 在 Load 之后不再改变，作为差异比较的基准；
// current 是所有操作作用的实时状态；
// conflicts 只保存最近一次操作的冲突。
//
// Store 不是并发安全的，同一时间只能由一个调用方使用。
type Store struct {
	original  snapshot
	current   snapshot
	conflicts Conflicts
	opts      *Options
}

// NewStore 创建一个空的清单存储
func NewStore(options ...Option) *Store {
	opts := DefaultOptions()
	for _, option := range options {
		option(opts)
	}

	return &Store{
		original: newSnapshot(Lists{}),
		current:  newSnapshot(Lists{}),
		opts:     opts,
	}
}

// Load 用给定清单替换原始快照和当前状态，并清除冲突
func (s *Store) Load(lists Lists) {
	s.original = newSnapshot(lists)
	s.current = newSnapshot(lists)
	s.conflicts = Conflicts{}
	s.emit(OpLoad)
}

// LoadText 解析粘贴的文本并加载，空白文本不会改变任何状态
func (s *Store) LoadText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: nothing to load", ErrEmptyInput)
	}
	s.Load(Parse(text))
	return nil
}

// RemoveMissing 将编号从缺少清单中移除（物品已找到）
func (s *Store) RemoveMissing(item Item) {
	s.conflicts = Conflicts{}
	s.removeMissing(item)
	s.emit(OpRemoveMissing)
}

// ApplyFoundBatch 依次移除每个已找到的编号，未找到的编号汇总为一次冲突
func (s *Store) ApplyFoundBatch(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items found", ErrEmptyInput)
	}

	s.conflicts = Conflicts{}
	for _, item := range items {
		s.removeMissing(item)
	}
	s.emit(OpFoundBatch)
	return nil
}

func (s *Store) removeMissing(item Item) {
	if !s.current.missing.RemoveFirst(item) {
		s.conflicts.record(ConflictMissingRemoval, item)
	}
}

// AddDoubles 按输入顺序将编号插入重复清单
// 仍在缺少清单中的编号被拒绝并记录为冲突
func (s *Store) AddDoubles(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no doubles to add", ErrEmptyInput)
	}

	s.conflicts = Conflicts{}
	for _, item := range items {
		if !acceptsDouble(s.current.missing, item) {
			s.conflicts.record(ConflictDoubleInsertion, item)
			continue
		}
		s.current.doubles.Insert(item)
	}
	s.emit(OpAddDoubles)
	return nil
}

// RemoveDoubles 从重复清单中移除每个编号的第一次出现
func (s *Store) RemoveDoubles(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no doubles to remove", ErrEmptyInput)
	}

	s.conflicts = Conflicts{}
	for _, item := range items {
		if !s.current.doubles.RemoveFirst(item) {
			s.conflicts.record(ConflictDoubleRemoval, item)
		}
	}
	s.emit(OpRemoveDoubles)
	return nil
}

// ReconcileText 从手工编辑后的文本重建当前状态，原始快照保持不变
// 手工编辑被视为可信输入，之前的冲突一律清除
func (s *Store) ReconcileText(text string) {
	s.current = newSnapshot(Parse(text))
	s.conflicts = Conflicts{}
	s.emit(OpReconcile)
}

// DismissConflicts 清除冲突记录
func (s *Store) DismissConflicts() {
	s.conflicts = Conflicts{}
	s.emit(OpDismiss)
}

// Original 返回原始快照的副本
func (s *Store) Original() Lists {
	return s.original.lists()
}

// Current 返回当前状态的副本
func (s *Store) Current() Lists {
	return s.current.lists()
}

// Conflicts 返回最近一次操作的冲突
func (s *Store) Conflicts() Conflicts {
	return s.conflicts.Clone()
}

// Preview 渲染当前状态相对原始快照的差异
func (s *Store) Preview() Preview {
	return Render(s.original.lists(), s.current.lists(), s.timestamp())
}

// Text 将当前状态序列化为标准文本
func (s *Store) Text() string {
	return Serialize(s.current.lists(), s.timestamp())
}

func (s *Store) timestamp() string {
	return FormatTimestamp(s.opts.Clock())
}

// emit 通知所有监听器，没有监听器时不渲染
func (s *Store) emit(op Operation) {
	if len(s.opts.Listeners) == 0 {
		return
	}

	evt := Event{
		Op:        op,
		Preview:   s.Preview(),
		Conflicts: s.Conflicts(),
	}
	for _, listener := range s.opts.Listeners {
		listener(evt)
	}
}
