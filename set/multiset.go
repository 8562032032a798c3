package set

import (
	"cmp"
	"slices"
)

// Multiset 有序多重集合，允许重复元素
// 元素顺序即存放顺序：构造时保留传入顺序，Insert 按升序规则插入
type Multiset[T cmp.Ordered] struct {
	elements []T
}

// NewMultiset 创建一个新的多重集合，保留元素的原始顺序
func NewMultiset[T cmp.Ordered](items ...T) *Multiset[T] {
	elements := make([]T, len(items))
	copy(elements, items)
	return &Multiset[T]{
		elements: elements,
	}
}

// Insert 将元素插入到第一个严格大于它的元素之前，没有则追加到末尾
// 相等元素之间保持先来后到的顺序，返回插入位置
func (m *Multiset[T]) Insert(item T) int {
	pos := slices.IndexFunc(m.elements, func(e T) bool {
		return cmp.Less(item, e)
	})
	if pos < 0 {
		m.elements = append(m.elements, item)
		return len(m.elements) - 1
	}
	m.elements = slices.Insert(m.elements, pos, item)
	return pos
}

// RemoveFirst 删除元素的第一次出现，元素不存在时返回false
func (m *Multiset[T]) RemoveFirst(item T) bool {
	pos := slices.Index(m.elements, item)
	if pos < 0 {
		return false
	}
	m.elements = slices.Delete(m.elements, pos, pos+1)
	return true
}

// Contains 检查元素是否至少出现一次
func (m *Multiset[T]) Contains(item T) bool {
	return slices.Contains(m.elements, item)
}

// Count 返回元素出现的次数
func (m *Multiset[T]) Count(item T) int {
	n := 0
	for _, e := range m.elements {
		if e == item {
			n++
		}
	}
	return n
}

// Counts 返回每个元素出现次数的统计
func (m *Multiset[T]) Counts() map[T]int {
	counts := make(map[T]int, len(m.elements))
	for _, e := range m.elements {
		counts[e]++
	}
	return counts
}

// Len 返回元素总数（重复元素分别计数）
func (m *Multiset[T]) Len() int {
	return len(m.elements)
}

// IsSorted 检查元素是否为非递减顺序
func (m *Multiset[T]) IsSorted() bool {
	return slices.IsSorted(m.elements)
}

// ToSlice 按存放顺序返回元素副本
func (m *Multiset[T]) ToSlice() []T {
	result := make([]T, len(m.elements))
	copy(result, m.elements)
	return result
}

// Clone 返回一个独立的副本
func (m *Multiset[T]) Clone() *Multiset[T] {
	return NewMultiset(m.elements...)
}

// Distinct 丢弃重复次数，返回由不同元素组成的有序集合
func (m *Multiset[T]) Distinct() *SortedSet[T] {
	return NewSorted(m.elements...)
}
