package set

import (
	"cmp"
	"slices"
)

// SortedSet 有序集合实现，元素始终按升序存放在切片中
type SortedSet[T cmp.Ordered] struct {
	elements []T
}

// NewSorted 创建一个新的有序集合，重复元素会被忽略
func NewSorted[T cmp.Ordered](items ...T) *SortedSet[T] {
	s := &SortedSet[T]{
		elements: make([]T, 0, len(items)),
	}
	s.AddAll(items...)
	return s
}

// Add 添加元素到集合中并保持排序
func (s *SortedSet[T]) Add(item T) bool {
	// 使用二分查找找到插入位置
	pos, found := slices.BinarySearch(s.elements, item)
	if found {
		return false
	}
	s.elements = slices.Insert(s.elements, pos, item)
	return true
}

// Remove 从集合中删除元素
func (s *SortedSet[T]) Remove(item T) bool {
	pos, found := slices.BinarySearch(s.elements, item)
	if !found {
		return false
	}
	s.elements = slices.Delete(s.elements, pos, pos+1)
	return true
}

// Contains 检查元素是否在集合中
func (s *SortedSet[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(s.elements, item)
	return found
}

// AddAll 批量添加元素，返回成功添加的元素数量
func (s *SortedSet[T]) AddAll(items ...T) int {
	if len(items) == 0 {
		return 0
	}

	before := len(s.elements)

	// 追加后统一排序去重，比逐个插入少移动元素
	s.elements = append(s.elements, items...)
	slices.Sort(s.elements)
	s.elements = slices.Compact(s.elements)

	return len(s.elements) - before
}

// RemoveAll 批量删除元素，返回成功删除的元素数量
func (s *SortedSet[T]) RemoveAll(items ...T) int {
	removed := 0
	for _, item := range items {
		if s.Remove(item) {
			removed++
		}
	}
	return removed
}

// Size 返回集合中的元素数量
func (s *SortedSet[T]) Size() int {
	return len(s.elements)
}

// Clear 清空集合
func (s *SortedSet[T]) Clear() {
	s.elements = s.elements[:0]
}

// IsEmpty 检查集合是否为空
func (s *SortedSet[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// ToSlice 返回升序切片的副本
func (s *SortedSet[T]) ToSlice() []T {
	result := make([]T, len(s.elements))
	copy(result, s.elements)
	return result
}

// Union 返回与另一个集合的并集
func (s *SortedSet[T]) Union(other Set[T]) Set[T] {
	result := NewSorted(s.elements...)
	other.ForEach(func(item T) bool {
		result.Add(item)
		return true
	})
	return result
}

// Intersection 返回与另一个集合的交集
func (s *SortedSet[T]) Intersection(other Set[T]) Set[T] {
	return s.filter(other.Contains)
}

// Difference 返回与另一个集合的差集 (s - other)
func (s *SortedSet[T]) Difference(other Set[T]) Set[T] {
	return s.filter(func(item T) bool {
		return !other.Contains(item)
	})
}

// SymmetricDifference 返回与另一个集合的对称差集
func (s *SortedSet[T]) SymmetricDifference(other Set[T]) Set[T] {
	// 对称差集 = (A - B) ∪ (B - A)
	return s.Difference(other).Union(other.Difference(s))
}

// IsSubset 检查当前集合是否是另一个集合的子集
func (s *SortedSet[T]) IsSubset(other Set[T]) bool {
	if s.Size() > other.Size() {
		return false
	}
	for _, item := range s.elements {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// ForEach 按升序遍历集合中的所有元素
func (s *SortedSet[T]) ForEach(f func(T) bool) {
	for _, item := range s.elements {
		if !f(item) {
			break
		}
	}
}

// filter 返回满足条件的元素组成的新集合，元素已有序无需重新排序
func (s *SortedSet[T]) filter(keep func(T) bool) *SortedSet[T] {
	result := &SortedSet[T]{
		elements: make([]T, 0, len(s.elements)),
	}
	for _, item := range s.elements {
		if keep(item) {
			result.elements = append(result.elements, item)
		}
	}
	return result
}
