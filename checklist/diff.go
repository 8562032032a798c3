package checklist

import "github.com/fyerfyer/cardswap/set"

// ListKind 标识元素属于哪个清单
type ListKind string

const (
	ListMissing ListKind = "missing"
	ListDoubles ListKind = "double"
)

// Status 元素相对原始快照的状态
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusRemoved   Status = "removed"
	StatusAdded     Status = "added"
)

// Element 预览中的一个元素
type Element struct {
	List   ListKind `json:"list"`
	Value  Item     `json:"value"`
	Status Status   `json:"status"`
}

// Preview 带差异标记的清单预览，由展示层负责渲染
type Preview struct {
	Elements  []Element `json:"elements"`
	Timestamp string    `json:"timestamp"`
}

// Summary 统计各状态的元素数量
type Summary struct {
	Unchanged int `json:"unchanged"`
	Removed   int `json:"removed"`
	Added     int `json:"added"`
}

// Render 将当前清单与原始快照比较，生成带标记的预览
// 原始快照中的元素在前，只存在于当前清单中的元素追加在后
func Render(original, current Lists, timestamp string) Preview {
	elements := make([]Element, 0, len(original.Missing)+len(original.Doubles)+len(current.Doubles))
	elements = append(elements, diffMissing(original.Missing, current.Missing)...)
	elements = append(elements, diffDoubles(original.Doubles, current.Doubles)...)

	return Preview{
		Elements:  elements,
		Timestamp: timestamp,
	}
}

// diffMissing 缺少清单没有重复元素，只做存在性判断
func diffMissing(original, current []Item) []Element {
	inCurrent := make(map[Item]struct{}, len(current))
	for _, item := range current {
		inCurrent[item] = struct{}{}
	}
	inOriginal := make(map[Item]struct{}, len(original))
	for _, item := range original {
		inOriginal[item] = struct{}{}
	}

	elements := make([]Element, 0, len(original))
	for _, item := range original {
		status := StatusUnchanged
		if _, ok := inCurrent[item]; !ok {
			status = StatusRemoved
		}
		elements = append(elements, Element{List: ListMissing, Value: item, Status: status})
	}
	for _, item := range current {
		if _, ok := inOriginal[item]; !ok {
			elements = append(elements, Element{List: ListMissing, Value: item, Status: StatusAdded})
		}
	}
	return elements
}

// diffDoubles 按出现次数对账：原始快照中值v的第k次出现，
// 只有当前清单中v剩余不足k次时才标记为removed；
// 当前清单中超出原始次数的部分按数值升序追加，标记为added
func diffDoubles(original, current []Item) []Element {
	currentSet := set.NewMultiset(current...)
	currentCounts := currentSet.Counts()
	originalCounts := set.NewMultiset(original...).Counts()

	elements := make([]Element, 0, len(original))
	seen := make(map[Item]int, len(originalCounts))
	for _, item := range original {
		seen[item]++
		status := StatusUnchanged
		if seen[item] > currentCounts[item] {
			status = StatusRemoved
		}
		elements = append(elements, Element{List: ListDoubles, Value: item, Status: status})
	}

	currentSet.Distinct().ForEach(func(item Item) bool {
		for i := 0; i < currentCounts[item]-originalCounts[item]; i++ {
			elements = append(elements, Element{List: ListDoubles, Value: item, Status: StatusAdded})
		}
		return true
	})
	return elements
}

// Missing 返回缺少清单的元素
func (p Preview) Missing() []Element {
	return p.filter(ListMissing)
}

// Doubles 返回重复清单的元素
func (p Preview) Doubles() []Element {
	return p.filter(ListDoubles)
}

// Summary 统计预览中各状态的数量
func (p Preview) Summary() Summary {
	var s Summary
	for _, e := range p.Elements {
		switch e.Status {
		case StatusUnchanged:
			s.Unchanged++
		case StatusRemoved:
			s.Removed++
		case StatusAdded:
			s.Added++
		}
	}
	return s
}

func (p Preview) filter(kind ListKind) []Element {
	result := make([]Element, 0, len(p.Elements))
	for _, e := range p.Elements {
		if e.List == kind {
			result = append(result, e)
		}
	}
	return result
}
