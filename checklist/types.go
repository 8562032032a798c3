package checklist

import "slices"

// Item 收藏中一件物品（例如一张卡片）的编号
type Item int

// Lists 表示一对清单：缺少的物品和重复的物品
type Lists struct {
	// 缺少的物品，语义上是集合
	Missing []Item `json:"missing"`
	// 重复的物品，允许重复出现，按升序存放
	Doubles []Item `json:"doubles"`
}

// Clone 返回一个与原清单不共享底层数组的副本
func (l Lists) Clone() Lists {
	return Lists{
		Missing: cloneItems(l.Missing),
		Doubles: cloneItems(l.Doubles),
	}
}

// IsEmpty 两个清单都为空时返回true
func (l Lists) IsEmpty() bool {
	return len(l.Missing) == 0 && len(l.Doubles) == 0
}

// Equal 比较两对清单的内容和顺序
func (l Lists) Equal(other Lists) bool {
	return slices.Equal(l.Missing, other.Missing) && slices.Equal(l.Doubles, other.Doubles)
}

func cloneItems(items []Item) []Item {
	result := make([]Item, len(items))
	copy(result, items)
	return result
}
