package checklist

import "github.com/fyerfyer/cardswap/set"

// Trade 两位收藏者之间可以交换的编号
type Trade struct {
	// 对方的重复中我缺少的编号
	Receive []Item `json:"receive"`
	// 我的重复中对方缺少的编号
	Give []Item `json:"give"`
}

// Swaps 双方都能得到的交换次数
func (t Trade) Swaps() int {
	return min(len(t.Receive), len(t.Give))
}

// TradeWith 计算mine与theirs之间可能的交换，结果均按升序排列且不含重复
func TradeWith(mine, theirs Lists) Trade {
	myMissing := set.NewSorted(mine.Missing...)
	myDoubles := set.NewSorted(mine.Doubles...)

	return Trade{
		Receive: set.NewSorted(theirs.Doubles...).Intersection(myMissing).ToSlice(),
		Give:    myDoubles.Intersection(set.NewSorted(theirs.Missing...)).ToSlice(),
	}
}
