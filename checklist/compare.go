package checklist

import (
	"fmt"
	"strings"

	"github.com/fyerfyer/cardswap/set"
)

// Comparison 两份重复清单的比较结果
type Comparison struct {
	// A 拥有而 B 没有的编号
	OnlyInA []Item `json:"onlyInA"`
	// B 拥有而 A 没有的编号
	OnlyInB []Item `json:"onlyInB"`
}

// Compare 比较两份重复清单，忽略重复次数
// 只回答"你是否至少有一张我没有的X"，结果均按升序排列
func Compare(a, b []Item) (onlyInA, onlyInB []Item) {
	setA := set.NewMultiset(a...).Distinct()
	setB := set.NewMultiset(b...).Distinct()

	return setA.Difference(setB).ToSlice(), setB.Difference(setA).ToSlice()
}

// CompareText 解析两段清单文本并比较它们的重复清单
// 任一文本为空白时不做比较，返回ErrEmptyInput
func CompareText(textA, textB string) (Comparison, error) {
	if strings.TrimSpace(textA) == "" || strings.TrimSpace(textB) == "" {
		return Comparison{}, fmt.Errorf("%w: both lists are required for a comparison", ErrEmptyInput)
	}

	onlyInA, onlyInB := Compare(Parse(textA).Doubles, Parse(textB).Doubles)
	return Comparison{
		OnlyInA: onlyInA,
		OnlyInB: onlyInB,
	}, nil
}
