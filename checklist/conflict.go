package checklist

import (
	"strconv"
	"strings"

	"github.com/fyerfyer/cardswap/set"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ConflictKind 冲突的类别
type ConflictKind string

const (
	// ConflictMissingRemoval 要移除的编号不在缺少清单中
	ConflictMissingRemoval ConflictKind = "missing-removal"
	// ConflictDoubleInsertion 要加入重复清单的编号仍在缺少清单中
	ConflictDoubleInsertion ConflictKind = "double-insertion"
	// ConflictDoubleRemoval 要移除的编号不在重复清单中
	ConflictDoubleRemoval ConflictKind = "double-removal"
)

// ConflictKinds 按固定顺序列出所有冲突类别
var ConflictKinds = []ConflictKind{
	ConflictMissingRemoval,
	ConflictDoubleInsertion,
	ConflictDoubleRemoval,
}

// Conflicts 记录最近一次操作被拒绝的编号
// 仅用于提示用户，不影响清单状态
type Conflicts struct {
	MissingRemoval  []Item `json:"missingRemoval,omitempty"`
	DoubleInsertion []Item `json:"doubleInsertion,omitempty"`
	DoubleRemoval   []Item `json:"doubleRemoval,omitempty"`
}

// IsEmpty 没有任何冲突时返回true
func (c Conflicts) IsEmpty() bool {
	return len(c.MissingRemoval) == 0 && len(c.DoubleInsertion) == 0 && len(c.DoubleRemoval) == 0
}

// Items 返回指定类别的冲突编号
func (c Conflicts) Items(kind ConflictKind) []Item {
	switch kind {
	case ConflictMissingRemoval:
		return c.MissingRemoval
	case ConflictDoubleInsertion:
		return c.DoubleInsertion
	case ConflictDoubleRemoval:
		return c.DoubleRemoval
	default:
		return nil
	}
}

// Clone 返回不共享底层数组的副本
func (c Conflicts) Clone() Conflicts {
	var clone Conflicts
	for _, kind := range ConflictKinds {
		for _, item := range c.Items(kind) {
			clone.record(kind, item)
		}
	}
	return clone
}

func (c *Conflicts) record(kind ConflictKind, item Item) {
	switch kind {
	case ConflictMissingRemoval:
		c.MissingRemoval = append(c.MissingRemoval, item)
	case ConflictDoubleInsertion:
		c.DoubleInsertion = append(c.DoubleInsertion, item)
	case ConflictDoubleRemoval:
		c.DoubleRemoval = append(c.DoubleRemoval, item)
	}
}

// Messages 按类别返回给用户看的警告文本，没有冲突的类别不出现
func (c Conflicts) Messages() map[ConflictKind]string {
	p := message.NewPrinter(language.Italian)
	messages := make(map[ConflictKind]string)

	if items := c.MissingRemoval; len(items) > 0 {
		messages[ConflictMissingRemoval] = p.Sprintf("Carte non presenti tra le mancanti: %s", joinPrinted(items))
	}
	if items := c.DoubleInsertion; len(items) > 0 {
		messages[ConflictDoubleInsertion] = p.Sprintf("Carte ancora mancanti, non aggiunte alle doppie: %s", joinPrinted(items))
	}
	if items := c.DoubleRemoval; len(items) > 0 {
		messages[ConflictDoubleRemoval] = p.Sprintf("Carte non presenti tra le doppie: %s", joinPrinted(items))
	}

	return messages
}

// joinPrinted 编号是标识而不是数量，不做千位分组，保证提示中的编号可以被重新解析
func joinPrinted(items []Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.Itoa(int(item))
	}
	return strings.Join(parts, ", ")
}

// acceptsDouble 重复清单插入规则：编号仍在缺少清单中时拒绝
func acceptsDouble(missing *set.Multiset[Item], item Item) bool {
	return !missing.Contains(item)
}
