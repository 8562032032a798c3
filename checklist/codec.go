package checklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MissingHeader 缺少物品段落的标题
	MissingHeader = "Carte mancanti:"
	// DoublesHeader 重复物品段落的标题
	DoublesHeader = "Carte doppie:"
	// ModifiedHeader 最后修改时间行的标题
	ModifiedHeader = "Ultima modifica:"

	// Separator 序列化时使用的分隔符
	Separator = " -- "

	// TimestampLayout 意大利语区域的日期时间格式
	TimestampLayout = "02/01/2006, 15:04:05"
)

var (
	missingHeaderRe  = regexp.MustCompile(`(?i)carte\s+mancanti\s*:`)
	doublesHeaderRe  = regexp.MustCompile(`(?i)carte\s+doppie\s*:`)
	modifiedHeaderRe = regexp.MustCompile(`(?i)ultima\s+modifica\s*:`)

	// 任意长度的 "--"、逗号、分号或空白组合都视为分隔符
	separatorRe = regexp.MustCompile(`(?:--|[,;\s])+`)
)

// Parse 从文本中解析出两个清单，永远不会失败
// 缺少的段落返回空清单，无法解析为正整数的片段被忽略
func Parse(text string) Lists {
	return Lists{
		Missing: ParseItems(section(text, missingHeaderRe, doublesHeaderRe, modifiedHeaderRe)),
		Doubles: ParseItems(section(text, doublesHeaderRe, modifiedHeaderRe)),
	}
}

// ParseItems 将一段文本拆分为编号列表
func ParseItems(text string) []Item {
	fields := separatorRe.Split(strings.TrimSpace(text), -1)
	items := make([]Item, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n <= 0 {
			continue
		}
		items = append(items, Item(n))
	}
	return items
}

// section 返回标题之后、第一个结束标题之前的文本
// 标题不存在时返回空字符串
func section(text string, header *regexp.Regexp, terminators ...*regexp.Regexp) string {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	body := text[loc[1]:]
	end := len(body)
	for _, terminator := range terminators {
		if l := terminator.FindStringIndex(body); l != nil && l[0] < end {
			end = l[0]
		}
	}
	return body[:end]
}

// Serialize 将清单输出为标准文本格式
func Serialize(lists Lists, timestamp string) string {
	var sb strings.Builder

	sb.WriteString(MissingHeader + "\n")
	sb.WriteString(FormatItems(lists.Missing) + "\n\n")
	sb.WriteString(DoublesHeader + "\n")
	sb.WriteString(FormatItems(lists.Doubles) + "\n\n")
	sb.WriteString(ModifiedHeader + " " + timestamp)

	return sb.String()
}

// FormatItems 使用标准分隔符连接编号
func FormatItems(items []Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.Itoa(int(item))
	}
	return strings.Join(parts, Separator)
}

// FormatTimestamp 按意大利语区域格式输出时间
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Generate 生成一份初始清单：1 到 count 全部缺少，没有重复
func Generate(count int) (Lists, error) {
	if count <= 0 {
		return Lists{}, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	missing := make([]Item, count)
	for i := range missing {
		missing[i] = Item(i + 1)
	}
	return Lists{
		Missing: missing,
		Doubles: []Item{},
	}, nil
}
