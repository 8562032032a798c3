package session

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatInfo 返回会话信息的格式化字符串表示
func FormatInfo(info Info) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Session: %s\n", info.ID))
	sb.WriteString(fmt.Sprintf("Missing: %s\n", humanize.Comma(int64(info.Missing))))
	sb.WriteString(fmt.Sprintf("Doubles: %s\n", humanize.Comma(int64(info.Doubles))))
	sb.WriteString(fmt.Sprintf("Created: %s\n", humanize.Time(info.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Last change: %s\n", humanize.Time(info.UpdatedAt)))

	return sb.String()
}
