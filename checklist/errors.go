package checklist

import "errors"

var (
	// ErrEmptyInput 表示操作缺少必需的输入（空白文本或空的编号列表）
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidCount 表示生成清单时给出的数量无效
	ErrInvalidCount = errors.New("invalid item count")
)
