package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fyerfyer/cardswap/checklist"
)

// Printer 将预览、冲突和比较结果输出到终端
// 输出不是终端时样式自动退化为纯文本
type Printer struct {
	w       io.Writer
	markers bool

	header    lipgloss.Style
	removed   lipgloss.Style
	added     lipgloss.Style
	warning   lipgloss.Style
	muted     lipgloss.Style
	emphasize lipgloss.Style
}

// Option 输出配置选项
type Option func(*Printer)

// WithMarkers 在已移除和新增的编号前加上 "-" 和 "+"
// 适用于无法显示颜色的输出
func WithMarkers(enabled bool) Option {
	return func(p *Printer) {
		p.markers = enabled
	}
}

// New 创建输出到w的Printer
func New(w io.Writer, opts ...Option) *Printer {
	r := lipgloss.NewRenderer(w)
	p := &Printer{
		w:         w,
		header:    r.NewStyle().Bold(true),
		removed:   r.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("9")),
		added:     r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warning:   r.NewStyle().Foreground(lipgloss.Color("214")),
		muted:     r.NewStyle().Foreground(lipgloss.Color("241")),
		emphasize: r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preview 输出带差异标记的清单
func (p *Printer) Preview(pv checklist.Preview) error {
	var b strings.Builder

	b.WriteString(p.header.Render(checklist.MissingHeader))
	b.WriteString("\n")
	b.WriteString(p.elements(pv.Missing()))
	b.WriteString("\n\n")
	b.WriteString(p.header.Render(checklist.DoublesHeader))
	b.WriteString("\n")
	b.WriteString(p.elements(pv.Doubles()))
	b.WriteString("\n\n")
	b.WriteString(p.muted.Render(checklist.ModifiedHeader + " " + pv.Timestamp))
	b.WriteString("\n")

	sum := pv.Summary()
	if sum.Removed > 0 || sum.Added > 0 {
		b.WriteString(p.muted.Render(fmt.Sprintf("%d unchanged, %d removed, %d added", sum.Unchanged, sum.Removed, sum.Added)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) elements(elements []checklist.Element) string {
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		value := fmt.Sprintf("%d", e.Value)
		switch e.Status {
		case checklist.StatusRemoved:
			if p.markers {
				value = "-" + value
			}
			value = p.removed.Render(value)
		case checklist.StatusAdded:
			if p.markers {
				value = "+" + value
			}
			value = p.added.Render(value)
		}
		parts = append(parts, value)
	}
	return strings.Join(parts, checklist.Separator)
}

// Conflicts 按固定顺序输出每类冲突的提示，没有冲突时不输出
func (p *Printer) Conflicts(c checklist.Conflicts) error {
	if c.IsEmpty() {
		return nil
	}

	messages := c.Messages()
	var b strings.Builder
	for _, kind := range checklist.ConflictKinds {
		msg, ok := messages[kind]
		if !ok {
			continue
		}
		b.WriteString(p.warning.Render("! " + msg))
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Comparison 输出两份重复清单的比较结果
func (p *Printer) Comparison(c checklist.Comparison, nameA, nameB string) error {
	var b strings.Builder

	p.comparisonSide(&b, fmt.Sprintf("%s can give %s:", nameA, nameB), c.OnlyInA)
	b.WriteString("\n")
	p.comparisonSide(&b, fmt.Sprintf("%s can give %s:", nameB, nameA), c.OnlyInB)

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) comparisonSide(b *strings.Builder, title string, items []checklist.Item) {
	b.WriteString(p.header.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(p.muted.Render("(nothing)"))
		b.WriteString("\n")
		return
	}

	b.WriteString(p.emphasize.Render(checklist.FormatItems(items)))
	b.WriteString("\n")
}
