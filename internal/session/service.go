package session

import (
	"errors"
	"time"

	"github.com/fyerfyer/cardswap/checklist"
)

var (
	// ErrSessionNotFound 表示请求的会话不存在
	ErrSessionNotFound = errors.New("session not found")

	// ErrServiceClosed 表示服务已关闭
	ErrServiceClosed = errors.New("session service closed")
)

// Info 包含会话的基本信息
type Info struct {
	// 会话ID
	ID string `json:"id"`
	// 创建时间
	CreatedAt time.Time `json:"createdAt"`
	// 最近一次操作的时间
	UpdatedAt time.Time `json:"updatedAt"`
	// 当前缺少的数量
	Missing int `json:"missing"`
	// 当前重复的数量
	Doubles int `json:"doubles"`
}

// View 会话在一次操作之后的完整视图
type View struct {
	Info

	// 相对原始快照的差异预览
	Preview checklist.Preview `json:"preview"`
	// 当前状态的序列化文本
	Text string `json:"text"`
	// 最近一次操作的冲突
	Conflicts checklist.Conflicts `json:"conflicts"`
	// 按类别的冲突提示
	Messages map[checklist.ConflictKind]string `json:"messages,omitempty"`
}

// Data 表示会话的可导出数据
type Data struct {
	Info

	Original checklist.Lists `json:"original"`
	Current  checklist.Lists `json:"current"`
}

// Service 定义清单会话服务接口
type Service interface {
	// Create 从粘贴的文本创建一个新会话
	Create(text string) (View, error)

	// Generate 创建一个包含1到count全部缺少的新会话
	Generate(count int) (View, error)

	// Get 获取会话的当前视图
	Get(id string) (View, error)

	// List 按创建时间列出所有会话
	List() []Info

	// Apply 在会话的清单存储上执行一次操作
	Apply(id string, fn func(*checklist.Store) error) (View, error)

	// Export 导出会话的原始快照和当前状态
	Export(id string) (Data, error)

	// Delete 删除会话
	Delete(id string) error

	// Evict 删除空闲超过idle的会话，返回删除的数量
	Evict(idle time.Duration) int

	// Len 返回会话数量
	Len() int

	// Close 关闭服务并丢弃所有会话
	Close() error
}
