package checklist

// Operation 标识触发事件的存储操作
type Operation string

const (
	OpLoad          Operation = "load"
	OpRemoveMissing Operation = "remove-missing"
	OpFoundBatch    Operation = "found-batch"
	OpAddDoubles    Operation = "add-doubles"
	OpRemoveDoubles Operation = "remove-doubles"
	OpReconcile     Operation = "reconcile"
	OpDismiss       Operation = "dismiss"
)

// Event 每次操作完成后发送给监听器，携带重新渲染的预览
type Event struct {
	// 触发事件的操作
	Op Operation

	// 操作完成后的预览
	Preview Preview

	// 本次操作产生的冲突
	Conflicts Conflicts
}

// Listener 接收存储事件的函数
type Listener func(Event)
