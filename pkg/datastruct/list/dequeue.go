package list

// Dequeue 双端队列
type Dequeue[T any] interface {
	PushFront(value T)
	PushBack(value T)
	PopFront() (T, error)
	PopBack() (T, error)
	Front() (T, error)
	Back() (T, error)
	// Get 获取index位置的数据
	Get(index int) (T, error)
	// Len 获取长度
	Len() int
	// ForEach 从头到尾遍历, fun 返回 false 时停止
	ForEach(fun func(value T, index int) bool)
}
