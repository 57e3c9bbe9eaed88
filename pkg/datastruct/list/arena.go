package list

// nilRef 表示空链接. slot i 的引用是 i+1, 所以零值的链表就是空链表
const nilRef = 0

type node[T any] struct {
	value T
	prev  int
	next  int
	gen   uint32
	used  bool
}

// arena 节点存储. 节点之间只通过下标互相引用, 不存在指针环,
// 被释放的 slot 放进 free 里复用, 每次释放 gen 加一, 旧的 Handle 因此失效
type arena[T any] struct {
	nodes []node[T]
	free  []int
}

func (a *arena[T]) alloc(value T, prev, next int) int {
	var ref int
	if n := len(a.free); n > 0 {
		ref = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[T]{})
		ref = len(a.nodes)
	}
	nd := a.at(ref)
	nd.value = value
	nd.prev = prev
	nd.next = next
	nd.used = true
	return ref
}

// at 返回的指针在下一次 alloc 之后可能失效, 不要跨 alloc 持有
func (a *arena[T]) at(ref int) *node[T] {
	return &a.nodes[ref-1]
}

func (a *arena[T]) release(ref int) T {
	nd := a.at(ref)
	value := nd.value
	var zero T
	nd.value = zero // avoid memory leak
	nd.prev = nilRef
	nd.next = nilRef
	nd.used = false
	nd.gen++
	a.free = append(a.free, ref)
	return value
}

func (a *arena[T]) live(ref int, gen uint32) bool {
	if ref <= nilRef || ref > len(a.nodes) {
		return false
	}
	nd := a.at(ref)
	return nd.used && nd.gen == gen
}

// inUse 返回仍然被占用的 slot 数量
func (a *arena[T]) inUse() int {
	return len(a.nodes) - len(a.free)
}
