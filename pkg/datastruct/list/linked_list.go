package list

import (
	"fmt"
	"io"
	"strings"
)

var _ Dequeue[int] = &LinkedList[int]{}

// LinkedList 泛型双向链表. 节点保存在 arena 里, next/prev 都是 arena 下标,
// 链表是所有可达节点唯一的 owner, 节点在 pop 的时候被释放.
// The zero value is an empty list ready to use. A LinkedList is not safe
// for concurrent use.
type LinkedList[T comparable] struct {
	nodes arena[T]
	head  int
	tail  int
	size  int
}

// Handle refers to a single node returned by Replace or Insert.
// Positions shift after PushBack, PushFront, PopBack, PopFront, Insert or
// Clear, so a Handle must be re-checked with Value before use. It reports
// false once the node has been removed.
type Handle struct {
	ref int
	gen uint32
}

func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Len() int {
	return l.size
}

func (l *LinkedList[T]) PushBack(value T) {
	ref := l.nodes.alloc(value, l.tail, nilRef)
	if l.tail == nilRef {
		l.head = ref
	} else {
		l.nodes.at(l.tail).next = ref
	}
	l.tail = ref
	l.size++
}

func (l *LinkedList[T]) PushFront(value T) {
	ref := l.nodes.alloc(value, nilRef, l.head)
	if l.head == nilRef {
		l.tail = ref
	} else {
		l.nodes.at(l.head).prev = ref
	}
	l.head = ref
	l.size++
}

// PopBack 删除尾节点并返回它的值, 链表为空时返回 ErrorEmpty
func (l *LinkedList[T]) PopBack() (value T, err error) {
	if l.tail == nilRef {
		return value, ErrorEmpty
	}
	removed := l.tail
	prev := l.nodes.at(removed).prev
	if prev == nilRef {
		l.head = nilRef
	} else {
		l.nodes.at(prev).next = nilRef
	}
	l.tail = prev
	l.size--
	return l.nodes.release(removed), nil
}

// PopFront 删除头节点并返回它的值, 链表为空时返回 ErrorEmpty
func (l *LinkedList[T]) PopFront() (value T, err error) {
	if l.head == nilRef {
		return value, ErrorEmpty
	}
	removed := l.head
	next := l.nodes.at(removed).next
	if next == nilRef {
		l.tail = nilRef
	} else {
		l.nodes.at(next).prev = nilRef
	}
	l.head = next
	l.size--
	return l.nodes.release(removed), nil
}

func (l *LinkedList[T]) Front() (value T, err error) {
	if l.head == nilRef {
		return value, ErrorEmpty
	}
	return l.nodes.at(l.head).value, nil
}

func (l *LinkedList[T]) Back() (value T, err error) {
	if l.tail == nilRef {
		return value, ErrorEmpty
	}
	return l.nodes.at(l.tail).value, nil
}

func (l *LinkedList[T]) Get(index int) (value T, err error) {
	ref := l.walk(index)
	if ref == nilRef {
		return value, ErrorOutIndex
	}
	return l.nodes.at(ref).value, nil
}

// Replace overwrites the value at position index in place. Length and links
// are unchanged. If there is no node at index the list is left untouched and
// ErrorOutIndex is returned.
func (l *LinkedList[T]) Replace(index int, value T) (Handle, error) {
	ref := l.walk(index)
	if ref == nilRef {
		return Handle{}, ErrorOutIndex
	}
	l.nodes.at(ref).value = value
	return l.handle(ref), nil
}

// Insert 在 index 位置的节点(anchor)之后插入新节点, 新值落在 index+1 的位置.
// 插到最前面用 PushFront. index 处没有节点时返回 ErrorOutIndex, 链表不变.
func (l *LinkedList[T]) Insert(index int, value T) (Handle, error) {
	anchor := l.walk(index)
	if anchor == nilRef {
		return Handle{}, ErrorOutIndex
	}
	next := l.nodes.at(anchor).next
	ref := l.nodes.alloc(value, anchor, next)
	if next == nilRef {
		l.tail = ref
	} else {
		l.nodes.at(next).prev = ref
	}
	l.nodes.at(anchor).next = ref
	l.size++
	return l.handle(ref), nil
}

// Value 读取 handle 指向的节点的值, 节点已经被删除时返回 false
func (l *LinkedList[T]) Value(h Handle) (value T, ok bool) {
	if !l.nodes.live(h.ref, h.gen) {
		return value, false
	}
	return l.nodes.at(h.ref).value, true
}

// Clear 释放所有节点. 逐个释放而不是直接截断 arena, 这样旧的 Handle 都会失效
func (l *LinkedList[T]) Clear() {
	for cur := l.head; cur != nilRef; {
		next := l.nodes.at(cur).next
		l.nodes.release(cur)
		cur = next
	}
	l.head = nilRef
	l.tail = nilRef
	l.size = 0
}

// ForEach 从 head 沿 next 遍历. 最多走 size 步
func (l *LinkedList[T]) ForEach(fun func(value T, index int) bool) {
	cur := l.head
	for i := 0; cur != nilRef && i < l.size; i++ {
		nd := l.nodes.at(cur)
		if !fun(nd.value, i) {
			break
		}
		cur = nd.next
	}
}

// ReverseEach 从 tail 沿 prev 遍历, index 是节点在链表中的正向位置
func (l *LinkedList[T]) ReverseEach(fun func(value T, index int) bool) {
	cur := l.tail
	for i := l.size - 1; cur != nilRef && i >= 0; i-- {
		nd := l.nodes.at(cur)
		if !fun(nd.value, i) {
			break
		}
		cur = nd.prev
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	l.ForEach(func(value T, _ int) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Backward returns the values in tail-to-head order.
func (l *LinkedList[T]) Backward() []T {
	values := make([]T, 0, l.size)
	l.ReverseEach(func(value T, _ int) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Print writes one value per line, head to tail.
func (l *LinkedList[T]) Print(w io.Writer) (err error) {
	l.ForEach(func(value T, _ int) bool {
		_, err = fmt.Fprintln(w, value)
		return err == nil
	})
	return
}

func (l *LinkedList[T]) Equal(other *LinkedList[T]) bool {
	if other == nil || l.size != other.size {
		return false
	}
	for a, b := l.head, other.head; a != nilRef && b != nilRef; {
		na, nb := l.nodes.at(a), other.nodes.at(b)
		if na.value != nb.value {
			return false
		}
		a, b = na.next, nb.next
	}
	return true
}

func (l *LinkedList[T]) String() string {
	sbd := strings.Builder{}
	sbd.WriteByte('[')
	l.ForEach(func(value T, index int) bool {
		if index > 0 {
			sbd.WriteByte(' ')
		}
		_, _ = fmt.Fprint(&sbd, value)
		return true
	})
	sbd.WriteByte(']')
	return sbd.String()
}

// walk 从 head 往后走 index 步, index 越界时返回 nilRef
func (l *LinkedList[T]) walk(index int) int {
	if index < 0 || index >= l.size {
		return nilRef
	}
	cur := l.head
	for ; index > 0 && cur != nilRef; index-- {
		cur = l.nodes.at(cur).next
	}
	return cur
}

func (l *LinkedList[T]) handle(ref int) Handle {
	return Handle{ref: ref, gen: l.nodes.at(ref).gen}
}
