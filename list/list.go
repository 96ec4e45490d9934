// Package list implements a small singly linked list with the classic
// traversal exercises: middle-node detection via slow and fast pointers,
// and reversal by relinking.
package list

import (
	"fmt"
	"strings"
)

// Node is one element of a List.  Each node owns the node after it.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// List is a singly linked chain of nodes, addressed through its head.
// The zero value is an empty list, ready to use.
type List[T any] struct {
	head *Node[T]
}

// Head returns the first node, or nil for the empty list.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Append traverses to the tail and links a new node holding value.
func (l *List[T]) Append(value T) {
	node := &Node[T]{Value: value}
	if l.head == nil {
		l.head = node
		return
	}
	tail := l.head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = node
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	var n int
	for node := l.head; node != nil; node = node.Next {
		n++
	}
	return n
}

// Middle returns the middle node, or nil for the empty list.  The slow
// pointer advances one node for every two the fast pointer covers; when
// the fast pointer runs out of road the slow pointer is at the middle.
// For lists of even length the earlier of the two central nodes wins.
func (l *List[T]) Middle() *Node[T] {
	if l.head == nil {
		return nil
	}
	slow, fast := l.head, l.head
	for fast.Next != nil && fast.Next.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	return slow
}

// Reverse returns a new List containing this list's nodes in reverse
// order.  Nodes are relinked rather than copied, so the receiver is left
// empty; values are untouched.
func (l *List[T]) Reverse() *List[T] {
	var prev *Node[T]
	current := l.head
	for current != nil {
		next := current.Next
		current.Next = prev
		prev = current
		current = next
	}
	l.head = nil
	return &List[T]{head: prev}
}

// String concatenates the string form of every value in order.
func (l *List[T]) String() string {
	var sb strings.Builder
	for node := l.head; node != nil; node = node.Next {
		fmt.Fprintf(&sb, "%v", node.Value)
	}
	return sb.String()
}
