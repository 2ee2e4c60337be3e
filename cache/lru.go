package cache

import "github.com/gogpu/displaylist"

// lruNode holds every interned list sharing one fingerprint. The
// fingerprint is kept for O(1) deletion from the shard map on eviction.
type lruNode struct {
	fingerprint uint64
	lists       []*displaylist.DisplayList
	prev        *lruNode
	next        *lruNode
}

// lruList is a doubly-linked recency list of fingerprint buckets.
// The list is not thread-safe; the owning shard's mutex guards it.
//
// The head is the most recently used, tail is least recently used.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

// Len returns the number of buckets in the list.
func (l *lruList) Len() int {
	return l.len
}

// PushFront adds a bucket for fingerprint holding dl at the front.
func (l *lruList) PushFront(fingerprint uint64, dl *displaylist.DisplayList) *lruNode {
	node := &lruNode{fingerprint: fingerprint, lists: []*displaylist.DisplayList{dl}}
	l.link(node)
	return node
}

// MoveToFront marks node as most recently used.
func (l *lruList) MoveToFront(node *lruNode) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.link(node)
}

// Remove unlinks node from the list.
func (l *lruList) Remove(node *lruNode) {
	l.unlink(node)
}

// RemoveOldest unlinks and returns the least recently used bucket, or nil
// when the list is empty.
func (l *lruList) RemoveOldest() *lruNode {
	node := l.tail
	if node != nil {
		l.unlink(node)
	}
	return node
}

// Clear drops every bucket.
func (l *lruList) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

func (l *lruList) link(node *lruNode) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.len++
}

func (l *lruList) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.len--
}
