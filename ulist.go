package ulist

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultBlockCapacity is used by NewDefault.
const DefaultBlockCapacity = 4

var (
	ErrBlockCapacity   = errors.New("block capacity must be positive")
	ErrEmptyList       = errors.New("pop from empty list")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// UnrolledList stores ints in a doubly-linked chain of fixed-capacity
// blocks. Only the tail block may be partially filled; an empty list
// holds no blocks at all.
type UnrolledList struct {
	head, tail *block
	capacity   int // slots per block, fixed at construction
	count      int // total elems across all blocks
}

type block struct {
	prev, next *block
	slots      []int
	count      int
}

func New(blockCapacity int) (*UnrolledList, error) {
	if blockCapacity <= 0 {
		return nil, ErrBlockCapacity
	}
	return &UnrolledList{capacity: blockCapacity}, nil
}

func NewDefault() *UnrolledList {
	list, _ := New(DefaultBlockCapacity)
	return list
}

// Append inserts value as the new last element. It reports whether a new
// block was allocated to hold the value; false means the value landed in
// the existing tail block.
func (list *UnrolledList) Append(value int) bool {
	allocated := false
	if list.tail == nil || list.tail.count == list.capacity {
		node := &block{slots: make([]int, list.capacity)}
		if list.tail == nil {
			list.head = node
		} else {
			node.prev = list.tail
			list.tail.next = node
		}
		list.tail = node
		allocated = true
	}
	list.tail.slots[list.tail.count] = value
	list.tail.count++
	list.count++
	return allocated
}

// Pop removes the last element. It reports whether the tail block was
// released as a result, and fails with ErrEmptyList if there is nothing
// to remove.
func (list *UnrolledList) Pop() (bool, error) {
	if list.count == 0 {
		return false, ErrEmptyList
	}
	list.tail.count--
	list.count--
	if list.tail.count > 0 {
		return false, nil
	}
	if list.tail == list.head {
		list.head = nil
		list.tail = nil
	} else {
		list.tail = list.tail.prev
		list.tail.next = nil
	}
	return true, nil
}

// Get returns the element at the given logical index, walking the chain
// from the head. Cost is O(blocks).
func (list *UnrolledList) Get(index int) (int, error) {
	if index < 0 || index >= list.count {
		return 0, ErrIndexOutOfRange
	}
	node := list.head
	for index >= node.count {
		index -= node.count
		node = node.next
	}
	return node.slots[index], nil
}

func (list *UnrolledList) Size() int { return list.count }

func (list *UnrolledList) IsEmpty() bool { return list.count == 0 }

// BlockCount returns the number of blocks in the chain.
func (list *UnrolledList) BlockCount() int {
	n := 0
	for node := list.head; node != nil; node = node.next {
		n++
	}
	return n
}

// BlockSize returns how many elements the block at blockIndex holds.
func (list *UnrolledList) BlockSize(blockIndex int) (int, error) {
	if blockIndex < 0 {
		return 0, ErrIndexOutOfRange
	}
	node := list.head
	for i := 0; i < blockIndex && node != nil; i++ {
		node = node.next
	}
	if node == nil {
		return 0, ErrIndexOutOfRange
	}
	return node.count, nil
}

// Values returns all elements in logical order.
func (list *UnrolledList) Values() []int {
	values := make([]int, 0, list.count)
	for node := list.head; node != nil; node = node.next {
		values = append(values, node.slots[:node.count]...)
	}
	return values
}

// Join renders all elements in logical order with separator between
// consecutive elements and no leading or trailing separator.
func (list *UnrolledList) Join(separator string) string {
	var sb strings.Builder
	for node := list.head; node != nil; node = node.next {
		for i := 0; i < node.count; i++ {
			if sb.Len() > 0 {
				sb.WriteString(separator)
			}
			sb.WriteString(strconv.Itoa(node.slots[i]))
		}
	}
	return sb.String()
}
