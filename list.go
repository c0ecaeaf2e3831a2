package ulist

// List is the read surface shared by the int list implementations.
type List interface {
	Values() []int
	Size() int
}

// LinkedList is a plain doubly-linked list with one element per node,
// kept as the baseline the block chain is measured against.
type LinkedList struct {
	head, tail *linkedListElem
	length     int
}

type linkedListElem struct {
	value int
	prev  *linkedListElem
	next  *linkedListElem
}

func (ll *LinkedList) Values() []int {
	values := make([]int, ll.length)
	for i, elem := 0, ll.head; elem != nil; i, elem = i+1, elem.next {
		values[i] = elem.value
	}
	return values
}

func (ll *LinkedList) Size() int { return ll.length }

func (ll *LinkedList) Append(value int) {
	elem := &linkedListElem{
		value: value,
		prev:  ll.tail,
		next:  nil,
	}
	if ll.head == nil {
		ll.head = elem
	} else {
		ll.tail.next = elem
	}
	ll.tail = elem
	ll.length++
}

func (ll *LinkedList) Pop() (int, error) {
	if ll.length == 0 {
		return 0, ErrEmptyList
	}
	ll.length--
	value := ll.tail.value
	if ll.head == ll.tail {
		ll.head = nil
		ll.tail = nil
	} else {
		ll.tail = ll.tail.prev
		ll.tail.next = nil
	}
	return value, nil
}

// Get walks from the head to the element at index.
func (ll *LinkedList) Get(index int) (int, error) {
	if index < 0 || index >= ll.length {
		return 0, ErrIndexOutOfRange
	}
	elem := ll.head
	for i := 0; i < index; i++ {
		elem = elem.next
	}
	return elem.value, nil
}
