package ulist

import (
	"testing"
)

func BenchmarkUnrolledList_Append(b *testing.B) {
	ul := NewDefault()
	for i := 0; i < b.N; i++ {
		ul.Append(i)
	}
}

func BenchmarkLinkedList_Append(b *testing.B) {
	ll := new(LinkedList)
	for i := 0; i < b.N; i++ {
		ll.Append(i)
	}
}

func BenchmarkUnrolledList_Values(b *testing.B) {
	ul := NewDefault()
	for i := 0; i < 10000; i++ {
		ul.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ul.Values()
	}
}

func BenchmarkLinkedList_Values(b *testing.B) {
	ll := new(LinkedList)
	for i := 0; i < 10000; i++ {
		ll.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ll.Values()
	}
}

func TestLinkedList(t *testing.T) {
	ll := new(LinkedList)
	for i := 0; i < 5; i++ {
		ll.Append(i * 2)
	}
	if ll.Size() != 5 {
		t.Fatal("size is not equals to 5")
	}
	for i, v := range ll.Values() {
		if v != i*2 {
			t.Fatal(i)
		}
	}
	v, err := ll.Pop()
	if err != nil || v != 8 {
		t.Fatal(v, err)
	}
	if _, err := ll.Get(4); err == nil {
		t.Fatal("expected out of range")
	}
	for ll.Size() > 0 {
		if _, err := ll.Pop(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ll.Pop(); err == nil {
		t.Fatal("expected error on empty pop")
	}
}
