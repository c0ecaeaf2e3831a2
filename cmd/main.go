package main

import (
	"fmt"

	ulist "github.com/BerkanG2144/unrolled-linked-list"
)

func main() {
	list, err := ulist.New(2)
	if err != nil {
		panic(err)
	}
	for _, v := range []int{10, 20, 30} {
		list.Append(v)
	}
	fmt.Printf("[%s] size=%d blocks=%d\n", list.Join(", "), list.Size(), list.BlockCount())

	if _, err := list.Pop(); err != nil {
		panic(err)
	}
	fmt.Printf("[%s] size=%d blocks=%d\n", list.Join(", "), list.Size(), list.BlockCount())
}
