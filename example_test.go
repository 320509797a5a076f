package cachekit_test

import (
	"fmt"

	"github.com/discochess/cachekit"
)

func ExampleNew() {
	cache, err := cachekit.New[string, string](
		cachekit.WithPolicy(cachekit.LFU),
		cachekit.WithCapacity(4),
	)
	if err != nil {
		panic(err)
	}
	cache.OnDiscard(func(d cachekit.Discard[string]) {
		fmt.Printf("DISCARD: %s\n", d.Key)
	})

	cache.Put("A", "Hello")
	cache.Put("B", "World")
	cache.Put("C", "Holberton")
	cache.Put("D", "School")
	cache.Get("A")
	cache.Get("A")
	cache.Get("B")
	cache.Put("E", "Battery")

	v, ok := cache.Get("C")
	fmt.Printf("%q %v\n", v, ok)
	v, _ = cache.Get("E")
	fmt.Println(v)
	// Output:
	// DISCARD: C
	// "" false
	// Battery
}
