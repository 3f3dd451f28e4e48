package main

import (
	"fmt"
	"log"

	"lrucache/internal/cache"
)

func main() {
	c := cache.New[string, string](3)

	log.Println("lrucache demo starting")
	log.Printf("config: capacity=%d", 3)

	// -------------------------------------------------------------------
	// 1) Fill to capacity.
	// -------------------------------------------------------------------
	c.Put("a", "value_a")
	c.Put("b", "value_b")
	c.Put("c", "value_c")
	log.Printf("after fill: %s", c)

	// -------------------------------------------------------------------
	// 2) LRU eviction: reading "b" refreshes it, so inserting "d" into
	//    the full cache evicts "a".
	// -------------------------------------------------------------------
	if v, ok := c.Get("b"); ok {
		log.Printf("GET b = %q (touches b -> MRU)", v)
	}

	c.Put("d", "value_d")
	if _, ok := c.Get("a"); !ok {
		log.Println("GET a: missing (evicted as LRU)")
	}
	log.Printf("after eviction: %s", c)

	// -------------------------------------------------------------------
	// 3) Remove hands back the stored value.
	// -------------------------------------------------------------------
	if v, ok := c.Remove("c"); ok {
		log.Printf("REMOVE c = %q", v)
	}
	log.Printf("len=%d keys (LRU->MRU): %v", c.Len(), c.Keys())

	// -------------------------------------------------------------------
	// 4) Clear empties the cache but keeps its capacity.
	// -------------------------------------------------------------------
	c.Clear()
	log.Printf("after clear: empty=%v %s", c.IsEmpty(), c)

	fmt.Println("Done.")
}
