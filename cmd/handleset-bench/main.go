// Command handleset-bench is a demonstration test driver for the handleset
// package: it drives insert/find workloads over a deterministically seeded
// random dataset and reports throughput and memory usage. It is an
// external collaborator, not part of the engine or its test suite.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"testing"

	"pgregory.net/rand"

	"github.com/homier/handleset"
)

func intHasher(e int, seed uint64) uint64 {
	x := uint64(e) ^ seed
	x = (x ^ (x >> 33)) * 0xff51afd7ed558ccd
	x = (x ^ (x >> 33)) * 0xc4ceb9fe1a85ec53
	return x ^ (x >> 33)
}

func intEquals(a, b int) bool { return a == b }

type bench struct {
	keys []int
}

func newBench(size int, seed uint64) *bench {
	r := rand.New(seed)

	keys := make([]int, size)
	for i := range keys {
		keys[i] = r.Int()
	}

	return &bench{keys: keys}
}

func (b *bench) benchmarkInsert(tb *testing.B) {
	for tb.Loop() {
		table, _ := handleset.New[int](intHasher, intEquals)
		for _, k := range b.keys {
			table.Insert(k)
		}
	}
}

func (b *bench) benchmarkFind(tb *testing.B) {
	table, _ := handleset.New[int](intHasher, intEquals)
	for _, k := range b.keys {
		table.Insert(k)
	}

	tb.ResetTimer()

	for i := 0; tb.Loop(); i++ {
		table.Find(b.keys[i%len(b.keys)])
	}
}

func measureMemoryUsage() {
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fmt.Printf("Memory Usage: Alloc = %v KB, Sys = %v KB, NumGC = %v\n", m.Alloc/1024, m.Sys/1024, m.NumGC)
}

func main() {
	var seed, size uint64
	flag.Uint64Var(&seed, "seed", 1234, "seed for the random key generator")
	flag.Uint64Var(&size, "dataset-size", 1_000_000, "number of elements in the dataset")
	flag.Parse()

	b := newBench(int(size), seed)

	fmt.Println("Running handleset benchmarks")

	r := testing.Benchmark(b.benchmarkInsert)
	fmt.Printf("Insert: %v\n", r)

	r = testing.Benchmark(b.benchmarkFind)
	fmt.Printf("Find: %v\n", r)

	measureMemoryUsage()
}
