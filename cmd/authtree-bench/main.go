// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/mrbt/mrbt"
)

func main() {
	benchmarkInsertInExisting()
}

func benchmarkInsertInExisting() {
	f, _ := os.Create("cpu.prof")
	g, _ := os.Create("mem.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()
	defer func() { _ = pprof.WriteHeapProfile(g) }()

	// Number of existing keys in the tree.
	n := 1000000
	// Keys to insert afterwards, with timing.
	toInsert := 10000
	total := n + toInsert

	keys := make([]mrbt.Uint256Key, n)
	toInsertKeys := make([]mrbt.Uint256Key, toInsert)
	value := []byte("value")

	for round := 0; round < 4; round++ {
		for i := 0; i < total; i++ {
			var k [32]byte
			if _, err := rand.Read(k[:]); err != nil {
				panic(err)
			}
			if i < n {
				keys[i] = mrbt.NewUint256KeyFromBytes(k)
			} else {
				toInsertKeys[i-n] = mrbt.NewUint256KeyFromBytes(k)
			}
		}
		fmt.Printf("Generated key set %d\n", round)

		for attempt := 0; attempt < 5; attempt++ {
			t := mrbt.New()
			for _, k := range keys {
				t.Insert(k, value)
			}
			_ = t.Digest()

			start := time.Now()
			for _, k := range toInsertKeys {
				t.Insert(k, value)
			}
			_ = t.Digest()
			elapsed := time.Since(start)
			fmt.Printf("Took %v to insert and digest %d leaves\n", elapsed, toInsert)
		}
	}
}
