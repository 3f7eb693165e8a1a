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
	"bytes"
	"crypto/rand"
	"fmt"
	"sort"

	"github.com/mrbt/mrbt"
)

type keyList [][]byte

func (l keyList) Len() int           { return len(l) }
func (l keyList) Less(i, j int) bool { return bytes.Compare(l[i], l[j]) < 0 }
func (l keyList) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// main repeatedly builds the same key/value map two ways — ascending-order
// insertion and reverse-order insertion — and checks that both land on the
// same digest and both pass SelfTest. It also exercises delete-then-reinsert
// and GetChangeSet between the two trees on each round.
func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)

		raw := make(keyList, 5000)
		for i := range raw {
			b := make([]byte, 32)
			if _, err := rand.Read(b); err != nil {
				panic(err)
			}
			raw[i] = b
		}
		sort.Sort(raw)

		ascending := mrbt.New()
		for _, b := range raw {
			var arr [32]byte
			copy(arr[:], b)
			k := mrbt.NewUint256KeyFromBytes(arr)
			ascending.Insert(k, b)
		}

		descending := mrbt.New()
		for i := len(raw) - 1; i >= 0; i-- {
			var arr [32]byte
			copy(arr[:], raw[i])
			k := mrbt.NewUint256KeyFromBytes(arr)
			descending.Insert(k, raw[i])
		}

		if !ascending.Equals(descending) {
			panic("insertion order changed the digest")
		}
		if err := ascending.SelfTest(); err != nil {
			panic(err)
		}
		if err := descending.SelfTest(); err != nil {
			panic(err)
		}
		if diff := ascending.GetChangeSet(descending); len(diff) != 0 {
			panic(fmt.Sprintf("identical trees produced a non-empty change set: %v", diff))
		}

		// Delete and reinsert the middle key; digest must return to where
		// it started (spec 8, scenario 4).
		mid := raw[len(raw)/2]
		var arr [32]byte
		copy(arr[:], mid)
		k := mrbt.NewUint256KeyFromBytes(arr)
		before := ascending.Digest()
		ascending.Delete(k)
		if err := ascending.SelfTest(); err != nil {
			panic(err)
		}
		ascending.Insert(k, mid)
		if !ascending.Digest().Equal(before) {
			panic("delete then reinsert did not restore the original digest")
		}
	}
}
