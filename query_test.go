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

package mrbt

import "testing"

func TestContains(t *testing.T) {
	tr := intTree(1, 2, 3)
	if !tr.Contains(NewIntKey(2)) {
		t.Fatal("Contains(2) should be true")
	}
	if tr.Contains(NewIntKey(99)) {
		t.Fatal("Contains(99) should be false")
	}
}

func TestGetAbsent(t *testing.T) {
	tr := intTree(1, 2, 3)
	if _, ok := tr.Get(NewIntKey(99)); ok {
		t.Fatal("Get of an absent key should report false")
	}
}

func TestKeysMatchesSize(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	keys := tr.Keys()
	if len(keys) != tr.Size() {
		t.Fatalf("len(Keys()) = %d, want %d", len(keys), tr.Size())
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1].Compare(keys[i]) >= 0 {
			t.Fatalf("Keys() is not strictly ascending at index %d", i)
		}
	}
}

func TestIterateStopsEarly(t *testing.T) {
	tr := intTree(1, 2, 3, 4, 5)
	seen := 0
	tr.Iterate(func(Key, []byte) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Fatalf("Iterate should stop right after fn returns false, saw %d", seen)
	}
}

func TestByKeyOrderMatchesIterate(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	var keys []Key
	tr.Iterate(func(k Key, _ []byte) bool {
		keys = append(keys, k)
		return true
	})
	for i, want := range keys {
		k, _, ok := tr.ByKeyOrder(i)
		if !ok || k.Compare(want) != 0 {
			t.Fatalf("ByKeyOrder(%d) = %v, want %v", i, k, want)
		}
		negIdx := i - tr.Size()
		k, _, ok = tr.ByKeyOrder(negIdx)
		if !ok || k.Compare(want) != 0 {
			t.Fatalf("ByKeyOrder(%d) = %v, want %v", negIdx, k, want)
		}
	}
}

func TestGetVerifiedRoundTrip(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	hasher, _ := NewHasher(SHA256)

	value, ok, vo := tr.GetVerified(NewIntKey(7))
	if !ok || string(value) != "7" {
		t.Fatalf("GetVerified(7) = (%q, %v)", value, ok)
	}
	if !Verify(tr.Digest(), vo, hasher) {
		t.Fatal("Verify should accept a freshly built membership VO")
	}
}
