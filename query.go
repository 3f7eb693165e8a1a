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

// Get returns the value stored under k, or (nil, false) if k is absent.
func (t *Tree) Get(k Key) ([]byte, bool) {
	leaf := t.search(k)
	n := t.store.at(leaf)
	if n.isInfinity || n.key.Compare(k) != 0 {
		return nil, false
	}
	return n.value, true
}

// Contains reports whether k is present, without paying for a value copy.
func (t *Tree) Contains(k Key) bool {
	leaf := t.search(k)
	n := t.store.at(leaf)
	return !n.isInfinity && n.key.Compare(k) == 0
}

// GetVerified behaves like Get but also returns a Verification Object that
// lets a holder of the tree's root digest check the result without the rest
// of the tree (spec 4.7).
func (t *Tree) GetVerified(k Key) ([]byte, bool, *VO) {
	value, ok := t.Get(k)
	return value, ok, t.BuildVO(k)
}

// ByKeyOrder returns the i-th key/value pair in ascending key order
// (zero-based). A negative i counts from the end, so -1 is the largest key.
// ok is false when i is out of range. Whichever end of the leaf list i is
// closer to is the one walked, so ByKeyOrder(-1) costs O(1) rather than
// O(size).
func (t *Tree) ByKeyOrder(i int) (k Key, value []byte, ok bool) {
	if i < 0 {
		i += t.size
	}
	if i < 0 || i >= t.size {
		return nil, nil, false
	}
	s := t.store
	var h handle
	if fromEnd := t.size - 1 - i; fromEnd < i {
		h = t.lastFiniteLeaf()
		for ; fromEnd > 0; fromEnd-- {
			h = s.at(h).prev
		}
	} else {
		h = t.firstLeaf()
		for ; i > 0; i-- {
			h = s.at(h).next
		}
	}
	n := s.at(h)
	return n.key, n.value, true
}

// Iterate calls fn for every key/value pair in ascending key order, stopping
// early if fn returns false. The sentinel is never visited.
func (t *Tree) Iterate(fn func(k Key, value []byte) bool) {
	s := t.store
	for h := t.firstLeaf(); h != nilHandle; h = s.at(h).next {
		n := s.at(h)
		if n.isInfinity {
			return
		}
		if !fn(n.key, n.value) {
			return
		}
	}
}

// Keys collects every key in ascending order. Iterate should be preferred
// for large trees; Keys exists for tests and small maps.
func (t *Tree) Keys() []Key {
	out := make([]Key, 0, t.size)
	t.Iterate(func(k Key, _ []byte) bool {
		out = append(out, k)
		return true
	})
	return out
}
