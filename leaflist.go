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

// spliceLeafBefore inserts newLeaf immediately before existing in the leaf
// list (key order). existing's and its predecessor's prev/next links, and
// newLeaf's own, are repaired atomically with the structural split that
// calls this (spec 3, invariant 5; spec 4.2).
func spliceLeafBefore(s *nodeStore, existing, newLeaf handle) {
	en := s.at(existing)
	prev := en.prev
	s.at(newLeaf).prev = prev
	s.at(newLeaf).next = existing
	en.prev = newLeaf
	if prev != nilHandle {
		s.at(prev).next = newLeaf
	}
}

// unspliceLeaf removes h from the leaf list, repairing its neighbors'
// links.
func unspliceLeaf(s *nodeStore, h handle) {
	n := s.at(h)
	if n.prev != nilHandle {
		s.at(n.prev).next = n.next
	}
	if n.next != nilHandle {
		s.at(n.next).prev = n.prev
	}
}

// firstLeaf returns the smallest-key leaf, or the sentinel if the tree is
// empty.
func (t *Tree) firstLeaf() handle {
	h := t.root
	for !t.store.at(h).isLeaf {
		h = t.store.at(h).left
	}
	return h
}

// lastFiniteLeaf returns the largest finite leaf, i.e. the sentinel's
// predecessor, or nilHandle if the tree is empty.
func (t *Tree) lastFiniteLeaf() handle {
	return t.store.at(t.sentinel).prev
}
