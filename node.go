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

// handle is a stable index into a tree's node arena. Using indices instead
// of pointers means parent/child/leaf-list links can never form a pointer
// cycle the garbage collector has to reason about, and lets Copy duplicate
// a whole tree by copying one slice.
type handle int32

// nilHandle is the "no node" value, analogous to a nil pointer.
const nilHandle handle = -1

type color uint8

const (
	black color = iota
	red
)

// node is a tagged variant: isLeaf selects which field group is live.
// Internal and leaf nodes share a struct (rather than an interface with two
// concrete types) so the arena can store them in one contiguous slice.
type node struct {
	isLeaf      bool
	isInfinity  bool // true only for the single +∞ sentinel leaf
	key         Key  // internal: max key of left subtree; leaf: the leaf's key (nil if isInfinity)
	value       []byte
	digest      Digest // this node's own digest, as seen by its parent
	digestLeft  Digest // internal only: D(left child)
	digestRight Digest // internal only: D(right child)

	color  color // internal only; leaves are conceptually always black
	parent handle
	left   handle // internal only
	right  handle // internal only
	prev   handle // leaf only: leaf-list predecessor
	next   handle // leaf only: leaf-list successor
}

// nodeStore is the arena backing one tree. It holds pointers rather than
// values so that growing the slice never invalidates a handle obtained
// earlier in the same operation: allocating node B after taking *node for A
// cannot move A out from under its pointer.
type nodeStore struct {
	nodes []*node
	free  []handle
}

func newNodeStore() *nodeStore {
	return &nodeStore{}
}

func (s *nodeStore) alloc(n node) handle {
	cp := new(node)
	*cp = n
	if len(s.free) > 0 {
		h := s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		s.nodes[h] = cp
		return h
	}
	s.nodes = append(s.nodes, cp)
	return handle(len(s.nodes) - 1)
}

func (s *nodeStore) release(h handle) {
	s.nodes[h] = nil
	s.free = append(s.free, h)
}

func (s *nodeStore) at(h handle) *node {
	return s.nodes[h]
}

// clone deep-copies the arena (used by Tree.Copy). Freed slots are copied
// too so handles remain meaningful, but the copy also gets its own free
// list so the two arenas never alias.
func (s *nodeStore) clone() *nodeStore {
	out := &nodeStore{
		nodes: make([]*node, len(s.nodes)),
		free:  make([]handle, len(s.free)),
	}
	copy(out.free, s.free)
	for i, n := range s.nodes {
		if n == nil {
			continue
		}
		cp := *n
		cp.digest = n.digest.clone()
		cp.digestLeft = n.digestLeft.clone()
		cp.digestRight = n.digestRight.clone()
		if n.value != nil {
			v := make([]byte, len(n.value))
			copy(v, n.value)
			cp.value = v
		}
		out.nodes[i] = &cp
	}
	return out
}

func colorOf(s *nodeStore, h handle) color {
	if h == nilHandle {
		return black
	}
	n := s.at(h)
	if n.isLeaf {
		return black
	}
	return n.color
}

func setColor(s *nodeStore, h handle, c color) {
	if h == nilHandle {
		return
	}
	n := s.at(h)
	if n.isLeaf {
		return
	}
	n.color = c
}
