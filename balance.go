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

// search descends from the root using the BST rule (spec 4.4 step 1): at an
// internal node with key x, go left when k <= x, else right. It always
// terminates at a leaf, possibly the sentinel.
func (t *Tree) search(k Key) handle {
	h := t.root
	s := t.store
	for {
		n := s.at(h)
		if n.isLeaf {
			return h
		}
		if k.Compare(n.key) <= 0 {
			h = n.left
		} else {
			h = n.right
		}
	}
}

// maxLeafKey descends right from h until it reaches a leaf and returns its
// key. It must only be called on a subtree that cannot contain the +∞
// sentinel (i.e. some node's left subtree), since the sentinel carries no
// key.
func maxLeafKey(s *nodeStore, h handle) Key {
	for {
		n := s.at(h)
		if n.isLeaf {
			return n.key
		}
		h = n.right
	}
}

// fixKey restores the internal-key rule on h by recomputing it from h's
// current left subtree (spec 4.4, "rotations must ... update the rotated
// node's key").
func fixKey(s *nodeStore, h handle) {
	n := s.at(h)
	n.key = maxLeafKey(s, n.left)
}

// rotateLeft and rotateRight are the standard BST rotations, generalized to
// also restore the internal-key rule on both affected nodes and to trigger
// digest recomputation from the lower pivot up to the root (spec 4.4).
func (t *Tree) rotateLeft(x handle) {
	s := t.store
	xn := s.at(x)
	y := xn.right
	yn := s.at(y)

	xn.right = yn.left
	if yn.left != nilHandle {
		s.at(yn.left).parent = x
	}
	yn.parent = xn.parent
	if xn.parent == nilHandle {
		t.root = y
	} else {
		p := s.at(xn.parent)
		if p.left == x {
			p.left = y
		} else {
			p.right = y
		}
	}
	yn.left = x
	xn.parent = y

	fixKey(s, x)
	fixKey(s, y)
	recomputeUpFrom(s, t.config, x)
}

func (t *Tree) rotateRight(x handle) {
	s := t.store
	xn := s.at(x)
	y := xn.left
	yn := s.at(y)

	xn.left = yn.right
	if yn.right != nilHandle {
		s.at(yn.right).parent = x
	}
	yn.parent = xn.parent
	if xn.parent == nilHandle {
		t.root = y
	} else {
		p := s.at(xn.parent)
		if p.left == x {
			p.left = y
		} else {
			p.right = y
		}
	}
	yn.right = x
	xn.parent = y

	fixKey(s, x)
	fixKey(s, y)
	recomputeUpFrom(s, t.config, x)
}

// Insert adds key k with the given value if k is not already present. It
// reports whether the key was newly inserted; inserting a duplicate key is
// a silent no-op (spec 4.4).
//
// search always lands on the smallest leaf whose key is >= k (the sentinel
// counts as +∞), so the new leaf is always spliced in immediately before
// the leaf search found, and always becomes its new sibling's left child.
func (t *Tree) Insert(k Key, value []byte) bool {
	s := t.store
	leaf := t.search(k)
	ln := s.at(leaf)
	if !ln.isInfinity && ln.key.Compare(k) == 0 {
		return false
	}
	oldParent := ln.parent

	newLeaf := s.alloc(node{isLeaf: true, key: k, parent: nilHandle, prev: nilHandle, next: nilHandle})
	setLeafValue(s, t.config, newLeaf, value)
	spliceLeafBefore(s, leaf, newLeaf)

	m := s.alloc(node{color: red, left: newLeaf, right: leaf, key: k, parent: oldParent})
	s.at(newLeaf).parent = m
	s.at(leaf).parent = m

	if oldParent == nilHandle {
		t.root = m
	} else {
		p := s.at(oldParent)
		if p.left == leaf {
			p.left = m
		} else {
			p.right = m
		}
	}

	t.size++
	t.insertFixup(m)
	recomputeUpFrom(s, t.config, m)
	return true
}

// insertFixup is CLRS's red-black insertion fixup, specialized so that a
// "black" node may be a leaf: leaves have no color field and colorOf always
// reports them black, which is exactly how CLRS's sentinel T.nil behaves.
func (t *Tree) insertFixup(z handle) {
	s := t.store
	for colorOf(s, s.at(z).parent) == red {
		p := s.at(z).parent
		gp := s.at(p).parent
		if gp == nilHandle {
			break
		}
		if p == s.at(gp).left {
			uncle := s.at(gp).right
			if colorOf(s, uncle) == red {
				setColor(s, p, black)
				setColor(s, uncle, black)
				setColor(s, gp, red)
				z = gp
				continue
			}
			if z == s.at(p).right {
				z = p
				t.rotateLeft(z)
			}
			p = s.at(z).parent
			gp = s.at(p).parent
			setColor(s, p, black)
			setColor(s, gp, red)
			t.rotateRight(gp)
		} else {
			uncle := s.at(gp).left
			if colorOf(s, uncle) == red {
				setColor(s, p, black)
				setColor(s, uncle, black)
				setColor(s, gp, red)
				z = gp
				continue
			}
			if z == s.at(p).left {
				z = p
				t.rotateRight(z)
			}
			p = s.at(z).parent
			gp = s.at(p).parent
			setColor(s, p, black)
			setColor(s, gp, red)
			t.rotateLeft(gp)
		}
	}
	setColor(s, t.root, black)
}

// Delete removes k if present. Deleting an absent key is a silent no-op
// (spec 4.4).
func (t *Tree) Delete(k Key) bool {
	s := t.store
	leaf := t.search(k)
	if s.at(leaf).isInfinity || s.at(leaf).key.Compare(k) != 0 {
		return false
	}

	p := s.at(leaf).parent
	if p == nilHandle {
		// The tree held exactly the sentinel; k can't have matched
		// above, so this is unreachable, but guard defensively.
		return false
	}

	pn := s.at(p)
	var sibling handle
	if pn.left == leaf {
		sibling = pn.right
	} else {
		sibling = pn.left
	}
	gp := pn.parent
	removedColor := pn.color

	// p is contracted away; sibling takes its place under gp.
	s.at(sibling).parent = gp
	if gp == nilHandle {
		t.root = sibling
	} else {
		gpn := s.at(gp)
		if gpn.left == p {
			gpn.left = sibling
		} else {
			gpn.right = sibling
		}
	}

	predecessor := s.at(leaf).prev
	unspliceLeaf(s, leaf)
	s.release(leaf)
	s.release(p)
	t.size--

	// Restore the internal-key rule: every ancestor whose key equaled the
	// deleted key derived it from this leaf being the rightmost of its
	// left subtree; the leaf-list predecessor is the new maximum there.
	if predecessor != nilHandle {
		predKey := s.at(predecessor).key
		for a := gp; a != nilHandle; a = s.at(a).parent {
			an := s.at(a)
			if an.key.Compare(k) == 0 {
				an.key = predKey
				break
			}
		}
	}

	if removedColor == black {
		t.deleteFixup(sibling)
	}
	if gp != nilHandle {
		recomputeUpFrom(s, t.config, gp)
	} else {
		recomputeUpFrom(s, t.config, t.root)
	}
	return true
}

// deleteFixup is CLRS's red-black deletion fixup applied to the node that
// inherited the contracted parent's position, again treating leaves as
// always-black (nephews of a leaf sibling are therefore always black too,
// since a leaf has no children).
func (t *Tree) deleteFixup(x handle) {
	s := t.store
	if colorOf(s, x) == red {
		setColor(s, x, black)
		return
	}
	for x != t.root && colorOf(s, x) == black {
		p := s.at(x).parent
		if p == nilHandle {
			break
		}
		if x == s.at(p).left {
			w := s.at(p).right
			if colorOf(s, w) == red {
				setColor(s, w, black)
				setColor(s, p, red)
				t.rotateLeft(p)
				w = s.at(p).right
			}
			leftNephew, rightNephew := childrenOf(s, w)
			if colorOf(s, leftNephew) == black && colorOf(s, rightNephew) == black {
				setColor(s, w, red)
				x = p
				continue
			}
			if colorOf(s, rightNephew) == black {
				setColor(s, leftNephew, black)
				setColor(s, w, red)
				t.rotateRight(w)
				w = s.at(p).right
				_, rightNephew = childrenOf(s, w)
			}
			setColor(s, w, colorOf(s, p))
			setColor(s, p, black)
			setColor(s, rightNephew, black)
			t.rotateLeft(p)
			x = t.root
			break
		} else {
			w := s.at(p).left
			if colorOf(s, w) == red {
				setColor(s, w, black)
				setColor(s, p, red)
				t.rotateRight(p)
				w = s.at(p).left
			}
			leftNephew, rightNephew := childrenOf(s, w)
			if colorOf(s, leftNephew) == black && colorOf(s, rightNephew) == black {
				setColor(s, w, red)
				x = p
				continue
			}
			if colorOf(s, leftNephew) == black {
				setColor(s, rightNephew, black)
				setColor(s, w, red)
				t.rotateLeft(w)
				w = s.at(p).left
				leftNephew, _ = childrenOf(s, w)
			}
			setColor(s, w, colorOf(s, p))
			setColor(s, p, black)
			setColor(s, leftNephew, black)
			t.rotateRight(p)
			x = t.root
			break
		}
	}
	setColor(s, x, black)
}

// childrenOf returns a node's children, or two nilHandles if it is a leaf
// (a leaf has no children, which colorOf already treats as black).
func childrenOf(s *nodeStore, h handle) (left, right handle) {
	n := s.at(h)
	if n.isLeaf {
		return nilHandle, nilHandle
	}
	return n.left, n.right
}

// Set inserts k if absent, otherwise overwrites its value in place and
// recomputes digests from the modified leaf up to the root (spec 4.9).
func (t *Tree) Set(k Key, value []byte) {
	s := t.store
	leaf := t.search(k)
	if !s.at(leaf).isInfinity && s.at(leaf).key.Compare(k) == 0 {
		setLeafValue(s, t.config, leaf, value)
		recomputeUpFrom(s, t.config, s.at(leaf).parent)
		return
	}
	t.Insert(k, value)
}
