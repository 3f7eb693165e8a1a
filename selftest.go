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

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// selfTest walks the tree once, checking every structural invariant from
// spec 3 and 9: BST ordering, the internal-key rule, red-black balance,
// leaf-list consistency, and digest consistency. It runs in O(n) and
// never mutates the tree.
func selfTest(t *Tree) error {
	s := t.store
	visited := bitset.New(uint(len(s.nodes)))

	_, leafCount, err := walkInvariants(s, t.config, t.root, visited, nil, nil)
	if err != nil {
		return err
	}

	if colorOf(s, t.root) != black {
		return fmt.Errorf("%w: root is not black", ErrCorrupt)
	}
	if leafCount != t.size {
		return fmt.Errorf("%w: size=%d but walk found %d finite leaves", ErrCorrupt, t.size, leafCount)
	}

	if err := checkLeafList(t); err != nil {
		return err
	}
	return nil
}

// walkInvariants recursively checks BST ordering, the internal-key rule,
// red-black coloring, and digest consistency on the subtree rooted at h. lo
// and hi bound the keys legal in this subtree (nil means unbounded); they
// tighten on each recursive call to check BST ordering without an O(n^2)
// all-pairs comparison. It returns the subtree's black-height and its count
// of finite leaves.
func walkInvariants(s *nodeStore, config *TreeConfig, h handle, visited *bitset.BitSet, lo, hi Key) (blackHeight, leafCount int, err error) {
	if visited.Test(uint(h)) {
		return 0, 0, fmt.Errorf("%w: node %d reachable by more than one path", ErrCorrupt, h)
	}
	visited.Set(uint(h))

	n := s.at(h)
	if n.isLeaf {
		if n.isInfinity {
			if !n.digest.Equal(config.sentinelDigest) {
				return 0, 0, fmt.Errorf("%w: sentinel digest is stale", ErrCorrupt)
			}
			return 1, 0, nil
		}
		if lo != nil && n.key.Compare(lo) < 0 {
			return 0, 0, fmt.Errorf("%w: leaf key %s violates lower bound", ErrCorrupt, n.key.String())
		}
		if hi != nil && n.key.Compare(hi) > 0 {
			return 0, 0, fmt.Errorf("%w: leaf key %s violates upper bound", ErrCorrupt, n.key.String())
		}
		if !n.digest.Equal(config.leafDigest(n.key, n.value)) {
			return 0, 0, fmt.Errorf("%w: leaf %s digest is stale", ErrCorrupt, n.key.String())
		}
		return 1, 1, nil
	}

	if n.color == red {
		if colorOf(s, n.left) == red || colorOf(s, n.right) == red {
			return 0, 0, fmt.Errorf("%w: red node %d has a red child", ErrCorrupt, h)
		}
	}

	leftBH, leftLeaves, err := walkInvariants(s, config, n.left, visited, lo, n.key)
	if err != nil {
		return 0, 0, err
	}
	rightBH, rightLeaves, err := walkInvariants(s, config, n.right, visited, n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if leftBH != rightBH {
		return 0, 0, fmt.Errorf("%w: unequal black-height under node %d (%d vs %d)", ErrCorrupt, h, leftBH, rightBH)
	}

	wantKey := maxLeafKey(s, n.left)
	if n.key.Compare(wantKey) != 0 {
		return 0, 0, fmt.Errorf("%w: node %d key %s does not equal max left-subtree key %s", ErrCorrupt, h, n.key.String(), wantKey.String())
	}

	if !n.digestLeft.Equal(nodeDigest(s, n.left)) || !n.digestRight.Equal(nodeDigest(s, n.right)) {
		return 0, 0, fmt.Errorf("%w: node %d digest is stale", ErrCorrupt, h)
	}

	bh := leftBH
	if colorOf(s, h) == black {
		bh++
	}
	return bh, leftLeaves + rightLeaves, nil
}

// checkLeafList walks the doubly linked leaf list forward and confirms it
// is strictly ascending, properly paired (next.prev == self), and
// terminates at the sentinel.
func checkLeafList(t *Tree) error {
	s := t.store
	prev := nilHandle
	count := 0
	h := t.firstLeaf()
	for h != nilHandle {
		n := s.at(h)
		if prev != nilHandle {
			if s.at(prev).next != h {
				return fmt.Errorf("%w: leaf list broken at %d", ErrCorrupt, prev)
			}
			if n.prev != prev {
				return fmt.Errorf("%w: leaf list back-link broken at %d", ErrCorrupt, h)
			}
			if !n.isInfinity && s.at(prev).key.Compare(n.key) >= 0 {
				return fmt.Errorf("%w: leaf list out of order at %d", ErrCorrupt, h)
			}
		}
		if !n.isInfinity {
			count++
		} else if n.next != nilHandle {
			return fmt.Errorf("%w: sentinel is not the last leaf", ErrCorrupt)
		}
		prev = h
		h = n.next
	}
	if count != t.size {
		return fmt.Errorf("%w: leaf list has %d finite leaves, size says %d", ErrCorrupt, count, t.size)
	}
	return nil
}
