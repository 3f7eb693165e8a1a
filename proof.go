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

// Status is the outcome a VO attests to.
type Status byte

const (
	StatusFound Status = iota
	StatusAbsent
)

// Side records which child a VO step's descent took.
type Side byte

const (
	SideLeft Side = iota
	SideRight
)

// Step is one edge of a VO path: the node_key and sibling_digest a verifier
// needs to recombine the running digest one level closer to the root (spec
// 4.7).
type Step struct {
	Side          Side
	NodeKey       Key
	SiblingDigest Digest
}

// LeafWitness is a full membership proof for one leaf: enough for Verify to
// replay its digest up to the root on its own. Absence proofs carry two of
// these (spec 4.7, "include both adjacent leaves ... with their own full
// paths").
type LeafWitness struct {
	Key        Key
	IsInfinity bool
	Value      []byte
	Path       []Step // root -> leaf
}

// VO is a Verification Object: a compact witness that lets a holder of a
// trusted root digest check a lookup result without the rest of the tree.
type VO struct {
	SearchKey Key
	Status    Status

	// Populated when Status == StatusFound.
	Value []byte
	Path  []Step // root -> leaf

	// Populated when Status == StatusAbsent. Left is nil when SearchKey is
	// smaller than every present key (no predecessor exists); Right is
	// never nil, and may be the sentinel when SearchKey exceeds every
	// present key.
	Left  *LeafWitness
	Right *LeafWitness
}

// BuildVO constructs the VO a caller would receive from GetVerified(k),
// without also paying for a Get (spec 4.7, "Build (on prover side)").
func (t *Tree) BuildVO(k Key) *VO {
	leaf := t.search(k)
	s := t.store
	n := s.at(leaf)
	if !n.isInfinity && n.key.Compare(k) == 0 {
		return &VO{SearchKey: k, Status: StatusFound, Value: n.value, Path: t.pathTo(leaf)}
	}

	vo := &VO{SearchKey: k, Status: StatusAbsent, Right: t.leafWitness(leaf)}
	if pred := n.prev; pred != nilHandle {
		vo.Left = t.leafWitness(pred)
	}
	return vo
}

func (t *Tree) leafWitness(h handle) *LeafWitness {
	n := t.store.at(h)
	return &LeafWitness{
		Key:        n.key,
		IsInfinity: n.isInfinity,
		Value:      n.value,
		Path:       t.pathTo(h),
	}
}

// pathTo walks from h up to the root, then reverses the result so the path
// reads root -> leaf as spec 4.7's wire format requires.
func (t *Tree) pathTo(h handle) []Step {
	s := t.store
	var leafToRoot []Step
	for {
		p := s.at(h).parent
		if p == nilHandle {
			break
		}
		pn := s.at(p)
		var st Step
		if pn.left == h {
			st = Step{Side: SideLeft, NodeKey: pn.key, SiblingDigest: nodeDigest(s, pn.right)}
		} else {
			st = Step{Side: SideRight, NodeKey: pn.key, SiblingDigest: nodeDigest(s, pn.left)}
		}
		leafToRoot = append(leafToRoot, st)
		h = p
	}
	out := make([]Step, len(leafToRoot))
	for i, st := range leafToRoot {
		out[len(leafToRoot)-1-i] = st
	}
	return out
}

// leafDigestFor recomputes a leaf's digest from its represented key and
// value, the same way config.leafDigest does, but without needing a
// TreeConfig: Verify only has a bare Hasher.
func leafDigestFor(hasher Hasher, isInfinity bool, k Key, value []byte) Digest {
	if isInfinity {
		return Digest(hasher(tagSentinel, tagSentinel))
	}
	return Digest(hasher(append(append([]byte{}, tagLeaf...), k.Bytes()...), value))
}

// verifyPath replays path from the leaf-adjacent step up to the root,
// checking at each step that node_key is consistent with the descent rule
// for the key this path is proving, and returns the reconstructed root
// digest pair. An empty path means the witnessed leaf is the tree's root
// (an empty tree), matching Tree.Digest's special case.
func verifyPath(k Key, isInfinity bool, leafDigest Digest, path []Step, hasher Hasher) (DigestPair, bool) {
	if len(path) == 0 {
		return DigestPair{Left: leafDigest, Right: leafDigest}, true
	}
	running := leafDigest
	var pair DigestPair
	for i := len(path) - 1; i >= 0; i-- {
		st := path[i]
		if isInfinity {
			if st.Side != SideRight {
				return DigestPair{}, false
			}
		} else if (k.Compare(st.NodeKey) <= 0) != (st.Side == SideLeft) {
			return DigestPair{}, false
		}
		if st.Side == SideLeft {
			pair = DigestPair{Left: running, Right: st.SiblingDigest}
		} else {
			pair = DigestPair{Left: st.SiblingDigest, Right: running}
		}
		running = hasher(pair.Left, pair.Right)
	}
	return pair, true
}

// pathIsAllLeft reports whether path only ever descends left, i.e. the leaf
// it leads to is the smallest leaf in the tree.
func pathIsAllLeft(path []Step) bool {
	for _, st := range path {
		if st.Side != SideLeft {
			return false
		}
	}
	return true
}

// leafListAdjacent reports whether left and right are root->leaf paths of
// two leaves that are consecutive in key order, with no leaf between them,
// per spec 4.7's leaf-list-adjacency assertion. Two leaves are adjacent iff
// their paths agree down to their lowest common ancestor, diverge there
// (left taking that ancestor's left child, right its right child), and from
// there on left always takes the right child (it is the rightmost leaf of
// its subtree) while right always takes the left child (it is the leftmost
// leaf of its subtree). This is checked purely from the recorded Side
// values, so it needs no extra wire data beyond the two full paths Verify
// already has.
func leafListAdjacent(left, right []Step) bool {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	i := 0
	for ; i < n; i++ {
		if left[i].Side != right[i].Side {
			break
		}
		if left[i].NodeKey.Compare(right[i].NodeKey) != 0 || !left[i].SiblingDigest.Equal(right[i].SiblingDigest) {
			return false
		}
	}
	if i == n {
		// Paths never diverged: either identical or one is a strict prefix
		// of the other, neither of which can happen for two distinct leaves.
		return false
	}
	if left[i].Side != SideLeft || right[i].Side != SideRight {
		return false
	}
	for _, st := range left[i+1:] {
		if st.Side != SideRight {
			return false
		}
	}
	for _, st := range right[i+1:] {
		if st.Side != SideLeft {
			return false
		}
	}
	return true
}

// Verify checks vo against a trusted root digest pair, returning false on
// any inconsistency rather than raising (spec 7, "Verification failure:
// verify returns false; never raises").
func Verify(trustedRoot DigestPair, vo *VO, hasher Hasher) bool {
	if vo == nil {
		return false
	}
	switch vo.Status {
	case StatusFound:
		leafDigest := leafDigestFor(hasher, false, vo.SearchKey, vo.Value)
		pair, ok := verifyPath(vo.SearchKey, false, leafDigest, vo.Path, hasher)
		return ok && pair.Equal(trustedRoot)

	case StatusAbsent:
		if vo.Right == nil {
			return false
		}
		rightDigest := leafDigestFor(hasher, vo.Right.IsInfinity, vo.Right.Key, vo.Right.Value)
		rightPair, ok := verifyPath(vo.Right.Key, vo.Right.IsInfinity, rightDigest, vo.Right.Path, hasher)
		if !ok || !rightPair.Equal(trustedRoot) {
			return false
		}
		if !vo.Right.IsInfinity && vo.Right.Key.Compare(vo.SearchKey) <= 0 {
			return false
		}

		if vo.Left == nil {
			// No predecessor witness is only honest when Right is the
			// smallest leaf in the whole tree: reached by going left at
			// every ancestor.
			return pathIsAllLeft(vo.Right.Path)
		}

		leftDigest := leafDigestFor(hasher, vo.Left.IsInfinity, vo.Left.Key, vo.Left.Value)
		leftPair, ok := verifyPath(vo.Left.Key, vo.Left.IsInfinity, leftDigest, vo.Left.Path, hasher)
		if !ok || !leftPair.Equal(trustedRoot) {
			return false
		}
		if vo.Left.IsInfinity || vo.Left.Key.Compare(vo.SearchKey) >= 0 {
			return false
		}
		// Both witnesses individually verify and straddle SearchKey, but
		// that alone would also accept two real, non-adjacent leaves with a
		// present key hiding between them. leafListAdjacent rules that out.
		return leafListAdjacent(vo.Left.Path, vo.Right.Path)

	default:
		return false
	}
}
