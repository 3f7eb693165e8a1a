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

import "bytes"

// Origin names which side of a GetChangeSet comparison a ChangeEntry came
// from.
type Origin byte

const (
	Source Origin = iota
	Destination
)

// ChangeEntry is one difference found by GetChangeSet: a key/value pair
// present (or changed) on the named side (spec 4.8).
type ChangeEntry struct {
	Origin Origin
	Key    Key
	Value  []byte
}

// GetChangeSet returns every key whose value differs, or that exists on
// only one side, between t and other. Equal subtrees are pruned by a single
// digest comparison, so cost scales with the symmetric difference rather
// than with either tree's size (spec 4.8). t and other must share a
// compatible hash adapter; see TreeConfig.sameAlgorithm.
func (t *Tree) GetChangeSet(other *Tree) []ChangeEntry {
	var raw []ChangeEntry
	diffNodes(t.store, t.root, other.store, other.root, &raw)

	// The lockstep walk can pair leaves of differently shaped subtrees, so
	// an unchanged pair may be reported once from each side; drop those.
	type kv struct{ key, value string }
	onSide := map[Origin]map[kv]bool{Source: {}, Destination: {}}
	for _, e := range raw {
		onSide[e.Origin][kv{string(e.Key.Bytes()), string(e.Value)}] = true
	}
	var out []ChangeEntry
	for _, e := range raw {
		opposite := Source
		if e.Origin == Source {
			opposite = Destination
		}
		if !onSide[opposite][kv{string(e.Key.Bytes()), string(e.Value)}] {
			out = append(out, e)
		}
	}
	return out
}

// diffNodes walks a and b in lockstep. digest already encodes the pair of a
// node's two children (it's H(digestLeft, digestRight)), so comparing the
// single cached digest is equivalent to the spec's digest_pair comparison
// and pruning on it is sound up to hash collision.
func diffNodes(as *nodeStore, a handle, bs *nodeStore, b handle, out *[]ChangeEntry) {
	an, bn := as.at(a), bs.at(b)
	if an.digest.Equal(bn.digest) {
		return
	}
	switch {
	case !an.isLeaf && !bn.isLeaf:
		diffNodes(as, an.left, bs, bn.left, out)
		diffNodes(as, an.right, bs, bn.right, out)
	case an.isLeaf && bn.isLeaf:
		diffLeafLeaf(an, bn, out)
	case an.isLeaf:
		diffLeafVsInternal(an, Source, bs, b, Destination, out)
	default:
		diffLeafVsInternal(bn, Destination, as, a, Source, out)
	}
}

func diffLeafLeaf(an, bn *node, out *[]ChangeEntry) {
	if an.isInfinity && bn.isInfinity {
		return // neither represents a real pair
	}
	if an.isInfinity {
		*out = append(*out, ChangeEntry{Origin: Destination, Key: bn.key, Value: bn.value})
		return
	}
	if bn.isInfinity {
		*out = append(*out, ChangeEntry{Origin: Source, Key: an.key, Value: an.value})
		return
	}
	if an.key.Compare(bn.key) != 0 || !bytes.Equal(an.value, bn.value) {
		*out = append(*out, ChangeEntry{Origin: Source, Key: an.key, Value: an.value})
		*out = append(*out, ChangeEntry{Origin: Destination, Key: bn.key, Value: bn.value})
	}
}

// diffLeafVsInternal compares a lone leaf against every finite leaf of an
// internal subtree on the other side, per spec 4.8's "enumerate all leaves
// of the internal subtree; for each, compare against the single leaf".
func diffLeafVsInternal(leaf *node, leafOrigin Origin, s *nodeStore, subtreeRoot handle, otherOrigin Origin, out *[]ChangeEntry) {
	var leaves []handle
	collectFiniteLeaves(s, subtreeRoot, &leaves)

	if leaf.isInfinity {
		for _, lh := range leaves {
			ln := s.at(lh)
			*out = append(*out, ChangeEntry{Origin: otherOrigin, Key: ln.key, Value: ln.value})
		}
		return
	}

	found := false
	for _, lh := range leaves {
		ln := s.at(lh)
		if ln.key.Compare(leaf.key) == 0 {
			found = true
			if !bytes.Equal(ln.value, leaf.value) {
				*out = append(*out, ChangeEntry{Origin: leafOrigin, Key: leaf.key, Value: leaf.value})
				*out = append(*out, ChangeEntry{Origin: otherOrigin, Key: ln.key, Value: ln.value})
			}
			continue
		}
		*out = append(*out, ChangeEntry{Origin: otherOrigin, Key: ln.key, Value: ln.value})
	}
	if !found {
		*out = append(*out, ChangeEntry{Origin: leafOrigin, Key: leaf.key, Value: leaf.value})
	}
}

// collectFiniteLeaves appends every non-sentinel leaf under h, in no
// particular order.
func collectFiniteLeaves(s *nodeStore, h handle, out *[]handle) {
	n := s.at(h)
	if n.isLeaf {
		if !n.isInfinity {
			*out = append(*out, h)
		}
		return
	}
	collectFiniteLeaves(s, n.left, out)
	collectFiniteLeaves(s, n.right, out)
}
