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

// nodeDigest returns D(h): the digest a parent should mix in for this
// child, whether h is the sentinel, a finite leaf, or an internal node
// (whose digest is cached and kept current by recomputeUpFrom).
func nodeDigest(s *nodeStore, h handle) Digest {
	return s.at(h).digest
}

// setLeafValue (re)computes and caches a leaf's own digest. Called whenever
// a leaf is created or its value is overwritten by Set.
func setLeafValue(s *nodeStore, config *TreeConfig, h handle, value []byte) {
	n := s.at(h)
	n.value = value
	n.digest = config.leafDigest(n.key, value)
}

// recomputeUpFrom recomputes digestLeft/digestRight (and the node's own
// cached digest) for h and every ancestor up to the root. Each rotation
// calls it from the rotated-down node, and Insert, Delete and Set call it
// once more from the deepest node whose children changed after any
// rebalancing; color changes alone never call it, since colors are not
// hashed.
func recomputeUpFrom(s *nodeStore, config *TreeConfig, h handle) {
	for h != nilHandle {
		n := s.at(h)
		if n.isLeaf {
			h = n.parent
			continue
		}
		n.digestLeft = nodeDigest(s, n.left)
		n.digestRight = nodeDigest(s, n.right)
		n.digest = config.internalDigest(n.digestLeft, n.digestRight)
		h = n.parent
	}
}
