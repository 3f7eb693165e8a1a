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

// Tag bytes mixed into leaf digests: a finite leaf hashes tagLeaf before its
// key, and the sentinel hashes tagSentinel twice, so those two kinds of
// leaf never share a hash input. Internal-node digests hash the two child
// digests with no tag (spec 3, invariant 6).
var (
	tagLeaf     = []byte{0x4c} // 'L'
	tagSentinel = []byte{0x53} // 'S'
)

// TreeConfig bundles everything every node of a tree needs to know besides
// its own key/value/structure: the hash adapter and the one digest value
// (the sentinel's) that never changes once computed. One TreeConfig is
// shared by every node of a tree, mirroring the teacher's single
// *TreeConfig shared across every InternalNode.
type TreeConfig struct {
	hasher         Hasher
	algorithm      HashAlgorithm // empty for a caller-supplied Hasher
	sentinelDigest Digest
}

// newTreeConfig derives the constant sentinel digest once, so later digest
// recomputation never has to special-case "is this the sentinel".
func newTreeConfig(hasher Hasher, algorithm HashAlgorithm) *TreeConfig {
	tc := &TreeConfig{hasher: hasher, algorithm: algorithm}
	tc.sentinelDigest = Digest(hasher(tagSentinel, tagSentinel))
	return tc
}

// sameAlgorithm is the best-effort compatibility check spec 7 allows
// ("caller's responsibility" beyond this). Two custom hashers are always
// considered compatible; mismatched named algorithms never are.
func (tc *TreeConfig) sameAlgorithm(other *TreeConfig) bool {
	if tc.algorithm == "" || other.algorithm == "" {
		return true
	}
	return tc.algorithm == other.algorithm
}

func (tc *TreeConfig) leafDigest(k Key, value []byte) Digest {
	return Digest(tc.hasher(append(append([]byte{}, tagLeaf...), k.Bytes()...), value))
}

func (tc *TreeConfig) internalDigest(left, right Digest) Digest {
	return Digest(tc.hasher(left, right))
}
