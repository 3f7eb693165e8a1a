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

func TestVerifyMembership(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	hasher, _ := NewHasher(SHA256)

	for _, k := range []int64{1, 3, 5, 7, 8, 9} {
		vo := tr.BuildVO(NewIntKey(k))
		if vo.Status != StatusFound {
			t.Fatalf("BuildVO(%d).Status = %v, want StatusFound", k, vo.Status)
		}
		if !Verify(tr.Digest(), vo, hasher) {
			t.Fatalf("Verify rejected a genuine membership proof for %d", k)
		}
	}
}

func TestVerifyMembershipFlippedByteFails(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	hasher, _ := NewHasher(SHA256)
	vo := tr.BuildVO(NewIntKey(7))

	if len(vo.Value) == 0 {
		t.Fatal("test fixture needs a non-empty value")
	}
	vo.Value = append([]byte{}, vo.Value...)
	vo.Value[0] ^= 0xFF
	if Verify(tr.Digest(), vo, hasher) {
		t.Fatal("Verify should reject a VO whose value byte was flipped")
	}
}

func TestVerifyMembershipFlippedSiblingFails(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	hasher, _ := NewHasher(SHA256)
	vo := tr.BuildVO(NewIntKey(7))
	if len(vo.Path) == 0 {
		t.Skip("key landed directly at the root; no sibling digest to flip")
	}
	vo.Path[0].SiblingDigest = append(Digest{}, vo.Path[0].SiblingDigest...)
	vo.Path[0].SiblingDigest[0] ^= 0xFF
	if Verify(tr.Digest(), vo, hasher) {
		t.Fatal("Verify should reject a VO whose sibling digest was flipped")
	}
}

func TestVerifyAbsence(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	hasher, _ := NewHasher(SHA256)

	for _, k := range []int64{0, 2, 4, 6, 10, 100} {
		vo := tr.BuildVO(NewIntKey(k))
		if vo.Status != StatusAbsent {
			t.Fatalf("BuildVO(%d).Status = %v, want StatusAbsent", k, vo.Status)
		}
		if !Verify(tr.Digest(), vo, hasher) {
			t.Fatalf("Verify rejected a genuine absence proof for %d", k)
		}
	}
}

func TestVerifyAbsenceSmallestKeyHasNoLeftWitness(t *testing.T) {
	tr := intTree(5, 3, 8)
	vo := tr.BuildVO(NewIntKey(-100))
	if vo.Left != nil {
		t.Fatal("a key smaller than every present key should have no predecessor witness")
	}
	hasher, _ := NewHasher(SHA256)
	if !Verify(tr.Digest(), vo, hasher) {
		t.Fatal("Verify should accept an absence proof with only a right witness")
	}
}

func TestVerifyAbsenceLargestKeyWitnessesSentinel(t *testing.T) {
	tr := intTree(5, 3, 8)
	vo := tr.BuildVO(NewIntKey(1000))
	if vo.Right == nil || !vo.Right.IsInfinity {
		t.Fatal("a key larger than every present key should witness the sentinel on the right")
	}
	hasher, _ := NewHasher(SHA256)
	if !Verify(tr.Digest(), vo, hasher) {
		t.Fatal("Verify should accept an absence proof witnessing the sentinel")
	}
}

func TestVerifyAbsenceRejectsNonAdjacentWitnesses(t *testing.T) {
	// Both witnesses below are genuine membership leaves that individually
	// verify against the tree's root, and they straddle SearchKey=4 — but
	// key 3 sits between them, so this is not a valid absence proof for 4.
	// Verify must reject it even though the older straddle-only check
	// would have accepted it.
	tr := intTree(1, 3, 5, 7, 9)
	hasher, _ := NewHasher(SHA256)

	forged := &VO{
		SearchKey: NewIntKey(4),
		Status:    StatusAbsent,
		Left:      tr.leafWitness(tr.search(NewIntKey(1))),
		Right:     tr.leafWitness(tr.search(NewIntKey(5))),
	}
	if Verify(tr.Digest(), forged, hasher) {
		t.Fatal("Verify accepted an absence proof whose witnesses are not adjacent leaves")
	}
}

func TestVerifyAbsenceRejectsFalseGlobalMinimumClaim(t *testing.T) {
	// A VO with no Left witness asserts Right is the smallest leaf in the
	// whole tree. Reusing a genuine witness for a leaf that is not actually
	// leftmost must be rejected.
	tr := intTree(1, 3, 5)
	hasher, _ := NewHasher(SHA256)

	forged := &VO{
		SearchKey: NewIntKey(2),
		Status:    StatusAbsent,
		Right:     tr.leafWitness(tr.search(NewIntKey(3))),
	}
	if Verify(tr.Digest(), forged, hasher) {
		t.Fatal("Verify accepted a no-left-witness absence proof for a Right that isn't the tree's smallest leaf")
	}
}

func TestVerifyFailsAgainstModifiedTree(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 9, 7)
	vo := tr.BuildVO(NewIntKey(7))
	hasher, _ := NewHasher(SHA256)

	tr.Insert(NewIntKey(100), []byte("100"))
	if Verify(tr.Digest(), vo, hasher) {
		t.Fatal("a VO built before a mutation should not verify against the new digest")
	}
}

func TestVerifyEmptyTreeAbsence(t *testing.T) {
	tr := New()
	vo := tr.BuildVO(NewIntKey(42))
	hasher, _ := NewHasher(SHA256)
	if !Verify(tr.Digest(), vo, hasher) {
		t.Fatal("Verify should accept an absence proof built against an empty tree")
	}
}

func TestVerifyNilVO(t *testing.T) {
	hasher, _ := NewHasher(SHA256)
	if Verify(DigestPair{}, nil, hasher) {
		t.Fatal("Verify(nil) must never succeed")
	}
}
