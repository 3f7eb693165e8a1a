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

func TestNewHasherKnownAlgorithms(t *testing.T) {
	algos := []HashAlgorithm{SHA1, SHA224, SHA256, SHA384, SHA512, Blake2b, Blake2s, Blake3}
	for _, a := range algos {
		h, err := NewHasher(a)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", a, err)
		}
		d1 := h([]byte("a"), []byte("b"))
		d2 := h([]byte("a"), []byte("b"))
		if Digest(d1).Equal(nil) {
			t.Fatalf("%s: produced an empty digest", a)
		}
		if !Digest(d1).Equal(d2) {
			t.Fatalf("%s: hasher is not deterministic", a)
		}
	}
}

func TestNewHasherUnknownAlgorithm(t *testing.T) {
	if _, err := NewHasher("md5"); err == nil {
		t.Fatal("expected an error for an unknown algorithm")
	}
}

func TestHasherOrderSensitive(t *testing.T) {
	h, _ := NewHasher(SHA256)
	ab := Digest(h([]byte("a"), []byte("b")))
	ba := Digest(h([]byte("b"), []byte("a")))
	if ab.Equal(ba) {
		t.Fatal("H(a,b) should not equal H(b,a)")
	}
}

func TestDigestEqual(t *testing.T) {
	a := Digest{1, 2, 3}
	b := Digest{1, 2, 3}
	c := Digest{1, 2, 4}
	if !a.Equal(b) {
		t.Fatal("identical digests should compare equal")
	}
	if a.Equal(c) {
		t.Fatal("differing digests should not compare equal")
	}
	if a.Equal(Digest{1, 2}) {
		t.Fatal("digests of different length should not compare equal")
	}
}

func TestDigestPairEqual(t *testing.T) {
	p1 := DigestPair{Left: Digest{1}, Right: Digest{2}}
	p2 := DigestPair{Left: Digest{1}, Right: Digest{2}}
	p3 := DigestPair{Left: Digest{1}, Right: Digest{3}}
	if !p1.Equal(p2) {
		t.Fatal("identical pairs should compare equal")
	}
	if p1.Equal(p3) {
		t.Fatal("differing pairs should not compare equal")
	}
}
