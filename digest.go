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
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"lukechampine.com/blake3"
)

// Digest is a hash-sized byte string. Its length depends on the hasher a
// tree was built with; it is never interpreted, only compared and fed back
// into the hasher as an opaque input.
type Digest []byte

// Equal reports whether two digests carry the same bytes.
func (d Digest) Equal(other Digest) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

func (d Digest) clone() Digest {
	c := make(Digest, len(d))
	copy(c, d)
	return c
}

// DigestPair is the root digest exposed by a tree: the pair of digests of
// the root's two children, so a verifier can replay it from a VO without
// learning the root's own internal key.
type DigestPair struct {
	Left  Digest
	Right Digest
}

// Equal reports whether two digest pairs are identical.
func (p DigestPair) Equal(other DigestPair) bool {
	return p.Left.Equal(other.Left) && p.Right.Equal(other.Right)
}

// Hasher combines two byte strings into one digest. Named algorithms
// concatenate their two arguments before hashing; a caller-supplied Hasher
// receives both arguments untouched, as spec 4.1 requires ("passes a and b
// through").
type Hasher func(a, b []byte) []byte

// HashAlgorithm names one of the built-in two-argument hashers a tree can be
// constructed with.
type HashAlgorithm string

const (
	SHA1    HashAlgorithm = "sha1"
	SHA224  HashAlgorithm = "sha224"
	SHA256  HashAlgorithm = "sha256"
	SHA384  HashAlgorithm = "sha384"
	SHA512  HashAlgorithm = "sha512"
	Blake2b HashAlgorithm = "blake2b"
	Blake2s HashAlgorithm = "blake2s"
	Blake3  HashAlgorithm = "blake3"
)

// NewHasher resolves a named algorithm to a Hasher. The returned function is
// pure and stateless and may be shared by every node of a tree, and by every
// tree that wants to interoperate via cross-verification or change sets.
func NewHasher(name HashAlgorithm) (Hasher, error) {
	newHash, err := newHashFunc(name)
	if err != nil {
		return nil, err
	}
	return func(a, b []byte) []byte {
		h := newHash()
		h.Write(a)
		h.Write(b)
		return h.Sum(nil)
	}, nil
}

func newHashFunc(name HashAlgorithm) (func() hash.Hash, error) {
	switch name {
	case SHA1:
		return sha1.New, nil
	case SHA224:
		return sha256.New224, nil
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	case Blake2b:
		return func() hash.Hash {
			h, err := blake2b.New512(nil)
			if err != nil {
				panic(err) // nil key is always accepted by blake2b.New512
			}
			return h
		}, nil
	case Blake2s:
		return func() hash.Hash {
			h, err := blake2s.New256(nil)
			if err != nil {
				panic(err)
			}
			return h
		}, nil
	case Blake3:
		return func() hash.Hash { return blake3.New(32, nil) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
}
