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

// Package mrbt implements an authenticated ordered key-value map: a
// red-black tree whose every internal node additionally carries the
// digests of its two children, so the whole map collapses to one short
// root digest. Lookups can be accompanied by a verification object (VO)
// that lets a third party, holding only that root digest, check membership
// or absence of a key without holding the rest of the tree.
package mrbt

import (
	"fmt"
	"strings"
)

// Tree is an authenticated ordered map. The zero value is not usable; build
// one with New or one of the bulk constructors. A Tree is not safe for
// concurrent mutation (spec 5): callers must serialize writers themselves.
type Tree struct {
	store    *nodeStore
	root     handle // may be the sentinel leaf directly, when empty
	sentinel handle
	size     int
	config   *TreeConfig
}

// Option configures a new Tree.
type Option func(*treeOptions)

type treeOptions struct {
	hasher    Hasher
	algorithm HashAlgorithm
}

// WithHashAlgorithm selects one of the named two-argument hash algorithms
// (spec 4.1). It is the default: New() with no options uses SHA256.
func WithHashAlgorithm(name HashAlgorithm) Option {
	return func(o *treeOptions) {
		o.algorithm = name
		o.hasher = nil
	}
}

// WithHasher installs a caller-supplied two-argument hasher. Two trees can
// only be meaningfully compared (Equals, GetChangeSet, cross-verification)
// when their hashers are deterministic and produce identical digests on
// identical inputs (spec 4.1, spec 7).
func WithHasher(h Hasher) Option {
	return func(o *treeOptions) {
		o.hasher = h
		o.algorithm = ""
	}
}

// New creates an empty authenticated map. With no options it hashes with
// SHA-256, matching spec 8's concrete scenarios.
func New(opts ...Option) *Tree {
	o := treeOptions{algorithm: SHA256}
	for _, opt := range opts {
		opt(&o)
	}
	hasher := o.hasher
	if hasher == nil {
		h, err := NewHasher(o.algorithm)
		if err != nil {
			// A caller who asks for an unknown built-in algorithm by
			// name has made a programming error; spec 7 allows
			// programmer errors to abort.
			panic(err)
		}
		hasher = h
	}

	store := newNodeStore()
	config := newTreeConfig(hasher, o.algorithm)
	sentinel := store.alloc(node{
		isLeaf:     true,
		isInfinity: true,
		parent:     nilHandle,
		prev:       nilHandle,
		next:       nilHandle,
		digest:     config.sentinelDigest,
	})
	return &Tree{
		store:    store,
		root:     sentinel,
		sentinel: sentinel,
		config:   config,
	}
}

// Size returns the number of finite keys currently stored. The sentinel
// leaf is never counted (spec 3, invariant 4).
func (t *Tree) Size() int { return t.size }

// Len is the container-idiom alias for Size.
func (t *Tree) Len() int { return t.size }

// Digest returns the tree's root digest pair. For an empty tree this is
// (H(S,S), H(S,S)) where S is the sentinel leaf's own digest (spec 8,
// scenario 1), since the BST invariant makes the sentinel both children of
// a notionally empty root.
func (t *Tree) Digest() DigestPair {
	root := t.store.at(t.root)
	if root.isLeaf {
		s := t.config.sentinelDigest
		return DigestPair{Left: s.clone(), Right: s.clone()}
	}
	return DigestPair{Left: root.digestLeft.clone(), Right: root.digestRight.clone()}
}

// Equals reports whether two trees hold the same key-value map, defined as
// root-digest equality (spec 8: "A.equals(B) iff A.digest == B.digest").
func (t *Tree) Equals(other *Tree) bool {
	return t.Digest().Equal(other.Digest())
}

// CompatibleWith is the best-effort hash-adapter compatibility check spec 7
// allows before comparing two trees (GetChangeSet, cross-verification).
// Passing does not guarantee the two hashers actually agree on every input;
// failing proves they provably don't.
func (t *Tree) CompatibleWith(other *Tree) error {
	if !t.config.sameAlgorithm(other.config) {
		return ErrIncompatibleAdapter
	}
	return nil
}

// Copy deep-copies the tree: a mutation on the copy never affects the
// original, and vice versa.
func (t *Tree) Copy() *Tree {
	return &Tree{
		store:    t.store.clone(),
		root:     t.root,
		sentinel: t.sentinel,
		size:     t.size,
		config:   t.config,
	}
}

// SelfTest walks the tree once in O(n) and reports the first structural
// invariant violation it finds, or nil if the tree is well-formed. Ordinary
// operations never call it; it exists for tests and fuzzing (spec 7, spec
// 9).
func (t *Tree) SelfTest() error {
	return selfTest(t)
}

// String renders a textual, indented dump of the tree: one line per node,
// leaves showing their key and value, internal nodes showing their color,
// routing key, and the hex prefix of their two child digests.
func (t *Tree) String() string {
	var b strings.Builder
	t.dump(&b, t.root, 0)
	return b.String()
}

func (t *Tree) dump(b *strings.Builder, h handle, depth int) {
	n := t.store.at(h)
	indent := strings.Repeat("  ", depth)
	if n.isLeaf {
		if n.isInfinity {
			fmt.Fprintf(b, "%s+inf\n", indent)
		} else {
			fmt.Fprintf(b, "%sleaf(%s) = %x\n", indent, n.key.String(), n.value)
		}
		return
	}
	col := "B"
	if n.color == red {
		col = "R"
	}
	fmt.Fprintf(b, "%s%s(<=%s) L=%x.. R=%x..\n", indent, col, n.key.String(), shortHex(n.digestLeft), shortHex(n.digestRight))
	t.dump(b, n.left, depth+1)
	t.dump(b, n.right, depth+1)
}

func shortHex(d Digest) []byte {
	n := len(d)
	if n > 4 {
		n = 4
	}
	return d[:n]
}

func (t *Tree) isLeaf(h handle) bool { return t.store.at(h).isLeaf }
