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

	"golang.org/x/sync/errgroup"
)

// KVPair is one entry of an ordered bulk construction request.
type KVPair struct {
	Key   Key
	Value []byte
}

// NewFromPairs builds a tree by inserting pairs in order. Since Insert
// silently skips an already-present key (spec 4.4), an earlier pair always
// wins over a later one with the same key; the tree's resulting digest does
// not otherwise depend on pairs' order (spec 8, "digest ... is independent
// of insertion order").
func NewFromPairs(pairs []KVPair, opts ...Option) *Tree {
	t := New(opts...)
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
	return t
}

// NewFromMap builds a tree from a map, whose keys are already unique.
func NewFromMap(m map[Key][]byte, opts ...Option) *Tree {
	t := New(opts...)
	for k, v := range m {
		t.Insert(k, v)
	}
	return t
}

// NewFromValues encodes each of values with enc in parallel, then inserts
// the results in order. Mutation itself stays single-threaded (spec 5
// forbids concurrent writers); only the CPU-bound encoding step, which
// touches no tree state, is parallelized.
func NewFromValues(keys []Key, values []interface{}, enc Encoder, opts ...Option) (*Tree, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("mrbt: %d keys but %d values", len(keys), len(values))
	}

	encoded := make([][]byte, len(keys))
	var g errgroup.Group
	for i := range keys {
		i := i
		g.Go(func() error {
			b, err := enc.Encode(values[i])
			if err != nil {
				return fmt.Errorf("mrbt: encoding value for key %s: %w", keys[i].String(), err)
			}
			encoded[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t := New(opts...)
	for i, k := range keys {
		t.Insert(k, encoded[i])
	}
	return t, nil
}
