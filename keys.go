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
	"math/big"

	"github.com/holiman/uint256"
)

// Key is a totally ordered scalar with a fixed canonical byte encoding. The
// +∞ sentinel required by spec 3 is not a Key value: it is a property of the
// sentinel leaf (see node.go's isInfinity flag), so that Key implementations
// never need to represent an out-of-band value.
type Key interface {
	// Compare returns <0, 0 or >0 as the receiver is less than, equal to,
	// or greater than other.
	Compare(other Key) int

	// Bytes is the canonical fixed encoding hashed into leaf digests and
	// emitted into VO steps.
	Bytes() []byte

	// String renders the key for the façade's textual dump.
	String() string
}

// IntKey is a signed integer key, matching spec 3's "original uses
// integers". Its encoding is offset binary: v plus a bias of 2^255, written
// as a fixed-width 32-byte big-endian unsigned value. A plain sign-byte
// encoding was tried first and rejected — once a key round-trips through a
// decoded RawKey (encoding.go), comparisons fall back to bytes.Compare, and
// a sign byte followed by an unpadded magnitude does not reproduce numeric
// order across differing magnitudes (e.g. encode(9) = [01 09] sorts after
// encode(256) = [01 01 00]). Offset binary is fixed-width, so its
// byte-lexicographic order is exactly its numeric order for every value in
// range, the same property Uint256Key gets for free from its fixed 32-byte
// layout.
type IntKey struct {
	v *big.Int
}

// intKeyBias shifts the representable range [-2^255, 2^255-1] up to
// [0, 2^256-1] so it fits an unsigned 32-byte big-endian encoding.
var intKeyBias = new(big.Int).Lsh(big.NewInt(1), 255)

// NewIntKey wraps an int64 as a Key.
func NewIntKey(v int64) IntKey {
	return IntKey{v: big.NewInt(v)}
}

// NewIntKeyFromBig wraps a *big.Int as a Key. The big.Int is copied.
func NewIntKeyFromBig(v *big.Int) IntKey {
	return IntKey{v: new(big.Int).Set(v)}
}

func (k IntKey) Compare(other Key) int {
	o, ok := other.(IntKey)
	if !ok {
		panic("mrbt: comparing IntKey against a different Key implementation")
	}
	return k.v.Cmp(o.v)
}

// Bytes panics if k falls outside [-2^255, 2^255-1], the range a 32-byte
// offset-binary encoding can represent — the IntKey analog of Uint256Key
// overflowing on a value wider than 256 bits.
func (k IntKey) Bytes() []byte {
	biased := new(big.Int).Add(k.v, intKeyBias)
	if biased.Sign() < 0 || biased.BitLen() > 256 {
		panic("mrbt: IntKey value out of encodable range [-2^255, 2^255-1]")
	}
	out := make([]byte, 32)
	biased.FillBytes(out)
	return out
}

func (k IntKey) String() string { return k.v.String() }

// Uint256Key is a fixed-width 256-bit unsigned integer key, the shape used
// by authenticated state tries whose keys are hashes or addresses rather
// than small counters. It trades IntKey's unbounded range for a fixed,
// allocation-free encoding.
type Uint256Key struct {
	v uint256.Int
}

// NewUint256Key wraps a uint64 as a fixed-width Key.
func NewUint256Key(v uint64) Uint256Key {
	var k Uint256Key
	k.v.SetUint64(v)
	return k
}

// NewUint256KeyFromBytes decodes a 32-byte big-endian value as a Key.
func NewUint256KeyFromBytes(b [32]byte) Uint256Key {
	var k Uint256Key
	k.v.SetBytes(b[:])
	return k
}

func (k Uint256Key) Compare(other Key) int {
	o, ok := other.(Uint256Key)
	if !ok {
		panic("mrbt: comparing Uint256Key against a different Key implementation")
	}
	return k.v.Cmp(&o.v)
}

func (k Uint256Key) Bytes() []byte {
	b := k.v.Bytes32()
	return b[:]
}

func (k Uint256Key) String() string { return k.v.Dec() }
