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
	"bytes"
	"math/big"
	"testing"
)

func TestIntKeyCompare(t *testing.T) {
	cases := []struct {
		a, b int64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{5, 5, 0},
		{-3, 3, -1},
		{-3, -3, 0},
		{0, -1, 1},
	}
	for _, c := range cases {
		got := NewIntKey(c.a).Compare(NewIntKey(c.b))
		if sign(got) != c.want {
			t.Errorf("IntKey(%d).Compare(IntKey(%d)) = %d, want sign %d", c.a, c.b, got, c.want)
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func TestIntKeyBytesRoundTripOrder(t *testing.T) {
	// Bytes() must be byte-lexicographically order-preserving: a decoded VO
	// carries RawKey, whose Compare falls back to bytes.Compare, so it has
	// to reproduce IntKey.Compare's order without ever seeing an *big.Int.
	cases := []struct{ a, b int64 }{
		{-5, 5},
		{9, 256},       // differing magnitude byte-length, same sign
		{-256, -9},     // differing magnitude byte-length, negative
		{-1, 0},
		{0, 1},
		{-1000000, 1000000},
	}
	for _, c := range cases {
		a, b := NewIntKey(c.a), NewIntKey(c.b)
		if a.Compare(b) >= 0 {
			t.Fatalf("IntKey(%d) should compare less than IntKey(%d)", c.a, c.b)
		}
		if bytes.Compare(a.Bytes(), b.Bytes()) >= 0 {
			t.Fatalf("Bytes(%d) should sort before Bytes(%d), got %x >= %x", c.a, c.b, a.Bytes(), b.Bytes())
		}
		if len(a.Bytes()) != len(b.Bytes()) {
			t.Fatalf("IntKey.Bytes() must be fixed-width, got %d and %d bytes", len(a.Bytes()), len(b.Bytes()))
		}
	}
}

func TestIntKeyBytesOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic encoding an IntKey outside [-2^255, 2^255-1]")
		}
	}()
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 255) // 2^255, one past the max
	NewIntKeyFromBig(tooLarge).Bytes()
}

func TestIntKeyFromBigIsCopied(t *testing.T) {
	v := big.NewInt(10)
	k := NewIntKeyFromBig(v)
	v.SetInt64(20)
	if k.Compare(NewIntKey(10)) != 0 {
		t.Fatal("NewIntKeyFromBig must copy, not alias, its argument")
	}
}

func TestIntKeyComparePanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic comparing IntKey against Uint256Key")
		}
	}()
	NewIntKey(1).Compare(NewUint256Key(1))
}

func TestUint256KeyCompare(t *testing.T) {
	a := NewUint256Key(1)
	b := NewUint256Key(2)
	if a.Compare(b) >= 0 {
		t.Fatal("1 should compare less than 2")
	}
	if b.Compare(a) <= 0 {
		t.Fatal("2 should compare greater than 1")
	}
	if a.Compare(NewUint256Key(1)) != 0 {
		t.Fatal("equal keys should compare equal")
	}
}

func TestUint256KeyBytes32RoundTrip(t *testing.T) {
	var raw [32]byte
	raw[31] = 0x2a
	k := NewUint256KeyFromBytes(raw)
	if NewUint256Key(42).Compare(k) != 0 {
		t.Fatal("decoding 0x2a should equal Uint256Key(42)")
	}
}
