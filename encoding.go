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
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// voWireVersion is the version byte spec 6 requires every VO encoding to
// carry.
const voWireVersion = 1

// RawKey is the Key a decoded VO carries: Decode only has the wire bytes, so
// it cannot recover which concrete Key implementation produced them. Its
// Compare falls back to big-endian byte-lexicographic order against
// whatever Bytes() the other side offers. This reproduces the original
// order exactly as long as that Bytes() is itself order-preserving, which
// both IntKey (offset binary) and Uint256Key (fixed-width big-endian) are.
type RawKey []byte

func (k RawKey) Compare(other Key) int { return bytes.Compare(k, other.Bytes()) }
func (k RawKey) Bytes() []byte         { return k }
func (k RawKey) String() string        { return fmt.Sprintf("%x", []byte(k)) }

type wireStep struct {
	Side    uint8
	NodeKey []byte
	Sibling []byte
}

type wireLeaf struct {
	IsInfinity bool
	Key        []byte
	Value      []byte
	Path       []wireStep
}

type wireVO struct {
	Version   uint8
	Status    uint8
	SearchKey []byte
	Value     []byte
	Path      []wireStep
	HasLeft   bool
	Left      wireLeaf
	HasRight  bool
	Right     wireLeaf
}

func stepsToWire(path []Step) []wireStep {
	out := make([]wireStep, len(path))
	for i, st := range path {
		out[i] = wireStep{Side: uint8(st.Side), NodeKey: st.NodeKey.Bytes(), Sibling: []byte(st.SiblingDigest)}
	}
	return out
}

func stepsFromWire(path []wireStep) []Step {
	out := make([]Step, len(path))
	for i, st := range path {
		out[i] = Step{Side: Side(st.Side), NodeKey: RawKey(st.NodeKey), SiblingDigest: Digest(st.Sibling)}
	}
	return out
}

func leafToWire(w *LeafWitness) wireLeaf {
	var keyBytes []byte
	if !w.IsInfinity {
		keyBytes = w.Key.Bytes()
	}
	return wireLeaf{IsInfinity: w.IsInfinity, Key: keyBytes, Value: w.Value, Path: stepsToWire(w.Path)}
}

func leafFromWire(w wireLeaf) *LeafWitness {
	lw := &LeafWitness{IsInfinity: w.IsInfinity, Value: w.Value, Path: stepsFromWire(w.Path)}
	if !w.IsInfinity {
		lw.Key = RawKey(w.Key)
	}
	return lw
}

// Encode serializes vo per spec 6's normative VO wire format: a version
// byte, a status byte, and for each step a side tag, length-prefixed key,
// and fixed-length sibling digest. RLP is the teacher's wire codec for
// every on-disk node, so the VO reuses it rather than hand-rolling framing.
func (vo *VO) Encode() ([]byte, error) {
	w := wireVO{
		Version:   voWireVersion,
		Status:    uint8(vo.Status),
		SearchKey: vo.SearchKey.Bytes(),
		Path:      stepsToWire(vo.Path),
	}
	switch vo.Status {
	case StatusFound:
		w.Value = vo.Value
	case StatusAbsent:
		if vo.Left != nil {
			w.HasLeft = true
			w.Left = leafToWire(vo.Left)
		}
		if vo.Right == nil {
			return nil, fmt.Errorf("%w: absence VO missing right witness", ErrInvalidEncoding)
		}
		w.HasRight = true
		w.Right = leafToWire(vo.Right)
	}
	return rlp.EncodeToBytes(&w)
}

// DecodeVO reverses Encode. Keys in the result are RawKey values (see
// RawKey); Verify only ever compares keys with Compare, so this is
// sufficient to re-verify a decoded VO.
func DecodeVO(data []byte) (*VO, error) {
	var w wireVO
	if err := rlp.DecodeBytes(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if w.Version != voWireVersion {
		return nil, fmt.Errorf("%w: unsupported VO version %d", ErrInvalidEncoding, w.Version)
	}

	vo := &VO{
		SearchKey: RawKey(w.SearchKey),
		Status:    Status(w.Status),
		Path:      stepsFromWire(w.Path),
	}
	switch vo.Status {
	case StatusFound:
		vo.Value = w.Value
	case StatusAbsent:
		if w.HasLeft {
			vo.Left = leafFromWire(w.Left)
		}
		if !w.HasRight {
			return nil, fmt.Errorf("%w: absence VO missing right witness", ErrInvalidEncoding)
		}
		vo.Right = leafFromWire(w.Right)
	default:
		return nil, fmt.Errorf("%w: unknown VO status %d", ErrInvalidEncoding, w.Status)
	}
	return vo, nil
}
