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
	"encoding/json"
)

// Encoder turns an arbitrary value into the canonical bytes the tree
// hashes. The hash-function registry and value encoding are explicitly
// external collaborators (spec 1): the tree never calls an Encoder itself,
// callers do so before Insert/Set.
type Encoder interface {
	Encode(value interface{}) ([]byte, error)
}

type canonicalJSONEncoder struct{}

// CanonicalJSON implements spec 4.6's canonical value encoding: JSON with
// sorted object keys, no insignificant whitespace, and numbers preserved in
// their original decimal form rather than round-tripped through float64.
var CanonicalJSON Encoder = canonicalJSONEncoder{}

func (canonicalJSONEncoder) Encode(value interface{}) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	// encoding/json already sorts map[string]any keys and omits
	// insignificant whitespace; the one gap is that a naive decode turns
	// every number into float64. Decoding with UseNumber and re-marshaling
	// canonicalizes key order while keeping numbers in decimal form.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}
