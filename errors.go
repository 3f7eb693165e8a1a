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

import "errors"

// Benign conditions (spec 7: "benign absence") are never reported through
// these errors; Get, ByKeyOrder and Delete signal them with a boolean or a
// zero value instead. These errors are for programmer misuse and for the
// self-test diagnostic.
var (
	// ErrUnknownHash is returned by NewHasher when asked for an
	// unsupported algorithm name.
	ErrUnknownHash = errors.New("mrbt: unknown hash algorithm")

	// ErrIncompatibleAdapter is returned by Tree.CompatibleWith when two
	// trees were built with different named hash algorithms. GetChangeSet
	// and Equals do not run this check. Cheap best-effort check only;
	// two custom hashers of the same behavior but different identity are
	// the caller's responsibility per spec 7.
	ErrIncompatibleAdapter = errors.New("mrbt: trees use incompatible hash adapters")

	// ErrInvalidEncoding is returned when decoding a VO from its wire
	// format fails structurally (RLP shape, unexpected status byte).
	ErrInvalidEncoding = errors.New("mrbt: invalid verification object encoding")

	// ErrCorrupt is the error kind returned by SelfTest. Its text carries
	// the specific invariant that failed.
	ErrCorrupt = errors.New("mrbt: tree invariant violated")
)
