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

func TestGetChangeSetIdenticalTreesIsEmpty(t *testing.T) {
	a := intTree(1, 2, 3, 4)
	b := intTree(4, 3, 2, 1)
	if diff := a.GetChangeSet(b); len(diff) != 0 {
		t.Fatalf("identical trees should yield an empty change set, got %v", diff)
	}
}

func TestGetChangeSetSpecScenario6(t *testing.T) {
	a := New()
	a.Insert(NewIntKey(1), []byte("a"))
	a.Insert(NewIntKey(2), []byte("b"))
	a.Insert(NewIntKey(3), []byte("c"))

	b := New()
	b.Insert(NewIntKey(2), []byte("B"))
	b.Insert(NewIntKey(3), []byte("c"))
	b.Insert(NewIntKey(4), []byte("d"))

	diff := a.GetChangeSet(b)

	want := map[string]bool{
		"Source:1:a":      true,
		"Source:2:b":      true,
		"Destination:2:B": true,
		"Destination:4:d": true,
	}
	if len(diff) != len(want) {
		t.Fatalf("GetChangeSet returned %d entries, want %d: %v", len(diff), len(want), diff)
	}
	for _, e := range diff {
		origin := "Source"
		if e.Origin == Destination {
			origin = "Destination"
		}
		key := origin + ":" + e.Key.String() + ":" + string(e.Value)
		if !want[key] {
			t.Fatalf("unexpected change-set entry %s", key)
		}
		delete(want, key)
	}
	if len(want) != 0 {
		t.Fatalf("missing expected change-set entries: %v", want)
	}
}

func TestGetChangeSetIsSymmetric(t *testing.T) {
	a := intTree(1, 2, 3)
	b := intTree(2, 3, 4)
	forward := a.GetChangeSet(b)
	backward := b.GetChangeSet(a)
	if len(forward) != len(backward) {
		t.Fatalf("GetChangeSet(a,b) and GetChangeSet(b,a) should have the same size, got %d and %d", len(forward), len(backward))
	}
}

func TestGetChangeSetAgainstEmptyTree(t *testing.T) {
	a := intTree(1, 2, 3)
	b := New()
	diff := a.GetChangeSet(b)
	if len(diff) != 3 {
		t.Fatalf("GetChangeSet against an empty tree should list every key, got %d entries", len(diff))
	}
	for _, e := range diff {
		if e.Origin != Source {
			t.Fatalf("every entry should have Origin=Source, got %v for key %v", e.Origin, e.Key)
		}
	}
}

func TestGetChangeSetEmptyBothWays(t *testing.T) {
	a := New()
	b := New()
	if diff := a.GetChangeSet(b); len(diff) != 0 {
		t.Fatalf("two empty trees should have an empty change set, got %v", diff)
	}
}
