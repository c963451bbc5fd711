package onestore

import (
	"testing"

	"github.com/google/uuid"
)

func TestGIDT_ResolveCompactID(t *testing.T) {
	// S7: GlobalIdTableEntryFNDX index=7, guid=G under revision R; a
	// CompactID{n=1, guidIndex=7} resolves to {G, 1}.
	revision := ExtendedGUID{GUID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), N: 0}
	g := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	table := newGIDT()
	table.insert(revision, 7, g)

	got, ok := table.resolve(revision, CompactID{N: 1, GUIDIndex: 7})
	if !ok {
		t.Fatalf("resolve() ok = false, want true")
	}
	want := ExtendedGUID{GUID: g, N: 1}
	if got != want {
		t.Errorf("resolve() = %+v, want %+v", got, want)
	}
}

func TestGIDT_MissingEntry(t *testing.T) {
	revision := ExtendedGUID{GUID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), N: 0}
	table := newGIDT()
	if _, ok := table.resolve(revision, CompactID{N: 0, GUIDIndex: 99}); ok {
		t.Errorf("resolve() ok = true for an absent entry, want false")
	}
}
