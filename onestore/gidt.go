package onestore

import "github.com/google/uuid"

// gidt is the Global Identification Table: per revision, a map from
// CompactID.GUIDIndex to the ExtendedGUID it stands for.
type gidt struct {
	byRevision map[ExtendedGUID]map[uint32]uuid.UUID
}

func newGIDT() *gidt {
	return &gidt{byRevision: make(map[ExtendedGUID]map[uint32]uuid.UUID)}
}

func (t *gidt) insert(revision ExtendedGUID, index uint32, guid uuid.UUID) {
	m, ok := t.byRevision[revision]
	if !ok {
		m = make(map[uint32]uuid.UUID)
		t.byRevision[revision] = m
	}
	m[index] = guid
}

// resolve looks up (revision, id.GUIDIndex) and, if present, returns the
// ExtendedGUID the CompactID refers to.
func (t *gidt) resolve(revision ExtendedGUID, id CompactID) (ExtendedGUID, bool) {
	m, ok := t.byRevision[revision]
	if !ok {
		return ExtendedGUID{}, false
	}
	guid, ok := m[id.GUIDIndex]
	if !ok {
		return ExtendedGUID{}, false
	}
	return ExtendedGUID{GUID: guid, N: uint32(id.N)}, true
}
