package onestore

import (
	"fmt"

	"github.com/google/uuid"
)

// guidFromWire converts a 16-byte Windows-style mixed-endian GUID (the
// first three fields are little-endian, the last two are byte arrays) into
// a uuid.UUID, which google/uuid always stores in RFC 4122 big-endian
// layout.
func guidFromWire(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.UUID{}, fmt.Errorf("onestore: GUID must be 16 bytes, got %d", len(b))
	}
	var be [16]byte
	be[0], be[1], be[2], be[3] = b[3], b[2], b[1], b[0]
	be[4], be[5] = b[5], b[4]
	be[6], be[7] = b[7], b[6]
	copy(be[8:], b[8:])
	return uuid.FromBytes(be[:])
}

// ExtendedGUID is the MS-ONESTORE (guid, n) identity pair used for object
// spaces, revisions, object groups and roots.
type ExtendedGUID struct {
	GUID uuid.UUID
	N    uint32
}

func (g ExtendedGUID) String() string {
	return fmt.Sprintf("{%s, %d}", g.GUID, g.N)
}

func readExtendedGUID(r *Reader) (ExtendedGUID, error) {
	guid, err := r.ReadGUID()
	if err != nil {
		return ExtendedGUID{}, err
	}
	n, err := r.ReadUint32()
	if err != nil {
		return ExtendedGUID{}, err
	}
	return ExtendedGUID{GUID: guid, N: n}, nil
}

// CompactID is a 32-bit packed reference into the Global Identification
// Table of the revision active when it was decoded.
type CompactID struct {
	N         uint8
	GUIDIndex uint32 // 24 bits
}

func readCompactID(r *Reader) (CompactID, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return CompactID{}, err
	}
	return CompactID{N: uint8(v & 0xFF), GUIDIndex: v >> 8}, nil
}
