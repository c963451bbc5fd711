package onestore

import "encoding/binary"

// FCR (FileChunkReference) addresses a byte range: stp is the absolute
// offset, cb is the length.
type FCR struct {
	Stp uint64
	Cb  uint64
}

// stpSentinel returns the raw nil-sentinel for a given stpFormat, per
// spec §3.
func stpSentinel(stpFormat uint8) uint64 {
	switch stpFormat {
	case 0:
		return 0xFFFFFFFFFFFFFFFF
	case 1:
		return 0xFFFFFFFF
	case 2:
		return 0xFFFF
	case 3:
		return 0xFFFFFFFF
	default:
		return 0
	}
}

// IsNil reports whether fcr is the nil FCR for the given stpFormat: its raw
// (pre-shift) stp equals the format's sentinel and cb is zero. Since we
// only ever store the already-shifted stp, we recompute the raw form for
// the comparison.
func (f FCR) IsNil(stpFormat uint8) bool {
	raw := f.Stp
	if stpFormat == 2 || stpFormat == 3 {
		raw = f.Stp >> 3
	}
	return raw == stpSentinel(stpFormat) && f.Cb == 0
}

// DecodeFCR reads an FCR whose stp/cb widths and compression are driven by
// stpFormat/cbFormat, per spec §3/§4.B.
func DecodeFCR(r *Reader, stpFormat, cbFormat uint8) (FCR, error) {
	var stp uint64
	var err error
	switch stpFormat {
	case 0:
		stp, err = r.ReadUint64()
	case 1:
		var v uint32
		v, err = r.ReadUint32()
		stp = uint64(v)
	case 2:
		var v uint16
		v, err = r.ReadUint16()
		stp = uint64(v) << 3
	case 3:
		var v uint32
		v, err = r.ReadUint32()
		stp = uint64(v) << 3
	}
	if err != nil {
		return FCR{}, err
	}

	var cb uint64
	switch cbFormat {
	case 0:
		var v uint32
		v, err = r.ReadUint32()
		cb = uint64(v)
	case 1:
		cb, err = r.ReadUint64()
	case 2:
		var v uint8
		v, err = r.ReadUint8()
		cb = uint64(v) << 3
	case 3:
		var v uint16
		v, err = r.ReadUint16()
		cb = uint64(v) << 3
	}
	if err != nil {
		return FCR{}, err
	}
	return FCR{Stp: stp, Cb: cb}, nil
}

// DecodeFCR32 decodes the fixed 8-byte (stp:u32, cb:u32) shape used only by
// legacy header fields.
func DecodeFCR32(b []byte) FCR {
	return FCR{
		Stp: uint64(binary.LittleEndian.Uint32(b[0:4])),
		Cb:  uint64(binary.LittleEndian.Uint32(b[4:8])),
	}
}

// DecodeFCR64x32 decodes the fixed 12-byte (stp:u64, cb:u32) shape used by
// the header's fcrFileNodeListRoot and by FileNodeListFragment.nextFragment.
func DecodeFCR64x32(b []byte) FCR {
	return FCR{
		Stp: binary.LittleEndian.Uint64(b[0:8]),
		Cb:  uint64(binary.LittleEndian.Uint32(b[8:12])),
	}
}

// IsNilFCR64x32 reports nil-ness for the fixed 64x32 shape, which always
// uses stpFormat 0's sentinel (no compression).
func IsNilFCR64x32(f FCR) bool {
	return f.IsNil(0)
}

// IsNilAny reports nil-ness for an already-decoded FCR whose originating
// stpFormat is no longer known (DecodeFCR has already applied any ×8
// shift). Since the shift is reversible only by format, this checks the
// post-shift value against all four formats' sentinels instead.
func (f FCR) IsNilAny() bool {
	if f.Cb != 0 {
		return false
	}
	switch f.Stp {
	case 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFF, 0x7FFF8, 0x7FFFFFFF8:
		return true
	}
	return false
}
