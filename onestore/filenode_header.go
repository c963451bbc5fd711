package onestore

// FileNodeHeader is the bit-packed 32-bit header preceding every FileNode
// body: id:10 | size:13 | stpFormat:2 | cbFormat:2 | baseType:4 | reserved:1.
type FileNodeHeader struct {
	ID        uint16
	Size      uint16
	StpFormat uint8
	CbFormat  uint8
	BaseType  uint8
	Reserved  uint8
}

func unpackFileNodeHeader(v uint32) FileNodeHeader {
	return FileNodeHeader{
		ID:        uint16(v & 0x3FF),
		Size:      uint16((v >> 10) & 0x1FFF),
		StpFormat: uint8((v >> 23) & 0x3),
		CbFormat:  uint8((v >> 25) & 0x3),
		BaseType:  uint8((v >> 27) & 0xF),
		Reserved:  uint8((v >> 31) & 0x1),
	}
}

func (h FileNodeHeader) pack() uint32 {
	return uint32(h.ID&0x3FF) |
		uint32(h.Size&0x1FFF)<<10 |
		uint32(h.StpFormat&0x3)<<23 |
		uint32(h.CbFormat&0x3)<<25 |
		uint32(h.BaseType&0xF)<<27 |
		uint32(h.Reserved&0x1)<<31
}

func readFileNodeHeader(r *Reader) (FileNodeHeader, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return FileNodeHeader{}, err
	}
	return unpackFileNodeHeader(v), nil
}
