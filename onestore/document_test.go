package onestore

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// guidFileTypeOneWire is the 16-byte wire-format (mixed-endian) encoding of
// guidFileTypeOne ({7B5C52E4-D88C-4DA7-AEB1-5378D02996D3}).
var guidFileTypeOneWire = []byte{
	0xE4, 0x52, 0x5C, 0x7B, 0x8C, 0xD8, 0xA7, 0x4D,
	0xAE, 0xB1, 0x53, 0x78, 0xD0, 0x29, 0x96, 0xD3,
}

// buildEmptyOneFile assembles the minimal valid revision-store file: a
// 1024-byte header whose fcrFileNodeListRoot points at a single 40-byte
// FileNodeList fragment containing nothing but a ChunkTerminatorFND.
func buildEmptyOneFile() []byte {
	buf := make([]byte, 1024+40)
	copy(buf[0:16], guidFileTypeOneWire)

	// fcrFileNodeListRoot at offset 0x0AC: stp=1024 (u64 LE), cb=40 (u32 LE).
	binary.LittleEndian.PutUint64(buf[0x0AC:0x0AC+8], 1024)
	binary.LittleEndian.PutUint32(buf[0x0AC+8:0x0AC+12], 40)

	frag := buf[1024:]
	binary.LittleEndian.PutUint64(frag[0:8], fileNodeListMagic)
	binary.LittleEndian.PutUint32(frag[8:12], 1) // listId
	binary.LittleEndian.PutUint32(frag[12:16], 0) // seqNo

	terminator := FileNodeHeader{ID: idChunkTerminatorFND, Size: 4}
	binary.LittleEndian.PutUint32(frag[16:20], terminator.pack())

	// nextFragment trailer: nil FCR64x32 (stp = all-ones, cb = 0).
	for i := 20; i < 28; i++ {
		frag[i] = 0xFF
	}
	// frag[28:32] (cb) and frag[32:40] (footer) stay zero.

	return buf
}

func TestDocument_Open_Empty(t *testing.T) {
	// S1: a file with no object space content parses to empty collections
	// and no warnings.
	data := buildEmptyOneFile()
	doc, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(doc.Properties()) != 0 {
		t.Errorf("Properties() = %v, want empty", doc.Properties())
	}
	if len(doc.Files()) != 0 {
		t.Errorf("Files() = %v, want empty", doc.Files())
	}
	if len(doc.Links()) != 0 {
		t.Errorf("Links() = %v, want empty", doc.Links())
	}
	if len(doc.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", doc.Warnings())
	}
	if _, ok := doc.HeaderSummary()["guidFileType"]; !ok {
		t.Errorf("HeaderSummary() missing guidFileType key")
	}
}

func TestDocument_Open_InvalidSignature(t *testing.T) {
	data := buildEmptyOneFile()
	// Corrupt the leading signature GUID.
	data[0] = 0x00
	data[1] = 0x00
	if _, err := Open(bytes.NewReader(data)); err == nil {
		t.Fatalf("Open() error = nil, want ErrInvalidSignature")
	}
}
