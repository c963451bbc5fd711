package onestore

import (
	"bytes"
	"reflect"
	"testing"
)

func TestDecodeFileDataStoreObject_FieldOrder(t *testing.T) {
	// MS-ONESTORE §2.6.13: guidHeader(16), cbLength(u64), unused(4),
	// reserved(8), FileData[cbLength], guidFooter(16). Reserved/unused are
	// nonzero here specifically to catch cbLength being read from the
	// wrong offset.
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	var buf bytes.Buffer
	buf.Write(make([]byte, 16))                               // guidHeader
	buf.Write([]byte{4, 0, 0, 0, 0, 0, 0, 0})                  // cbLength = 4, LE u64
	buf.Write([]byte{0xAA, 0xAA, 0xAA, 0xAA})                  // unused, nonzero
	buf.Write([]byte{0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB}) // reserved, nonzero
	buf.Write(want)                                            // FileData
	buf.Write(make([]byte, 16))                                // guidFooter

	r := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := decodeFileDataStoreObject(r, FCR{Stp: 0, Cb: uint64(buf.Len())})
	if err != nil {
		t.Fatalf("decodeFileDataStoreObject() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decodeFileDataStoreObject() = %v, want %v", got, want)
	}
}
