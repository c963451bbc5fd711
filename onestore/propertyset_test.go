package onestore

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"
)

func propertyIDRaw(id uint32, propType uint8, boolValue bool) uint32 {
	v := id & 0x3FFFFFF
	v |= uint32(propType&0x1F) << 26
	if boolValue {
		v |= 1 << 31
	}
	return v
}

func TestDecodePropertySet_Nested(t *testing.T) {
	// S6: outer property (type 0x11) whose inner set has cProperties=1
	// containing a type 0x5 (4 B) integer.
	var buf bytes.Buffer
	write16 := func(v uint16) { binary.Write(&buf, binary.LittleEndian, v) }
	write32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }

	write16(1) // outer cProperties
	write32(propertyIDRaw(1, 0x11, false))

	write16(1) // nested cProperties
	write32(propertyIDRaw(2, 0x5, false))
	buf.Write([]byte{0xDD, 0xCC, 0xBB, 0xAA}) // nested value bytes

	r := NewReader(bytes.NewReader(buf.Bytes()))
	outer, err := decodePropertySet(r, nil, nil, nil)
	if err != nil {
		t.Fatalf("decodePropertySet() error = %v", err)
	}
	if len(outer.Values) != 1 {
		t.Fatalf("outer Values length = %d, want 1", len(outer.Values))
	}
	inner, ok := outer.Values[0].(*PropertySet)
	if !ok {
		t.Fatalf("outer.Values[0] type = %T, want *PropertySet", outer.Values[0])
	}
	want := []byte{0xDD, 0xCC, 0xBB, 0xAA}
	got, ok := inner.Values[0].([]byte)
	if !ok || !reflect.DeepEqual(got, want) {
		t.Errorf("inner.Values[0] = %v, want %v", inner.Values[0], want)
	}
}

func TestDecodePropertySet_CompactIDStream(t *testing.T) {
	var buf bytes.Buffer
	write16 := func(v uint16) { binary.Write(&buf, binary.LittleEndian, v) }
	write32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }

	write16(1)
	write32(propertyIDRaw(1, 0x8, false)) // single OID reference

	oids := &idStream{ids: []CompactID{{N: 1, GUIDIndex: 7}}}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	ps, err := decodePropertySet(r, oids, nil, nil)
	if err != nil {
		t.Fatalf("decodePropertySet() error = %v", err)
	}
	got, ok := ps.Values[0].([]CompactID)
	if !ok || len(got) != 1 || got[0] != (CompactID{N: 1, GUIDIndex: 7}) {
		t.Errorf("ps.Values[0] = %v, want [{N:1 GUIDIndex:7}]", ps.Values[0])
	}
}
