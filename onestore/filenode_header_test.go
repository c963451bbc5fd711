package onestore

import "testing"

func TestFileNodeHeader_PackRoundTrip(t *testing.T) {
	tests := []FileNodeHeader{
		{ID: 0, Size: 0, StpFormat: 0, CbFormat: 0, BaseType: 0, Reserved: 0},
		{ID: 0x3FF, Size: 0x1FFF, StpFormat: 3, CbFormat: 3, BaseType: 0xF, Reserved: 1},
		{ID: 0xFF, Size: 4, StpFormat: 0, CbFormat: 0, BaseType: 0, Reserved: 0},
		{ID: 0x072, Size: 128, StpFormat: 1, CbFormat: 2, BaseType: 1, Reserved: 0},
	}
	for _, tt := range tests {
		got := unpackFileNodeHeader(tt.pack())
		if got != tt {
			t.Errorf("pack/unpack round trip: got %+v, want %+v", got, tt)
		}
	}
}
