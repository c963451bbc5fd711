package onestore

import (
	"bytes"
	"testing"
)

func TestFCR_IsNilAny(t *testing.T) {
	tests := []struct {
		name string
		fcr  FCR
		want bool
	}{
		{"format0 nil", FCR{Stp: 0xFFFFFFFFFFFFFFFF, Cb: 0}, true},
		{"format0 non-nil cb", FCR{Stp: 0xFFFFFFFFFFFFFFFF, Cb: 1}, false},
		{"format1 nil", FCR{Stp: 0xFFFFFFFF, Cb: 0}, true},
		{"format2 nil (shifted)", FCR{Stp: 0x7FFF8, Cb: 0}, true},
		{"format3 nil (shifted)", FCR{Stp: 0x7FFFFFFF8, Cb: 0}, true},
		{"ordinary reference", FCR{Stp: 1024, Cb: 40}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fcr.IsNilAny(); got != tt.want {
				t.Errorf("IsNilAny() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeFCR_Compressed(t *testing.T) {
	// stpFormat 2 (u16, ×8), cbFormat 3 (u16, ×8): stp=0x10 -> 0x80, cb=0x4 -> 0x20.
	buf := bytes.NewReader([]byte{0x10, 0x00, 0x04, 0x00})
	r := NewReader(buf)
	fcr, err := DecodeFCR(r, 2, 3)
	if err != nil {
		t.Fatalf("DecodeFCR() error = %v", err)
	}
	want := FCR{Stp: 0x80, Cb: 0x20}
	if fcr != want {
		t.Errorf("DecodeFCR() = %+v, want %+v", fcr, want)
	}
}

func TestDecodeFCR32(t *testing.T) {
	b := []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}
	got := DecodeFCR32(b)
	want := FCR{Stp: 1, Cb: 2}
	if got != want {
		t.Errorf("DecodeFCR32() = %+v, want %+v", got, want)
	}
}

func TestDecodeFCR64x32(t *testing.T) {
	b := []byte{0x00, 0x04, 0, 0, 0, 0, 0, 0, 0x28, 0, 0, 0}
	got := DecodeFCR64x32(b)
	want := FCR{Stp: 1024, Cb: 40}
	if got != want {
		t.Errorf("DecodeFCR64x32() = %+v, want %+v", got, want)
	}
	if IsNilFCR64x32(got) {
		t.Errorf("IsNilFCR64x32() = true for a concrete reference")
	}
}
