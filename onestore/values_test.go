package onestore

import "testing"

func TestFormatRawValue_FILETIME(t *testing.T) {
	// S3: 00 80 FB 4D 18 C8 CC 01 (u64 = 0x01CCC8184DFB8000 ticks) -> 2012-01-01T00:00:00
	raw := []byte{0x00, 0x80, 0xFB, 0x4D, 0x18, 0xC8, 0xCC, 0x01}
	got := formatRawValue("CreationTimeStamp", 0x6, raw)
	want := "2012-01-01T00:00:00"
	if got != want {
		t.Errorf("formatRawValue(time) = %v, want %v", got, want)
	}
}

func TestHalfInchToPixels(t *testing.T) {
	// S4: float 30.0 at 96 dpi -> 1440
	got := halfInchToPixels(30.0, 96)
	if got != 1440 {
		t.Errorf("halfInchToPixels(30.0, 96) = %d, want 1440", got)
	}
}

func TestFormatRawValue_PageWidth(t *testing.T) {
	raw := []byte{0x00, 0x00, 0xF0, 0x41} // little-endian IEEE-754 30.0
	got := formatRawValue("PageWidth", 0x5, raw)
	if got != int64(1440) {
		t.Errorf("formatRawValue(PageWidth) = %v, want 1440", got)
	}
}

func TestLCIDToString(t *testing.T) {
	// S5: u16 0x0409 -> "en_US"
	got := lcidToString(0x0409)
	if got != "en_US" {
		t.Errorf("lcidToString(0x0409) = %v, want en_US", got)
	}
}

func TestFormatRawValue_LangID(t *testing.T) {
	raw := []byte{0x09, 0x04} // u16 LE 0x0409
	got := formatRawValue("LangID", 0x4, raw)
	want := "en_US(1033)"
	if got != want {
		t.Errorf("formatRawValue(LangID) = %v, want %v", got, want)
	}
}

func TestUTF16LEToString(t *testing.T) {
	// "ab" in UTF-16LE.
	b := []byte{'a', 0, 'b', 0}
	got, ok := utf16leToString(b)
	if !ok || got != "ab" {
		t.Errorf("utf16leToString() = %q, %v, want \"ab\", true", got, ok)
	}
}
