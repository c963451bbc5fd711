package onestore

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// filetimeToTime converts a Windows FILETIME (100ns ticks since
// 1601-01-01 UTC) to a time.Time.
func filetimeToTime(ticks uint64) time.Time {
	const ticksPerSecond = 10_000_000
	const secondsBetweenEpochs = 11644473600
	seconds := int64(ticks/ticksPerSecond) - secondsBetweenEpochs
	nanos := int64(ticks%ticksPerSecond) * 100
	return time.Unix(seconds, nanos).UTC()
}

// time32ToTime converts a 32-bit "seconds since 1980-01-01 UTC" timestamp.
func time32ToTime(seconds uint32) time.Time {
	base := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(seconds) * time.Second)
}

// halfInchToPixels renders a half-inch IEEE-754 float measurement as
// floor(value * dpi/2).
func halfInchToPixels(halfInches float32, dpi float64) int64 {
	pixelsPerHalfInch := dpi / 2
	return int64(math.Floor(float64(halfInches) * pixelsPerHalfInch))
}

// utf16leToString decodes UTF-16LE bytes (no BOM expected) to a Go string,
// the way other_examples' ewf.go decodes UTF-16 header strings with
// x/text. Falls back to the empty string plus ok=false on decode failure;
// callers hex-encode in that case.
func utf16leToString(b []byte) (string, bool) {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(decoder, b)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// lcidNames maps a handful of common Windows LCIDs to their locale name.
// OneNote files in the wild are overwhelmingly authored under a small set
// of locales; unrecognized LCIDs render as "Unknown LCID".
var lcidNames = map[uint32]string{
	0x0409: "en_US",
	0x0809: "en_GB",
	0x040C: "fr_FR",
	0x0407: "de_DE",
	0x0410: "it_IT",
	0x0C0A: "es_ES",
	0x0416: "pt_BR",
	0x0413: "nl_NL",
	0x041D: "sv_SE",
	0x0414: "nb_NO",
	0x0406: "da_DK",
	0x0415: "pl_PL",
	0x0419: "ru_RU",
	0x0411: "ja_JP",
	0x0412: "ko_KR",
	0x0804: "zh_CN",
	0x0404: "zh_TW",
	0x041F: "tr_TR",
	0x040D: "he_IL",
	0x0401: "ar_SA",
}

func lcidToString(lcid uint32) string {
	if name, ok := lcidNames[lcid]; ok {
		return name
	}
	return "Unknown LCID"
}

// formatRawValue renders the raw bytes of a type 0x3..0x7 property value
// per the name-based heuristics of spec §4.G.2. raw is the property's
// decoded payload (1/2/4/8 bytes for 0x3..0x6, or the inner bytes of a
// PrtFourBytesOfLengthFollowedByData for 0x7).
func formatRawValue(name string, propType uint8, raw []byte) any {
	lower := strings.ToLower(name)

	if propType == 0x7 {
		if strings.Contains(lower, "guid") && len(raw) == 16 {
			if g, err := guidFromWire(raw); err == nil {
				return g.String()
			}
		}
		if s, ok := utf16leToString(raw); ok {
			return s
		}
		return hex.EncodeToString(raw)
	}

	switch {
	case strings.Contains(lower, "time"):
		switch len(raw) {
		case 8:
			return filetimeToTime(binary.LittleEndian.Uint64(raw)).Format("2006-01-02T15:04:05")
		case 4:
			return time32ToTime(binary.LittleEndian.Uint32(raw)).Format("2006-01-02T15:04:05")
		}
	case strings.Contains(lower, "height"), strings.Contains(lower, "width"),
		strings.Contains(lower, "offset"), strings.Contains(lower, "margin"):
		if len(raw) == 4 {
			bits := binary.LittleEndian.Uint32(raw)
			return halfInchToPixels(math.Float32frombits(bits), 96)
		}
	case strings.Contains(lower, "langid"):
		if len(raw) == 2 {
			lcid := uint32(binary.LittleEndian.Uint16(raw))
			return lcidToString(lcid) + "(" + strconv.FormatUint(uint64(lcid), 10) + ")"
		}
	case strings.Contains(lower, "languageid"):
		if len(raw) == 4 {
			lcid := binary.LittleEndian.Uint32(raw)
			return lcidToString(lcid) + "(" + strconv.FormatUint(uint64(lcid), 10) + ")"
		}
	}
	return hex.EncodeToString(raw)
}
