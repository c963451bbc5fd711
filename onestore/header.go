package onestore

import (
	"strconv"

	"github.com/google/uuid"
)

var (
	guidFileTypeOne      = uuid.MustParse("7B5C52E4-D88C-4DA7-AEB1-5378D02996D3")
	guidFileTypeOneToc2  = uuid.MustParse("43FF2FA1-EFD9-4C76-9EE2-10EA5722765F")
	guidFileFormatExpect = uuid.MustParse("109ADD3F-911B-49F5-A5D0-1791EDC8AED8")
)

const headerFCRFileNodeListRootOffset = 0x0AC

// Header is the 1024-byte revision-store file header (MS-ONESTORE §2.3.1).
// Only GUIDFileType and FCRFileNodeListRoot drive parsing; every other
// field is decoded for diagnostic purposes only, per spec §6.
type Header struct {
	GUIDFileType          uuid.UUID
	GUIDFile              uuid.UUID
	GUIDLegacyFileVersion uuid.UUID
	GUIDFileFormat        uuid.UUID

	FFVLastCodeThatWrote     uint32
	FFVOldestCodeThatWrote   uint32
	FFVNewestCodeThatWrote   uint32
	FFVOldestCodeThatMayRead uint32

	FCRLegacyFreeChunkList           FCR
	FCRLegacyTransactionLog          FCR
	CTransactionsInLog               uint32
	CbLegacyExpectedFileLength       uint32
	FCRLegacyFileNodeListRoot        FCR
	CbLegacyFreeSpaceInFreeChunkList uint32

	FNeedsDefrag            bool
	FRepairedFile           bool
	FNeedsGarbageCollect    bool
	FHasNoEmbeddedFileObjects bool

	BuildNumberCreated uint32
	BuildNumberLastWroteToThisFile uint32
	BuildNumberOldestWritten uint32
	BuildNumberNewestWritten uint32

	FCRFileNodeListRoot FCR // required: the root FileNodeList reference

	CbExpectedFileLength       uint64
	CbFreeSpaceInFreeChunkList uint64
	GUIDAncestor               uuid.UUID
	CrcName                    uint32
}

// IsOne reports whether GUIDFileType identifies a .one file.
func (h Header) IsOne() bool { return h.GUIDFileType == guidFileTypeOne }

// IsOneToc2 reports whether GUIDFileType identifies a .onetoc2 file.
func (h Header) IsOneToc2() bool { return h.GUIDFileType == guidFileTypeOneToc2 }

// decodeHeader reads the 1024-byte header starting at the reader's current
// position (offset 0). Returns ErrInvalidSignature if GUIDFileType matches
// neither accepted value.
func decodeHeader(r *Reader) (Header, error) {
	var h Header
	var err error

	if h.GUIDFileType, err = r.ReadGUID(); err != nil {
		return Header{}, err
	}
	if !h.IsOne() && !h.IsOneToc2() {
		off, _ := r.Tell()
		return Header{}, parseErrorAt(off-16, ErrInvalidSignature)
	}

	if h.GUIDFile, err = r.ReadGUID(); err != nil {
		return Header{}, err
	}
	if h.GUIDLegacyFileVersion, err = r.ReadGUID(); err != nil {
		return Header{}, err
	}
	if h.GUIDFileFormat, err = r.ReadGUID(); err != nil {
		return Header{}, err
	}

	for _, dst := range []*uint32{&h.FFVLastCodeThatWrote, &h.FFVOldestCodeThatWrote, &h.FFVNewestCodeThatWrote, &h.FFVOldestCodeThatMayRead} {
		if *dst, err = r.ReadUint32(); err != nil {
			return Header{}, err
		}
	}

	legacyFreeChunk, err := r.ReadExact(8)
	if err != nil {
		return Header{}, err
	}
	h.FCRLegacyFreeChunkList = DecodeFCR32(legacyFreeChunk)

	legacyTxLog, err := r.ReadExact(8)
	if err != nil {
		return Header{}, err
	}
	h.FCRLegacyTransactionLog = DecodeFCR32(legacyTxLog)

	if h.CTransactionsInLog, err = r.ReadUint32(); err != nil {
		return Header{}, err
	}
	if h.CbLegacyExpectedFileLength, err = r.ReadUint32(); err != nil {
		return Header{}, err
	}
	if _, err = r.ReadExact(8); err != nil { // rgbPlaceholder
		return Header{}, err
	}

	legacyRoot, err := r.ReadExact(8)
	if err != nil {
		return Header{}, err
	}
	h.FCRLegacyFileNodeListRoot = DecodeFCR32(legacyRoot)

	if h.CbLegacyFreeSpaceInFreeChunkList, err = r.ReadUint32(); err != nil {
		return Header{}, err
	}

	flags, err := r.ReadUint8()
	if err != nil {
		return Header{}, err
	}
	h.FNeedsDefrag = flags&0x1 != 0
	h.FRepairedFile = flags&0x2 != 0
	h.FNeedsGarbageCollect = flags&0x4 != 0
	h.FHasNoEmbeddedFileObjects = flags&0x8 != 0
	if _, err = r.ReadExact(3); err != nil { // reserved flag padding
		return Header{}, err
	}

	for _, dst := range []*uint32{&h.BuildNumberCreated, &h.BuildNumberLastWroteToThisFile, &h.BuildNumberOldestWritten, &h.BuildNumberNewestWritten} {
		if *dst, err = r.ReadUint32(); err != nil {
			return Header{}, err
		}
	}

	if err = r.Seek(headerFCRFileNodeListRootOffset); err != nil {
		return Header{}, err
	}
	root, err := r.ReadExact(12)
	if err != nil {
		return Header{}, err
	}
	h.FCRFileNodeListRoot = DecodeFCR64x32(root)

	if h.CbExpectedFileLength, err = r.ReadUint64(); err != nil {
		return Header{}, err
	}
	if h.CbFreeSpaceInFreeChunkList, err = r.ReadUint64(); err != nil {
		return Header{}, err
	}
	if h.GUIDAncestor, err = r.ReadGUID(); err != nil {
		return Header{}, err
	}
	if h.CrcName, err = r.ReadUint32(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Summary renders the header's diagnostic fields verbatim, per spec §6
// ("MAY be surfaced verbatim by the facade").
func (h Header) Summary() map[string]string {
	return map[string]string{
		"guidFileType":          h.GUIDFileType.String(),
		"guidFile":              h.GUIDFile.String(),
		"guidLegacyFileVersion": h.GUIDLegacyFileVersion.String(),
		"guidFileFormat":        h.GUIDFileFormat.String(),
		"guidAncestor":          h.GUIDAncestor.String(),
		"cTransactionsInLog":    strconv.FormatUint(uint64(h.CTransactionsInLog), 10),
		"cbExpectedFileLength":  strconv.FormatUint(h.CbExpectedFileLength, 10),
		"fNeedsDefrag":          strconv.FormatBool(h.FNeedsDefrag),
		"fRepairedFile":         strconv.FormatBool(h.FRepairedFile),
		"fNeedsGarbageCollect":  strconv.FormatBool(h.FNeedsGarbageCollect),
		"fHasNoEmbeddedFileObjects": strconv.FormatBool(h.FHasNoEmbeddedFileObjects),
	}
}
