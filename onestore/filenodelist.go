package onestore

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const fileNodeListMagic = 0xA4567AB1F5F7F4C4

var fileDataReferenceGUID = regexp.MustCompile(`\{([0-9A-Fa-f-]{36})\}`)

type fileMetaEntry struct {
	Extension string
	OIDString string
}

// objectRecord is a decoded object declaration that carried a property
// set, ready for Document.Properties()/Links() formatting.
type objectRecord struct {
	OIDString string
	JCIDVal   JCID
	Revision  ExtendedGUID
	PropSet   *PropertySet
}

// parseState is the mutable traversal state threaded through the
// FileNodeList walk: the per-revision GIDT, the currently active revision,
// and the accumulators Document.Open fills in during its single pass.
type parseState struct {
	r               *Reader
	gidt            *gidt
	currentRevision ExtendedGUID
	objects         []*objectRecord
	fileContent     map[string][]byte
	fileMeta        map[string]fileMetaEntry
	warnings        []string
}

func newParseState(r *Reader) *parseState {
	return &parseState{
		r:           r,
		gidt:        newGIDT(),
		fileContent: make(map[string][]byte),
		fileMeta:    make(map[string]fileMetaEntry),
	}
}

func (s *parseState) addWarning(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// resolveOID renders a CompactID through the GIDT for the currently active
// revision, yielding the spec's "<missing>" placeholder (plus a warning)
// rather than aborting when the entry is absent.
func (s *parseState) resolveOID(id CompactID) string {
	eg, ok := s.gidt.resolve(s.currentRevision, id)
	if !ok {
		s.addWarning("%s: revision %s guidIndex %d", ErrMissingGIDTEntry, s.currentRevision, id.GUIDIndex)
		return "<missing>"
	}
	return eg.String()
}

// walkFileNodeList implements spec §4.E: seek to ref.Stp, validate the
// fragment header, decode FileNodes until the trailing cushion or a
// terminator id, then follow nextFragment until nil.
func (s *parseState) walkFileNodeList(ref FCR) error {
	if ref.IsNilAny() {
		return nil
	}
	sectionEnd := int64(ref.Stp + ref.Cb)
	if err := s.r.Seek(int64(ref.Stp)); err != nil {
		return err
	}

	var listID uint32
	haveListID := false

	for {
		magic, err := s.r.ReadUint64()
		if err != nil {
			return err
		}
		if magic != fileNodeListMagic {
			off, _ := s.r.Tell()
			return parseErrorAt(off-8, ErrBadMagic)
		}
		fragListID, err := s.r.ReadUint32()
		if err != nil {
			return err
		}
		if _, err := s.r.ReadUint32(); err != nil { // seqNo, read but not checked
			return err
		}
		if !haveListID {
			listID, haveListID = fragListID, true
		} else if fragListID != listID {
			off, _ := s.r.Tell()
			return parseErrorAt(off, ErrListIDMismatch)
		}

		for {
			pos, err := s.r.Tell()
			if err != nil {
				return err
			}
			if pos+24 > sectionEnd {
				break
			}
			header, err := readFileNodeHeader(s.r)
			if err != nil {
				return err
			}
			body, err := decodeFileNodeBody(s.r, header)
			if err != nil {
				return err
			}
			if err := s.applySideEffects(FileNode{Header: header, Body: body}); err != nil {
				return err
			}
			if header.ID == 0x00 || header.ID == idChunkTerminatorFND {
				break
			}
		}

		if err := s.r.Seek(sectionEnd - 20); err != nil {
			return err
		}
		trailer, err := s.r.ReadExact(12)
		if err != nil {
			return err
		}
		next := DecodeFCR64x32(trailer)
		if _, err := s.r.ReadExact(8); err != nil { // footer, unused
			return err
		}
		if IsNilFCR64x32(next) {
			return nil
		}
		if err := s.r.Seek(int64(next.Stp)); err != nil {
			return err
		}
		sectionEnd = int64(next.Stp + next.Cb)
	}
}

// applySideEffects implements spec §4.D's side-effect table: revision
// tracking, GIDT inserts, property-set/file-data-store decode triggers,
// and baseType==2 recursion.
func (s *parseState) applySideEffects(node FileNode) error {
	switch body := node.Body.(type) {
	case UnknownBody:
		s.addWarning("UnknownFileNodeId: 0x%03X", body.ID)
	case RevisionManifestStart4FNDBody:
		s.currentRevision = body.RID
	case RevisionManifestStart6FNDBody:
		s.currentRevision = body.RID
	case RevisionManifestStart7FNDBody:
		s.currentRevision = body.RID
	case GlobalIdTableEntryFNDXBody:
		s.gidt.insert(s.currentRevision, body.Index, body.GUID)
	case ObjectDeclarationWithRefCountFNDBody:
		if body.Decl.JCID.IsPropertySet {
			if err := s.decodeObjectPropertySet(body.Ref, body.Decl.OID, body.Decl.JCID); err != nil {
				return err
			}
		}
	case ObjectDeclaration2RefCountFNDBody:
		if body.Decl.JCID.IsPropertySet {
			if err := s.decodeObjectPropertySet(body.Ref, body.Decl.OID, body.Decl.JCID); err != nil {
				return err
			}
		}
	case ReadOnlyObjectDeclaration2RefCountFNDBody:
		if body.Decl.JCID.IsPropertySet {
			if err := s.decodeObjectPropertySet(body.Ref, body.Decl.OID, body.Decl.JCID); err != nil {
				return err
			}
		}
	case ObjectDeclarationFileData3RefCountFNDBody:
		oidStr := s.resolveOID(body.OID)
		if m := fileDataReferenceGUID.FindStringSubmatch(body.FileDataReference); m != nil {
			s.fileMeta[strings.ToLower(m[1])] = fileMetaEntry{Extension: body.Extension, OIDString: oidStr}
		}
	case FileDataStoreObjectReferenceFNDBody:
		if err := s.decodeFileDataStore(body); err != nil {
			return err
		}
	case ObjectSpaceManifestListReferenceFNDBody:
		if err := s.recurse(body.Ref); err != nil {
			return err
		}
	case RevisionManifestListReferenceFNDBody:
		if err := s.recurse(body.Ref); err != nil {
			return err
		}
	case ObjectGroupListReferenceFNDBody:
		if err := s.recurse(body.Ref); err != nil {
			return err
		}
	case FileDataStoreListReferenceFNDBody:
		if err := s.recurse(body.Ref); err != nil {
			return err
		}
	}
	return nil
}

// recurse walks a sub-FileNodeList reached through a baseType==2 node,
// saving and restoring the cursor per spec §5.
func (s *parseState) recurse(ref FCR) error {
	save, err := s.r.Tell()
	if err != nil {
		return err
	}
	if err := s.walkFileNodeList(ref); err != nil {
		return err
	}
	return s.r.Seek(save)
}

// decodeObjectPropertySet seeks to ref.Stp, decodes the property set,
// restores the cursor, and records the result. UnimplementedPropertyType
// is fatal only for this property set (spec §7); every other decode error
// propagates and aborts the whole parse.
func (s *parseState) decodeObjectPropertySet(ref FCR, oid CompactID, jcid JCID) error {
	if ref.IsNilAny() {
		return nil
	}
	save, err := s.r.Tell()
	if err != nil {
		return err
	}
	defer s.r.Seek(save)

	if err := s.r.Seek(int64(ref.Stp)); err != nil {
		return err
	}
	oidStr := s.resolveOID(oid)
	propSet, err := readObjectSpaceObjectPropSet(s.r)
	if err != nil {
		if errors.Is(err, ErrUnimplementedPropertyType) {
			s.addWarning("UnimplementedPropertyType for object %s", oidStr)
			return nil
		}
		return err
	}
	s.objects = append(s.objects, &objectRecord{
		OIDString: oidStr,
		JCIDVal:   jcid,
		Revision:  s.currentRevision,
		PropSet:   propSet.Body,
	})
	return nil
}

// decodeFileDataStore seeks to the referenced FileDataStoreObject, reads
// its payload, restores the cursor, and records the content keyed by the
// lowercased reference GUID.
func (s *parseState) decodeFileDataStore(body FileDataStoreObjectReferenceFNDBody) error {
	if body.Ref.IsNilAny() {
		return nil
	}
	save, err := s.r.Tell()
	if err != nil {
		return err
	}
	defer s.r.Seek(save)

	data, err := decodeFileDataStoreObject(s.r, body.Ref)
	if err != nil {
		return err
	}
	s.fileContent[strings.ToLower(body.GUIDReference.String())] = data
	return nil
}
