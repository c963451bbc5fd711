package onestore

import "github.com/google/uuid"

// FileNode ids recognized by decodeFileNodeBody, per spec §4.D plus the
// supplemental ids original_source's FileNode._FileNodeIDs carries that the
// distilled id table omits (0x022, 0x025, 0x026, 0x073, 0x07C, 0x0A5, 0x0C2).
const (
	idObjectSpaceManifestRootFND                 = 0x004
	idObjectSpaceManifestListReferenceFND        = 0x008
	idObjectSpaceManifestListStartFND            = 0x00C
	idRevisionManifestListReferenceFND           = 0x010
	idRevisionManifestListStartFND               = 0x014
	idRevisionManifestStart4FND                  = 0x01B
	idRevisionManifestEndFND                     = 0x01C
	idRevisionManifestStart6FND                  = 0x01E
	idRevisionManifestStart7FND                  = 0x01F
	idGlobalIdTableStartFNDX                     = 0x021
	idGlobalIdTableStart2FND                     = 0x022
	idGlobalIdTableEntryFNDX                     = 0x024
	idGlobalIdTableEntry2FNDX                    = 0x025
	idGlobalIdTableEntry3FNDX                    = 0x026
	idGlobalIdTableEndFNDX                       = 0x028
	idObjectDeclarationWithRefCountFND           = 0x02D
	idObjectDeclarationWithRefCount2FND          = 0x02E
	idObjectRevisionWithRefCountFNDX             = 0x041
	idObjectRevisionWithRefCount2FNDX            = 0x042
	idRootObjectReference2FNDX                   = 0x059
	idRootObjectReference3FND                    = 0x05A
	idRevisionRoleDeclarationFND                 = 0x05C
	idRevisionRoleAndContextDeclarationFND       = 0x05D
	idObjectDeclarationFileData3RefCountFND      = 0x072
	idObjectDeclarationFileData3LargeRefCountFND = 0x073
	idObjectDataEncryptionKeyV2FNDX              = 0x07C
	idObjectInfoDependencyOverridesFND           = 0x084
	idDataSignatureGroupDefinitionFND            = 0x08C
	idFileDataStoreListReferenceFND              = 0x090
	idFileDataStoreObjectReferenceFND            = 0x094
	idObjectDeclaration2RefCountFND              = 0x0A4
	idObjectDeclaration2LargeRefCountFND         = 0x0A5
	idObjectGroupListReferenceFND                = 0x0B0
	idObjectGroupStartFND                        = 0x0B4
	idObjectGroupEndFND                          = 0x0B8
	idHashedChunkDescriptor2FND                  = 0x0C2
	idReadOnlyObjectDeclaration2RefCountFND      = 0x0C4
	idReadOnlyObjectDeclaration2LargeRefCountFND = 0x0C5
	idChunkTerminatorFND                         = 0x0FF
)

// FileNode is a decoded header plus its dispatched body. Body is one of the
// *Body structs below (an empty struct for bodies specified as empty) or
// UnknownBody for unrecognized ids.
type FileNode struct {
	Header FileNodeHeader
	Body   any
}

// UnknownBody records an unrecognized id; the reader has already been
// advanced past its body using the header's size field alone.
type UnknownBody struct {
	ID uint16
}

type declarationBody struct {
	OID  CompactID
	JCID JCID
}

func readDeclarationBody(r *Reader) (declarationBody, error) {
	oid, err := readCompactID(r)
	if err != nil {
		return declarationBody{}, err
	}
	jcid, err := readJCID(r)
	if err != nil {
		return declarationBody{}, err
	}
	return declarationBody{OID: oid, JCID: jcid}, nil
}

type declaration2Body struct {
	OID               CompactID
	JCID              JCID
	HasOidReferences  bool
	HasOsidReferences bool
}

func readDeclaration2Body(r *Reader) (declaration2Body, error) {
	oid, err := readCompactID(r)
	if err != nil {
		return declaration2Body{}, err
	}
	jcid, err := readJCID(r)
	if err != nil {
		return declaration2Body{}, err
	}
	flags, err := r.ReadUint8()
	if err != nil {
		return declaration2Body{}, err
	}
	return declaration2Body{
		OID:               oid,
		JCID:              jcid,
		HasOidReferences:  flags&0x1 != 0,
		HasOsidReferences: flags&0x2 != 0,
	}, nil
}

// readStringBuf reads a u32 character count followed by that many UTF-16LE
// characters, per the FileDataReference/Extension shape in
// ObjectDeclarationFileData3RefCountFND.
func readStringBuf(r *Reader) (string, error) {
	chars, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	b, err := r.ReadExact(int(chars) * 2)
	if err != nil {
		return "", err
	}
	s, ok := utf16leToString(b)
	if !ok {
		return "", nil
	}
	return s, nil
}

type ObjectSpaceManifestRootFNDBody struct{ Root ExtendedGUID }
type ObjectSpaceManifestListReferenceFNDBody struct {
	Ref FCR
	ID  ExtendedGUID
}
type ObjectSpaceManifestListStartFNDBody struct{ ID ExtendedGUID }
type RevisionManifestListReferenceFNDBody struct{ Ref FCR }
type RevisionManifestListStartFNDBody struct {
	ID       ExtendedGUID
	Instance uint32
}
type RevisionManifestStart4FNDBody struct {
	RID          ExtendedGUID
	RIDDependent ExtendedGUID
	Time         uint64
	Role         uint32
	ODCS         uint16
}
type RevisionManifestEndFNDBody struct{}
type RevisionManifestStart6FNDBody struct {
	RID          ExtendedGUID
	RIDDependent ExtendedGUID
	Role         uint32
	ODCS         uint16
}
type RevisionManifestStart7FNDBody struct {
	RevisionManifestStart6FNDBody
	GCTXID ExtendedGUID
}
type GlobalIdTableStartFNDXBody struct{}
type GlobalIdTableEntryFNDXBody struct {
	Index uint32
	GUID  uuid.UUID
}
type GlobalIdTableEndFNDXBody struct{}
type ObjectDeclarationWithRefCountFNDBody struct {
	Ref  FCR
	Decl declarationBody
	CRef uint32
}
type ObjectRevisionWithRefCountFNDXBody struct {
	Ref  FCR
	RID  ExtendedGUID
	CRef uint32
}
type RootObjectReference2FNDXBody struct {
	OID  CompactID
	Role uint32
}
type RootObjectReference3FNDBody struct {
	OID  ExtendedGUID
	Role uint32
}
type RevisionRoleDeclarationFNDBody struct {
	RID  ExtendedGUID
	Role uint32
}
type RevisionRoleAndContextDeclarationFNDBody struct {
	RevisionRoleDeclarationFNDBody
	GCTXID ExtendedGUID
}
type ObjectDeclarationFileData3RefCountFNDBody struct {
	OID               CompactID
	JCID              JCID
	CRef              uint32
	FileDataReference string
	Extension         string
}
type ObjectDataEncryptionKeyV2FNDXBody struct{ Ref FCR }
type ObjectInfoDependencyOverridesFNDBody struct {
	Ref   FCR
	IsNil bool
}
type DataSignatureGroupDefinitionFNDBody struct{ DataSignature ExtendedGUID }
type FileDataStoreListReferenceFNDBody struct{ Ref FCR }
type FileDataStoreObjectReferenceFNDBody struct {
	Ref           FCR
	GUIDReference uuid.UUID
}
type ObjectDeclaration2RefCountFNDBody struct {
	Ref  FCR
	Decl declaration2Body
	CRef uint32
}
type ObjectGroupListReferenceFNDBody struct {
	Ref FCR
	OID ExtendedGUID
}
type ObjectGroupStartFNDBody struct{ OID ExtendedGUID }
type ObjectGroupEndFNDBody struct{}
type HashedChunkDescriptor2FNDBody struct{ Ref FCR }
type ReadOnlyObjectDeclaration2RefCountFNDBody struct {
	ObjectDeclaration2RefCountFNDBody
	MD5 [16]byte
}
type ChunkTerminatorFNDBody struct{}

// decodeFileNodeBody dispatches on h.ID, per spec §4.D. Unknown ids are
// skipped using h.Size alone, never by attempting to interpret the body.
func decodeFileNodeBody(r *Reader, h FileNodeHeader) (any, error) {
	switch h.ID {
	case idObjectSpaceManifestRootFND:
		g, err := readExtendedGUID(r)
		return ObjectSpaceManifestRootFNDBody{Root: g}, err
	case idObjectSpaceManifestListReferenceFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		g, err := readExtendedGUID(r)
		return ObjectSpaceManifestListReferenceFNDBody{Ref: ref, ID: g}, err
	case idObjectSpaceManifestListStartFND:
		g, err := readExtendedGUID(r)
		return ObjectSpaceManifestListStartFNDBody{ID: g}, err
	case idRevisionManifestListReferenceFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		return RevisionManifestListReferenceFNDBody{Ref: ref}, err
	case idRevisionManifestListStartFND:
		g, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		inst, err := r.ReadUint32()
		return RevisionManifestListStartFNDBody{ID: g, Instance: inst}, err
	case idRevisionManifestStart4FND:
		rid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		ridDep, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		ft, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		role, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		odcs, err := r.ReadUint16()
		return RevisionManifestStart4FNDBody{RID: rid, RIDDependent: ridDep, Time: ft, Role: role, ODCS: odcs}, err
	case idRevisionManifestEndFND:
		return RevisionManifestEndFNDBody{}, nil
	case idRevisionManifestStart6FND:
		rid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		ridDep, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		role, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		odcs, err := r.ReadUint16()
		return RevisionManifestStart6FNDBody{RID: rid, RIDDependent: ridDep, Role: role, ODCS: odcs}, err
	case idRevisionManifestStart7FND:
		rid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		ridDep, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		role, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		odcs, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		gctxid, err := readExtendedGUID(r)
		return RevisionManifestStart7FNDBody{
			RevisionManifestStart6FNDBody: RevisionManifestStart6FNDBody{RID: rid, RIDDependent: ridDep, Role: role, ODCS: odcs},
			GCTXID:                        gctxid,
		}, err
	case idGlobalIdTableStartFNDX, idGlobalIdTableStart2FND:
		return GlobalIdTableStartFNDXBody{}, nil
	case idGlobalIdTableEntryFNDX, idGlobalIdTableEntry2FNDX, idGlobalIdTableEntry3FNDX:
		idx, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		g, err := r.ReadGUID()
		return GlobalIdTableEntryFNDXBody{Index: idx, GUID: g}, err
	case idGlobalIdTableEndFNDX:
		return GlobalIdTableEndFNDXBody{}, nil
	case idObjectDeclarationWithRefCountFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		decl, err := readDeclarationBody(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint8()
		return ObjectDeclarationWithRefCountFNDBody{Ref: ref, Decl: decl, CRef: uint32(cref)}, err
	case idObjectDeclarationWithRefCount2FND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		decl, err := readDeclarationBody(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint32()
		return ObjectDeclarationWithRefCountFNDBody{Ref: ref, Decl: decl, CRef: cref}, err
	case idObjectRevisionWithRefCountFNDX:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		rid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint8()
		return ObjectRevisionWithRefCountFNDXBody{Ref: ref, RID: rid, CRef: uint32(cref)}, err
	case idObjectRevisionWithRefCount2FNDX:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		rid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint32()
		return ObjectRevisionWithRefCountFNDXBody{Ref: ref, RID: rid, CRef: cref}, err
	case idRootObjectReference2FNDX:
		oid, err := readCompactID(r)
		if err != nil {
			return nil, err
		}
		role, err := r.ReadUint32()
		return RootObjectReference2FNDXBody{OID: oid, Role: role}, err
	case idRootObjectReference3FND:
		oid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		role, err := r.ReadUint32()
		return RootObjectReference3FNDBody{OID: oid, Role: role}, err
	case idRevisionRoleDeclarationFND:
		rid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		role, err := r.ReadUint32()
		return RevisionRoleDeclarationFNDBody{RID: rid, Role: role}, err
	case idRevisionRoleAndContextDeclarationFND:
		rid, err := readExtendedGUID(r)
		if err != nil {
			return nil, err
		}
		role, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		gctxid, err := readExtendedGUID(r)
		return RevisionRoleAndContextDeclarationFNDBody{
			RevisionRoleDeclarationFNDBody: RevisionRoleDeclarationFNDBody{RID: rid, Role: role},
			GCTXID:                         gctxid,
		}, err
	case idObjectDeclarationFileData3RefCountFND:
		oid, err := readCompactID(r)
		if err != nil {
			return nil, err
		}
		jcid, err := readJCID(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		fdRef, err := readStringBuf(r)
		if err != nil {
			return nil, err
		}
		ext, err := readStringBuf(r)
		return ObjectDeclarationFileData3RefCountFNDBody{OID: oid, JCID: jcid, CRef: uint32(cref), FileDataReference: fdRef, Extension: ext}, err
	case idObjectDeclarationFileData3LargeRefCountFND:
		oid, err := readCompactID(r)
		if err != nil {
			return nil, err
		}
		jcid, err := readJCID(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		fdRef, err := readStringBuf(r)
		if err != nil {
			return nil, err
		}
		ext, err := readStringBuf(r)
		return ObjectDeclarationFileData3RefCountFNDBody{OID: oid, JCID: jcid, CRef: cref, FileDataReference: fdRef, Extension: ext}, err
	case idObjectDataEncryptionKeyV2FNDX:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		return ObjectDataEncryptionKeyV2FNDXBody{Ref: ref}, err
	case idObjectInfoDependencyOverridesFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		return ObjectInfoDependencyOverridesFNDBody{Ref: ref, IsNil: ref.IsNil(h.StpFormat)}, nil
	case idDataSignatureGroupDefinitionFND:
		g, err := readExtendedGUID(r)
		return DataSignatureGroupDefinitionFNDBody{DataSignature: g}, err
	case idFileDataStoreListReferenceFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		return FileDataStoreListReferenceFNDBody{Ref: ref}, err
	case idFileDataStoreObjectReferenceFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		g, err := r.ReadGUID()
		return FileDataStoreObjectReferenceFNDBody{Ref: ref, GUIDReference: g}, err
	case idObjectDeclaration2RefCountFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		decl, err := readDeclaration2Body(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint8()
		return ObjectDeclaration2RefCountFNDBody{Ref: ref, Decl: decl, CRef: uint32(cref)}, err
	case idObjectDeclaration2LargeRefCountFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		decl, err := readDeclaration2Body(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint32()
		return ObjectDeclaration2RefCountFNDBody{Ref: ref, Decl: decl, CRef: cref}, err
	case idObjectGroupListReferenceFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		g, err := readExtendedGUID(r)
		return ObjectGroupListReferenceFNDBody{Ref: ref, OID: g}, err
	case idObjectGroupStartFND:
		g, err := readExtendedGUID(r)
		return ObjectGroupStartFNDBody{OID: g}, err
	case idObjectGroupEndFND:
		return ObjectGroupEndFNDBody{}, nil
	case idHashedChunkDescriptor2FND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		return HashedChunkDescriptor2FNDBody{Ref: ref}, err
	case idReadOnlyObjectDeclaration2RefCountFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		decl, err := readDeclaration2Body(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		md5, err := r.ReadExact(16)
		if err != nil {
			return nil, err
		}
		var md5arr [16]byte
		copy(md5arr[:], md5)
		return ReadOnlyObjectDeclaration2RefCountFNDBody{
			ObjectDeclaration2RefCountFNDBody: ObjectDeclaration2RefCountFNDBody{Ref: ref, Decl: decl, CRef: uint32(cref)},
			MD5:                               md5arr,
		}, nil
	case idReadOnlyObjectDeclaration2LargeRefCountFND:
		ref, err := DecodeFCR(r, h.StpFormat, h.CbFormat)
		if err != nil {
			return nil, err
		}
		decl, err := readDeclaration2Body(r)
		if err != nil {
			return nil, err
		}
		cref, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		md5, err := r.ReadExact(16)
		if err != nil {
			return nil, err
		}
		var md5arr [16]byte
		copy(md5arr[:], md5)
		return ReadOnlyObjectDeclaration2RefCountFNDBody{
			ObjectDeclaration2RefCountFNDBody: ObjectDeclaration2RefCountFNDBody{Ref: ref, Decl: decl, CRef: cref},
			MD5:                               md5arr,
		}, nil
	case idChunkTerminatorFND:
		return ChunkTerminatorFNDBody{}, nil
	default:
		skip := int(h.Size) - 4
		if skip > 0 {
			if _, err := r.ReadExact(skip); err != nil {
				return nil, err
			}
		}
		return UnknownBody{ID: h.ID}, nil
	}
}

// decodeFileDataStoreObject seeks to ref.Stp and returns the FileData payload
// of the FileDataStoreObject stored there. The guidHeader/guidFooter values
// wrapping it are read but not validated: a mismatch here is not one of this
// package's error kinds.
func decodeFileDataStoreObject(r *Reader, ref FCR) ([]byte, error) {
	if err := r.Seek(int64(ref.Stp)); err != nil {
		return nil, err
	}
	if _, err := r.ReadExact(16); err != nil { // guidHeader
		return nil, err
	}
	cb, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadExact(4); err != nil { // unused
		return nil, err
	}
	if _, err := r.ReadExact(8); err != nil { // reserved
		return nil, err
	}
	data, err := r.ReadExact(int(cb))
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadExact(16); err != nil { // guidFooter
		return nil, err
	}
	return data, nil
}
