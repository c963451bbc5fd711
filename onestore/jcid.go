package onestore

// JCID classifies an object: index:16 | IsBinary:1 | IsPropertySet:1 |
// IsGraphNode:1 | IsFileData:1 | IsReadOnly:1 | reserved:11.
type JCID struct {
	Raw           uint32
	Index         uint16
	IsBinary      bool
	IsPropertySet bool
	IsGraphNode   bool
	IsFileData    bool
	IsReadOnly    bool
}

func unpackJCID(v uint32) JCID {
	return JCID{
		Raw:           v,
		Index:         uint16(v & 0xFFFF),
		IsBinary:      (v>>16)&1 == 1,
		IsPropertySet: (v>>17)&1 == 1,
		IsGraphNode:   (v>>18)&1 == 1,
		IsFileData:    (v>>19)&1 == 1,
		IsReadOnly:    (v>>20)&1 == 1,
	}
}

func readJCID(r *Reader) (JCID, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return JCID{}, err
	}
	return unpackJCID(v), nil
}

// jcidNames preserves every candidate name seen for a given raw JCID
// value. The source table this is carried over from (original_source's
// JCID._jcid_name_mapping) is a Python dict literal with duplicate keys,
// which silently keeps only the last entry; since it is unclear which
// name is authoritative, every candidate is kept here and callers pick by
// context (see Names/Name).
var jcidNames = map[uint32][]string{}

func addJCIDName(raw uint32, name string) {
	jcidNames[raw] = append(jcidNames[raw], name)
}

func init() {
	addJCIDName(0x00120001, "jcidReadOnlyPersistablePropertyContainerForAuthor")
	addJCIDName(0x00020001, "jcidPersistablePropertyContainerForTOC")
	addJCIDName(0x00020001, "jcidPersistablePropertyContainerForTOCSection")
	addJCIDName(0x00060007, "jcidSectionNode")
	addJCIDName(0x00060008, "jcidPageSeriesNode")
	addJCIDName(0x0006000B, "jcidPageNode")
	addJCIDName(0x0006000C, "jcidOutlineNode")
	addJCIDName(0x0006000D, "jcidOutlineElementNode")
	addJCIDName(0x0006000E, "jcidRichTextOENode")
	addJCIDName(0x00060011, "jcidImageNode")
	addJCIDName(0x00060012, "jcidNumberListNode")
	addJCIDName(0x00060019, "jcidOutlineGroup")
	addJCIDName(0x00060022, "jcidTableNode")
	addJCIDName(0x00060023, "jcidTableRowNode")
	addJCIDName(0x00060024, "jcidTableCellNode")
	addJCIDName(0x0006002C, "jcidTitleNode")
	addJCIDName(0x00020030, "jcidPageMetaData")
	addJCIDName(0x00020031, "jcidSectionMetaData")
	addJCIDName(0x00060035, "jcidEmbeddedFileNode")
	addJCIDName(0x00060037, "jcidPageManifestNode")
	addJCIDName(0x00020038, "jcidConflictPageMetaData")
	addJCIDName(0x0006003C, "jcidVersionHistoryContent")
	addJCIDName(0x0006003D, "jcidVersionProxy")
	addJCIDName(0x00120043, "jcidNoteTagSharedDefinitionContainer")
	addJCIDName(0x00020044, "jcidRevisionMetaData")
	addJCIDName(0x00020046, "jcidVersionHistoryMetaData")
	addJCIDName(0x0012004D, "jcidParagraphStyleObject")
	addJCIDName(0x0012004D, "jcidParagraphStyleObjectForText")
}

// Names returns every candidate name recorded for this JCID's raw value,
// in source order, or nil if none is known.
func (j JCID) Names() []string {
	return jcidNames[j.Raw]
}

// Name returns the last (highest-priority, matching the original
// dict-literal's last-wins artifact) candidate name, or "Unknown" if none
// is known.
func (j JCID) Name() string {
	names := jcidNames[j.Raw]
	if len(names) == 0 {
		return "Unknown"
	}
	return names[len(names)-1]
}
