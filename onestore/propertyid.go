package onestore

// PropertyID drives PropertySet value decoding: id:26 | type:5 | boolValue:1.
type PropertyID struct {
	Raw       uint32
	ID        uint32
	Type      uint8
	BoolValue bool
}

func unpackPropertyID(v uint32) PropertyID {
	return PropertyID{
		Raw:       v,
		ID:        v & 0x3FFFFFF,
		Type:      uint8((v >> 26) & 0x1F),
		BoolValue: (v>>31)&1 == 1,
	}
}

func readPropertyID(r *Reader) (PropertyID, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return PropertyID{}, err
	}
	return unpackPropertyID(v), nil
}

// propertyIDNames maps a raw PropertyID value to its name. The source
// table (original_source's PropertyID._property_id_name_mapping) is a
// Python dict literal with a handful of duplicate keys (e.g. 0x24001C1F,
// 0x24001C20); Python keeps the last entry, so entries below are applied
// in source order to reproduce that exactly.
var propertyIDNames = map[uint32]string{}

func addPropertyIDName(raw uint32, name string) {
	propertyIDNames[raw] = name
}

func init() {
	addPropertyIDName(0x08001C00, "LayoutTightLayout")
	addPropertyIDName(0x14001C01, "PageWidth")
	addPropertyIDName(0x14001C02, "PageHeight")
	addPropertyIDName(0x0C001C03, "OutlineElementChildLevel")
	addPropertyIDName(0x08001C04, "Bold")
	addPropertyIDName(0x08001C05, "Italic")
	addPropertyIDName(0x08001C06, "Underline")
	addPropertyIDName(0x08001C07, "Strikethrough")
	addPropertyIDName(0x08001C08, "Superscript")
	addPropertyIDName(0x08001C09, "Subscript")
	addPropertyIDName(0x1C001C0A, "Font")
	addPropertyIDName(0x10001C0B, "FontSize")
	addPropertyIDName(0x14001C0C, "FontColor")
	addPropertyIDName(0x14001C0D, "Highlight")
	addPropertyIDName(0x1C001C12, "RgOutlineIndentDistance")
	addPropertyIDName(0x0C001C13, "BodyTextAlignment")
	addPropertyIDName(0x14001C14, "OffsetFromParentHoriz")
	addPropertyIDName(0x14001C15, "OffsetFromParentVert")
	addPropertyIDName(0x1C001C1A, "NumberListFormat")
	addPropertyIDName(0x14001C1B, "LayoutMaxWidth")
	addPropertyIDName(0x14001C1C, "LayoutMaxHeight")
	addPropertyIDName(0x24001C1F, "ContentChildNodesOfOutlineElement")
	addPropertyIDName(0x24001C1F, "ContentChildNodesOfPageManifest")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfSection")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfPage")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfTitle")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfOutline")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfOutlineElement")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfTable")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfTableRow")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfTableCell")
	addPropertyIDName(0x24001C20, "ElementChildNodesOfVersionHistory")
	addPropertyIDName(0x08001E1E, "EnableHistory")
	addPropertyIDName(0x1C001C22, "RichEditTextUnicode")
	addPropertyIDName(0x24001C26, "ListNodes")
	addPropertyIDName(0x1C001C30, "NotebookManagementEntityGuid")
	addPropertyIDName(0x08001C34, "OutlineElementRTL")
	addPropertyIDName(0x14001C3B, "LanguageID")
	addPropertyIDName(0x14001C3E, "LayoutAlignmentInParent")
	addPropertyIDName(0x20001C3F, "PictureContainer")
	addPropertyIDName(0x14001C4C, "PageMarginTop")
	addPropertyIDName(0x14001C4D, "PageMarginBottom")
	addPropertyIDName(0x14001C4E, "PageMarginLeft")
	addPropertyIDName(0x14001C4F, "PageMarginRight")
	addPropertyIDName(0x1C001C52, "ListFont")
	addPropertyIDName(0x18001C65, "TopologyCreationTimeStamp")
	addPropertyIDName(0x14001C84, "LayoutAlignmentSelf")
	addPropertyIDName(0x08001C87, "IsTitleTime")
	addPropertyIDName(0x08001C88, "IsBoilerText")
	addPropertyIDName(0x14001C8B, "PageSize")
	addPropertyIDName(0x08001C8E, "PortraitPage")
	addPropertyIDName(0x08001C91, "EnforceOutlineStructure")
	addPropertyIDName(0x08001C92, "EditRootRTL")
	addPropertyIDName(0x08001CB2, "CannotBeSelected")
	addPropertyIDName(0x08001CB4, "IsTitleText")
	addPropertyIDName(0x08001CB5, "IsTitleDate")
	addPropertyIDName(0x14001CB7, "ListRestart")
	addPropertyIDName(0x08001CBD, "IsLayoutSizeSetByUser")
	addPropertyIDName(0x14001CCB, "ListSpacingMu")
	addPropertyIDName(0x14001CDB, "LayoutOutlineReservedWidth")
	addPropertyIDName(0x08001CDC, "LayoutResolveChildCollisions")
	addPropertyIDName(0x08001CDE, "IsReadOnly")
	addPropertyIDName(0x14001CEC, "LayoutMinimumOutlineWidth")
	addPropertyIDName(0x14001CF1, "LayoutCollisionPriority")
	addPropertyIDName(0x1C001CF3, "CachedTitleString")
	addPropertyIDName(0x08001CF9, "DescendantsCannotBeMoved")
	addPropertyIDName(0x10001CFE, "RichEditTextLangID")
	addPropertyIDName(0x08001CFF, "LayoutTightAlignment")
	addPropertyIDName(0x0C001D01, "Charset")
	addPropertyIDName(0x14001D09, "CreationTimeStamp")
	addPropertyIDName(0x08001D0C, "Deletable")
	addPropertyIDName(0x10001D0E, "ListMSAAIndex")
	addPropertyIDName(0x08001D13, "IsBackground")
	addPropertyIDName(0x14001D24, "IRecordMedia")
	addPropertyIDName(0x1C001D3C, "CachedTitleStringFromPage")
	addPropertyIDName(0x14001D57, "RowCount")
	addPropertyIDName(0x14001D58, "ColumnCount")
	addPropertyIDName(0x08001D5E, "TableBordersVisible")
	addPropertyIDName(0x24001D5F, "StructureElementChildNodes")
	addPropertyIDName(0x2C001D63, "ChildGraphSpaceElementNodes")
	addPropertyIDName(0x1C001D66, "TableColumnWidths")
	addPropertyIDName(0x1C001D75, "Author")
	addPropertyIDName(0x18001D77, "LastModifiedTimeStamp")
	addPropertyIDName(0x20001D78, "AuthorOriginal")
	addPropertyIDName(0x20001D79, "AuthorMostRecent")
	addPropertyIDName(0x14001D7A, "LastModifiedTime")
	addPropertyIDName(0x08001D7C, "IsConflictPage")
	addPropertyIDName(0x1C001D7D, "TableColumnsLocked")
	addPropertyIDName(0x14001D82, "SchemaRevisionInOrderToRead")
	addPropertyIDName(0x08001D96, "IsConflictObjectForRender")
	addPropertyIDName(0x20001D9B, "EmbeddedFileContainer")
	addPropertyIDName(0x1C001D9C, "EmbeddedFileName")
	addPropertyIDName(0x1C001D9D, "SourceFilepath")
	addPropertyIDName(0x1C001D9E, "ConflictingUserName")
	addPropertyIDName(0x1C001DD7, "ImageFilename")
	addPropertyIDName(0x08001DDB, "IsConflictObjectForSelection")
	addPropertyIDName(0x14001DFF, "PageLevel")
	addPropertyIDName(0x1C001E12, "TextRunIndex")
	addPropertyIDName(0x24001E13, "TextRunFormatting")
	addPropertyIDName(0x08001E14, "Hyperlink")
	addPropertyIDName(0x0C001E15, "UnderlineType")
	addPropertyIDName(0x08001E16, "Hidden")
	addPropertyIDName(0x08001E19, "HyperlinkProtected")
	addPropertyIDName(0x08001E22, "TextRunIsEmbeddedObject")
	addPropertyIDName(0x14001E26, "CellShadingColor")
	addPropertyIDName(0x1C001E58, "ImageAltText")
	addPropertyIDName(0x08003401, "MathFormatting")
	addPropertyIDName(0x2000342C, "ParagraphStyle")
	addPropertyIDName(0x1400342E, "ParagraphSpaceBefore")
	addPropertyIDName(0x1400342F, "ParagraphSpaceAfter")
	addPropertyIDName(0x14003430, "ParagraphLineSpacingExact")
	addPropertyIDName(0x24003442, "MetaDataObjectsAboveGraphSpace")
	addPropertyIDName(0x24003458, "TextRunDataObject")
	addPropertyIDName(0x40003499, "TextRunData")
	addPropertyIDName(0x1C00345A, "ParagraphStyleId")
	addPropertyIDName(0x08003462, "HasVersionPages")
	addPropertyIDName(0x10003463, "ActionItemType")
	addPropertyIDName(0x10003464, "NoteTagShape")
	addPropertyIDName(0x14003465, "NoteTagHighlightColor")
	addPropertyIDName(0x14003466, "NoteTagTextColor")
	addPropertyIDName(0x14003467, "NoteTagPropertyStatus")
	addPropertyIDName(0x1C003468, "NoteTagLabel")
	addPropertyIDName(0x1400346E, "NoteTagCreated")
	addPropertyIDName(0x1400346F, "NoteTagCompleted")
	addPropertyIDName(0x20003488, "NoteTagDefinitionOid")
	addPropertyIDName(0x04003489, "NoteTagStates")
	addPropertyIDName(0x10003470, "ActionItemStatus")
	addPropertyIDName(0x0C003473, "ActionItemSchemaVersion")
	addPropertyIDName(0x08003476, "ReadingOrderRTL")
	addPropertyIDName(0x0C003477, "ParagraphAlignment")
	addPropertyIDName(0x3400347B, "VersionHistoryGraphSpaceContextNodes")
	addPropertyIDName(0x14003480, "DisplayedPageNumber")
	addPropertyIDName(0x1C00349B, "SectionDisplayName")
	addPropertyIDName(0x1C00348A, "NextStyle")
	addPropertyIDName(0x200034C8, "WebPictureContainer14")
	addPropertyIDName(0x140034CB, "ImageUploadState")
	addPropertyIDName(0x1C003498, "TextExtendedAscii")
	addPropertyIDName(0x140034CD, "PictureWidth")
	addPropertyIDName(0x140034CE, "PictureHeight")
	addPropertyIDName(0x14001D0F, "PageMarginOriginX")
	addPropertyIDName(0x14001D10, "PageMarginOriginY")
	addPropertyIDName(0x1C001E20, "WzHyperlinkUrl")
	addPropertyIDName(0x1400346B, "TaskTagDueDate")
	addPropertyIDName(0x1C001DE9, "IsDeletedGraphSpaceContent")
}

// Name returns the property's name, or "Unknown" if the raw value isn't in
// the table.
func (p PropertyID) Name() string {
	if name, ok := propertyIDNames[p.Raw]; ok {
		return name
	}
	return "Unknown"
}
