package onestore

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// PropertyEntry is one decoded property-set-bearing object, per spec §4.H.
type PropertyEntry struct {
	JCIDName   string
	OIDString  string
	Properties map[string]any
}

// FileEntry is one embedded file, collated from the two node kinds that
// contribute to it (spec §4.H's file collation rule).
type FileEntry struct {
	Extension string
	Content   []byte
	OIDString string
}

// LinkEntry is one URL surfaced from a property set, per spec §4.H's link
// collation rule.
type LinkEntry struct {
	JCIDName  string
	OIDString string
	URL       string
	Source    string
}

// Document is the parsed, immutable view of a revision-store file. It is
// built once by Open; nothing is computed lazily (spec §9's "Lazy caches"
// design note: laziness buys nothing when the whole file is resident).
type Document struct {
	header     Header
	properties []PropertyEntry
	files      map[string]FileEntry
	links      []LinkEntry
	warnings   []string
}

// Open parses r eagerly: reads the 1024-byte header, validates the file
// signature, and walks the root FileNodeList plus everything it reaches.
func Open(r io.ReadSeeker) (*Document, error) {
	reader := NewReader(r)
	header, err := decodeHeader(reader)
	if err != nil {
		return nil, err
	}

	state := newParseState(reader)
	if !header.FCRFileNodeListRoot.IsNilAny() {
		if err := state.walkFileNodeList(header.FCRFileNodeListRoot); err != nil {
			return nil, err
		}
	}

	doc := &Document{header: header, warnings: state.warnings}
	doc.formatProperties(state)
	doc.collateFiles(state)
	doc.collateLinks()
	return doc, nil
}

func (d *Document) warn(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

func (d *Document) formatProperties(state *parseState) {
	d.properties = make([]PropertyEntry, 0, len(state.objects))
	for _, obj := range state.objects {
		if obj.PropSet == nil {
			continue
		}
		d.properties = append(d.properties, PropertyEntry{
			JCIDName:   obj.JCIDVal.Name(),
			OIDString:  obj.OIDString,
			Properties: formatPropertySet(obj.PropSet, obj.Revision, state.gidt, d.warn),
		})
	}
}

func formatPropertySet(ps *PropertySet, revision ExtendedGUID, g *gidt, warn func(string, ...any)) map[string]any {
	out := make(map[string]any, len(ps.IDs))
	for i, id := range ps.IDs {
		out[id.Name()] = formatPropertyValue(id.Name(), id.Type, ps.Values[i], revision, g, warn)
	}
	return out
}

func formatPropertyValue(name string, propType uint8, raw any, revision ExtendedGUID, g *gidt, warn func(string, ...any)) any {
	switch v := raw.(type) {
	case []byte:
		return formatRawValue(name, propType, v)
	case []CompactID:
		resolved := make([]string, len(v))
		for i, cid := range v {
			eg, ok := g.resolve(revision, cid)
			if !ok {
				warn("%s: revision %s guidIndex %d", ErrMissingGIDTEntry, revision, cid.GUIDIndex)
				resolved[i] = "<missing>"
				continue
			}
			resolved[i] = eg.String()
		}
		if propType == 0x8 || propType == 0xA || propType == 0xC {
			if len(resolved) == 0 {
				return "<missing>"
			}
			return resolved[0]
		}
		return resolved
	case *PropertySet:
		return formatPropertySet(v, revision, g, warn)
	default:
		return v // nil or bool
	}
}

func (d *Document) collateFiles(state *parseState) {
	d.files = make(map[string]FileEntry, len(state.fileContent)+len(state.fileMeta))
	for guid, content := range state.fileContent {
		d.files[guid] = FileEntry{Content: content}
	}
	for guid, meta := range state.fileMeta {
		entry := d.files[guid]
		entry.Extension = meta.Extension
		entry.OIDString = meta.OIDString
		d.files[guid] = entry
	}
}

var richTextURL = regexp.MustCompile(`(?i)(https?://|mailto:|onenote:)[^\s<>"']+`)

const trailingPunctuation = ")].,;:!?\"'、。"

func (d *Document) collateLinks() {
	seen := make(map[string]bool)
	emit := func(entry LinkEntry) {
		key := entry.OIDString + "\x00" + entry.URL
		if seen[key] {
			return
		}
		seen[key] = true
		d.links = append(d.links, entry)
	}

	for _, prop := range d.properties {
		if v, ok := prop.Properties["WzHyperlinkUrl"]; ok {
			if s, ok := v.(string); ok {
				url := strings.TrimRight(strings.Trim(s, "\x00"), " \t\r\n")
				if url != "" {
					emit(LinkEntry{JCIDName: prop.JCIDName, OIDString: prop.OIDString, URL: url, Source: "WzHyperlinkUrl"})
				}
			}
		}
		if v, ok := prop.Properties["RichEditTextUnicode"]; ok {
			if s, ok := v.(string); ok {
				for _, m := range richTextURL.FindAllString(s, -1) {
					url := strings.TrimRight(m, trailingPunctuation)
					emit(LinkEntry{JCIDName: prop.JCIDName, OIDString: prop.OIDString, URL: url, Source: "RichEditTextUnicode"})
				}
			}
		}
	}
}

// Properties returns every decoded property-set-bearing object.
func (d *Document) Properties() []PropertyEntry { return d.properties }

// Files returns the collated embedded files, keyed by lowercased GUID.
func (d *Document) Files() map[string]FileEntry { return d.files }

// Links returns every URL surfaced from WzHyperlinkUrl/RichEditTextUnicode
// properties, deduplicated per (identity, url).
func (d *Document) Links() []LinkEntry { return d.links }

// HeaderSummary renders the header's diagnostic fields verbatim.
func (d *Document) HeaderSummary() map[string]string { return d.header.Summary() }

// Warnings returns one entry per non-fatal UnknownFileNodeId,
// MissingGidtEntry or UnimplementedPropertyType condition encountered while
// parsing.
func (d *Document) Warnings() []string { return d.warnings }
