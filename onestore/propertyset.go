package onestore

// idStream is one of the OIDs/OSIDs/ContextIDs streams: a header-declared
// count of CompactIDs with a read cursor. Consumption advances the
// cursor but never the underlying byte reader (the IDs were already
// read in full when the stream was framed).
type idStream struct {
	extendedStreamsPresent bool
	osidStreamNotPresent   bool
	ids                    []CompactID
	head                   int
}

func readObjectSpaceObjectStreamHeader(r *Reader) (count uint32, extended, osidAbsent bool, err error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, false, false, err
	}
	return v & 0xFFFFFF, (v>>30)&1 == 1, (v>>31)&1 == 1, nil
}

func readIDStream(r *Reader) (*idStream, error) {
	count, extended, osidAbsent, err := readObjectSpaceObjectStreamHeader(r)
	if err != nil {
		return nil, err
	}
	ids := make([]CompactID, 0, count)
	for i := uint32(0); i < count; i++ {
		id, err := readCompactID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return &idStream{extendedStreamsPresent: extended, osidStreamNotPresent: osidAbsent, ids: ids}, nil
}

func (s *idStream) next() CompactID {
	if s == nil || s.head >= len(s.ids) {
		return CompactID{}
	}
	id := s.ids[s.head]
	s.head++
	return id
}

// PropertySet is a decoded, recursive (PropertyID, value) collection.
// Values are one of: nil, bool, []byte (raw fixed-width or length-prefixed
// payload), []CompactID, or *PropertySet (nested, type 0x11).
type PropertySet struct {
	IDs    []PropertyID
	Values []any
}

// ObjectSpaceObjectPropSet is the decoded result of the framed
// OIDs/OSIDs?/ContextIDs? streams plus the PropertySet body that follows
// them, per spec §4.G.1. Only the PropertySet body is kept; the streams are
// consumed while decoding it.
type ObjectSpaceObjectPropSet struct {
	Body *PropertySet
}

func readObjectSpaceObjectPropSet(r *Reader) (*ObjectSpaceObjectPropSet, error) {
	oids, err := readIDStream(r)
	if err != nil {
		return nil, err
	}
	var osids, contextIDs *idStream
	if !oids.osidStreamNotPresent {
		osids, err = readIDStream(r)
		if err != nil {
			return nil, err
		}
	}
	if oids.extendedStreamsPresent {
		contextIDs, err = readIDStream(r)
		if err != nil {
			return nil, err
		}
	}
	body, err := decodePropertySet(r, oids, osids, contextIDs)
	if err != nil {
		return nil, err
	}
	return &ObjectSpaceObjectPropSet{Body: body}, nil
}

// decodePropertySet implements spec §4.G: cProperties PropertyIDs, then
// cProperties values decoded in order per each PropertyID's type tag.
func decodePropertySet(r *Reader, oids, osids, contextIDs *idStream) (*PropertySet, error) {
	cProperties, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}

	ids := make([]PropertyID, cProperties)
	for i := range ids {
		id, err := readPropertyID(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	values := make([]any, cProperties)
	for i, id := range ids {
		v, err := decodePropertyValue(r, id, oids, osids, contextIDs)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return &PropertySet{IDs: ids, Values: values}, nil
}

func decodePropertyValue(r *Reader, id PropertyID, oids, osids, contextIDs *idStream) (any, error) {
	switch id.Type {
	case 0x1:
		return nil, nil
	case 0x2:
		return id.BoolValue, nil
	case 0x3:
		return r.ReadExact(1)
	case 0x4:
		return r.ReadExact(2)
	case 0x5:
		return r.ReadExact(4)
	case 0x6:
		return r.ReadExact(8)
	case 0x7:
		cb, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return r.ReadExact(int(cb))
	case 0x8, 0x9:
		return readCompactIDs(r, oids, id.Type == 0x9)
	case 0xA, 0xB:
		return readCompactIDs(r, osids, id.Type == 0xB)
	case 0xC, 0xD:
		return readCompactIDs(r, contextIDs, id.Type == 0xD)
	case 0x10:
		off, _ := r.Tell()
		return nil, parseErrorAt(off, ErrUnimplementedPropertyType)
	case 0x11:
		return decodePropertySet(r, oids, osids, contextIDs)
	default:
		off, _ := r.Tell()
		return nil, parseErrorAt(off, ErrInvalidPropertyType)
	}
}

func readCompactIDs(r *Reader, stream *idStream, counted bool) ([]CompactID, error) {
	count := uint32(1)
	if counted {
		var err error
		count, err = r.ReadUint32()
		if err != nil {
			return nil, err
		}
	}
	out := make([]CompactID, count)
	for i := range out {
		out[i] = stream.next()
	}
	return out, nil
}
