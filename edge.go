package flatgeograph

// Edge is a directed pair of vertex indices plus a sparse property map.
// Invariants (enforced on write, spec §3): From != To, and both indices lie
// in [0, featureCount).
type Edge struct {
	From       uint32
	To         uint32
	Properties Properties

	// PropertyOrder pins the key iteration order used when this edge is
	// the one schema inference draws columns from (spec §9: Go map
	// iteration is unordered, so a caller that cares about column order
	// must supply it explicitly). Ignored once a schema already exists
	// and for every edge that isn't the schema-defining one. A nil value
	// falls back to a sorted key order.
	PropertyOrder []string
}

// encodeEdge validates the edge against featureCount and writes
// [size u32][from u32][to u32][properties], where size excludes its own
// four bytes (spec §4.5).
func encodeEdge(w *writer, e Edge, columns []Column, featureCount uint32) error {
	if e.From >= featureCount {
		return newErr(KindInvalidIndex, "edge %d: Invalid 'from' index %d (featureCount=%d)", e.From, e.From, featureCount)
	}
	if e.To >= featureCount {
		return newErr(KindInvalidIndex, "edge %d: Invalid 'to' index %d (featureCount=%d)", e.From, e.To, featureCount)
	}
	if e.From == e.To {
		return newErr(KindSelfLoop, "edge at vertex %d: self-loops are not allowed", e.From)
	}

	props := newWriter()
	if err := encodeEdgeProperties(props, columns, e.Properties); err != nil {
		return err
	}

	w.u32(uint32(8 + props.Len()))
	w.u32(e.From)
	w.u32(e.To)
	w.raw(props.Bytes())
	return nil
}

// decodeEdge reads one edge record starting at r's current position.
// Returns the decoded edge; r is left positioned just past the record.
func decodeEdge(r *reader, columns []Column) (Edge, error) {
	size, err := r.u32()
	if err != nil {
		return Edge{}, err
	}
	if size < 8 {
		return Edge{}, newErr(KindInvalidEdgeSize, "edge size %d is less than the minimum 8", size)
	}
	if err := r.need(int(size)); err != nil {
		return Edge{}, newErr(KindInvalidEdgeSize, "edge size %d overruns the buffer: %v", size, err)
	}

	from, err := r.u32()
	if err != nil {
		return Edge{}, err
	}
	to, err := r.u32()
	if err != nil {
		return Edge{}, err
	}

	propLen := int(size) - 8
	region, err := r.bytesN(propLen)
	if err != nil {
		return Edge{}, err
	}
	props, err := decodeEdgeProperties(region, columns)
	if err != nil {
		return Edge{}, err
	}

	return Edge{From: from, To: to, Properties: props}, nil
}
