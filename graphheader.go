package flatgeograph

// GraphHeader is the graph section's fixed preamble: the total edge count
// and the column schema every edge's properties are framed against.
type GraphHeader struct {
	EdgeCount uint32
	Columns   []Column
}

// encodeGraphHeader writes [edgeCount u32][columnCount u16][columns...].
func encodeGraphHeader(w *writer, h GraphHeader) {
	w.u32(h.EdgeCount)
	w.u16(uint16(len(h.Columns)))
	for _, c := range h.Columns {
		encodeColumn(w, c)
	}
}

// decodeGraphHeader reads a GraphHeader. Columns is nil (not merely empty)
// when columnCount == 0, matching spec §4.3's "columns is absent when
// columnCount == 0".
func decodeGraphHeader(r *reader) (GraphHeader, error) {
	edgeCount, err := r.u32()
	if err != nil {
		return GraphHeader{}, err
	}
	columnCount, err := r.u16()
	if err != nil {
		return GraphHeader{}, err
	}
	var columns []Column
	if columnCount > 0 {
		columns = make([]Column, columnCount)
		for i := range columns {
			col, err := decodeColumn(r)
			if err != nil {
				return GraphHeader{}, err
			}
			columns[i] = col
		}
	}
	return GraphHeader{EdgeCount: edgeCount, Columns: columns}, nil
}

// encodedSize returns the byte length encodeGraphHeader would produce,
// without allocating — used by the writer to preallocate the output buffer
// exactly (spec §5).
func (h GraphHeader) encodedSize() int {
	n := 4 + 2
	for _, c := range h.Columns {
		n += 2 + len(c.Name) + 1
	}
	return n
}
