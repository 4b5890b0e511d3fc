package flatgeograph

// GraphSection is the optional trailing segment of a FlatGeoGraphBuf file:
// a header naming the edge count and column schema, followed by that many
// size-prefixed edge records (spec §4.6).
type GraphSection struct {
	Header GraphHeader
	Edges  []Edge
}

// AdjacencyList is the complete edge set of a graph, with no vertex-indexed
// structure built by this package (spec GLOSSARY: "Adjacency list").
type AdjacencyList struct {
	Edges []Edge
}

// inferSchema implements spec §3's "Schema inference (serialize-side)":
// scan edges front-to-back and select the first edge whose property map is
// non-empty; its keys (in order) become the column list, each key's type
// inferred from its value. Returns nil if no edge carries any non-empty
// property map.
func inferSchema(edges []Edge) []Column {
	for _, e := range edges {
		if len(e.Properties) == 0 {
			continue
		}
		keys := e.Properties.orderedKeys(e.PropertyOrder)
		columns := make([]Column, len(keys))
		for j, k := range keys {
			columns[j] = Column{Name: k, Type: inferColumnType(e.Properties[k])}
		}
		return columns
	}
	return nil
}

// encodeGraphSection builds the full section: [len(H) u32][H][edge0]...
// [edgeN-1]. columns is the schema to encode edge properties against
// (already inferred or explicitly supplied by the caller).
func encodeGraphSection(edges []Edge, columns []Column, featureCount uint32) ([]byte, error) {
	header := GraphHeader{EdgeCount: uint32(len(edges)), Columns: columns}

	headerBuf := newWriterSize(header.encodedSize())
	encodeGraphHeader(headerBuf, header)

	edgeBufs := make([][]byte, len(edges))
	total := 0
	for i, e := range edges {
		ew := newWriter()
		if err := encodeEdge(ew, e, columns, featureCount); err != nil {
			return nil, err
		}
		edgeBufs[i] = ew.Bytes()
		total += len(edgeBufs[i])
	}

	out := newWriterSize(4 + headerBuf.Len() + total)
	out.u32(uint32(headerBuf.Len()))
	out.raw(headerBuf.Bytes())
	for _, eb := range edgeBufs {
		out.raw(eb)
	}
	return out.Bytes(), nil
}

// decodeGraphSection reads a GraphSection starting at data[offset:].
func decodeGraphSection(data []byte, offset int) (*GraphSection, error) {
	r := newReader(data[offset:])

	headerSize, err := r.u32()
	if err != nil {
		return nil, err
	}
	headerBytes, err := r.bytesN(int(headerSize))
	if err != nil {
		return nil, err
	}
	header, err := decodeGraphHeader(newReader(headerBytes))
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, header.EdgeCount)
	for i := range edges {
		e, err := decodeEdge(r, header.Columns)
		if err != nil {
			return nil, err
		}
		edges[i] = e
	}

	return &GraphSection{Header: header, Edges: edges}, nil
}

// peekGraphHeader reads only the graph header at data[offset:], without
// touching any edge records — used by the metadata probe (spec §4.10),
// which must surface schema information before any edges are materialized.
func peekGraphHeader(data []byte, offset int) (GraphHeader, error) {
	r := newReader(data[offset:])
	headerSize, err := r.u32()
	if err != nil {
		return GraphHeader{}, err
	}
	headerBytes, err := r.bytesN(int(headerSize))
	if err != nil {
		return GraphHeader{}, err
	}
	return decodeGraphHeader(newReader(headerBytes))
}
