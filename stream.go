package flatgeograph

import "github.com/cristianob/flatgeographbuf/feature"

// EdgeReader yields one edge at a time from a graph section without
// materializing the whole AdjacencyList (spec §4.9: "streaming, single-pass,
// finite, ordered"). A zero-edge or absent graph section yields no edges and
// no error.
type EdgeReader struct {
	r         *reader
	remaining uint32
	columns   []Column
}

// DeserializeGraphEdges locates and opens buf's graph section for streaming
// iteration, without decoding any edge up front. If buf has no graph section
// (plain FGB, or an FGG file serialized without an adjacency list), or its
// graph section holds zero edges, the returned EdgeReader's Next immediately
// reports done with no error.
func DeserializeGraphEdges(buf []byte) (*EdgeReader, error) {
	return newEdgeReaderWith(defaultCodec, buf)
}

func newEdgeReaderWith(codec feature.Codec, buf []byte) (*EdgeReader, error) {
	loc, err := locateGraphSection(buf, codec)
	if err != nil {
		return nil, err
	}
	if loc.IsFGB || loc.GraphOffset >= len(buf) {
		return &EdgeReader{}, nil
	}

	r := newReader(buf[loc.GraphOffset:])
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

	return &EdgeReader{r: r, remaining: header.EdgeCount, columns: header.Columns}, nil
}

// Next returns the next edge and true, or a zero Edge and false once every
// edge has been consumed. A non-nil error aborts iteration immediately.
func (er *EdgeReader) Next() (Edge, bool, error) {
	if er.remaining == 0 {
		return Edge{}, false, nil
	}
	e, err := decodeEdge(er.r, er.columns)
	if err != nil {
		return Edge{}, false, err
	}
	er.remaining--
	return e, true, nil
}
