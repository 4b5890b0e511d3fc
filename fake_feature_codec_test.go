package flatgeograph

import (
	"encoding/binary"
	"encoding/json"

	"github.com/cristianob/flatgeographbuf/feature"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// fakeFeatureCodec is a minimal, self-consistent feature.Codec used to
// exercise the core graph codec (locator, Serialize/Deserialize, the
// metadata probe, the streaming reader) without depending on real
// flatbuffers-encoded bytes. It frames every section the same way the
// graph codec frames its own: a u32 length prefix followed by a JSON body.
// Every public entry point (Serialize, Deserialize, ProbeMetadata,
// DeserializeGraphEdges) has a *With variant accepting an explicit
// feature.Codec, which is how the tests plug this fake in.
type fakeFeatureCodec struct{}

type fakeHeaderWire struct {
	FeaturesCount uint64
	Columns       []feature.Column
	IndexNodeSize uint16
	GeometryType  string
	Name          string
}

type fakeFeatureWire struct {
	Properties geojson.Properties
}

func (fakeFeatureCodec) DecodeHeader(data []byte, at int) (feature.Header, int, error) {
	if at+4 > len(data) {
		return feature.Header{}, 0, newErr(KindTruncated, "fake feature header length prefix")
	}
	n := int(binary.LittleEndian.Uint32(data[at : at+4]))
	if at+4+n > len(data) {
		return feature.Header{}, 0, newErr(KindTruncated, "fake feature header body")
	}
	var wire fakeHeaderWire
	if err := json.Unmarshal(data[at+4:at+4+n], &wire); err != nil {
		return feature.Header{}, 0, err
	}
	return feature.Header{
		FeaturesCount: wire.FeaturesCount,
		Columns:       wire.Columns,
		IndexNodeSize: wire.IndexNodeSize,
		GeometryType:  wire.GeometryType,
		Name:          wire.Name,
	}, 4 + n, nil
}

func (fakeFeatureCodec) PackedTreeSize(featuresCount uint64, nodeSize uint16) uint64 {
	return featuresCount * uint64(nodeSize)
}

func (fakeFeatureCodec) FeatureRecordLen(data []byte, off int) (int, error) {
	if off+4 > len(data) {
		return 0, newErr(KindTruncated, "fake feature record length prefix")
	}
	n := int(binary.LittleEndian.Uint32(data[off : off+4]))
	if off+4+n > len(data) {
		return 0, newErr(KindTruncated, "fake feature record body")
	}
	return 4 + n, nil
}

func (fakeFeatureCodec) IterateFeatures(data []byte, start int, count int, columns []feature.Column) ([]*feature.Feature, error) {
	out := make([]*feature.Feature, 0, count)
	pos := start
	for i := 0; i < count; i++ {
		n, err := fakeFeatureCodec{}.FeatureRecordLen(data, pos)
		if err != nil {
			return nil, err
		}
		var wire fakeFeatureWire
		if err := json.Unmarshal(data[pos+4:pos+n], &wire); err != nil {
			return nil, err
		}
		out = append(out, &feature.Feature{Geometry: orb.Point{0, 0}, Properties: wire.Properties})
		pos += n
	}
	return out, nil
}

func (fakeFeatureCodec) EncodeFeatures(fc *geojson.FeatureCollection, opts feature.WriteOptions) ([]byte, error) {
	columns := map[string]bool{}
	var orderedColumns []feature.Column
	for _, f := range fc.Features {
		for k := range f.Properties {
			if !columns[k] {
				columns[k] = true
				orderedColumns = append(orderedColumns, feature.Column{Name: k, Type: "String"})
			}
		}
	}

	headerBody, err := json.Marshal(fakeHeaderWire{
		FeaturesCount: uint64(len(fc.Features)),
		Columns:       orderedColumns,
		IndexNodeSize: 0,
		GeometryType:  "Point",
		Name:          opts.Name,
	})
	if err != nil {
		return nil, err
	}

	out := newWriter()
	out.u32(uint32(len(headerBody)))
	out.raw(headerBody)

	for _, f := range fc.Features {
		body, err := json.Marshal(fakeFeatureWire{Properties: f.Properties})
		if err != nil {
			return nil, err
		}
		out.u32(uint32(len(body)))
		out.raw(body)
	}

	return out.Bytes(), nil
}
