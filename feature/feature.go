// Package feature wraps the FlatGeobuf feature section — geometry, feature
// header, and feature body encoding — behind the narrow interface the
// flatgeograph core consumes (spec §1/§6: "treated as external
// collaborators with only the interfaces named in §6"). The core graph
// codec never imports flatbuffers-generated types directly; it only sees
// Header, Column, and Feature.
//
// The concrete Codec implementation here is grounded on the teacher
// package's own reader.go/writer.go/geometry.go/properties.go, wrapping the
// upstream github.com/flatgeobuf/flatgeobuf/src/go codec.
package feature

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Column describes one property column in the feature header's schema.
type Column struct {
	Name string
	Type string
}

// Header is the subset of the FlatGeobuf feature header the graph codec
// needs: how many features there are, their column schema, and whether a
// packed Hilbert R-tree index follows.
type Header struct {
	FeaturesCount uint64
	Columns       []Column
	IndexNodeSize uint16
	GeometryType  string
	Name          string
	Envelope      [4]float64
}

// Feature is one decoded vertex: geometry plus properties.
type Feature struct {
	Geometry   orb.Geometry
	Properties geojson.Properties
}

// WriteOptions configures feature-section encoding.
type WriteOptions struct {
	Name         string
	Description  string
	IncludeIndex bool
	CRSCode      int
}

// Codec is the external feature-section interface the flatgeograph core
// depends on (spec §6). DecodeHeader and FeatureRecordLen are what the
// offset locator walks with; IterateFeatures and EncodeFeatures are what
// top-level Serialize/Deserialize delegate to.
type Codec interface {
	// DecodeHeader reads the u32 length-prefixed feature header starting
	// at byte offset at, returning the parsed header and the total number
	// of bytes consumed (4 + header length).
	DecodeHeader(data []byte, at int) (Header, int, error)

	// PackedTreeSize returns the byte size of the packed Hilbert R-tree
	// index for featuresCount items at the given node size. The core
	// never computes this itself (spec §4.7/§9).
	PackedTreeSize(featuresCount uint64, nodeSize uint16) uint64

	// FeatureRecordLen reads the u32 length prefix of the feature record
	// at byte offset off and returns the total bytes it occupies
	// (4 + featureLength), without fully decoding the feature body.
	FeatureRecordLen(data []byte, off int) (int, error)

	// IterateFeatures decodes count consecutive size-prefixed features
	// starting at byte offset start, against the given column schema.
	IterateFeatures(data []byte, start int, count int, columns []Column) ([]*Feature, error)

	// EncodeFeatures builds a complete feature section (header + packed
	// index if requested + feature bodies) for fc.
	EncodeFeatures(fc *geojson.FeatureCollection, opts WriteOptions) ([]byte, error)
}

// DefaultCodec is the production Codec, backed by the upstream FlatGeobuf
// Go implementation.
type DefaultCodec struct{}

var _ Codec = DefaultCodec{}

func (DefaultCodec) DecodeHeader(data []byte, at int) (Header, int, error) {
	if at+4 > len(data) {
		return Header{}, 0, errTruncated("feature header length prefix")
	}
	size := binary.LittleEndian.Uint32(data[at : at+4])
	end := at + 4 + int(size)
	if end > len(data) {
		return Header{}, 0, errTruncated("feature header body")
	}
	fh := flattypes.GetRootAsHeader(data[at+4:end], 0)

	h := Header{
		FeaturesCount: fh.FeaturesCount(),
		IndexNodeSize: fh.IndexNodeSize(),
		Name:          string(fh.Name()),
		GeometryType:  flattypes.EnumNamesGeometryType[fh.GeometryType()],
	}

	if envLen := fh.EnvelopeLength(); envLen >= 4 {
		h.Envelope = [4]float64{fh.Envelope(0), fh.Envelope(1), fh.Envelope(2), fh.Envelope(3)}
	}

	if colLen := fh.ColumnsLength(); colLen > 0 {
		h.Columns = make([]Column, 0, colLen)
		var col flattypes.Column
		for i := 0; i < colLen; i++ {
			if fh.Columns(&col, i) {
				h.Columns = append(h.Columns, Column{
					Name: string(col.Name()),
					Type: flattypes.EnumNamesColumnType[col.Type()],
				})
			}
		}
	}

	return h, 4 + int(size), nil
}

func (DefaultCodec) PackedTreeSize(featuresCount uint64, nodeSize uint16) uint64 {
	return PackedTreeSize(featuresCount, nodeSize)
}

func (DefaultCodec) FeatureRecordLen(data []byte, off int) (int, error) {
	if off+4 > len(data) {
		return 0, errTruncated("feature record length prefix")
	}
	size := binary.LittleEndian.Uint32(data[off : off+4])
	total := 4 + int(size)
	if off+total > len(data) {
		return 0, errTruncated("feature record body")
	}
	return total, nil
}

func (c DefaultCodec) IterateFeatures(data []byte, start int, count int, columns []Column) ([]*Feature, error) {
	out := make([]*Feature, 0, count)
	cursor := start
	for i := 0; i < count; i++ {
		total, err := c.FeatureRecordLen(data, cursor)
		if err != nil {
			return nil, err
		}
		size := binary.LittleEndian.Uint32(data[cursor : cursor+4])
		body := data[cursor+4 : cursor+4+int(size)]

		fgbFeature := flattypes.GetRootAsFeature(body, 0)
		f, err := convertFeature(fgbFeature, columns)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
		cursor += total
	}
	return out, nil
}

func (DefaultCodec) EncodeFeatures(fc *geojson.FeatureCollection, opts WriteOptions) ([]byte, error) {
	builder := flatbuffers.NewBuilder(4096)

	geomType := flattypes.GeometryTypeUnknown
	if len(fc.Features) > 0 && fc.Features[0].Geometry != nil {
		geomType = orbToFGBGeometryType(fc.Features[0].Geometry)
		for _, f := range fc.Features[1:] {
			if f.Geometry != nil && orbToFGBGeometryType(f.Geometry) != geomType {
				geomType = flattypes.GeometryTypeUnknown
				break
			}
		}
	}

	header := writer.NewHeader(builder)
	header.SetGeometryType(geomType)
	if opts.Name != "" {
		header.SetName(opts.Name)
	}
	if opts.Description != "" {
		header.SetDescription(opts.Description)
	}

	columnNames := collectColumnNames(fc.Features)
	var columns []*writer.Column
	var columnMap map[string]int
	if len(columnNames) > 0 {
		columns = inferFeatureColumns(fc.Features, builder)
		columnMap = make(map[string]int, len(columnNames))
		for i, name := range columnNames {
			columnMap[name] = i
		}
		header.SetColumns(columns)
	}

	if opts.CRSCode != 0 {
		crs := writer.NewCrs(builder)
		crs.SetOrg("EPSG")
		crs.SetCode(int32(opts.CRSCode))
		header.SetCrs(crs)
	}

	gen := &featureGenerator{features: fc.Features, columns: columns, columnMap: columnMap}
	fgbWriter := writer.NewWriter(header, opts.IncludeIndex, gen, nil)

	var buf bytes.Buffer
	if _, err := fgbWriter.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// featureGenerator adapts a geojson.FeatureCollection to the upstream
// writer.FeatureGenerator interface, mirroring the teacher's
// featureCollectionGenerator.
type featureGenerator struct {
	features  []*geojson.Feature
	columns   []*writer.Column
	columnMap map[string]int
	index     int
}

func (g *featureGenerator) Generate() *writer.Feature {
	if g.index >= len(g.features) {
		return nil
	}
	f := g.features[g.index]
	g.index++

	if f == nil || f.Geometry == nil {
		return g.Generate()
	}

	builder := flatbuffers.NewBuilder(1024)
	fgbGeom := geometryToFGB(f.Geometry, builder)
	if fgbGeom == nil {
		return g.Generate()
	}

	feat := writer.NewFeature(builder)
	feat.SetGeometry(fgbGeom)

	if f.Properties != nil && len(g.columns) > 0 {
		propBytes := encodeFeatureProperties(f.Properties, g.columns, g.columnMap)
		if len(propBytes) > 0 {
			feat.SetProperties(propBytes)
		}
	}

	return feat
}

func convertFeature(fgbFeature *flattypes.Feature, columns []Column) (*Feature, error) {
	var geomObj flattypes.Geometry
	geom := fgbFeature.Geometry(&geomObj)
	if geom == nil {
		return &Feature{}, nil
	}
	orbGeom := geometryFromFGB(geom)

	f := &Feature{Geometry: orbGeom}

	propsLen := fgbFeature.PropertiesLength()
	if propsLen > 0 && len(columns) > 0 {
		propsBytes := make([]byte, propsLen)
		for i := 0; i < propsLen; i++ {
			propsBytes[i] = byte(fgbFeature.Properties(i))
		}
		f.Properties = decodeFeatureProperties(propsBytes, columns)
	}

	return f, nil
}

// --- geometry conversion (moved from the teacher's geometry.go; this is
// squarely the "geometry parsing" external concern spec §1 names) ---

func orbToFGBGeometryType(geom orb.Geometry) flattypes.GeometryType {
	switch geom.(type) {
	case orb.Point:
		return flattypes.GeometryTypePoint
	case orb.MultiPoint:
		return flattypes.GeometryTypeMultiPoint
	case orb.LineString:
		return flattypes.GeometryTypeLineString
	case orb.MultiLineString:
		return flattypes.GeometryTypeMultiLineString
	case orb.Ring:
		return flattypes.GeometryTypePolygon
	case orb.Polygon:
		return flattypes.GeometryTypePolygon
	case orb.MultiPolygon:
		return flattypes.GeometryTypeMultiPolygon
	case orb.Collection:
		return flattypes.GeometryTypeGeometryCollection
	case orb.Bound:
		return flattypes.GeometryTypePolygon
	default:
		return flattypes.GeometryTypeUnknown
	}
}

func geometryToFGB(geom orb.Geometry, builder *flatbuffers.Builder) *writer.Geometry {
	if geom == nil {
		return nil
	}
	g := writer.NewGeometry(builder)

	switch v := geom.(type) {
	case orb.Point:
		g.SetType(flattypes.GeometryTypePoint)
		g.SetXY([]float64{v[0], v[1]})

	case orb.MultiPoint:
		g.SetType(flattypes.GeometryTypeMultiPoint)
		xy := make([]float64, 0, len(v)*2)
		for _, p := range v {
			xy = append(xy, p[0], p[1])
		}
		g.SetXY(xy)

	case orb.LineString:
		g.SetType(flattypes.GeometryTypeLineString)
		g.SetXY(lineStringToXY(v))

	case orb.MultiLineString:
		g.SetType(flattypes.GeometryTypeMultiLineString)
		xy, ends := multiLineStringToXYEnds(v)
		g.SetXY(xy)
		g.SetEnds(ends)

	case orb.Ring:
		g.SetType(flattypes.GeometryTypePolygon)
		g.SetXY(ringToXY(v))
		g.SetEnds([]uint32{uint32(len(v))})

	case orb.Polygon:
		g.SetType(flattypes.GeometryTypePolygon)
		xy, ends := polygonToXYEnds(v)
		g.SetXY(xy)
		g.SetEnds(ends)

	case orb.MultiPolygon:
		g.SetType(flattypes.GeometryTypeMultiPolygon)
		xy, ends, partEnds := multiPolygonToXYEnds(v)
		g.SetXY(xy)
		g.SetEnds(ends)
		g.SetPartEnds(partEnds)

	default:
		return nil
	}

	return g
}

func geometryFromFGB(g *flattypes.Geometry) orb.Geometry {
	switch g.Type() {
	case flattypes.GeometryTypePoint:
		if g.XyLength() < 2 {
			return nil
		}
		return orb.Point{g.Xy(0), g.Xy(1)}

	case flattypes.GeometryTypeMultiPoint:
		n := g.XyLength() / 2
		mp := make(orb.MultiPoint, n)
		for i := 0; i < n; i++ {
			mp[i] = orb.Point{g.Xy(i * 2), g.Xy(i*2 + 1)}
		}
		return mp

	case flattypes.GeometryTypeLineString:
		return xyToLineString(g)

	case flattypes.GeometryTypeMultiLineString:
		return xyEndsToMultiLineString(g)

	case flattypes.GeometryTypePolygon:
		return xyEndsToPolygon(g)

	case flattypes.GeometryTypeMultiPolygon:
		return xyEndsPartsToMultiPolygon(g)

	default:
		return nil
	}
}

func lineStringToXY(ls orb.LineString) []float64 {
	xy := make([]float64, 0, len(ls)*2)
	for _, p := range ls {
		xy = append(xy, p[0], p[1])
	}
	return xy
}

func ringToXY(r orb.Ring) []float64 {
	return lineStringToXY(orb.LineString(r))
}

func multiLineStringToXYEnds(mls orb.MultiLineString) ([]float64, []uint32) {
	var xy []float64
	ends := make([]uint32, len(mls))
	for i, ls := range mls {
		xy = append(xy, lineStringToXY(ls)...)
		ends[i] = uint32(len(xy) / 2)
	}
	return xy, ends
}

func polygonToXYEnds(p orb.Polygon) ([]float64, []uint32) {
	var xy []float64
	ends := make([]uint32, len(p))
	for i, ring := range p {
		xy = append(xy, ringToXY(ring)...)
		ends[i] = uint32(len(xy) / 2)
	}
	return xy, ends
}

func multiPolygonToXYEnds(mp orb.MultiPolygon) ([]float64, []uint32, []uint32) {
	var xy []float64
	var ends []uint32
	partEnds := make([]uint32, len(mp))
	for i, poly := range mp {
		for _, ring := range poly {
			xy = append(xy, ringToXY(ring)...)
			ends = append(ends, uint32(len(xy)/2))
		}
		partEnds[i] = uint32(len(ends))
	}
	return xy, ends, partEnds
}

func xyToLineString(g *flattypes.Geometry) orb.LineString {
	n := g.XyLength() / 2
	ls := make(orb.LineString, n)
	for i := 0; i < n; i++ {
		ls[i] = orb.Point{g.Xy(i * 2), g.Xy(i*2 + 1)}
	}
	return ls
}

func xyEndsToMultiLineString(g *flattypes.Geometry) orb.MultiLineString {
	var mls orb.MultiLineString
	start := 0
	for i := 0; i < g.EndsLength(); i++ {
		end := int(g.Ends(i))
		mls = append(mls, xyRangeToLineString(g, start, end))
		start = end
	}
	return mls
}

func xyEndsToPolygon(g *flattypes.Geometry) orb.Polygon {
	var poly orb.Polygon
	start := 0
	endsLen := g.EndsLength()
	if endsLen == 0 {
		poly = append(poly, orb.Ring(xyRangeToLineString(g, 0, g.XyLength()/2)))
		return poly
	}
	for i := 0; i < endsLen; i++ {
		end := int(g.Ends(i))
		poly = append(poly, orb.Ring(xyRangeToLineString(g, start, end)))
		start = end
	}
	return poly
}

func xyEndsPartsToMultiPolygon(g *flattypes.Geometry) orb.MultiPolygon {
	var mp orb.MultiPolygon
	ringStart := 0
	ringIdx := 0
	for p := 0; p < g.PartEndsLength(); p++ {
		partEnd := int(g.PartEnds(p))
		var poly orb.Polygon
		for ringIdx < partEnd {
			end := int(g.Ends(ringIdx))
			poly = append(poly, orb.Ring(xyRangeToLineString(g, ringStart, end)))
			ringStart = end
			ringIdx++
		}
		mp = append(mp, poly)
	}
	return mp
}

func xyRangeToLineString(g *flattypes.Geometry, start, end int) orb.LineString {
	ls := make(orb.LineString, end-start)
	for i := start; i < end; i++ {
		ls[i-start] = orb.Point{g.Xy(i * 2), g.Xy(i*2 + 1)}
	}
	return ls
}

// --- feature property encode/decode (moved from the teacher's
// properties.go; this is the FlatGeobuf feature body's own property
// schema, independent of the graph section's property codec) ---

func inferFeatureColumns(features []*geojson.Feature, builder *flatbuffers.Builder) []*writer.Column {
	columnTypes := make(map[string]flattypes.ColumnType)
	var columnOrder []string

	for _, f := range features {
		if f.Properties == nil {
			continue
		}
		for name, value := range f.Properties {
			if _, exists := columnTypes[name]; !exists {
				columnOrder = append(columnOrder, name)
			}
			t := inferFeatureColumnType(value)
			if existing, exists := columnTypes[name]; exists {
				columnTypes[name] = promoteFeatureColumnType(existing, t)
			} else {
				columnTypes[name] = t
			}
		}
	}

	columns := make([]*writer.Column, 0, len(columnOrder))
	for _, name := range columnOrder {
		col := writer.NewColumn(builder)
		col.SetName(name)
		col.SetTitle(name)
		col.SetType(columnTypes[name])
		col.SetNullable(true)
		columns = append(columns, col)
	}
	return columns
}

func inferFeatureColumnType(value interface{}) flattypes.ColumnType {
	if value == nil {
		return flattypes.ColumnTypeString
	}
	switch v := value.(type) {
	case bool:
		return flattypes.ColumnTypeBool
	case int:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return flattypes.ColumnTypeInt
		}
		return flattypes.ColumnTypeLong
	case int8, int16, int32:
		return flattypes.ColumnTypeInt
	case int64:
		return flattypes.ColumnTypeLong
	case uint, uint8, uint16, uint32:
		return flattypes.ColumnTypeUInt
	case uint64:
		return flattypes.ColumnTypeULong
	case float32:
		return flattypes.ColumnTypeFloat
	case float64:
		return flattypes.ColumnTypeDouble
	case string:
		return flattypes.ColumnTypeString
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return flattypes.ColumnTypeLong
		}
		return flattypes.ColumnTypeDouble
	case map[string]interface{}, []interface{}:
		return flattypes.ColumnTypeJson
	default:
		return flattypes.ColumnTypeJson
	}
}

func promoteFeatureColumnType(a, b flattypes.ColumnType) flattypes.ColumnType {
	if a == b {
		return a
	}
	if a == flattypes.ColumnTypeJson || b == flattypes.ColumnTypeJson {
		return flattypes.ColumnTypeJson
	}
	if a == flattypes.ColumnTypeString || b == flattypes.ColumnTypeString {
		return flattypes.ColumnTypeString
	}
	rank := map[flattypes.ColumnType]int{
		flattypes.ColumnTypeBool: 0, flattypes.ColumnTypeByte: 1, flattypes.ColumnTypeUByte: 2,
		flattypes.ColumnTypeShort: 3, flattypes.ColumnTypeUShort: 4, flattypes.ColumnTypeInt: 5,
		flattypes.ColumnTypeUInt: 6, flattypes.ColumnTypeLong: 7, flattypes.ColumnTypeULong: 8,
		flattypes.ColumnTypeFloat: 9, flattypes.ColumnTypeDouble: 10,
	}
	rankA, okA := rank[a]
	rankB, okB := rank[b]
	if okA && okB {
		if rankA > rankB {
			return a
		}
		return b
	}
	return flattypes.ColumnTypeJson
}

func encodeFeatureProperties(props geojson.Properties, columns []*writer.Column, columnMap map[string]int) []byte {
	if props == nil || len(columns) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for name, value := range props {
		if value == nil {
			continue
		}
		colIndex, ok := columnMap[name]
		if !ok {
			continue
		}
		var idx [2]byte
		binary.LittleEndian.PutUint16(idx[:], uint16(colIndex))
		buf.Write(idx[:])
		writeFeaturePropertyValue(&buf, value)
	}
	return buf.Bytes()
}

func writeFeaturePropertyValue(buf *bytes.Buffer, value interface{}) {
	switch v := value.(type) {
	case bool:
		if v {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	case string:
		buf.WriteString(v)
		buf.WriteByte(0)
	case float64:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		buf.Write(b[:])
	case float32:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		buf.Write(b[:])
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		var b [8]byte
		n, _ := toInt64(v)
		binary.LittleEndian.PutUint64(b[:], uint64(n))
		buf.Write(b[:])
	case []byte:
		var lb [4]byte
		binary.LittleEndian.PutUint32(lb[:], uint32(len(v)))
		buf.Write(lb[:])
		buf.Write(v)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			jsonBytes = []byte("{}")
		}
		buf.Write(jsonBytes)
		buf.WriteByte(0)
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

func decodeFeatureProperties(data []byte, columns []Column) geojson.Properties {
	if len(data) == 0 || len(columns) == 0 {
		return nil
	}
	props := make(geojson.Properties)
	offset := 0
	for offset+2 <= len(data) {
		colIndex := binary.LittleEndian.Uint16(data[offset : offset+2])
		offset += 2
		if int(colIndex) >= len(columns) {
			break
		}
		col := columns[colIndex]
		value, n := readFeaturePropertyValue(data[offset:], col.Type)
		if n == 0 && col.Type != "Bool" {
			break
		}
		offset += n
		props[col.Name] = value
	}
	return props
}

func readFeaturePropertyValue(data []byte, colType string) (interface{}, int) {
	switch colType {
	case "Bool":
		if len(data) < 1 {
			return nil, 0
		}
		return data[0] != 0, 1
	case "Byte":
		if len(data) < 1 {
			return nil, 0
		}
		return int8(data[0]), 1
	case "UByte":
		if len(data) < 1 {
			return nil, 0
		}
		return data[0], 1
	case "Short":
		if len(data) < 2 {
			return nil, 0
		}
		return int16(binary.LittleEndian.Uint16(data[:2])), 2
	case "UShort":
		if len(data) < 2 {
			return nil, 0
		}
		return binary.LittleEndian.Uint16(data[:2]), 2
	case "Int":
		if len(data) < 4 {
			return nil, 0
		}
		return int32(binary.LittleEndian.Uint32(data[:4])), 4
	case "UInt":
		if len(data) < 4 {
			return nil, 0
		}
		return binary.LittleEndian.Uint32(data[:4]), 4
	case "Long":
		if len(data) < 8 {
			return nil, 0
		}
		return int64(binary.LittleEndian.Uint64(data[:8])), 8
	case "ULong":
		if len(data) < 8 {
			return nil, 0
		}
		return binary.LittleEndian.Uint64(data[:8]), 8
	case "Float":
		if len(data) < 4 {
			return nil, 0
		}
		return math.Float32frombits(binary.LittleEndian.Uint32(data[:4])), 4
	case "Double":
		if len(data) < 8 {
			return nil, 0
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(data[:8])), 8
	case "String", "DateTime":
		idx := bytes.IndexByte(data, 0)
		if idx == -1 {
			return string(data), len(data)
		}
		return string(data[:idx]), idx + 1
	case "Json":
		idx := bytes.IndexByte(data, 0)
		if idx == -1 {
			idx = len(data)
		}
		var v interface{}
		if err := json.Unmarshal(data[:idx], &v); err != nil {
			return string(data[:idx]), idx + 1
		}
		if idx < len(data) {
			return v, idx + 1
		}
		return v, idx
	case "Binary":
		if len(data) < 4 {
			return nil, 0
		}
		length := binary.LittleEndian.Uint32(data[:4])
		if len(data) < int(4+length) {
			return nil, 0
		}
		return data[4 : 4+length], int(4 + length)
	default:
		return nil, 0
	}
}

func collectColumnNames(features []*geojson.Feature) []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range features {
		if f.Properties == nil {
			continue
		}
		for name := range f.Properties {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
