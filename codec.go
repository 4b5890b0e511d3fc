package flatgeograph

import (
	"github.com/cristianob/flatgeographbuf/feature"
	"github.com/paulmach/orb/geojson"
)

// SerializeOptions configures the feature section and CRS Serialize writes.
// Generalizes the teacher package's Options/DefaultOptions.
type SerializeOptions struct {
	Name         string
	Description  string
	IncludeIndex bool
	// CRSCode is the EPSG code written into the feature header's CRS
	// table. 0 (the default, spec §6) omits the CRS entirely.
	CRSCode int
}

// DefaultSerializeOptions returns the default options: a spatial index but
// no CRS.
func DefaultSerializeOptions() *SerializeOptions {
	return &SerializeOptions{IncludeIndex: true}
}

// DeserializeResult is returned by Deserialize: the decoded features plus
// the graph section's adjacency list. AdjacencyList.Edges is always
// non-nil, possibly empty, per spec §6.
type DeserializeResult struct {
	Features      []*feature.Feature
	AdjacencyList AdjacencyList
}

// ObserverFunc is invoked exactly once during Deserialize, after the
// feature header and graph header are parsed but before any edges or
// features are materialized (spec §4.10). Returning an error aborts the
// read with that error.
type ObserverFunc func(ProbeResult) error

var defaultCodec feature.Codec = feature.DefaultCodec{}

// Serialize concatenates the magic bytes, an externally built feature
// section, and (if adjacency is non-nil) a graph section (spec §4.8). If
// adjacency is nil, no graph section is written: the output is the FGG magic
// followed by the feature section the feature codec produced, and nothing
// else.
func Serialize(fc *geojson.FeatureCollection, adjacency *AdjacencyList, opts *SerializeOptions) ([]byte, error) {
	return serializeWith(defaultCodec, fc, adjacency, opts)
}

func serializeWith(codec feature.Codec, fc *geojson.FeatureCollection, adjacency *AdjacencyList, opts *SerializeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultSerializeOptions()
	}

	featureBytes, err := codec.EncodeFeatures(fc, feature.WriteOptions{
		Name:         opts.Name,
		Description:  opts.Description,
		IncludeIndex: opts.IncludeIndex,
		CRSCode:      opts.CRSCode,
	})
	if err != nil {
		return nil, err
	}

	out := newWriterSize(8 + len(featureBytes))
	out.raw(MagicFGG[:])
	out.raw(featureBytes)

	if adjacency != nil {
		featureCount := uint32(len(fc.Features))
		columns := inferSchema(adjacency.Edges)
		section, err := encodeGraphSection(adjacency.Edges, columns, featureCount)
		if err != nil {
			return nil, err
		}
		out.raw(section)
	}

	return out.Bytes(), nil
}

// Deserialize splits buf into its feature and graph sections, materializes
// all features (delegated to the feature codec), and parses the graph
// section if present (spec §4.8).
func Deserialize(buf []byte, observer ObserverFunc) (*DeserializeResult, error) {
	return deserializeWith(defaultCodec, buf, observer)
}

func deserializeWith(codec feature.Codec, buf []byte, observer ObserverFunc) (*DeserializeResult, error) {
	loc, err := locateGraphSection(buf, codec)
	if err != nil {
		return nil, err
	}

	var graphHeader *GraphHeader
	hasGraphSection := !loc.IsFGB && loc.GraphOffset < len(buf)
	if hasGraphSection {
		h, err := peekGraphHeader(buf, loc.GraphOffset)
		if err != nil {
			return nil, err
		}
		graphHeader = &h
	}

	if observer != nil {
		meta := ProbeResult{Features: loc.FeatureHeader}
		if graphHeader != nil {
			meta.Graph = &GraphHeaderMeta{EdgeCount: graphHeader.EdgeCount, EdgeColumns: graphHeader.Columns}
		}
		if err := observer(meta); err != nil {
			return nil, err
		}
	}

	features, err := codec.IterateFeatures(buf, loc.FeaturesStart, int(loc.FeatureHeader.FeaturesCount), loc.FeatureHeader.Columns)
	if err != nil {
		return nil, err
	}

	result := &DeserializeResult{
		Features:      features,
		AdjacencyList: AdjacencyList{Edges: []Edge{}},
	}

	if hasGraphSection {
		section, err := decodeGraphSection(buf, loc.GraphOffset)
		if err != nil {
			return nil, err
		}
		result.AdjacencyList.Edges = section.Edges
	}

	return result, nil
}
