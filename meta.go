package flatgeograph

import "github.com/cristianob/flatgeographbuf/feature"

// FeaturesHeaderMeta is the feature-section metadata surfaced by the
// metadata probe: the feature header info, no feature bodies.
type FeaturesHeaderMeta = feature.Header

// GraphHeaderMeta is the graph-section metadata surfaced by the metadata
// probe (spec §4.10). EdgeColumns is nil (not merely empty) when the graph
// header declares zero columns.
type GraphHeaderMeta struct {
	EdgeCount   uint32
	EdgeColumns []Column
}

// ProbeResult is what an ObserverFunc receives: the feature header and, if
// the file has a graph section, its header. Graph is nil when the file has
// no graph section at all.
type ProbeResult struct {
	Features FeaturesHeaderMeta
	Graph    *GraphHeaderMeta
}

// ProbeMetadata reads just the feature-header and graph-header metadata,
// without materializing any feature or edge, and returns it directly. This
// is the same information an ObserverFunc passed to Deserialize would
// receive, exposed as a standalone call for callers that only need schema
// information (spec §4.10, supplemented per SPEC_FULL.md).
func ProbeMetadata(buf []byte) (ProbeResult, error) {
	return probeMetadataWith(defaultCodec, buf)
}

func probeMetadataWith(codec feature.Codec, buf []byte) (ProbeResult, error) {
	loc, err := locateGraphSection(buf, codec)
	if err != nil {
		return ProbeResult{}, err
	}

	result := ProbeResult{Features: loc.FeatureHeader}
	if !loc.IsFGB && loc.GraphOffset < len(buf) {
		h, err := peekGraphHeader(buf, loc.GraphOffset)
		if err != nil {
			return ProbeResult{}, err
		}
		result.Graph = &GraphHeaderMeta{EdgeCount: h.EdgeCount, EdgeColumns: h.Columns}
	}
	return result, nil
}
