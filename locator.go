package flatgeograph

import "github.com/cristianob/flatgeographbuf/feature"

// locateResult is what the offset locator (spec §4.7) discovers about a
// buffer in one walk: where the graph section starts, and the feature
// header info gathered along the way so callers don't have to re-decode it.
type locateResult struct {
	GraphOffset   int
	FeaturesStart int // byte offset where the first feature record begins
	FeatureHeader feature.Header
	IsFGB         bool // true if the buffer has no graph section at all
}

// checkMagic validates the first 8 bytes of data against the FGG or FGB
// magic (spec §3). Returns whether the file is the graph-less FGB variant.
func checkMagic(data []byte) (isFGB bool, err error) {
	if len(data) < 8 {
		return false, newErr(KindTruncated, "buffer shorter than the 8-byte magic")
	}
	head3 := string(data[0:3])
	tail3 := string(data[4:7])

	switch {
	case head3 == magicASCII && tail3 == magicASCII:
		major := data[3]
		if major > supportedMajor {
			return false, newErr(KindUnsupportedMajor, "major version %d is newer than supported %d", major, supportedMajor)
		}
		return false, nil
	case head3 == magicASCIIFGB && tail3 == magicASCIIFGB:
		return true, nil
	default:
		return false, newErr(KindBadMagic, "first 8 bytes are neither FGG nor FGB magic")
	}
}

// locateGraphSection walks the feature section using codec to compute the
// byte offset at which the graph section begins (spec §4.7). When the
// buffer has no graph section (plain FGB input, or the offset lands exactly
// at the end of the buffer), GraphOffset == len(data).
func locateGraphSection(data []byte, codec feature.Codec) (*locateResult, error) {
	isFGB, err := checkMagic(data)
	if err != nil {
		return nil, err
	}
	if isFGB {
		return &locateResult{GraphOffset: len(data), IsFGB: true}, nil
	}

	hdr, consumed, err := codec.DecodeHeader(data, 8)
	if err != nil {
		return nil, newErr(KindTruncated, "feature header: %v", err)
	}
	cursor := 8 + consumed

	if hdr.IndexNodeSize > 0 {
		cursor += int(codec.PackedTreeSize(hdr.FeaturesCount, hdr.IndexNodeSize))
	}
	featuresStart := cursor

	for i := uint64(0); i < hdr.FeaturesCount; i++ {
		n, err := codec.FeatureRecordLen(data, cursor)
		if err != nil {
			return nil, newErr(KindTruncated, "feature %d: %v", i, err)
		}
		cursor += n
	}

	if cursor > len(data) {
		return nil, newErr(KindTruncated, "computed graph offset %d exceeds buffer length %d", cursor, len(data))
	}

	return &locateResult{GraphOffset: cursor, FeaturesStart: featuresStart, FeatureHeader: hdr}, nil
}
