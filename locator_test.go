package flatgeograph

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func buildFakeFGG(t *testing.T, fc *geojson.FeatureCollection, adjacency *AdjacencyList) []byte {
	t.Helper()
	buf, err := serializeWith(fakeFeatureCodec{}, fc, adjacency, DefaultSerializeOptions())
	if err != nil {
		t.Fatalf("serializeWith: %v", err)
	}
	return buf
}

func sampleFeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := 0; i < 3; i++ {
		f := geojson.NewFeature(orb.Point{float64(i), float64(i)})
		f.Properties = geojson.Properties{"name": "vertex"}
		fc.Append(f)
	}
	return fc
}

func TestCheckMagicAcceptsFGGAndFGB(t *testing.T) {
	fgg := append([]byte{}, MagicFGG[:]...)
	if isFGB, err := checkMagic(fgg); err != nil || isFGB {
		t.Fatalf("expected FGG magic to be accepted as non-FGB, got isFGB=%v err=%v", isFGB, err)
	}

	fgb := append([]byte{}, MagicFGB[:]...)
	if isFGB, err := checkMagic(fgb); err != nil || !isFGB {
		t.Fatalf("expected FGB magic to be accepted as FGB, got isFGB=%v err=%v", isFGB, err)
	}
}

func TestCheckMagicRejectsGarbage(t *testing.T) {
	if _, err := checkMagic([]byte("garbage!")); err == nil {
		t.Fatal("expected an error for unrecognized magic")
	}
}

func TestCheckMagicRejectsTruncated(t *testing.T) {
	if _, err := checkMagic([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected an error for a buffer shorter than the magic")
	}
}

func TestCheckMagicRejectsNewerMajor(t *testing.T) {
	buf := []byte{'f', 'g', 'g', 99, 'f', 'g', 'g', 0}
	if _, err := checkMagic(buf); err == nil {
		t.Fatal("expected an error for an unsupported major version")
	}
}

func TestLocateGraphSectionWithEdges(t *testing.T) {
	fc := sampleFeatureCollection()
	adjacency := &AdjacencyList{Edges: []Edge{
		{From: 0, To: 1, Properties: Properties{"weight": 1.0}, PropertyOrder: []string{"weight"}},
	}}
	buf := buildFakeFGG(t, fc, adjacency)

	loc, err := locateGraphSection(buf, fakeFeatureCodec{})
	if err != nil {
		t.Fatalf("locateGraphSection: %v", err)
	}
	if loc.IsFGB {
		t.Fatal("expected IsFGB false for an FGG buffer")
	}
	if loc.FeatureHeader.FeaturesCount != 3 {
		t.Errorf("expected 3 features, got %d", loc.FeatureHeader.FeaturesCount)
	}
	if loc.GraphOffset >= len(buf) {
		t.Errorf("expected GraphOffset to point before the end of buffer, got %d of %d", loc.GraphOffset, len(buf))
	}

	// The bytes from GraphOffset onward must decode as a valid graph section.
	section, err := decodeGraphSection(buf, loc.GraphOffset)
	if err != nil {
		t.Fatalf("decodeGraphSection at located offset: %v", err)
	}
	if len(section.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(section.Edges))
	}
}

func TestLocateGraphSectionNoGraph(t *testing.T) {
	fc := sampleFeatureCollection()
	buf := buildFakeFGG(t, fc, nil)

	loc, err := locateGraphSection(buf, fakeFeatureCodec{})
	if err != nil {
		t.Fatalf("locateGraphSection: %v", err)
	}
	if loc.GraphOffset != len(buf) {
		t.Errorf("expected GraphOffset == len(buf) with no graph section, got %d of %d", loc.GraphOffset, len(buf))
	}
}

func TestLocateGraphSectionPlainFGB(t *testing.T) {
	buf := append([]byte{}, MagicFGB[:]...)
	buf = append(buf, []byte("whatever else a plain fgb file contains")...)

	loc, err := locateGraphSection(buf, fakeFeatureCodec{})
	if err != nil {
		t.Fatalf("locateGraphSection: %v", err)
	}
	if !loc.IsFGB {
		t.Error("expected IsFGB true for plain FGB input")
	}
	if loc.GraphOffset != len(buf) {
		t.Errorf("expected GraphOffset == len(buf) for plain FGB, got %d", loc.GraphOffset)
	}
}
