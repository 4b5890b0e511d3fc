package flatgeograph

import (
	"testing"

	"github.com/cristianob/flatgeographbuf/feature"
	"github.com/paulmach/orb/geojson"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	fc := sampleFeatureCollection()
	adjacency := &AdjacencyList{Edges: []Edge{
		{From: 0, To: 1, Properties: Properties{"weight": 1.0}, PropertyOrder: []string{"weight"}},
		{From: 1, To: 2, Properties: Properties{"weight": 2.0}},
	}}

	buf, err := serializeWith(fakeFeatureCodec{}, fc, adjacency, DefaultSerializeOptions())
	if err != nil {
		t.Fatalf("serializeWith: %v", err)
	}

	result, err := deserializeWith(fakeFeatureCodec{}, buf, nil)
	if err != nil {
		t.Fatalf("deserializeWith: %v", err)
	}

	if len(result.Features) != 3 {
		t.Fatalf("expected 3 features, got %d", len(result.Features))
	}
	if len(result.AdjacencyList.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(result.AdjacencyList.Edges))
	}
	if result.AdjacencyList.Edges[0].From != 0 || result.AdjacencyList.Edges[0].To != 1 {
		t.Errorf("edge 0: got %+v", result.AdjacencyList.Edges[0])
	}
	if result.AdjacencyList.Edges[0].Properties["weight"] != 1.0 {
		t.Errorf("edge 0 weight: got %v", result.AdjacencyList.Edges[0].Properties["weight"])
	}
}

func TestSerializeNoAdjacencyProducesPlainFeatureSection(t *testing.T) {
	fc := sampleFeatureCollection()

	buf, err := serializeWith(fakeFeatureCodec{}, fc, nil, DefaultSerializeOptions())
	if err != nil {
		t.Fatalf("serializeWith: %v", err)
	}

	result, err := deserializeWith(fakeFeatureCodec{}, buf, nil)
	if err != nil {
		t.Fatalf("deserializeWith: %v", err)
	}
	if len(result.AdjacencyList.Edges) != 0 {
		t.Errorf("expected no edges, got %d", len(result.AdjacencyList.Edges))
	}
	if result.AdjacencyList.Edges == nil {
		t.Error("expected a non-nil, empty edge slice")
	}
}

func TestDeserializeInvokesObserverBeforeMaterializing(t *testing.T) {
	fc := sampleFeatureCollection()
	adjacency := &AdjacencyList{Edges: []Edge{
		{From: 0, To: 1, Properties: Properties{"weight": 1.0}, PropertyOrder: []string{"weight"}},
	}}
	buf, err := serializeWith(fakeFeatureCodec{}, fc, adjacency, DefaultSerializeOptions())
	if err != nil {
		t.Fatalf("serializeWith: %v", err)
	}

	var observed ProbeResult
	var called bool
	observer := func(p ProbeResult) error {
		called = true
		observed = p
		return nil
	}

	if _, err := deserializeWith(fakeFeatureCodec{}, buf, observer); err != nil {
		t.Fatalf("deserializeWith: %v", err)
	}
	if !called {
		t.Fatal("expected the observer to be invoked")
	}
	if observed.Features.FeaturesCount != 3 {
		t.Errorf("expected observer to see 3 features, got %d", observed.Features.FeaturesCount)
	}
	if observed.Graph == nil || observed.Graph.EdgeCount != 1 {
		t.Errorf("expected observer to see 1 edge, got %+v", observed.Graph)
	}
}

func TestDeserializeObserverErrorAbortsRead(t *testing.T) {
	fc := sampleFeatureCollection()
	buf, err := serializeWith(fakeFeatureCodec{}, fc, nil, DefaultSerializeOptions())
	if err != nil {
		t.Fatalf("serializeWith: %v", err)
	}

	sentinel := newErr(KindTruncated, "observer declined")
	_, err = deserializeWith(fakeFeatureCodec{}, buf, func(ProbeResult) error { return sentinel })
	if err != sentinel {
		t.Fatalf("expected the observer's error to propagate verbatim, got %v", err)
	}
}

func TestDeserializePlainFGBHasNoGraphSection(t *testing.T) {
	buf := append([]byte{}, MagicFGB[:]...)
	emptyHeader, err := (fakeFeatureCodec{}).EncodeFeatures(geojson.NewFeatureCollection(), feature.WriteOptions{})
	if err != nil {
		t.Fatalf("EncodeFeatures: %v", err)
	}
	buf = append(buf, emptyHeader...)

	result, err := deserializeWith(fakeFeatureCodec{}, buf, nil)
	if err != nil {
		t.Fatalf("deserializeWith: %v", err)
	}
	if len(result.AdjacencyList.Edges) != 0 {
		t.Errorf("expected no edges for plain FGB input, got %d", len(result.AdjacencyList.Edges))
	}
}
