package flatgeograph

import "testing"

func TestInferSchemaUsesFirstNonEmptyEdge(t *testing.T) {
	edges := []Edge{
		{From: 0, To: 1, Properties: nil},
		{From: 1, To: 2, Properties: Properties{"weight": 1.0, "label": "a"}, PropertyOrder: []string{"weight", "label"}},
		{From: 2, To: 3, Properties: Properties{"other": true}},
	}

	columns := inferSchema(edges)
	if len(columns) != 2 {
		t.Fatalf("expected 2 columns, got %d: %+v", len(columns), columns)
	}
	if columns[0].Name != "weight" || columns[0].Type != ColumnDouble {
		t.Errorf("column 0: got %+v", columns[0])
	}
	if columns[1].Name != "label" || columns[1].Type != ColumnString {
		t.Errorf("column 1: got %+v", columns[1])
	}
}

func TestInferSchemaNoProperties(t *testing.T) {
	edges := []Edge{{From: 0, To: 1}, {From: 1, To: 2}}
	if columns := inferSchema(edges); columns != nil {
		t.Errorf("expected nil columns, got %+v", columns)
	}
}

func TestGraphSectionRoundTrip(t *testing.T) {
	columns := []Column{{Name: "weight", Type: ColumnDouble}}
	edges := []Edge{
		{From: 0, To: 1, Properties: Properties{"weight": 1.5}},
		{From: 1, To: 2, Properties: Properties{"weight": 2.5}},
		{From: 2, To: 0, Properties: Properties{}},
	}

	section, err := encodeGraphSection(edges, columns, 3)
	if err != nil {
		t.Fatalf("encodeGraphSection: %v", err)
	}

	got, err := decodeGraphSection(section, 0)
	if err != nil {
		t.Fatalf("decodeGraphSection: %v", err)
	}
	if got.Header.EdgeCount != 3 {
		t.Errorf("expected EdgeCount 3, got %d", got.Header.EdgeCount)
	}
	if len(got.Edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(got.Edges))
	}
	if got.Edges[0].Properties["weight"] != 1.5 {
		t.Errorf("edge 0 weight: got %v", got.Edges[0].Properties["weight"])
	}
	if got.Edges[1].Properties["weight"] != 2.5 {
		t.Errorf("edge 1 weight: got %v", got.Edges[1].Properties["weight"])
	}
}

func TestEncodeGraphSectionRejectsInvalidEdge(t *testing.T) {
	edges := []Edge{{From: 0, To: 0}}
	if _, err := encodeGraphSection(edges, nil, 3); err == nil {
		t.Fatal("expected an error for a self-loop edge")
	}
}

func TestPeekGraphHeaderDoesNotTouchEdges(t *testing.T) {
	columns := []Column{{Name: "weight", Type: ColumnDouble}}
	edges := []Edge{{From: 0, To: 1, Properties: Properties{"weight": 1.0}}}

	section, err := encodeGraphSection(edges, columns, 2)
	if err != nil {
		t.Fatalf("encodeGraphSection: %v", err)
	}

	h, err := peekGraphHeader(section, 0)
	if err != nil {
		t.Fatalf("peekGraphHeader: %v", err)
	}
	if h.EdgeCount != 1 {
		t.Errorf("expected EdgeCount 1, got %d", h.EdgeCount)
	}
	if len(h.Columns) != 1 || h.Columns[0].Name != "weight" {
		t.Errorf("expected column 'weight', got %+v", h.Columns)
	}
}
