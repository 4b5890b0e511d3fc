package feature

import "testing"

func TestPackedTreeSizeZeroFeatures(t *testing.T) {
	if got := PackedTreeSize(0, 16); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestPackedTreeSizeSingleLevel(t *testing.T) {
	// 10 features, node size 16: fits in one leaf level plus a single root.
	got := PackedTreeSize(10, 16)
	want := uint64(10+1) * nodeItemSize
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestPackedTreeSizeMultiLevel(t *testing.T) {
	// 1000 features at node size 16 needs multiple internal levels.
	got := PackedTreeSize(1000, 16)
	if got <= 1000*nodeItemSize {
		t.Errorf("expected size to exceed the leaf-only size %d, got %d", 1000*nodeItemSize, got)
	}
}

func TestPackedTreeSizeDefaultsSmallNodeSize(t *testing.T) {
	// nodeSize < 2 floors to 16, matching the reference implementation.
	got := PackedTreeSize(100, 0)
	want := PackedTreeSize(100, 16)
	if got != want {
		t.Errorf("expected nodeSize=0 to behave like nodeSize=16: got %d, want %d", got, want)
	}
}

func TestPackedTreeSizeMonotonic(t *testing.T) {
	prev := uint64(0)
	for _, n := range []uint64{1, 2, 10, 100, 1000} {
		got := PackedTreeSize(n, 16)
		if got < prev {
			t.Errorf("expected PackedTreeSize to be non-decreasing in featuresCount, got %d after %d for n=%d", got, prev, n)
		}
		prev = got
	}
}
