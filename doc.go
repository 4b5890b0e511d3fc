// Package flatgeograph implements FlatGeoGraphBuf, a binary container format
// for geospatial graphs layered on top of a FlatGeobuf-compatible feature
// stream. Vertices are carried as FlatGeobuf features; directed edges between
// them are carried as size-prefixed records in a trailing graph section.
//
// The package owns the graph section's layout, the edge and property codecs,
// the offset locator that finds where the graph section begins, and the
// streaming reader. Everything to do with features themselves — geometry,
// the FlatGeobuf feature header/body, and the packed Hilbert R-tree index —
// is delegated to the feature subpackage, which wraps the upstream FlatGeobuf
// codec.
package flatgeograph

// Magic bytes identifying a FlatGeoGraphBuf file: ASCII "fgg", major version
// 1, ASCII "fgg", patch version 0.
var MagicFGG = [8]byte{'f', 'g', 'g', 1, 'f', 'g', 'g', 0}

// MagicFGB is the plain FlatGeobuf magic. Readers accept it as a valid
// container with no graph section.
var MagicFGB = [8]byte{'f', 'g', 'b', 3, 'f', 'g', 'b', 0}

// supportedMajor is the highest FGG major version this package can read.
const supportedMajor = 1

// magicASCII and magicASCIIFGB are the "fgg" and "fgb" ascii markers
// occupying bytes 0-2 and 4-6 of the FGG and FGB magic respectively.
const magicASCII = "fgg"
const magicASCIIFGB = "fgb"
