package flatgeograph

// ColumnType tags the declared binary shape of a graph column's values.
// This is the graph section's own schema, distinct from (and simpler than)
// the FlatGeobuf feature header's flatbuffers Column table — see DESIGN.md
// for why the two are not unified.
type ColumnType uint8

const (
	ColumnByte     ColumnType = 0
	ColumnUByte    ColumnType = 1
	ColumnBool     ColumnType = 2
	ColumnShort    ColumnType = 3
	ColumnUShort   ColumnType = 4
	ColumnInt      ColumnType = 5
	ColumnUInt     ColumnType = 6
	ColumnLong     ColumnType = 7
	ColumnULong    ColumnType = 8
	ColumnFloat    ColumnType = 9
	ColumnDouble   ColumnType = 10
	ColumnString   ColumnType = 11
	ColumnJSON     ColumnType = 12
	ColumnDateTime ColumnType = 13
	ColumnBinary   ColumnType = 14
)

func (t ColumnType) valid() bool {
	return t <= ColumnBinary
}

func (t ColumnType) String() string {
	switch t {
	case ColumnByte:
		return "Byte"
	case ColumnUByte:
		return "UByte"
	case ColumnBool:
		return "Bool"
	case ColumnShort:
		return "Short"
	case ColumnUShort:
		return "UShort"
	case ColumnInt:
		return "Int"
	case ColumnUInt:
		return "UInt"
	case ColumnLong:
		return "Long"
	case ColumnULong:
		return "ULong"
	case ColumnFloat:
		return "Float"
	case ColumnDouble:
		return "Double"
	case ColumnString:
		return "String"
	case ColumnJSON:
		return "Json"
	case ColumnDateTime:
		return "DateTime"
	case ColumnBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Column is a named, typed slot in an edge's property schema. Edges
// reference a column by its ordinal position in the declaring Header's
// Columns list, not by name.
type Column struct {
	Name string
	Type ColumnType
}

// encodeColumn writes a Column as [name-length u16][name bytes][type u8].
func encodeColumn(w *writer, c Column) {
	w.str16(c.Name)
	w.u8(uint8(c.Type))
}

// decodeColumn reads a Column encoded by encodeColumn.
func decodeColumn(r *reader) (Column, error) {
	name, err := r.str16()
	if err != nil {
		return Column{}, err
	}
	t, err := r.u8()
	if err != nil {
		return Column{}, err
	}
	ct := ColumnType(t)
	if !ct.valid() {
		return Column{}, newErr(KindInvalidColumnType, "type byte %d out of range", t)
	}
	return Column{Name: name, Type: ct}, nil
}
