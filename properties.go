package flatgeograph

import (
	"encoding/json"
	"sort"
)

// Properties is a sparse map of edge property values. Keys absent or mapped
// to nil are treated as "not present" and are simply skipped by the encoder
// (spec §3: "absent keys represent 'not present'").
type Properties map[string]interface{}

// encodeEdgeProperties walks columns in declared order and, for each column
// present and non-nil in props, writes [column-ordinal u16][value] in the
// column's declared binary form. Columns missing from props are skipped
// entirely for this edge (spec §4.4).
func encodeEdgeProperties(w *writer, columns []Column, props Properties) error {
	if len(props) == 0 {
		return nil
	}
	for ordinal, col := range columns {
		v, ok := props[col.Name]
		if !ok || v == nil {
			continue
		}
		w.u16(uint16(ordinal))
		if err := writePropertyValue(w, col.Type, v); err != nil {
			return err
		}
	}
	return nil
}

// decodeEdgeProperties reads a property region produced by
// encodeEdgeProperties. Reading stops (without error) the moment a column
// ordinal >= len(columns) is encountered, per spec §4.4's forward
// compatibility rule, and also stops cleanly once the region is exhausted.
// Ordinals need not appear in any particular order within one edge.
func decodeEdgeProperties(region []byte, columns []Column) (Properties, error) {
	props := make(Properties)
	if len(region) == 0 {
		return props, nil
	}
	r := newReader(region)
	for r.remaining() > 0 {
		start := r.pos
		ordinal, err := r.u16()
		if err != nil {
			// Fewer than 2 bytes left: end of the property region.
			r.pos = start
			break
		}
		if int(ordinal) >= len(columns) {
			// Unknown ordinal: stop parsing, not an error (forward
			// compatibility, spec §4.4/§7).
			break
		}
		col := columns[ordinal]
		v, err := readPropertyValue(r, col.Type)
		if err != nil {
			return nil, err
		}
		props[col.Name] = v
	}
	return props, nil
}

// writePropertyValue encodes a single value in colType's declared binary
// form.
func writePropertyValue(w *writer, colType ColumnType, v interface{}) error {
	switch colType {
	case ColumnBool:
		b, ok := toBool(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not a bool for Bool column", v)
		}
		if b {
			w.u8(1)
		} else {
			w.u8(0)
		}

	case ColumnByte:
		n, ok := toInt64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for Byte column", v)
		}
		w.i8(int8(n))

	case ColumnUByte:
		n, ok := toUint64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for UByte column", v)
		}
		w.u8(uint8(n))

	case ColumnShort:
		n, ok := toInt64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for Short column", v)
		}
		w.i16(int16(n))

	case ColumnUShort:
		n, ok := toUint64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for UShort column", v)
		}
		w.u16(uint16(n))

	case ColumnInt:
		n, ok := toInt64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for Int column", v)
		}
		w.i32(int32(n))

	case ColumnUInt:
		n, ok := toUint64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for UInt column", v)
		}
		w.u32(uint32(n))

	case ColumnLong:
		n, ok := toInt64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for Long column", v)
		}
		w.i64(n)

	case ColumnULong:
		n, ok := toUint64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for ULong column", v)
		}
		w.u64(n)

	case ColumnFloat:
		f, ok := toFloat64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for Float column", v)
		}
		w.f32(float32(f))

	case ColumnDouble:
		f, ok := toFloat64(v)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not numeric for Double column", v)
		}
		w.f64(f)

	case ColumnString, ColumnDateTime:
		s, ok := v.(string)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not a string for %s column", v, colType)
		}
		w.str32(s)

	case ColumnJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return newErr(KindUnknownPropertyType, "value %v cannot be marshaled to json: %v", v, err)
		}
		w.str32(string(b))

	case ColumnBinary:
		b, ok := v.([]byte)
		if !ok {
			return newErr(KindUnknownPropertyType, "value %v is not []byte for Binary column", v)
		}
		w.bytes32(b)

	default:
		return newErr(KindInvalidColumnType, "unrecognized column type %d", colType)
	}
	return nil
}

// readPropertyValue decodes a single value of colType from r.
func readPropertyValue(r *reader, colType ColumnType) (interface{}, error) {
	switch colType {
	case ColumnBool:
		b, err := r.u8()
		if err != nil {
			return nil, err
		}
		return b != 0, nil

	case ColumnByte:
		return r.i8()

	case ColumnUByte:
		return r.u8()

	case ColumnShort:
		return r.i16()

	case ColumnUShort:
		return r.u16()

	case ColumnInt:
		return r.i32()

	case ColumnUInt:
		return r.u32()

	case ColumnLong:
		return r.i64()

	case ColumnULong:
		return r.u64()

	case ColumnFloat:
		return r.f32()

	case ColumnDouble:
		return r.f64()

	case ColumnString, ColumnDateTime:
		return r.str32()

	case ColumnJSON:
		s, err := r.str32()
		if err != nil {
			return nil, err
		}
		var v interface{}
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, newErr(KindMalformedJSON, "%v", err)
		}
		return v, nil

	case ColumnBinary:
		return r.bytes32()

	default:
		return nil, newErr(KindInvalidColumnType, "unrecognized column type %d", colType)
	}
}

// orderedKeys returns order (if non-nil) verbatim, otherwise p's keys in
// sorted order. Go's map iteration order is randomized per-process, so
// schema inference (spec §3/§9) needs a deterministic fallback when the
// caller hasn't pinned an explicit order via Edge.PropertyOrder.
func (p Properties) orderedKeys(order []string) []string {
	if order != nil {
		return order
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// inferColumnType implements spec §3's schema-inference type rule: Bool for
// booleans, Double for numbers, String for strings, Binary for raw byte
// arrays, Json for any other object, and String for explicit null.
func inferColumnType(v interface{}) ColumnType {
	switch v.(type) {
	case nil:
		return ColumnString
	case bool:
		return ColumnBool
	case string:
		return ColumnString
	case []byte:
		return ColumnBinary
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return ColumnDouble
	default:
		return ColumnJSON
	}
}

// toBool coerces v to a bool.
func toBool(v interface{}) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// toInt64 coerces v to an int64, accepting any Go numeric kind.
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
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// toUint64 coerces v to a uint64, accepting any Go numeric kind. Negative
// signed values are rejected.
func toUint64(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int8:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int16:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float32:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

// toFloat64 coerces v to a float64, accepting any Go numeric kind.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
