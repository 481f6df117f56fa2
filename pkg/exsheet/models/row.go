package models

// RowValue is one logical data item of a sheet. It is a closed set:
// ObjectRow, ArrayRow and ScalarRow are the only implementations.
type RowValue interface {
	isRowValue()
}

// Field is a single key/value pair of an ObjectRow.
type Field struct {
	Key   string
	Value interface{}
}

// ObjectRow is a keyed row. Field order is the row's own key order and is
// used when the sheet has no headers.
type ObjectRow []Field

// ArrayRow is rendered as a single joined text cell, never one cell per element.
type ArrayRow []interface{}

// ScalarRow is a single primitive value occupying one cell.
type ScalarRow struct {
	Value interface{}
}

func (ObjectRow) isRowValue() {}
func (ArrayRow) isRowValue() {}
func (ScalarRow) isRowValue() {}

// Get returns the value stored under key and whether the key exists.
func (o ObjectRow) Get(key string) (interface{}, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the row's keys in order.
func (o ObjectRow) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}

// Object builds an ObjectRow from alternating key, value arguments.
// A trailing key without a value is stored with a nil value.
func Object(kv ...interface{}) ObjectRow {
	row := make(ObjectRow, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, _ := kv[i].(string)
		var value interface{}
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		row = append(row, Field{Key: key, Value: value})
	}
	return row
}

// Array builds an ArrayRow.
func Array(values ...interface{}) ArrayRow {
	return ArrayRow(values)
}

// Scalar builds a ScalarRow.
func Scalar(v interface{}) ScalarRow {
	return ScalarRow{Value: v}
}

// RowOf wraps an arbitrary Go value as a RowValue. RowValues pass through,
// slices become ArrayRows and everything else is treated as an opaque scalar.
func RowOf(v interface{}) RowValue {
	switch t := v.(type) {
	case RowValue:
		return t
	case []interface{}:
		return ArrayRow(t)
	case []string:
		arr := make(ArrayRow, len(t))
		for i, s := range t {
			arr[i] = s
		}
		return arr
	default:
		return ScalarRow{Value: v}
	}
}
