// Package rows turns row values into ordered cell values.
package rows

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

// ArraySeparator joins the elements of an array row.
const ArraySeparator = ","

// Normalize converts one row value into cell values. Object rows follow
// keyOrder when it is non-empty, substituting "" for missing keys; otherwise
// they follow their own field order. Array rows always yield a single cell.
func Normalize(v models.RowValue, keyOrder []string) []interface{} {
	switch row := v.(type) {
	case models.ObjectRow:
		return normalizeObject(row, keyOrder)
	case models.ArrayRow:
		return []interface{}{joinArray(row)}
	case models.ScalarRow:
		return []interface{}{cellValue(row.Value)}
	case nil:
		return []interface{}{""}
	default:
		// Unreachable for the closed RowValue set.
		return []interface{}{fmt.Sprint(row)}
	}
}

func normalizeObject(row models.ObjectRow, keyOrder []string) []interface{} {
	if len(keyOrder) == 0 {
		cells := make([]interface{}, len(row))
		for i, f := range row {
			cells[i] = cellValue(f.Value)
		}
		return cells
	}

	cells := make([]interface{}, len(keyOrder))
	for i, key := range keyOrder {
		value, _ := row.Get(key)
		cells[i] = cellValue(value)
	}
	return cells
}

// cellValue maps a raw value to what is written into a cell. Scalars are kept
// so numbers stay numeric; nil becomes "" and composites become text.
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return ""
	case string, bool, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t
	case []interface{}:
		return joinArray(t)
	default:
		return Text(t)
	}
}

func joinArray(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Text(v)
	}
	return strings.Join(parts, ArraySeparator)
}

// Text renders a cell value as display text. Nested arrays are flattened
// with ArraySeparator and nil renders as "".
func Text(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		return t.Format(time.RFC3339)
	case []interface{}:
		return joinArray(t)
	case models.ArrayRow:
		return joinArray(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
