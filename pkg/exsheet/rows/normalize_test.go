package rows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

func TestNormalizeObjectWithKeyOrder(t *testing.T) {
	headers := []string{"a", "b"}

	tests := []struct {
		name     string
		row      models.ObjectRow
		expected []interface{}
	}{
		{"reordered", models.Object("b", 2, "a", 1), []interface{}{1, 2}},
		{"missing key", models.Object("a", 1), []interface{}{1, ""}},
		{"nil value", models.Object("a", nil, "b", "x"), []interface{}{"", "x"}},
		{"extra key dropped", models.Object("c", 3, "b", 2, "a", 1), []interface{}{1, 2}},
		{"empty object", models.ObjectRow{}, []interface{}{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.row, headers))
		})
	}
}

func TestNormalizeObjectOwnOrder(t *testing.T) {
	row := models.Object("name", "J", "age", 24, "tags", []interface{}{"x", "y"})
	assert.Equal(t, []interface{}{"J", 24, "x,y"}, Normalize(row, nil))

	// rows without headers may differ in length
	assert.Len(t, Normalize(models.Object("k", 1), nil), 1)
}

func TestNormalizeArrayIsSingleCell(t *testing.T) {
	tests := []struct {
		row      models.ArrayRow
		expected string
	}{
		{models.Array("x", "y", "z"), "x,y,z"},
		{models.Array(1, 2.5, true), "1,2.5,true"},
		{models.Array("a", nil, "b"), "a,,b"},
		{models.Array("a", []interface{}{"b", "c"}), "a,b,c"},
		{models.Array(), ""},
	}

	for _, tt := range tests {
		cells := Normalize(tt.row, []string{"ignored", "keys"})
		assert.Equal(t, []interface{}{tt.expected}, cells)
	}
}

func TestNormalizeScalar(t *testing.T) {
	assert.Equal(t, []interface{}{42}, Normalize(models.Scalar(42), nil))
	assert.Equal(t, []interface{}{"txt"}, Normalize(models.Scalar("txt"), []string{"a"}))
	assert.Equal(t, []interface{}{""}, Normalize(models.Scalar(nil), nil))
	assert.Equal(t, []interface{}{""}, Normalize(nil, nil))
}

func TestNormalizeOpaqueScalar(t *testing.T) {
	type point struct{ X, Y int }
	cells := Normalize(models.RowOf(point{1, 2}), nil)
	assert.Equal(t, []interface{}{"{1 2}"}, cells)
}

func TestText(t *testing.T) {
	ts := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, ""},
		{"hello", "hello"},
		{24, "24"},
		{int64(-7), "-7"},
		{200.5, "200.5"},
		{float64(3), "3"},
		{true, "true"},
		{ts, "2024-07-01T09:30:00Z"},
		{[]interface{}{1, "a"}, "1,a"},
	}

	for _, tt := range tests {
		if got := Text(tt.input); got != tt.expected {
			t.Errorf("Text(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
