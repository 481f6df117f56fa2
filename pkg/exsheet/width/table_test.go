package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableUpdate(t *testing.T) {
	tests := []struct {
		name       string
		candidates []float64
		expected   float64
	}{
		{"below min", []float64{3}, 10},
		{"zero", []float64{0}, 10},
		{"within bounds", []float64{12.5}, 12.5},
		{"above max", []float64{80}, 50},
		{"grows", []float64{12, 30}, 30},
		{"never shrinks", []float64{30, 12}, 30},
		{"clamped then larger", []float64{80, 90}, 50},
		{"small after min", []float64{4, 8}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(MinWidth, MaxWidth)
			for _, c := range tt.candidates {
				table.Update(1, c)
			}
			w, ok := table.Width(1)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, w)
		})
	}
}

func TestTableMonotonic(t *testing.T) {
	table := NewTable(MinWidth, MaxWidth)
	candidates := []float64{15, 3, 42, 7, 61, 20, 0}

	prev := 0.0
	for _, c := range candidates {
		table.Update(2, c)
		w, _ := table.Width(2)
		assert.GreaterOrEqual(t, w, prev)
		assert.GreaterOrEqual(t, w, float64(MinWidth))
		assert.LessOrEqual(t, w, float64(MaxWidth))
		prev = w
	}
}

func TestTableColumns(t *testing.T) {
	table := NewTable(0, 0)
	table.Update(3, 20)
	table.Update(1, 5)
	table.Update(2, 100)

	assert.Equal(t, []int{1, 2, 3}, table.Columns())
	assert.Equal(t, 3, table.Len())

	_, ok := table.Width(4)
	assert.False(t, ok)
}

func TestNewTableBounds(t *testing.T) {
	table := NewTable(20, 15)
	table.Update(1, 100)
	w, _ := table.Width(1)
	assert.Equal(t, 20.0, w)
}
