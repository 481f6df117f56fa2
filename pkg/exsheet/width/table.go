package width

import "sort"

// Table tracks the widest known width per column of one sheet. Widths only
// grow and are stored clamped to [Min, Max].
type Table struct {
	min, max float64
	widths   map[int]float64
}

// NewTable returns an empty table clamping to [min, max]. Non-positive
// bounds fall back to MinWidth and MaxWidth.
func NewTable(min, max float64) *Table {
	if min <= 0 {
		min = MinWidth
	}
	if max <= 0 {
		max = MaxWidth
	}
	if max < min {
		max = min
	}
	return &Table{min: min, max: max, widths: make(map[int]float64)}
}

// Update offers a candidate width for column col (1-based). The stored width
// is replaced by the clamped candidate when the column is unset or the
// candidate is larger than the stored width.
func (t *Table) Update(col int, candidate float64) {
	current, ok := t.widths[col]
	if ok && candidate <= current {
		return
	}
	t.widths[col] = clamp(candidate, t.min, t.max)
}

// Width returns the stored width of column col.
func (t *Table) Width(col int) (float64, bool) {
	w, ok := t.widths[col]
	return w, ok
}

// Columns returns the column indexes with a stored width in ascending order.
func (t *Table) Columns() []int {
	cols := make([]int, 0, len(t.widths))
	for col := range t.widths {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	return cols
}

// Len returns the number of sized columns.
func (t *Table) Len() int {
	return len(t.widths)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
