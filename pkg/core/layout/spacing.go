package layout

// Defaults holds the spacing a stack uses when it has none of its own.
type Defaults struct {
	RowSpacing    float64
	ColumnSpacing float64
}

// DefaultSpacing is the spacing used by stacks built without WithDefaults.
var DefaultSpacing = Defaults{
	RowSpacing:    8,
	ColumnSpacing: 10,
}

// For returns the default spacing for stacks along axis a.
func (d Defaults) For(a Axis) float64 {
	if a == Horizontal {
		return d.RowSpacing
	}
	return d.ColumnSpacing
}

// gapCount returns the number of gaps between n subviews.
func gapCount(n int) int {
	if n < 1 {
		return 0
	}
	return n - 1
}

// totalSpacing returns the space consumed by the gaps between n subviews.
func totalSpacing(spacing float64, n int) float64 {
	return spacing * float64(gapCount(n))
}
