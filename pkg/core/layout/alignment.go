package layout

import (
	"fmt"
	"strings"
)

// Alignment positions a subview on the cross axis of a stack.
type Alignment uint8

const (
	// Leading aligns to the start of the cross axis (top in a row, left in
	// a column).
	Leading Alignment = iota
	// Center centers on the cross axis.
	Center
	// Trailing aligns to the end of the cross axis.
	Trailing
)

// Offset returns the cross-axis position of a subview with the given
// extent inside the range [min, max]. Unrecognized alignments resolve as
// Leading.
func (a Alignment) Offset(min, max, extent float64) float64 {
	switch a {
	case Trailing:
		return max - extent
	case Center:
		return (min+max)/2 - extent/2
	default:
		return min
	}
}

func (a Alignment) String() string {
	switch a {
	case Leading:
		return "leading"
	case Center:
		return "center"
	case Trailing:
		return "trailing"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// ParseAlignment maps a name to an Alignment. Row and column synonyms are
// both accepted. Unknown names return Leading and false.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "start", "top", "left":
		return Leading, true
	case "center", "centre", "middle":
		return Center, true
	case "trailing", "end", "bottom", "right":
		return Trailing, true
	default:
		return Leading, false
	}
}
