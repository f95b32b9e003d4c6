package layout

import "fmt"

// Dimension is a single proposed extent: either a concrete value or
// unconstrained. The zero value is unconstrained.
type Dimension struct {
	value       float64
	constrained bool
}

// Constrained returns a Dimension bounded to v.
func Constrained(v float64) Dimension {
	return Dimension{value: v, constrained: true}
}

// Unconstrained returns a Dimension with no bound.
func Unconstrained() Dimension {
	return Dimension{}
}

// Value returns the bound and whether there is one.
func (d Dimension) Value() (float64, bool) { return d.value, d.constrained }

// IsConstrained reports whether d carries a concrete bound.
func (d Dimension) IsConstrained() bool { return d.constrained }

// Or returns the bound, or fallback when d is unconstrained.
func (d Dimension) Or(fallback float64) float64 {
	if d.constrained {
		return d.value
	}
	return fallback
}

func (d Dimension) String() string {
	if !d.constrained {
		return "nil"
	}
	return fmt.Sprintf("%g", d.value)
}

// Proposal is the size a container offers a subview. Either component may
// be unconstrained.
type Proposal struct {
	Width  Dimension
	Height Dimension
}

// Unbounded returns a proposal with both axes unconstrained.
func Unbounded() Proposal { return Proposal{} }

// ProposeSize returns a proposal constrained on both axes.
func ProposeSize(width, height float64) Proposal {
	return Proposal{Width: Constrained(width), Height: Constrained(height)}
}

func (p Proposal) String() string {
	return fmt.Sprintf("(%s, %s)", p.Width, p.Height)
}

// Size is a resolved width and height.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in the container's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Origin.Y + r.Size.Height/2 }
