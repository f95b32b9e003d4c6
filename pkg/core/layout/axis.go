package layout

// Axis is the main axis of a stack, either Horizontal or Vertical.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Axis(?)"
	}
}

func (a Axis) mainSize(sz Size) float64 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

func (a Axis) crossSize(sz Size) float64 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

func (a Axis) size(main, cross float64) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (a Axis) point(main, cross float64) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

func (a Axis) mainProposal(p Proposal) Dimension {
	if a == Horizontal {
		return p.Width
	}
	return p.Height
}

func (a Axis) crossProposal(p Proposal) Dimension {
	if a == Horizontal {
		return p.Height
	}
	return p.Width
}

func (a Axis) proposal(main, cross Dimension) Proposal {
	if a == Horizontal {
		return Proposal{Width: main, Height: cross}
	}
	return Proposal{Width: cross, Height: main}
}

func (a Axis) mainOrigin(r Rect) float64 {
	if a == Horizontal {
		return r.MinX()
	}
	return r.MinY()
}

// crossRange returns the start and end of r on the cross axis.
func (a Axis) crossRange(r Rect) (float64, float64) {
	if a == Horizontal {
		return r.MinY(), r.MaxY()
	}
	return r.MinX(), r.MaxX()
}
