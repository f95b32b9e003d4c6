package layout

import "math"

// Layout is implemented by containers that size and place subviews.
type Layout interface {
	SizeThatFits(p Proposal, subviews []Subview) Size
	PlaceSubviews(bounds Rect, p Proposal, subviews []Subview)
}

// Stack lays out subviews along Axis, sharing the main axis by weight
// and aligning them on the cross axis.
type Stack struct {
	// Axis is the main axis.
	Axis Axis
	// Alignment positions subviews on the cross axis.
	Alignment Alignment
	// Spacing is the gap between subviews. Nil selects the axis default
	// from Defaults.
	Spacing *float64
	// Defaults supplies the spacing used when Spacing is nil.
	Defaults Defaults
	// Weights resolves subview weights. Nil falls back to subviews
	// implementing Weighted.
	Weights Weighter
}

// Option configures a Stack.
type Option func(*Stack)

// WithSpacing sets an explicit gap between subviews.
func WithSpacing(v float64) Option { return func(s *Stack) { s.Spacing = &v } }

// WithAlignment sets the cross-axis alignment.
func WithAlignment(a Alignment) Option { return func(s *Stack) { s.Alignment = a } }

// WithWeights sets the weight source.
func WithWeights(w Weighter) Option { return func(s *Stack) { s.Weights = w } }

// WithDefaults overrides the default spacing table.
func WithDefaults(d Defaults) Option { return func(s *Stack) { s.Defaults = d } }

// Row returns a stack that lays subviews out left to right. Subviews are
// centered vertically unless WithAlignment says otherwise.
func Row(opts ...Option) Stack {
	return newStack(Horizontal, opts)
}

// Column returns a stack that lays subviews out top to bottom. Subviews
// are centered horizontally unless WithAlignment says otherwise.
func Column(opts ...Option) Stack {
	return newStack(Vertical, opts)
}

func newStack(a Axis, opts []Option) Stack {
	s := Stack{Axis: a, Alignment: Center, Defaults: DefaultSpacing}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ResolvedSpacing returns the gap placed between subviews.
func (s Stack) ResolvedSpacing() float64 {
	if s.Spacing != nil {
		return *s.Spacing
	}
	return s.Defaults.For(s.Axis)
}

// TotalSpacing returns the space taken by gaps between n subviews.
func (s Stack) TotalSpacing(n int) float64 {
	return totalSpacing(s.ResolvedSpacing(), n)
}

// SizeThatFits returns the size the stack wants under p.
//
// A constrained main axis is filled entirely and subviews are not
// consulted. Otherwise each weighted subview is measured with an
// unconstrained main axis, and the stack is made large enough that every
// subview's share is at least its natural size.
func (s Stack) SizeThatFits(p Proposal, subviews []Subview) Size {
	total := TotalWeight(s.Weights, subviews)
	spacing := s.TotalSpacing(len(subviews))
	sub := s.Axis.proposal(Unconstrained(), s.Axis.crossProposal(p))

	var main float64
	if len(subviews) > 0 {
		if v, ok := s.Axis.mainProposal(p).Value(); ok {
			main = v - spacing
		} else {
			main = s.extrapolate(sub, subviews, total)
		}
	}

	cross, ok := s.Axis.crossProposal(p).Value()
	if !ok {
		for _, v := range subviews {
			cross = math.Max(cross, s.Axis.crossSize(v.SizeThatFits(sub)))
		}
	}

	return s.Axis.size(main+spacing, cross)
}

// extrapolate returns the main-axis size at which every weighted subview's
// share equals or exceeds its natural size.
func (s Stack) extrapolate(sub Proposal, subviews []Subview, total float64) float64 {
	if total == 0 {
		return 0
	}
	var main float64
	for _, v := range subviews {
		w := weightOf(s.Weights, v)
		if w == 0 {
			continue
		}
		natural := s.Axis.mainSize(v.SizeThatFits(sub))
		main = math.Max(main, natural/w*total)
	}
	return main
}

// PlaceSubviews places every subview inside bounds, in order. Each subview
// is offered its weighted share of the main axis and p's cross-axis value.
func (s Stack) PlaceSubviews(bounds Rect, p Proposal, subviews []Subview) {
	total := TotalWeight(s.Weights, subviews)
	spacing := s.ResolvedSpacing()
	available := s.Axis.mainSize(bounds.Size) - s.TotalSpacing(len(subviews))
	crossMin, crossMax := s.Axis.crossRange(bounds)
	cross := s.Axis.crossProposal(p)

	offset := s.Axis.mainOrigin(bounds)
	for _, v := range subviews {
		main := share(available, weightOf(s.Weights, v), total)
		proposal := s.Axis.proposal(Constrained(main), cross)

		sz := v.SizeThatFits(proposal)
		at := s.Axis.point(offset, s.Alignment.Offset(crossMin, crossMax, s.Axis.crossSize(sz)))
		v.Place(at, proposal)

		offset += main + spacing
	}
}

var _ Layout = Stack{}
