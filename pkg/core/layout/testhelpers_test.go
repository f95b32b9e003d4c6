package layout

// box is a test subview with a natural size. A flexible box takes any
// constrained proposal on each axis.
type box struct {
	natural  Size
	flexible bool
	weight   float64

	measured []Proposal
	placed   []placement
}

type placement struct {
	at       Point
	proposal Proposal
}

func newBox(w, h float64) *box { return &box{natural: Size{Width: w, Height: h}} }

func newFlexBox(w, h float64) *box {
	return &box{natural: Size{Width: w, Height: h}, flexible: true}
}

func (b *box) SizeThatFits(p Proposal) Size {
	b.measured = append(b.measured, p)
	if !b.flexible {
		return b.natural
	}
	return Size{
		Width:  p.Width.Or(b.natural.Width),
		Height: p.Height.Or(b.natural.Height),
	}
}

func (b *box) Place(at Point, p Proposal) {
	b.placed = append(b.placed, placement{at: at, proposal: p})
}

func (b *box) Weight() float64 { return b.weight }

func (b *box) last() placement {
	if len(b.placed) == 0 {
		return placement{}
	}
	return b.placed[len(b.placed)-1]
}

// subviews converts boxes to a Subview slice.
func subviews(boxes ...*box) []Subview {
	out := make([]Subview, len(boxes))
	for i, b := range boxes {
		out[i] = b
	}
	return out
}

// weighted returns a Weights table pairing boxes with weights.
func weighted(boxes []*box, weights ...float64) Weights {
	w := make(Weights, len(boxes))
	for i, b := range boxes {
		w[b] = weights[i]
	}
	return w
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
