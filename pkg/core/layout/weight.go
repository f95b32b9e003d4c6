package layout

import "math"

// Subview is a child of a stack. Implementations must tolerate being
// measured several times, with different proposals, during one pass.
type Subview interface {
	// SizeThatFits returns the size the subview wants under p.
	SizeThatFits(p Proposal) Size
	// Place assigns the subview's final origin and the proposal it was
	// placed with.
	Place(at Point, p Proposal)
}

// Weighted is implemented by subviews that carry their own weight. It is
// consulted only when a stack has no Weighter.
type Weighted interface {
	Weight() float64
}

// Weighter resolves the weight of a subview.
type Weighter interface {
	WeightOf(v Subview) float64
}

// WeighterFunc adapts a function to the Weighter interface.
type WeighterFunc func(v Subview) float64

// WeightOf calls f(v).
func (f WeighterFunc) WeightOf(v Subview) float64 { return f(v) }

// Weights is a side table of subview weights. Subviews missing from the
// table weigh 0, so keys must be comparable (typically pointers).
type Weights map[Subview]float64

// WeightOf returns the weight recorded for v, or 0.
func (w Weights) WeightOf(v Subview) float64 { return w[v] }

// weightOf resolves the weight of v, never returning a negative or NaN
// value.
func weightOf(w Weighter, v Subview) float64 {
	var weight float64
	switch {
	case w != nil:
		weight = w.WeightOf(v)
	default:
		if wv, ok := v.(Weighted); ok {
			weight = wv.Weight()
		}
	}
	if math.IsNaN(weight) || weight < 0 {
		return 0
	}
	return weight
}

// TotalWeight returns the sum of the weights of subviews, 0 when empty.
func TotalWeight(w Weighter, subviews []Subview) float64 {
	var total float64
	for _, v := range subviews {
		total += weightOf(w, v)
	}
	return total
}

// share returns the part of available owed to a subview of the given
// weight. A zero total yields 0.
func share(available, weight, total float64) float64 {
	if total == 0 {
		return 0
	}
	return available * (weight / total)
}
