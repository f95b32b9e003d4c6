package pipeline

import (
	"context"
	"strconv"

	"github.com/matzehuels/weightstack/pkg/core/layout"
	"github.com/matzehuels/weightstack/pkg/observability"
	"github.com/matzehuels/weightstack/pkg/scene"
)

// arrangement holds the state of one pass over a scene: the weight side
// table shared by every stack and the frames recorded so far.
type arrangement struct {
	ctx      context.Context
	hooks    observability.LayoutHooks
	defaults layout.Defaults
	weights  layout.Weights
	frames   []scene.Frame
}

func newArrangement(ctx context.Context, d layout.Defaults) *arrangement {
	return &arrangement{
		ctx:      ctx,
		hooks:    observability.Layout(),
		defaults: d,
		weights:  make(layout.Weights),
	}
}

// build turns n and its descendants into subviews.
func (a *arrangement) build(n *scene.Node, path string, depth int) layout.Subview {
	base := element{a: a, node: n, path: path, depth: depth}
	if !n.IsContainer() {
		v := &leaf{element: base}
		a.weights[v] = n.Weight
		return v
	}

	c := &container{element: base, stack: a.stack(n)}
	for i := range n.Children {
		c.children = append(c.children, a.build(&n.Children[i], childPath(path, i), depth+1))
	}
	a.weights[c] = n.Weight
	return c
}

func (a *arrangement) stack(n *scene.Node) layout.Stack {
	opts := []layout.Option{
		layout.WithDefaults(a.defaults),
		layout.WithWeights(a.weights),
	}
	if n.Alignment != "" {
		al, _ := layout.ParseAlignment(n.Alignment)
		opts = append(opts, layout.WithAlignment(al))
	}
	if n.Spacing != nil {
		opts = append(opts, layout.WithSpacing(*n.Spacing))
	}
	if n.Orientation == scene.OrientationColumn {
		return layout.Column(opts...)
	}
	return layout.Row(opts...)
}

func (a *arrangement) record(e *element, container bool, r layout.Rect) {
	a.hooks.OnPlace(a.ctx, e.node.ID, r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
	a.frames = append(a.frames, scene.Frame{
		ID:        e.node.ID,
		Path:      e.path,
		Depth:     e.depth,
		Weight:    e.node.Weight,
		Container: container,
		X:         r.Origin.X,
		Y:         r.Origin.Y,
		Width:     r.Size.Width,
		Height:    r.Size.Height,
	})
}

type element struct {
	a     *arrangement
	node  *scene.Node
	path  string
	depth int
}

// leaf is a scene leaf with an intrinsic size.
type leaf struct {
	element
}

func (l *leaf) SizeThatFits(p layout.Proposal) layout.Size {
	l.a.hooks.OnMeasure(l.a.ctx, l.node.ID)
	size := layout.Size{Width: l.node.Width, Height: l.node.Height}
	if l.node.Fills() {
		size.Width = p.Width.Or(size.Width)
		size.Height = p.Height.Or(size.Height)
	}
	return size
}

func (l *leaf) Place(at layout.Point, p layout.Proposal) {
	l.a.record(&l.element, false, layout.Rect{Origin: at, Size: l.SizeThatFits(p)})
}

// container is a scene node laid out by a stack.
type container struct {
	element
	stack    layout.Stack
	children []layout.Subview
}

func (c *container) SizeThatFits(p layout.Proposal) layout.Size {
	c.a.hooks.OnMeasure(c.a.ctx, c.node.ID)
	return c.stack.SizeThatFits(p, c.children)
}

func (c *container) Place(at layout.Point, p layout.Proposal) {
	bounds := layout.Rect{Origin: at, Size: c.SizeThatFits(p)}
	c.a.record(&c.element, true, bounds)
	c.stack.PlaceSubviews(bounds, p, c.children)
}

func childPath(parent string, i int) string {
	if parent == "" {
		return strconv.Itoa(i)
	}
	return parent + "/" + strconv.Itoa(i)
}
