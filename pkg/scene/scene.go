package scene

import (
	"strconv"

	"github.com/matzehuels/weightstack/pkg/core/layout"
)

// Orientation values for container nodes.
const (
	OrientationRow    = "row"
	OrientationColumn = "column"
)

// Sizing values for leaf nodes.
const (
	// SizingFixed leaves always report their intrinsic size.
	SizingFixed = "fixed"
	// SizingFill leaves take any constrained proposal and fall back to their
	// intrinsic size on unconstrained axes.
	SizingFill = "fill"
)

// RootID is the ID given to an unnamed root node.
const RootID = "root"

// Scene is a tree of nodes plus the size proposed to its root.
type Scene struct {
	Name     string    `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Proposal *Proposal `json:"proposal,omitempty" toml:"proposal,omitempty" yaml:"proposal,omitempty"`
	Root     Node      `json:"root" toml:"root" yaml:"root"`
}

// Proposal is a serialized layout.Proposal. A nil axis is unconstrained.
type Proposal struct {
	Width  *float64 `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
}

// Layout converts p to the engine's proposal. A nil p is unbounded.
func (p *Proposal) Layout() layout.Proposal {
	if p == nil {
		return layout.Unbounded()
	}
	var out layout.Proposal
	if p.Width != nil {
		out.Width = layout.Constrained(*p.Width)
	}
	if p.Height != nil {
		out.Height = layout.Constrained(*p.Height)
	}
	return out
}

// Node is a container or a leaf.
type Node struct {
	ID     string  `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Weight float64 `json:"weight,omitempty" toml:"weight,omitempty" yaml:"weight,omitempty"`

	// Container fields
	Orientation string   `json:"orientation,omitempty" toml:"orientation,omitempty" yaml:"orientation,omitempty"`
	Alignment   string   `json:"alignment,omitempty" toml:"alignment,omitempty" yaml:"alignment,omitempty"`
	Spacing     *float64 `json:"spacing,omitempty" toml:"spacing,omitempty" yaml:"spacing,omitempty"`
	Children    []Node   `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`

	// Leaf fields
	Width  float64 `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Sizing string  `json:"sizing,omitempty" toml:"sizing,omitempty" yaml:"sizing,omitempty"`
}

// IsContainer reports whether n lays out children.
func (n *Node) IsContainer() bool { return n.Orientation != "" }

// Axis returns the main axis of a container node.
func (n *Node) Axis() (layout.Axis, bool) {
	switch n.Orientation {
	case OrientationRow:
		return layout.Horizontal, true
	case OrientationColumn:
		return layout.Vertical, true
	default:
		return 0, false
	}
}

// Fills reports whether a leaf accepts constrained proposals.
func (n *Node) Fills() bool { return n.Sizing == SizingFill }

// Walk visits n and its descendants depth-first, in order. path is the
// slash-separated index path from the root ("" for the root itself).
// Returning an error stops the walk.
func (n *Node) Walk(fn func(path string, depth int, n *Node) error) error {
	return n.walk("", 0, fn)
}

func (n *Node) walk(path string, depth int, fn func(string, int, *Node) error) error {
	if err := fn(path, depth, n); err != nil {
		return err
	}
	for i := range n.Children {
		if err := n.Children[i].walk(childPath(path, i), depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

func childPath(parent string, i int) string {
	if parent == "" {
		return strconv.Itoa(i)
	}
	return parent + "/" + strconv.Itoa(i)
}

// Count returns the number of nodes in the tree rooted at n, and how many
// of them are leaves.
func (n *Node) Count() (nodes, leaves int) {
	_ = n.Walk(func(_ string, _ int, v *Node) error {
		nodes++
		if !v.IsContainer() {
			leaves++
		}
		return nil
	})
	return nodes, leaves
}

// Normalize fills empty node IDs with "root" followed by the node's index
// path, e.g. "root/0/2". Run it after Validate: generated IDs contain '/',
// which Validate rejects in user IDs.
func Normalize(s *Scene) {
	_ = s.Root.Walk(func(path string, _ int, n *Node) error {
		if n.ID == "" {
			n.ID = pathID(path)
		}
		return nil
	})
}

func pathID(path string) string {
	if path == "" {
		return RootID
	}
	return RootID + "/" + path
}

// Clone returns a deep copy of s.
func (s *Scene) Clone() *Scene {
	out := &Scene{Name: s.Name, Root: s.Root.clone()}
	if s.Proposal != nil {
		out.Proposal = &Proposal{Width: clonePtr(s.Proposal.Width), Height: clonePtr(s.Proposal.Height)}
	}
	return out
}

func (n *Node) clone() Node {
	out := *n
	out.Spacing = clonePtr(n.Spacing)
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i := range n.Children {
			out.Children[i] = n.Children[i].clone()
		}
	}
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
