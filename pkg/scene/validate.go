package scene

import (
	"github.com/matzehuels/weightstack/pkg/core/layout"
	"github.com/matzehuels/weightstack/pkg/errors"
)

// Validate checks a scene before layout. It rejects:
//   - negative or non-finite weights, sizes, spacing and proposal values
//   - unknown orientations and sizing modes
//   - malformed or duplicate node IDs
//   - leaves with children, and containers with intrinsic sizes or sizing
//
// Unknown alignment names are not errors: they lay out as leading. Use
// [UnknownAlignments] to report them.
func Validate(s *Scene) error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidScene, "scene is empty")
	}
	if p := s.Proposal; p != nil {
		if p.Width != nil {
			if err := errors.ValidateSize("proposal", "width", *p.Width); err != nil {
				return err
			}
		}
		if p.Height != nil {
			if err := errors.ValidateSize("proposal", "height", *p.Height); err != nil {
				return err
			}
		}
	}

	seen := make(map[string]string)
	return s.Root.Walk(func(path string, _ int, n *Node) error {
		name := n.ID
		if name == "" {
			name = pathID(path)
		}
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return err
		}
		// Generated IDs share the namespace with user IDs.
		if prev, dup := seen[name]; dup {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate node id %q (at %s and %s)", name, pathID(prev), pathID(path))
		}
		seen[name] = path
		if err := errors.ValidateWeight(name, n.Weight); err != nil {
			return err
		}
		if n.IsContainer() {
			return validateContainer(name, n)
		}
		return validateLeaf(name, n)
	})
}

func validateContainer(name string, n *Node) error {
	if _, ok := n.Axis(); !ok {
		return errors.New(errors.ErrCodeInvalidOrientation, "node %q: invalid orientation %q (must be row or column)", name, n.Orientation)
	}
	if n.Spacing != nil {
		if err := errors.ValidateSpacing(name, *n.Spacing); err != nil {
			return err
		}
	}
	if n.Width != 0 || n.Height != 0 || n.Sizing != "" {
		return errors.New(errors.ErrCodeInvalidScene, "node %q: containers are sized by their children and cannot set width, height or sizing", name)
	}
	return nil
}

func validateLeaf(name string, n *Node) error {
	if len(n.Children) > 0 {
		return errors.New(errors.ErrCodeInvalidScene, "node %q: has children but no orientation", name)
	}
	if n.Spacing != nil || n.Alignment != "" {
		return errors.New(errors.ErrCodeInvalidScene, "node %q: spacing and alignment only apply to containers", name)
	}
	switch n.Sizing {
	case "", SizingFixed, SizingFill:
	default:
		return errors.New(errors.ErrCodeInvalidScene, "node %q: invalid sizing %q (must be fixed or fill)", name, n.Sizing)
	}
	if err := errors.ValidateSize(name, "width", n.Width); err != nil {
		return err
	}
	return errors.ValidateSize(name, "height", n.Height)
}

// UnknownAlignments returns the IDs (or generated path IDs) of containers
// whose alignment name is not recognized.
func UnknownAlignments(s *Scene) []string {
	var out []string
	_ = s.Root.Walk(func(path string, _ int, n *Node) error {
		if !n.IsContainer() || n.Alignment == "" {
			return nil
		}
		if _, ok := layout.ParseAlignment(n.Alignment); !ok {
			id := n.ID
			if id == "" {
				id = pathID(path)
			}
			out = append(out, id)
		}
		return nil
	})
	return out
}
