package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/weightstack/pkg/core/layout"
	"github.com/matzehuels/weightstack/pkg/observability"
	"github.com/matzehuels/weightstack/pkg/scene"
)

// Runner measures and arranges scenes.
//
// The Runner is stateless except for its logger. Multiple goroutines can
// safely use the same Runner with different scenes and options; scenes
// passed in are never modified.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Measure returns the size the root of s wants under the resolved proposal.
func (r *Runner) Measure(ctx context.Context, s *scene.Scene, opts Options) (layout.Size, error) {
	s, err := r.prepare(ctx, s, &opts)
	if err != nil {
		return layout.Size{}, err
	}

	p := opts.Proposal(s)
	a := newArrangement(ctx, opts.Defaults())
	size := a.build(&s.Root, "", 0).SizeThatFits(p)

	opts.Logger.Debug("measured scene", "scene", s.Name, "proposal", p, "width", size.Width, "height", size.Height)
	return size, nil
}

// Arrange measures the root of s under the resolved proposal, places it at
// the origin with its measured size, and records the frame of every node.
func (r *Runner) Arrange(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	s, err := r.prepare(ctx, s, &opts)
	if err != nil {
		return nil, err
	}

	hooks := observability.Layout()
	nodes, leaves := s.Root.Count()
	hooks.OnArrangeStart(ctx, s.Name, nodes)

	start := time.Now()
	p := opts.Proposal(s)
	a := newArrangement(ctx, opts.Defaults())
	root := a.build(&s.Root, "", 0)
	size := root.SizeThatFits(p)
	root.Place(layout.Point{}, p)

	result := &Result{
		ID:       uuid.New(),
		Proposal: p,
		Layout: scene.Layout{
			Name:   s.Name,
			Width:  size.Width,
			Height: size.Height,
			Frames: a.frames,
		},
		Stats: Stats{
			Nodes:      nodes,
			Leaves:     leaves,
			Containers: nodes - leaves,
			Duration:   time.Since(start),
		},
	}
	for _, id := range scene.UnknownAlignments(s) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("node %q: unknown alignment, using leading", id))
	}

	hooks.OnArrangeComplete(ctx, s.Name, len(a.frames), result.Stats.Duration, nil)
	opts.Logger.Info("arranged scene",
		"id", result.ID,
		"scene", s.Name,
		"nodes", nodes,
		"width", size.Width,
		"height", size.Height,
		"duration", result.Stats.Duration)

	return result, nil
}

// prepare validates opts and s, and returns a normalized copy of s.
func (r *Runner) prepare(ctx context.Context, s *scene.Scene, opts *Options) (*scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := scene.Validate(s); err != nil {
		return nil, err
	}

	for _, id := range scene.UnknownAlignments(s) {
		opts.Logger.Warn("unknown alignment, using leading", "node", id)
	}

	s = s.Clone()
	scene.Normalize(s)
	return s, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
