package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/weightstack/pkg/core/layout"
	"github.com/matzehuels/weightstack/pkg/pipeline"
	"github.com/matzehuels/weightstack/pkg/scene"
)

const (
	defaultExploreStep = 10.0
	minExploreStep     = 1.0
	maxExploreStep     = 1000.0
)

// exploreCommand creates the explore command for resizing a scene interactively.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		proposal proposalFlags
		spacing  spacingFlags
	)

	cmd := &cobra.Command{
		Use:   "explore [scene]",
		Short: "Resize a scene's proposal interactively",
		Long: `Resize a scene's proposal interactively and watch the frames update.

Keys:
  ←/→   shrink/grow the proposed width
  ↑/↓   shrink/grow the proposed height
  w/h   toggle an unconstrained width/height
  +/-   double/halve the step
  r     reset
  q     quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			proposal.apply(cmd, &opts)
			spacing.apply(cmd, &opts)
			return c.runExplore(cmd.Context(), args[0], opts)
		},
	}

	proposal.register(cmd)
	spacing.register(cmd)
	return cmd
}

func (c *CLI) runExplore(ctx context.Context, input string, opts pipeline.Options) error {
	s, err := scene.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}
	if err := scene.Validate(s); err != nil {
		return err
	}

	// Per-arrangement log lines would tear the alternate screen.
	opts.Logger = log.New(io.Discard)
	m := newExploreModel(ctx, pipeline.NewRunner(opts.Logger), s, opts)

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// ExploreModel - Interactive proposal resizing
// =============================================================================

// exploreState is the proposal being explored.
type exploreState struct {
	Width, Height         float64
	FreeWidth, FreeHeight bool
}

// ExploreModel is the bubbletea model for the explore command.
type ExploreModel struct {
	exploreState
	Step   float64
	Result *pipeline.Result
	Err    error

	ctx     context.Context
	runner  *pipeline.Runner
	scene   *scene.Scene
	base    pipeline.Options
	initial exploreState
}

// newExploreModel starts from the resolved proposal of s. Unconstrained
// axes start at the measured size so that toggling them keeps the layout
// steady.
func newExploreModel(ctx context.Context, runner *pipeline.Runner, s *scene.Scene, opts pipeline.Options) ExploreModel {
	p := opts.Proposal(s)
	size, err := runner.Measure(ctx, s, opts)

	m := ExploreModel{
		exploreState: exploreState{
			Width:      p.Width.Or(size.Width),
			Height:     p.Height.Or(size.Height),
			FreeWidth:  !p.Width.IsConstrained(),
			FreeHeight: !p.Height.IsConstrained(),
		},
		Step:   defaultExploreStep,
		ctx:    ctx,
		runner: runner,
		scene:  s,
		base:   opts,
	}
	m.initial = m.exploreState
	if err != nil {
		m.Err = err
		return m
	}
	m.arrange()
	return m
}

// Proposal returns the proposal currently offered to the root.
func (m ExploreModel) Proposal() layout.Proposal {
	opts := m.options()
	return opts.Proposal(m.scene)
}

func (m ExploreModel) options() pipeline.Options {
	opts := m.base
	w, h := m.Width, m.Height
	opts.Width, opts.Height = &w, &h
	opts.FreeWidth, opts.FreeHeight = m.FreeWidth, m.FreeHeight
	return opts
}

func (m *ExploreModel) arrange() {
	m.Result, m.Err = m.runner.Arrange(m.ctx, m.scene, m.options())
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left":
		m.Width = math.Max(0, m.Width-m.Step)
		m.FreeWidth = false
	case "right":
		m.Width += m.Step
		m.FreeWidth = false
	case "up":
		m.Height = math.Max(0, m.Height-m.Step)
		m.FreeHeight = false
	case "down":
		m.Height += m.Step
		m.FreeHeight = false
	case "w":
		m.FreeWidth = !m.FreeWidth
	case "h":
		m.FreeHeight = !m.FreeHeight
	case "+", "=":
		m.Step = math.Min(maxExploreStep, m.Step*2)
		return m, nil
	case "-", "_":
		m.Step = math.Max(minExploreStep, m.Step/2)
		return m, nil
	case "r":
		m.exploreState = m.initial
		m.Step = defaultExploreStep
	default:
		return m, nil
	}

	m.arrange()
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	title := "Explore"
	if m.scene.Name != "" {
		title += " " + m.scene.Name
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ width  ↑/↓ height  w/h free  +/- step  r reset  q quit"))
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("proposal ") + StyleValue.Render(m.Proposal().String()))
	b.WriteString(StyleDim.Render("  step ") + StyleNumber.Render(formatNum(m.Step)))
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
		return b.String()
	}

	l := m.Result.Layout
	b.WriteString(StyleDim.Render("size     ") + StyleNumber.Render(formatNum(l.Width)+" × "+formatNum(l.Height)))
	b.WriteString("\n\n")
	b.WriteString(frameTable(l))
	b.WriteString("\n")
	b.WriteString(statsLine(m.Result.Stats.Nodes, m.Result.Stats.Leaves, m.Result.Stats.Containers))
	for _, warn := range m.Result.Warnings {
		b.WriteString("\n" + styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(warn))
	}
	return b.String()
}
