package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/weightstack/pkg/pipeline"
	"github.com/matzehuels/weightstack/pkg/scene"
)

// measureCommand creates the measure command for reporting a scene's desired size.
func (c *CLI) measureCommand() *cobra.Command {
	var (
		proposal proposalFlags
		spacing  spacingFlags
	)

	cmd := &cobra.Command{
		Use:   "measure [scene]",
		Short: "Report the size a scene wants",
		Long: `Report the size the root of a scene wants under its proposal.

A constrained axis is filled entirely. An unconstrained axis is made just
large enough that every weighted child gets at least its natural size.`,
		Example: `  weightstack measure dashboard.toml
  weightstack measure dashboard.toml --free-width
  weightstack measure dashboard.toml --row-spacing 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			proposal.apply(cmd, &opts)
			spacing.apply(cmd, &opts)
			return c.runMeasure(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	proposal.register(cmd)
	spacing.register(cmd)
	return cmd
}

func (c *CLI) runMeasure(ctx context.Context, w io.Writer, input string, opts pipeline.Options) error {
	s, err := scene.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	opts.Logger = loggerFromContext(ctx)
	size, err := c.newRunner().Measure(ctx, s, opts)
	if err != nil {
		return fmt.Errorf("measure: %w", err)
	}

	printKeyValue(w, "proposal", opts.Proposal(s).String())
	printKeyValue(w, "width", StyleNumber.Render(formatNum(size.Width)))
	printKeyValue(w, "height", StyleNumber.Render(formatNum(size.Height)))
	return nil
}
