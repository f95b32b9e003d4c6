package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/weightstack/pkg/pipeline"
	"github.com/matzehuels/weightstack/pkg/scene"
)

// arrangeCommand creates the arrange command for computing node frames.
func (c *CLI) arrangeCommand() *cobra.Command {
	var (
		output   string
		format   string
		proposal proposalFlags
		spacing  spacingFlags
	)

	cmd := &cobra.Command{
		Use:   "arrange [scene]",
		Short: "Compute the frame of every node in a scene",
		Long: `Compute the frame of every node in a scene.

The root is measured under the scene's proposal and placed at the origin.
Every container then shares its main axis among its children by weight.

Frames are printed as a table by default. Use --format to print json, toml or
yaml, or --output to write a file (its extension selects the format).`,
		Example: `  weightstack arrange dashboard.toml
  weightstack arrange dashboard.toml --width 1024 -f json
  weightstack arrange dashboard.toml -o dashboard.layout.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			proposal.apply(cmd, &opts)
			spacing.apply(cmd, &opts)
			return c.runArrange(cmd.Context(), args[0], opts, format, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write frames to this file (.json, .toml, .yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, toml, yaml")
	proposal.register(cmd)
	spacing.register(cmd)

	return cmd
}

func (c *CLI) runArrange(ctx context.Context, input string, opts pipeline.Options, format, output string, w io.Writer) error {
	if output == "" {
		if err := validateOutputFormat(format); err != nil {
			return err
		}
	}

	s, err := scene.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if format != formatTable {
		opts.Format = format
	}

	prog := newProgress(logger)
	res, err := c.newRunner().Arrange(ctx, s, opts)
	if err != nil {
		return fmt.Errorf("arrange: %w", err)
	}
	prog.done(fmt.Sprintf("Arranged %d nodes", res.Stats.Nodes))

	if output != "" {
		if err := scene.WriteFile(res.Layout, output); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Arrangement complete")
		printFile(output)
		printStats(res.Stats.Nodes, res.Stats.Leaves, res.Stats.Containers)
		for _, warn := range res.Warnings {
			printWarning("%s", warn)
		}
		printNewline()
		printNextStep("Explore", appName+" explore "+input)
		return nil
	}

	if format == formatTable {
		return writeString(w, frameTable(res.Layout))
	}
	data, err := res.Marshal(format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
