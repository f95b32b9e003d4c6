package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/weightstack/pkg/pipeline"
	"github.com/matzehuels/weightstack/pkg/scene"
)

// formatTable prints frames as a table instead of serializing them.
const formatTable = "table"

// validOutputFormats is the set of formats accepted by --format.
var validOutputFormats = map[string]bool{
	formatTable:      true,
	scene.FormatJSON: true,
	scene.FormatTOML: true,
	scene.FormatYAML: true,
}

// validateOutputFormat checks that format is a valid --format value.
func validateOutputFormat(format string) error {
	if !validOutputFormats[format] {
		names := make([]string, 0, len(validOutputFormats))
		for f := range validOutputFormats {
			names = append(names, f)
		}
		sort.Strings(names)
		return fmt.Errorf("invalid format: %q (must be one of: %s)", format, strings.Join(names, ", "))
	}
	return nil
}

// proposalFlags are the flags that override a scene's proposal.
type proposalFlags struct {
	width, height         float64
	freeWidth, freeHeight bool
}

func (f *proposalFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "propose this width to the root (overrides the scene)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "propose this height to the root (overrides the scene)")
	cmd.Flags().BoolVar(&f.freeWidth, "free-width", false, "leave the root width unconstrained")
	cmd.Flags().BoolVar(&f.freeHeight, "free-height", false, "leave the root height unconstrained")
	cmd.MarkFlagsMutuallyExclusive("width", "free-width")
	cmd.MarkFlagsMutuallyExclusive("height", "free-height")
}

// apply copies the flags the user set onto opts.
func (f *proposalFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("width") {
		w := f.width
		opts.Width = &w
	}
	if cmd.Flags().Changed("height") {
		h := f.height
		opts.Height = &h
	}
	opts.FreeWidth = f.freeWidth
	opts.FreeHeight = f.freeHeight
}

// spacingFlags override the default gaps of rows and columns.
type spacingFlags struct {
	row, column float64
}

func (f *spacingFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.row, "row-spacing", 0, "default gap between row children (default 8)")
	cmd.Flags().Float64Var(&f.column, "column-spacing", 0, "default gap between column children (default 10)")
}

func (f *spacingFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("row-spacing") {
		v := f.row
		opts.RowSpacing = &v
	}
	if cmd.Flags().Changed("column-spacing") {
		v := f.column
		opts.ColumnSpacing = &v
	}
}
