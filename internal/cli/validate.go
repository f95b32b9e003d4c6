package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/weightstack/pkg/scene"
)

// validateCommand creates the validate command for checking scene files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scene...]",
		Short: "Check scene files for errors",
		Long: `Check scene files for errors.

Negative or non-finite weights, sizes and spacing are errors, as are unknown
orientations, duplicate IDs and containers with intrinsic sizes. Unknown
alignment names are reported as warnings; they lay out as leading.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			var failed int
			for _, path := range args {
				if err := validateFile(path); err != nil {
					logger.Debug("validation failed", "path", path, "err", err)
					printError("%s: %v", path, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scene(s) invalid", failed, len(args))
			}
			return nil
		},
	}
}

func validateFile(path string) error {
	s, err := scene.ReadFile(path)
	if err != nil {
		return err
	}
	if err := scene.Validate(s); err != nil {
		return err
	}

	nodes, leaves := s.Root.Count()
	printSuccess("%s is valid", path)
	printStats(nodes, leaves, nodes-leaves)
	for _, id := range scene.UnknownAlignments(s) {
		printWarning("node %q: unknown alignment, using leading", id)
	}
	return nil
}
