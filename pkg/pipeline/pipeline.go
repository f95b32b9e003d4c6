// Package pipeline arranges scenes with the weighted stack engine.
//
// It is the shared entry point for the CLI and the HTTP API: both decode a
// [scene.Scene], build [Options] from flags or request fields, and hand them
// to a [Runner].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	s, err := scene.ReadFile("dashboard.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Arrange(ctx, s, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range result.Layout.Frames {
//	    fmt.Println(f.ID, f.X, f.Y, f.Width, f.Height)
//	}
//
// Measure only reports the size the root wants:
//
//	size, err := runner.Measure(ctx, s, pipeline.Options{})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/weightstack/pkg/core/layout"
	"github.com/matzehuels/weightstack/pkg/errors"
	"github.com/matzehuels/weightstack/pkg/scene"
)

// DefaultFormat is the serialization format used when Options.Format is empty.
const DefaultFormat = scene.FormatJSON

// =============================================================================
// Options - Arrangement Configuration
// =============================================================================

// Options configures a single measure or arrange run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Proposal overrides. A non-nil Width or Height replaces the scene's
	// proposal on that axis; FreeWidth and FreeHeight force the axis to be
	// unconstrained and win over everything else.
	Width      *float64 `json:"width,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	FreeWidth  bool     `json:"free_width,omitempty"`
	FreeHeight bool     `json:"free_height,omitempty"`

	// Default gaps for containers that do not set spacing.
	RowSpacing    *float64 `json:"row_spacing,omitempty"`
	ColumnSpacing *float64 `json:"column_spacing,omitempty"`

	// Format is the serialization format of the result.
	Format string `json:"format,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the overrides.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Width != nil {
		if err := errors.ValidateSize("proposal", "width", *o.Width); err != nil {
			return err
		}
	}
	if o.Height != nil {
		if err := errors.ValidateSize("proposal", "height", *o.Height); err != nil {
			return err
		}
	}
	if o.RowSpacing != nil {
		if err := errors.ValidateSpacing("row default", *o.RowSpacing); err != nil {
			return err
		}
	}
	if o.ColumnSpacing != nil {
		if err := errors.ValidateSpacing("column default", *o.ColumnSpacing); err != nil {
			return err
		}
	}
	return scene.ValidateFormat(o.Format)
}

// Defaults returns the spacing table used for containers without explicit
// spacing.
func (o *Options) Defaults() layout.Defaults {
	d := layout.DefaultSpacing
	if o.RowSpacing != nil {
		d.RowSpacing = *o.RowSpacing
	}
	if o.ColumnSpacing != nil {
		d.ColumnSpacing = *o.ColumnSpacing
	}
	return d
}

// Proposal returns the size proposed to the root of s after overrides.
func (o *Options) Proposal(s *scene.Scene) layout.Proposal {
	p := s.Proposal.Layout()
	if o.Width != nil {
		p.Width = layout.Constrained(*o.Width)
	}
	if o.Height != nil {
		p.Height = layout.Constrained(*o.Height)
	}
	if o.FreeWidth {
		p.Width = layout.Unconstrained()
	}
	if o.FreeHeight {
		p.Height = layout.Unconstrained()
	}
	return p
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of an arrange run.
type Result struct {
	// ID identifies this arrangement in logs and API responses.
	ID uuid.UUID

	// Proposal is the size that was proposed to the root.
	Proposal layout.Proposal

	// Layout holds every node's frame, parents before children.
	Layout scene.Layout

	// Warnings lists non-fatal problems, such as unknown alignment names.
	Warnings []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains arrangement statistics.
type Stats struct {
	Nodes      int
	Leaves     int
	Containers int
	Duration   time.Duration
}

// Marshal encodes the result's layout in the given format.
func (r *Result) Marshal(format string) ([]byte, error) {
	return scene.Marshal(r.Layout, format)
}
