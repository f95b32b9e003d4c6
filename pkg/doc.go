// Package pkg provides the core libraries for Weightstack layout.
//
// # Overview
//
// Weightstack arranges trees of rows and columns. Each child of a stack
// receives a share of the main axis proportional to its weight, and is
// aligned on the cross axis. The pkg directory is organized into these areas:
//
//  1. [core/layout] - The stack engine (measurement and placement)
//  2. [scene] - Scene files: node trees, frames and their codecs
//  3. [pipeline] - Orchestration (validate → measure → place)
//  4. [server] - HTTP API over the pipeline
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through Weightstack:
//
//	scene file (TOML, YAML, JSON)
//	         ↓
//	    [scene] package (decode + validate)
//	         ↓
//	    [pipeline] package (scene nodes → layout subviews)
//	         ↓
//	    [core/layout] package (SizeThatFits + PlaceSubviews)
//	         ↓
//	    frames (table, JSON, TOML, YAML)
//
// # Quick Start
//
// Arrange a scene file:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/weightstack/pkg/pipeline"
//	    "github.com/matzehuels/weightstack/pkg/scene"
//	)
//
//	s, _ := scene.ReadFile("dashboard.toml")
//	res, _ := pipeline.NewRunner(nil).Arrange(context.Background(), s, pipeline.Options{})
//	for _, f := range res.Layout.Frames {
//	    fmt.Println(f.ID, f.X, f.Y, f.Width, f.Height)
//	}
//
// Or drive the engine directly with your own subviews:
//
//	row := layout.Row(layout.WithWeights(layout.Weights{nav: 1, body: 3}))
//	size := row.SizeThatFits(layout.ProposeSize(800, 600), views)
//	row.PlaceSubviews(layout.Rect{Size: size}, layout.ProposeSize(800, 600), views)
//
// # Main Packages
//
// [core/layout] - Axis-generic weighted stacks. A constrained main axis is
// filled entirely; an unconstrained one grows until every weighted subview's
// share covers its natural size. Weights come from a side table rather than
// from the subviews themselves.
//
// [scene] - The serialized form of a layout tree. Leaves carry an intrinsic
// size and a sizing mode (fixed or fill); containers carry an orientation,
// alignment and spacing.
//
// [pipeline] - Validates and normalizes scenes, adapts nodes to subviews, and
// records frames in placement order. Used by both the CLI and the API.
//
// [server] - chi-based HTTP API with measure and arrange endpoints.
//
// [errors] - Structured error codes shared by validation, the CLI and the API.
//
// [observability] - Hooks for arrangement and request events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/core/layout/...     # Engine only
//	go test -run Example ./pkg/...    # Examples only
//
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/weightstack/pkg/core/layout
// [scene]: https://pkg.go.dev/github.com/matzehuels/weightstack/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/weightstack/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/weightstack/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/weightstack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/weightstack/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/weightstack/pkg/buildinfo
package pkg
