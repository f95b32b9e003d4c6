// Package scene defines the file format fed to the weightstack pipeline
// and the arrangement it produces.
//
// # Scenes
//
// A [Scene] is a tree of [Node] values. A node with an orientation ("row"
// or "column") is a container whose children are laid out by a weighted
// stack; any other node is a leaf with an intrinsic width and height.
// Every node carries a weight, the share of its parent's main axis it
// asks for.
//
// Scenes can be written in TOML, YAML or JSON:
//
//	name = "dashboard"
//
//	[proposal]
//	width = 800
//
//	[root]
//	id = "page"
//	orientation = "row"
//	spacing = 12
//
//	[[root.children]]
//	id = "sidebar"
//	weight = 1
//	width = 180
//	height = 400
//
//	[[root.children]]
//	id = "content"
//	weight = 3
//	sizing = "fill"
//	width = 300
//	height = 400
//
// A missing proposal axis is unconstrained.
//
// # Arrangements
//
// The pipeline turns a scene into a [Layout]: the measured root size plus
// one [Frame] per node, in placement order. Layouts serialize with the same
// codecs via [Marshal] and [WriteFile].
package scene
