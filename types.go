// Core types and options for cluster-data reading.
package clustermap

// Path is an ordered sequence of 1-based module indices describing a node's
// position in a hierarchical community tree, most-significant module first.
type Path []uint64

// NodePath pairs a state id with its path through the module hierarchy.
// One NodePath is emitted per tree-format record, in file order.
type NodePath struct {
	StateID uint64
	Path    Path
}

// MultilayerIndex maps layer id → node id → state id. It is supplied by the
// caller, treated as read-only, and may safely be shared between concurrent
// reads of different files.
type MultilayerIndex map[uint64]map[uint64]uint64

// ClusterData holds the collections produced by one read operation.
// All collections are freshly allocated per call; a read never merges with
// prior state.
type ClusterData struct {
	// NodePaths lists (state id, path) pairs in file order (.tree/.ftree only).
	NodePaths []NodePath
	// ClusterIDs maps state id → module id (.clu only); later records for the
	// same state id overwrite earlier ones.
	ClusterIDs map[uint64]uint64
	// FlowData maps state id → flow value; populated only under WithFlow.
	FlowData map[uint64]float64

	// Extension is the detected file extension ("tree", "ftree" or "clu");
	// empty when parsing from a raw stream.
	Extension string
	// Header is the first line of a tree file when it starts with '#',
	// e.g. "# Codelength = 3.46227314 bits.".
	Header string
	// Section is the '*'-prefixed line that terminated tree parsing, if any.
	Section string
	// HigherOrder reports whether any tree record carried a separate physical
	// node id in addition to its state id.
	HigherOrder bool
}

// newClusterData returns a ClusterData with all collections initialized.
func newClusterData() *ClusterData {
	return &ClusterData{
		NodePaths:  make([]NodePath, 0),
		ClusterIDs: make(map[uint64]uint64),
		FlowData:   make(map[uint64]float64),
	}
}

// Options contains tunable parameters for a read operation.
type Options struct {
	// IncludeFlow selects whether per-node flow values are collected.
	IncludeFlow bool
	// Index switches the parsers into multilayer mode when non-nil.
	Index MultilayerIndex
}

// Option mutates Options; pass any number to the Read* entry points.
type Option func(*Options)

// DefaultOptions returns the zero configuration: no flow collection,
// single-layer mode.
func DefaultOptions() Options {
	return Options{}
}

// WithFlow enables collection of per-node flow values into FlowData.
func WithFlow() Option {
	return func(o *Options) { o.IncludeFlow = true }
}

// WithMultilayerIndex switches parsing into multilayer mode: every record's
// (layer id, node id) pair is resolved through idx, and records absent from
// idx are silently dropped. A nil idx leaves single-layer mode in effect.
func WithMultilayerIndex(idx MultilayerIndex) Option {
	return func(o *Options) { o.Index = idx }
}
