// Package clustermap reads externally produced network-partition files and
// reconstructs, in memory, the mapping from node identifiers to their
// assigned cluster(s).
//
// Two textual formats are supported:
//
//   - .tree / .ftree — hierarchical: each record carries a colon-separated
//     path through nested modules (1-based at every level), a flow weight,
//     a quoted display name and a state id, optionally followed by a
//     physical node id (higher-order networks) and a layer id (multilayer
//     networks).
//   - .clu — flat: each record carries a state id and a module id,
//     optionally followed by a flow weight and, for multilayer networks,
//     a node id and a layer id.
//
// Key features:
//
//   - ReadClusterData(filename, opts...): extension-dispatched entry point
//   - ReadTree(r, opts...) / ReadClu(r, opts...): stream-level parsers
//   - WithFlow(): collect per-node flow values into ClusterData.FlowData
//   - WithMultilayerIndex(idx): resolve (layer, node) pairs to state ids;
//     records whose pair is absent from idx are silently dropped
//
// Parsing is strict and fail-fast: a malformed token aborts the whole read
// with a typed error carrying the line number and the offending line. The
// one deliberate exception is the multilayer lookup miss above, which is a
// record-level skip, not an error — partition files may legitimately
// reference nodes outside the caller's layer subset.
//
// Complexity:
//
//   - Time:   O(L) over the input lines, each line visited once.
//   - Memory: O(N) for the emitted collections (N = records kept).
//
// Errors:
//
//   - ErrUnsupportedFormat        if the file extension is not tree, ftree or clu.
//   - ErrMalformedRecord          if a required token is missing or not numeric.
//   - ErrMalformedName            if the quoted display name cannot be extracted.
//   - ErrInvalidPathElement       if a tree path contains a 0.
//   - ErrMissingHigherOrderField  if a record omits the node id after an
//     earlier record established higher-order mode.
package clustermap
