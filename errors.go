package clustermap

import "errors"

// Sentinel errors for cluster-data parsing. Every failure returned by the
// parsers wraps one of these, so callers can match with errors.Is while the
// message carries the file, line number and offending line content.
var (
	// ErrUnsupportedFormat indicates a file extension other than tree, ftree or clu.
	ErrUnsupportedFormat = errors.New("clustermap: unsupported cluster data format")
	// ErrMalformedRecord indicates a required token is missing or not convertible
	// to its expected numeric type.
	ErrMalformedRecord = errors.New("clustermap: malformed record")
	// ErrMalformedName indicates the quoted display name cannot be extracted
	// (missing opening or closing quote).
	ErrMalformedName = errors.New("clustermap: malformed quoted name")
	// ErrInvalidPathElement indicates a tree path containing a 0; the lowest
	// allowed module index is 1.
	ErrInvalidPathElement = errors.New("clustermap: tree path element must be >= 1")
	// ErrMissingHigherOrderField indicates a tree record without a node id after
	// an earlier record established higher-order mode.
	ErrMissingHigherOrderField = errors.New("clustermap: missing node id on higher-order record")
)
