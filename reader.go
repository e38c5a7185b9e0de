package clustermap

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadClusterData opens filename, dispatches on its extension and parses the
// whole file into a fresh ClusterData. Extensions "tree" and "ftree" select
// the hierarchical parser, "clu" the flat parser; anything else fails with
// ErrUnsupportedFormat before a single line is read. The extension is taken
// case-sensitively after the last '.' in filename.
func ReadClusterData(filename string, opts ...Option) (*ClusterData, error) {
	ext := extensionOf(filename)
	switch ext {
	case "tree", "ftree", "clu":
	default:
		return nil, fmt.Errorf("clustermap: input cluster data from file %q is of unknown extension %q, must be clu, tree or ftree: %w",
			filename, ext, ErrUnsupportedFormat)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("clustermap: open %q: %w", filename, err)
	}
	defer f.Close()

	var res *ClusterData
	if ext == "clu" {
		res, err = ReadClu(f, opts...)
	} else {
		res, err = ReadTree(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, filename)
	}
	res.Extension = ext

	return res, nil
}

// ReadTree parses hierarchical .tree/.ftree cluster data from r.
// The stream is consumed lazily, one line at a time, so a caller may abandon
// r between lines to stop parsing early. See Options for flow collection and
// multilayer resolution.
func ReadTree(r io.Reader, opts ...Option) (*ClusterData, error) {
	return readTree(r, buildOptions(opts))
}

// ReadClu parses flat .clu cluster data from r.
// The stream is consumed lazily, one line at a time.
func ReadClu(r io.Reader, opts ...Option) (*ClusterData, error) {
	return readClu(r, buildOptions(opts))
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// extensionOf returns the suffix after the last '.' in path, or "" when path
// contains no dot.
func extensionOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}

	return path[i+1:]
}
