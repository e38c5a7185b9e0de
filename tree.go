package clustermap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// treeSession encapsulates state during one .tree/.ftree parse.
// The higher-order latch lives on the result (ClusterData.HigherOrder) and
// is reset with it at entry, never carried across calls.
type treeSession struct {
	opts   Options
	res    *ClusterData
	lineNr int
}

// readTree parses a .tree/.ftree stream line by line until EOF, the first
// '*'-prefixed section line, or the first malformed record.
//
// Sample input:
//
//	# Codelength = 3.46227314 bits.
//	1:1:1 0.0384615 "1" 1
//	1:1:2 0.025641 "2" 2
//	1:2:1 0.0384615 "4" 4
func readTree(r io.Reader, opts Options) (*ClusterData, error) {
	s := &treeSession{opts: opts, res: newClusterData()}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		s.lineNr++
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' {
			// Only the very first physical line is kept as the header comment.
			if s.lineNr == 1 {
				s.res.Header = line
			}
			continue
		}
		if line[0] == '*' {
			// New section, abort tree parsing.
			s.res.Section = line
			break
		}
		if err := s.parseRecord(line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("clustermap: reading tree data: %w", err)
	}

	return s.res, nil
}

// parseRecord handles one data line:
//
//	<path> <flow> "<name>" <stateId> [<nodeId>] [<layerId-if-multilayer>]
func (s *treeSession) parseRecord(line string) error {
	multilayer := s.opts.Index != nil

	// 1. Path token.
	pathTok, rest := cutToken(line)
	if pathTok == "" {
		return fmt.Errorf("clustermap: couldn't parse tree path on line %d (%q): %w",
			s.lineNr, line, ErrMalformedRecord)
	}

	// 2. Flow value.
	flowTok, rest := cutToken(rest)
	flow, err := strconv.ParseFloat(flowTok, 64)
	if flowTok == "" || err != nil {
		return fmt.Errorf("clustermap: couldn't parse node flow on line %d (%q): %w",
			s.lineNr, line, ErrMalformedRecord)
	}

	// 3. Display name, strictly between the first and second quote. The name
	// itself is not part of any output collection.
	_, rest, ok := cutQuoted(rest)
	if !ok {
		return fmt.Errorf("clustermap: can't parse node name on line %d (%q): %w",
			s.lineNr, line, ErrMalformedName)
	}

	// 4. State id.
	stateTok, rest := cutToken(rest)
	stateID, err := strconv.ParseUint(stateTok, 10, 64)
	if stateTok == "" || err != nil {
		return fmt.Errorf("clustermap: couldn't parse state id on line %d (%q): %w",
			s.lineNr, line, ErrMalformedRecord)
	}

	// 5. Optional physical node id. Its first appearance latches higher-order
	// mode; from then on every record must carry it.
	var nodeID uint64
	haveNode := false
	if nodeTok, tail := cutToken(rest); nodeTok != "" {
		if n, convErr := strconv.ParseUint(nodeTok, 10, 64); convErr == nil {
			nodeID, haveNode = n, true
			rest = tail
		}
	}
	if haveNode {
		s.res.HigherOrder = true
	} else if s.res.HigherOrder {
		return fmt.Errorf("clustermap: missing node id on line %d (%q): %w",
			s.lineNr, line, ErrMissingHigherOrderField)
	}

	// 6. Layer id, mandatory in multilayer mode.
	var layerID uint64
	if multilayer {
		layerTok, _ := cutToken(rest)
		layerID, err = strconv.ParseUint(layerTok, 10, 64)
		if layerTok == "" || err != nil {
			return fmt.Errorf("clustermap: couldn't parse layer id on line %d (%q): %w",
				s.lineNr, line, ErrMalformedRecord)
		}
	}

	// 7. Decode the path, keeping 1-based indexing.
	path, err := parsePath(pathTok)
	if err != nil {
		return fmt.Errorf("clustermap: tree path %q on line %d (%q): %w",
			pathTok, s.lineNr, line, err)
	}

	// 8. Multilayer resolution: replace the state id or drop the record.
	if multilayer {
		resolved, found := s.opts.Index.Resolve(layerID, nodeID)
		if !found {
			return nil
		}
		stateID = resolved
	}

	// 9. Emit.
	s.res.NodePaths = append(s.res.NodePaths, NodePath{StateID: stateID, Path: path})
	if s.opts.IncludeFlow {
		s.res.FlowData[stateID] = flow
	}

	return nil
}
