package clustermap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// readClu parses a flat .clu stream line by line until EOF or the first
// malformed record. Unlike the tree format, '*'-prefixed section lines are
// merely skipped here, not treated as a terminator; the asymmetry between
// the two formats is deliberate.
//
// Sample input:
//
//	# state_id module [flow] [node_id layer_id]
//	1 1 0.1875
//	2 1 0.1250
//	5 2 0.0625
func readClu(r io.Reader, opts Options) (*ClusterData, error) {
	multilayer := opts.Index != nil
	res := newClusterData()
	lineNr := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		lineNr++
		if len(line) == 0 || line[0] == '#' || line[0] == '*' {
			continue
		}

		// 1. State id and module id, both mandatory.
		stateTok, rest := cutToken(line)
		stateID, err := strconv.ParseUint(stateTok, 10, 64)
		if stateTok == "" || err != nil {
			return nil, fmt.Errorf("clustermap: couldn't parse state id and module id on line %d (%q): %w",
				lineNr, line, ErrMalformedRecord)
		}
		moduleTok, rest := cutToken(rest)
		moduleID, err := strconv.ParseUint(moduleTok, 10, 64)
		if moduleTok == "" || err != nil {
			return nil, fmt.Errorf("clustermap: couldn't parse state id and module id on line %d (%q): %w",
				lineNr, line, ErrMalformedRecord)
		}

		// 2. Optional flow, consumed only when the next token parses as a
		// float; otherwise the token stays available for the node id below.
		var flow float64
		haveFlow := false
		if flowTok, tail := cutToken(rest); flowTok != "" {
			if f, convErr := strconv.ParseFloat(flowTok, 64); convErr == nil {
				flow, haveFlow = f, true
				rest = tail
			}
		}

		// 3. Multilayer mode: node id and layer id are mandatory; the record
		// is dropped when (layer, node) is absent from the index.
		if multilayer {
			nodeTok, tail := cutToken(rest)
			nodeID, convErr := strconv.ParseUint(nodeTok, 10, 64)
			if nodeTok == "" || convErr != nil {
				return nil, fmt.Errorf("clustermap: couldn't parse node id on line %d (%q): %w",
					lineNr, line, ErrMalformedRecord)
			}
			layerTok, _ := cutToken(tail)
			layerID, convErr := strconv.ParseUint(layerTok, 10, 64)
			if layerTok == "" || convErr != nil {
				return nil, fmt.Errorf("clustermap: couldn't parse layer id on line %d (%q): %w",
					lineNr, line, ErrMalformedRecord)
			}
			resolved, found := opts.Index.Resolve(layerID, nodeID)
			if !found {
				continue
			}
			stateID = resolved
		}

		// 4. Emit; later records for the same state id overwrite earlier ones.
		if haveFlow && opts.IncludeFlow {
			res.FlowData[stateID] = flow
		}
		res.ClusterIDs[stateID] = moduleID
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("clustermap: reading cluster data: %w", err)
	}

	return res, nil
}
