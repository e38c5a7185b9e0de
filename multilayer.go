package clustermap

// Resolve looks up the state id registered for (layerID, nodeID).
// ok is false when either the layer or the node is absent from the index;
// both parsers treat that as a silent record-level skip, never an error.
// Complexity: O(1).
func (idx MultilayerIndex) Resolve(layerID, nodeID uint64) (stateID uint64, ok bool) {
	nodes, ok := idx[layerID]
	if !ok {
		return 0, false
	}
	stateID, ok = nodes[nodeID]

	return stateID, ok
}
