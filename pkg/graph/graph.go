package graph

// Node is one attributed node of a digital-twin snapshot. Key is the stable
// identity used for edges and deduplication; Label is the formatted display
// text shown by the renderer. The two are deliberately separate so that two
// records formatting to the same string cannot collapse into one node.
type Node struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Tooltip string  `json:"tooltip"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
}

// Edge connects two nodes by key. Label doubles as the edge tooltip.
type Edge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Width float64 `json:"width"`
	Color string  `json:"color"`
	Label string  `json:"label,omitempty"`
}

// Snapshot is an attributed node/edge graph representing an applicant's
// digital twin at one journey stage. Snapshots are built fresh per request
// and never mutated in place; later stages extend a copy of the previous
// stage's snapshot.
//
// The node and edge lists are the entire contract with the visualization
// layer.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	nodeIndex map[string]int
	edgeIndex map[[2]string]int
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[[2]string]int),
	}
}

// Clone returns an independent deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Nodes:     make([]Node, len(s.Nodes)),
		Edges:     make([]Edge, len(s.Edges)),
		nodeIndex: make(map[string]int, len(s.Nodes)),
		edgeIndex: make(map[[2]string]int, len(s.Edges)),
	}
	copy(c.Nodes, s.Nodes)
	copy(c.Edges, s.Edges)
	for k, v := range s.nodeIndex {
		c.nodeIndex[k] = v
	}
	for k, v := range s.edgeIndex {
		c.edgeIndex[k] = v
	}
	return c
}

// AddNode inserts a node, keeping the first definition when the key is
// already present.
func (s *Snapshot) AddNode(n Node) {
	if _, ok := s.nodeIndex[n.Key]; ok {
		return
	}
	s.nodeIndex[n.Key] = len(s.Nodes)
	s.Nodes = append(s.Nodes, n)
}

// AddEdge inserts an edge, keeping the first definition when the same
// from/to pair is already present.
func (s *Snapshot) AddEdge(e Edge) {
	k := [2]string{e.From, e.To}
	if _, ok := s.edgeIndex[k]; ok {
		return
	}
	s.edgeIndex[k] = len(s.Edges)
	s.Edges = append(s.Edges, e)
}

// HasNode reports whether a node with the given key is present.
func (s *Snapshot) HasNode(key string) bool {
	_, ok := s.nodeIndex[key]
	return ok
}

// Node returns the node with the given key.
func (s *Snapshot) Node(key string) (Node, bool) {
	i, ok := s.nodeIndex[key]
	if !ok {
		return Node{}, false
	}
	return s.Nodes[i], true
}

// EdgeBetween returns the edge from one key to another.
func (s *Snapshot) EdgeBetween(from, to string) (Edge, bool) {
	i, ok := s.edgeIndex[[2]string{from, to}]
	if !ok {
		return Edge{}, false
	}
	return s.Edges[i], true
}
