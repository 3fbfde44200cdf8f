package graph

// Colors used by the snapshot builders, keyed by the Context-AI layer a node
// group belongs to. The renderer treats these as opaque strings.
const (
	ColorRoot       = "#4F46E5" // digital twin root
	ColorFact       = "#3B82F6" // company facts and financials
	ColorGuidance   = "#EC4899" // risk assessment
	ColorExternal   = "#F59E0B" // external context
	ColorTemporal   = "#10B981" // temporal trends
	ColorDiagnostic = "#EF4444" // placeholder/error nodes
	ColorEdge       = "#475569" // cross-category insight edges
)

// Node display sizes by role.
const (
	sizeRoot     = 30
	sizeCategory = 20
	sizeFact     = 15
	sizeEvidence = 10
)

// Edge widths for the tree structure.
const (
	widthCategory = 2
	widthFact     = 1
)
