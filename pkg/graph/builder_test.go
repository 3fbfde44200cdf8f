package graph

import (
	"errors"
	"strings"
	"testing"

	"github.com/context-ai/showcase/backend/pkg/common"
	"github.com/context-ai/showcase/backend/pkg/scenario"
)

func testDataset(t *testing.T, archetype common.Archetype) *common.Dataset {
	t.Helper()
	g := scenario.NewGenerator(scenario.NewGeneratorParams{})
	ds, err := g.Generate(archetype)
	if err != nil {
		t.Fatalf("failed to build test dataset: %v", err)
	}
	return ds
}

func TestBuildInitial_Shape(t *testing.T) {
	ds := testDataset(t, common.ArchetypeStrong)

	s, err := BuildInitial(ds.Profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, ok := s.Node("applicant")
	if !ok {
		t.Fatal("missing applicant root node")
	}
	if root.Label != ds.Profile.Name {
		t.Fatalf("root label %q, expected company name %q", root.Label, ds.Profile.Name)
	}

	categories := []string{"basic_info", "loan_request", "credit_history"}
	for _, cat := range categories {
		if !s.HasNode(cat) {
			t.Fatalf("missing category node %s", cat)
		}
		if _, ok := s.EdgeBetween("applicant", cat); !ok {
			t.Fatalf("missing edge from root to %s", cat)
		}
	}

	// 1 root + 3 categories + 5 basic facts + 4 loan facts + 3 credit facts.
	if len(s.Nodes) != 16 {
		t.Fatalf("expected 16 nodes, got %d", len(s.Nodes))
	}
	if len(s.Edges) != 15 {
		t.Fatalf("expected 15 edges, got %d", len(s.Edges))
	}

	// The first stage is a pure tree: every edge starts at the root or at a
	// category, never between leaves.
	valid := map[string]bool{"applicant": true}
	for _, cat := range categories {
		valid[cat] = true
	}
	for _, e := range s.Edges {
		if !valid[e.From] {
			t.Fatalf("unexpected cross edge %s -> %s at the initial stage", e.From, e.To)
		}
	}
}

func TestBuildInitial_MissingName(t *testing.T) {
	_, err := BuildInitial(common.Profile{Industry: "Retail"})
	if err == nil {
		t.Fatal("expected error for profile without a name")
	}

	var diag *DiagnosticError
	if !errors.As(err, &diag) {
		t.Fatalf("expected DiagnosticError, got %T", err)
	}
	if diag.Stage != "initial" {
		t.Fatalf("expected initial stage in diagnostic, got %q", diag.Stage)
	}
}

func TestStageMonotonicity(t *testing.T) {
	for _, archetype := range common.Archetypes {
		ds := testDataset(t, archetype)

		initial, err := BuildInitial(ds.Profile)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", archetype, err)
		}
		expanded, err := BuildExpanded(ds.Profile, ds.Financials[2])
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", archetype, err)
		}
		comprehensive, err := BuildComprehensive(ds.Profile, ds.Financials[5], ds.Risk[5], ds.Context)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", archetype, err)
		}

		assertSuperset(t, string(archetype)+" expanded", expanded, initial)
		assertSuperset(t, string(archetype)+" comprehensive", comprehensive, expanded)
	}
}

func assertSuperset(t *testing.T, name string, super, sub *Snapshot) {
	t.Helper()
	for _, n := range sub.Nodes {
		if !super.HasNode(n.Key) {
			t.Fatalf("%s: node %s from the previous stage is missing", name, n.Key)
		}
	}
	for _, e := range sub.Edges {
		if _, ok := super.EdgeBetween(e.From, e.To); !ok {
			t.Fatalf("%s: edge %s -> %s from the previous stage is missing", name, e.From, e.To)
		}
	}
}

func TestCustomerConcentration(t *testing.T) {
	ds := testDataset(t, common.ArchetypeUnclear)

	s, err := BuildExpanded(ds.Profile, ds.Financials[2])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node, ok := s.Node("customer_concentration")
	if !ok {
		t.Fatal("missing customer concentration node")
	}
	if !strings.Contains(node.Tooltip, "28%") {
		t.Fatalf("concentration tooltip %q does not encode the revenue share", node.Tooltip)
	}

	concentration, ok := s.EdgeBetween("customers", "customer_concentration")
	if !ok {
		t.Fatal("missing concentration edge")
	}
	others, ok := s.EdgeBetween("customers", "customer_others")
	if !ok {
		t.Fatal("missing residual customers edge")
	}
	if concentration.Width <= others.Width {
		t.Fatalf("concentration width %f not greater than residual width %f", concentration.Width, others.Width)
	}
}

func TestNoCustomerGroupWithoutCounts(t *testing.T) {
	ds := testDataset(t, common.ArchetypeChallenged)

	s, err := BuildExpanded(ds.Profile, ds.Financials[2])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.HasNode("customers") {
		t.Fatal("customer group built for a profile without customer counts")
	}
}

func TestBuildComprehensive_ExternalContext(t *testing.T) {
	ds := testDataset(t, common.ArchetypeStrong)

	s, err := BuildComprehensive(ds.Profile, ds.Financials[5], ds.Risk[5], ds.Context)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.HasNode("external_context") {
		t.Fatal("missing external context group")
	}

	for name, src := range ds.Context {
		key := "context_" + slug(name)
		if src.Active && !s.HasNode(key) {
			t.Fatalf("missing node for active context source %s", name)
		}
		if !src.Active && s.HasNode(key) {
			t.Fatalf("inactive context source %s was rendered", name)
		}
	}

	// Insight edges tie derived scores back to their inputs.
	if _, ok := s.EdgeBetween("financial_health", "financial_metrics"); !ok {
		t.Fatal("missing financial health insight edge")
	}
	if _, ok := s.EdgeBetween("temporal_trends", "financial_metrics"); !ok {
		t.Fatal("missing temporal trends insight edge")
	}
}

func TestPlaceholder(t *testing.T) {
	s := Placeholder("something went wrong")

	if len(s.Nodes) != 1 {
		t.Fatalf("expected exactly 1 node, got %d", len(s.Nodes))
	}
	if len(s.Edges) != 0 {
		t.Fatalf("expected no edges, got %d", len(s.Edges))
	}
	if s.Nodes[0].Tooltip != "something went wrong" {
		t.Fatalf("placeholder tooltip %q does not carry the diagnostic", s.Nodes[0].Tooltip)
	}
}

func TestSnapshotDedupe(t *testing.T) {
	s := NewSnapshot()
	s.AddNode(Node{Key: "a", Label: "first"})
	s.AddNode(Node{Key: "a", Label: "second"})
	s.AddEdge(Edge{From: "a", To: "b", Width: 1})
	s.AddEdge(Edge{From: "a", To: "b", Width: 2})

	if len(s.Nodes) != 1 {
		t.Fatalf("expected 1 node after duplicate insert, got %d", len(s.Nodes))
	}
	n, _ := s.Node("a")
	if n.Label != "first" {
		t.Fatalf("duplicate insert replaced the original node, label %q", n.Label)
	}
	if len(s.Edges) != 1 {
		t.Fatalf("expected 1 edge after duplicate insert, got %d", len(s.Edges))
	}
	if s.Edges[0].Width != 1 {
		t.Fatalf("duplicate insert replaced the original edge, width %f", s.Edges[0].Width)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{750000, "750,000"},
		{1234567.4, "1,234,567"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		if got := formatMoney(tt.in); got != tt.want {
			t.Fatalf("formatMoney(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
