package journey

import (
	"reflect"
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

func TestGraphForStage_AllStages(t *testing.T) {
	for _, archetype := range common.Archetypes {
		ds := testDataset(t, archetype)

		var prevNodes int
		for _, stage := range common.Stages {
			s := GraphForStage(ds, stage, nil)
			if len(s.Nodes) == 0 {
				t.Fatalf("%s @ %s: empty snapshot", archetype, stage)
			}
			if len(s.Nodes) < prevNodes {
				t.Fatalf("%s @ %s: snapshot shrank from %d to %d nodes", archetype, stage, prevNodes, len(s.Nodes))
			}
			prevNodes = len(s.Nodes)
		}
	}
}

func TestGraphForStage_OutOfBoundsMonthClamps(t *testing.T) {
	ds := testDataset(t, common.ArchetypeStrong)

	last := GraphForStage(ds, common.StageRiskAssessment, map[string]int{
		common.StageRiskAssessment: common.SeriesMonths - 1,
	})
	beyond := GraphForStage(ds, common.StageRiskAssessment, map[string]int{
		common.StageRiskAssessment: common.SeriesMonths + 30,
	})

	if !reflect.DeepEqual(last.Nodes, beyond.Nodes) || !reflect.DeepEqual(last.Edges, beyond.Edges) {
		t.Fatal("out-of-bounds month produced a different graph than the last valid month")
	}

	first := GraphForStage(ds, common.StageRiskAssessment, map[string]int{
		common.StageRiskAssessment: 0,
	})
	negative := GraphForStage(ds, common.StageRiskAssessment, map[string]int{
		common.StageRiskAssessment: -4,
	})
	if !reflect.DeepEqual(first.Nodes, negative.Nodes) {
		t.Fatal("negative month produced a different graph than month zero")
	}
}

func TestGraphForStage_UnknownStage(t *testing.T) {
	ds := testDataset(t, common.ArchetypeUnclear)

	// An unrecognized stage resolves to the first month and renders the full
	// graph, same as the risk-assessment stage pinned to month zero.
	unknown := GraphForStage(ds, "Archival Review", nil)
	firstMonth := GraphForStage(ds, common.StageRiskAssessment, map[string]int{
		common.StageRiskAssessment: 0,
	})

	if !reflect.DeepEqual(unknown.Nodes, firstMonth.Nodes) || !reflect.DeepEqual(unknown.Edges, firstMonth.Edges) {
		t.Fatal("unknown stage did not resolve to the full graph at the first month")
	}
}

func TestGraphForStage_BuilderFailure(t *testing.T) {
	ds := testDataset(t, common.ArchetypeStrong)
	ds.Profile.Name = ""

	s := GraphForStage(ds, common.StageInitialApplication, nil)

	if len(s.Nodes) != 1 {
		t.Fatalf("expected a single placeholder node, got %d nodes", len(s.Nodes))
	}
	if s.Nodes[0].Tooltip == "" {
		t.Fatal("placeholder tooltip does not carry a diagnostic message")
	}
}

func TestGraphForStage_EmptySeries(t *testing.T) {
	ds := testDataset(t, common.ArchetypeStrong)
	ds.Financials = nil
	ds.Risk = nil

	s := GraphForStage(ds, common.StageDecisionPoint, nil)
	if len(s.Nodes) != 1 {
		t.Fatalf("expected a single placeholder node, got %d nodes", len(s.Nodes))
	}
}
