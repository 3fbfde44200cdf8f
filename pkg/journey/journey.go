package journey

import (
	"fmt"

	"github.com/context-ai/showcase/backend/pkg/common"
	"github.com/context-ai/showcase/backend/pkg/graph"
)

// DefaultStageIndex maps each journey stage to the month of the financial
// and risk series that the stage's snapshot is rendered from.
var DefaultStageIndex = map[string]int{
	common.StageInitialApplication:   0,
	common.StageInformationGathering: 2,
	common.StageRiskAssessment:       5,
	common.StageDecisionPoint:        8,
	common.StageMonitoringPhase:      11,
}

// GraphForStage renders the knowledge graph snapshot for one journey stage.
// Unknown stages resolve to the first month and out-of-range month indexes
// are clamped into bounds rather than failing, so a stepped-through journey
// never dead-ends. Construction failures yield a single placeholder node
// carrying the diagnostic message.
func GraphForStage(ds *common.Dataset, stage string, stageIndex map[string]int) *graph.Snapshot {
	if stageIndex == nil {
		stageIndex = DefaultStageIndex
	}

	idx := stageIndex[stage]
	idx = clampIndex(idx, min(len(ds.Financials), len(ds.Risk)))

	s, err := buildStage(ds, stage, idx)
	if err != nil {
		return graph.Placeholder(fmt.Sprintf("graph unavailable: %v", err))
	}
	return s
}

func buildStage(ds *common.Dataset, stage string, idx int) (*graph.Snapshot, error) {
	if stage == common.StageInitialApplication {
		return graph.BuildInitial(ds.Profile)
	}
	if len(ds.Financials) == 0 || len(ds.Risk) == 0 {
		return nil, fmt.Errorf("dataset has no monthly records")
	}
	if stage == common.StageInformationGathering {
		return graph.BuildExpanded(ds.Profile, ds.Financials[idx])
	}
	return graph.BuildComprehensive(ds.Profile, ds.Financials[idx], ds.Risk[idx], ds.Context)
}

func clampIndex(idx, n int) int {
	if n == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
