package common

import "fmt"

// Journey stage names. The vocabulary is fixed; renderers and the stage
// orchestrator match on the exact strings.
const (
	StageInitialApplication   = "Initial Application"
	StageInformationGathering = "Information Gathering"
	StageRiskAssessment       = "Risk Assessment"
	StageDecisionPoint        = "Decision Point"
	StageMonitoringPhase      = "Monitoring Phase"
)

// Stages lists the journey stages in narrative order.
var Stages = []string{
	StageInitialApplication,
	StageInformationGathering,
	StageRiskAssessment,
	StageDecisionPoint,
	StageMonitoringPhase,
}

// ParseStage validates a raw stage name against the fixed vocabulary.
func ParseStage(raw string) (string, error) {
	for _, s := range Stages {
		if s == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown journey stage %q", raw)
}
