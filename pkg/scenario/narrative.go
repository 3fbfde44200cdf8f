package scenario

import "github.com/context-ai/showcase/backend/pkg/common"

// Pre-scripted narrative content per archetype: timeline events, external
// context sources, reasoning paths, confidence components, and per-stage
// guidance. These are fixed templates; only the numeric series carry noise.

var strongEvents = []common.TimelineEvent{
	{Date: monthDate(1), Event: "Loan application submitted", Category: "application", Type: common.EventInfo},
	{Date: monthDate(2), Event: "Initial approval with standard conditions", Category: "approval", Type: common.EventPositive},
	{Date: monthDate(4), Event: "Enterprise tier launched ahead of schedule", Category: "company", Type: common.EventPositive},
	{Date: monthDate(6), Event: "Q2 results above projections", Category: "financial", Type: common.EventPositive},
	{Date: monthDate(8), Event: "Competitor raised significant funding", Category: "external", Type: common.EventWarning},
	{Date: monthDate(10), Event: "Multi-year contract signed with logistics group", Category: "company", Type: common.EventPositive},
}

var unclearEvents = []common.TimelineEvent{
	{Date: monthDate(1), Event: "Loan application submitted", Category: "application", Type: common.EventInfo},
	{Date: monthDate(2), Event: "Initial approval with conditions", Category: "approval", Type: common.EventPositive},
	{Date: monthDate(4), Event: "Industry slowdown reported", Category: "external", Type: common.EventWarning},
	{Date: monthDate(6), Event: "Q2 financial results below projections", Category: "financial", Type: common.EventNegative},
	{Date: monthDate(8), Event: "Cost-cutting measures implemented", Category: "company", Type: common.EventInfo},
	{Date: monthDate(10), Event: "New major customer contract signed", Category: "company", Type: common.EventPositive},
}

var challengedEvents = []common.TimelineEvent{
	{Date: monthDate(1), Event: "Loan application submitted", Category: "application", Type: common.EventInfo},
	{Date: monthDate(2), Event: "Additional documentation requested", Category: "application", Type: common.EventWarning},
	{Date: monthDate(4), Event: "Consumer spending decline in core category", Category: "external", Type: common.EventWarning},
	{Date: monthDate(6), Event: "Two underperforming leases renegotiated", Category: "company", Type: common.EventInfo},
	{Date: monthDate(8), Event: "Q3 same-store sales below plan", Category: "financial", Type: common.EventNegative},
	{Date: monthDate(10), Event: "Holiday inventory financed on trade credit", Category: "financial", Type: common.EventWarning},
}

var strongContext = map[string]common.ContextSource{
	"Industry Trends": {
		Reliability: 0.85, Active: true, Impact: 0.12,
		Sources: []common.Evidence{
			{Name: "SaaS Market Report", Content: "Mid-market SaaS spending projected to grow 14% annually through 2026"},
			{Name: "Technology Adoption Index", Content: "Logistics digitization accelerating across target segment"},
		},
	},
	"Economic Indicators": {
		Reliability: 0.80, Active: true, Impact: 0.04,
		Sources: []common.Evidence{
			{Name: "Rate Outlook", Content: "Interest rates rising but enterprise software spending resilient"},
			{Name: "Business Confidence Survey", Content: "Technology investment intentions remain above long-run average"},
		},
	},
	"Competitive Landscape": {
		Reliability: 0.70, Active: true, Impact: -0.03,
		Sources: []common.Evidence{
			{Name: "Funding Tracker", Content: "Two competitors raised growth rounds this quarter"},
		},
	},
	"Regulatory Watch": {
		Reliability: 0.75, Active: false, Impact: 0,
		Sources: []common.Evidence{
			{Name: "Compliance Bulletin", Content: "No pending regulation affecting the segment"},
		},
	},
}

var unclearContext = map[string]common.ContextSource{
	"Industry Trends": {
		Reliability: 0.82, Active: true, Impact: -0.08,
		Sources: []common.Evidence{
			{Name: "Manufacturing PMI", Content: "Regional manufacturing activity contracting for a second month"},
			{Name: "Sector Outlook", Content: "Component demand flat; automotive orders softening"},
		},
	},
	"Supply Chain Signals": {
		Reliability: 0.74, Active: true, Impact: -0.06,
		Sources: []common.Evidence{
			{Name: "Input Cost Index", Content: "Raw material costs up 9% year over year"},
			{Name: "Logistics Monitor", Content: "Freight lead times normalizing after spring disruption"},
		},
	},
	"Economic Indicators": {
		Reliability: 0.80, Active: true, Impact: -0.02,
		Sources: []common.Evidence{
			{Name: "Rate Outlook", Content: "Higher rates increasing carrying cost of equipment debt"},
		},
	},
	"Customer Health": {
		Reliability: 0.68, Active: true, Impact: 0.05,
		Sources: []common.Evidence{
			{Name: "Counterparty Review", Content: "Largest customer reaffirmed multi-year supply agreement"},
			{Name: "Receivables Aging", Content: "Collections steady; days sales outstanding unchanged"},
		},
	},
	"Regulatory Watch": {
		Reliability: 0.75, Active: false, Impact: 0,
		Sources: []common.Evidence{
			{Name: "Compliance Bulletin", Content: "No pending regulation affecting the segment"},
		},
	},
}

var challengedContext = map[string]common.ContextSource{
	"Industry Trends": {
		Reliability: 0.83, Active: true, Impact: -0.11,
		Sources: []common.Evidence{
			{Name: "Retail Traffic Index", Content: "Specialty retail foot traffic down 7% year over year"},
			{Name: "Category Report", Content: "Online substitution accelerating in core product category"},
		},
	},
	"Economic Indicators": {
		Reliability: 0.80, Active: true, Impact: -0.07,
		Sources: []common.Evidence{
			{Name: "Consumer Confidence", Content: "Discretionary spending intentions at two-year low"},
			{Name: "Credit Conditions", Content: "Consumer credit tightening reduces big-ticket purchases"},
		},
	},
	"Local Market Data": {
		Reliability: 0.65, Active: true, Impact: -0.04,
		Sources: []common.Evidence{
			{Name: "District Report", Content: "Two anchor tenants left the flagship store's shopping district"},
		},
	},
	"Competitive Landscape": {
		Reliability: 0.70, Active: true, Impact: -0.03,
		Sources: []common.Evidence{
			{Name: "Market Scan", Content: "National chain opened a competing location within three miles"},
		},
	},
}

var strongReasoning = common.Reasoning{
	Conclusion: "Approve with standard terms",
	Confidence: 0.86,
	ReasoningSteps: [][]string{
		{
			"Revenue growth is consistent and margins are stable across the observed period",
			"LTV/CAC ratio is healthy and improving, indicating durable unit economics",
			"Credit history shows full repayment of all prior obligations",
		},
		{
			"Industry context is favorable: the target segment is growing and spending is resilient",
			"No customer concentration risk; the largest account is 8% of revenue",
		},
		{
			"Combined internal and external signals support low risk with high confidence",
		},
	},
	Counterfactuals: []string{
		"A sustained rise in customer acquisition cost above $1,600 would trigger re-assessment",
		"Loss of more than 10% of recurring revenue in one quarter would lower the recommendation to conditional approval",
		"A material adverse change in SaaS segment growth would reduce confidence below the approval threshold",
	},
}

var unclearReasoning = common.Reasoning{
	Conclusion: "Approve with conditions and enhanced monitoring",
	Confidence: 0.64,
	ReasoningSteps: [][]string{
		{
			"Core financials are adequate but margins are compressing under rising input costs",
			"28% of revenue depends on a single customer, above the 20% guideline for manufacturers",
		},
		{
			"The largest customer reaffirmed its supply agreement, partially offsetting concentration risk",
			"Industry context is softening; capacity utilization is drifting down",
		},
		{
			"Risk is acceptable only with covenants on customer diversification and quarterly reporting",
		},
	},
	Counterfactuals: []string{
		"Customer concentration below 20% would upgrade the recommendation to standard approval",
		"Loss or renegotiation of the largest customer contract would change the recommendation to decline",
		"Two consecutive quarters of margin recovery would remove the enhanced monitoring condition",
	},
}

var challengedReasoning = common.Reasoning{
	Conclusion: "Decline; recommend reapplication after turnaround milestones",
	Confidence: 0.71,
	ReasoningSteps: [][]string{
		{
			"Revenue, traffic, and margins are all declining with no stabilization in the observed period",
			"Debt ratio is elevated and rising while cash reserves shrink",
		},
		{
			"External context amplifies the internal signals: category-wide traffic decline and tightening consumer credit",
			"Collateral is inventory in a category with slowing turnover, weakening recovery value",
		},
		{
			"The combined signal pattern indicates the loan would fund losses rather than growth",
		},
	},
	Counterfactuals: []string{
		"Two quarters of positive same-store sales growth would make the application viable",
		"A verified cost restructuring restoring margins above 8% would change the recommendation to conditional approval",
		"Additional collateral outside inventory would partially offset the recovery-value concern",
	},
}

var strongConfidence = map[string]float64{
	"Data Completeness":    0.92,
	"Source Reliability":   0.85,
	"Signal Agreement":     0.88,
	"Historical Precedent": 0.80,
}

var unclearConfidence = map[string]float64{
	"Data Completeness":    0.78,
	"Source Reliability":   0.74,
	"Signal Agreement":     0.52,
	"Historical Precedent": 0.61,
}

var challengedConfidence = map[string]float64{
	"Data Completeness":    0.84,
	"Source Reliability":   0.76,
	"Signal Agreement":     0.81,
	"Historical Precedent": 0.69,
}

// keyFactors is shared narrative structure; the value-ranked next best
// information differs per archetype.
var keyFactors = map[string][]string{
	common.StageInitialApplication:   {"Basic application data", "Industry classification", "Credit history"},
	common.StageInformationGathering: {"Financial statements", "Customer relationships", "Market position", "Management team"},
	common.StageRiskAssessment:       {"Financial ratios", "Industry trends", "Competitor performance", "Economic indicators"},
	common.StageDecisionPoint:        {"Risk level", "Confidence assessment", "Decision reasoning", "Terms and conditions"},
	common.StageMonitoringPhase:      {"Payment performance", "Financial updates", "Market changes", "Risk trend"},
}

var strongGuidance = common.Guidance{
	KeyFactors: keyFactors,
	NextBestInformation: map[string]map[string]float64{
		common.StageInitialApplication: {
			"Complete financial statements": 0.90,
			"Customer cohort retention":     0.75,
			"Collateral documentation":      0.55,
		},
		common.StageInformationGathering: {
			"Industry forecast":       0.80,
			"Competitive positioning": 0.70,
			"Cash flow projections":   0.65,
		},
		common.StageRiskAssessment: {
			"Market share trend":         0.72,
			"Enterprise pipeline detail": 0.68,
			"Customer contract renewals": 0.60,
		},
		common.StageDecisionPoint: {
			"Stress test scenarios":   0.70,
			"Risk mitigation options": 0.55,
			"Monitoring plan":         0.50,
		},
		common.StageMonitoringPhase: {
			"Updated financial statements": 0.75,
			"Industry news updates":        0.60,
			"Payment pattern analysis":     0.58,
		},
	},
}

var unclearGuidance = common.Guidance{
	KeyFactors: keyFactors,
	NextBestInformation: map[string]map[string]float64{
		common.StageInitialApplication: {
			"Complete financial statements":  0.92,
			"Customer concentration details": 0.88,
			"Collateral documentation":       0.60,
		},
		common.StageInformationGathering: {
			"Largest customer contract terms": 0.90,
			"Industry forecast":               0.76,
			"Cash flow projections":           0.70,
		},
		common.StageRiskAssessment: {
			"Supply chain stability":     0.74,
			"Customer contract renewals": 0.72,
			"Input cost hedging detail":  0.64,
		},
		common.StageDecisionPoint: {
			"Diversification plan":  0.78,
			"Stress test scenarios": 0.70,
			"Monitoring plan":       0.62,
		},
		common.StageMonitoringPhase: {
			"Customer mix updates":         0.80,
			"Updated financial statements": 0.74,
			"Payment pattern analysis":     0.60,
		},
	},
}

var challengedGuidance = common.Guidance{
	KeyFactors: keyFactors,
	NextBestInformation: map[string]map[string]float64{
		common.StageInitialApplication: {
			"Complete financial statements": 0.94,
			"Store-level P&L breakdown":     0.86,
			"Lease obligations schedule":    0.72,
		},
		common.StageInformationGathering: {
			"Turnaround plan detail": 0.88,
			"Inventory aging report": 0.78,
			"Cash flow projections":  0.76,
		},
		common.StageRiskAssessment: {
			"Category demand forecast":  0.75,
			"Competitor store openings": 0.66,
			"Consumer credit trends":    0.62,
		},
		common.StageDecisionPoint: {
			"Alternative collateral options": 0.80,
			"Milestone definitions":          0.72,
			"Reapplication criteria":         0.64,
		},
		common.StageMonitoringPhase: {
			"Weekly sales flash reports": 0.82,
			"Inventory turnover updates": 0.70,
			"Lease renegotiation status": 0.58,
		},
	},
}

// signalLibrary groups the indicator names used by the signal amplification
// narrative. Shared across archetypes.
func signalLibrary() map[string][]string {
	return map[string][]string{
		"Company Signals": {
			"Revenue Decline",
			"Margin Pressure",
			"Cash Flow Reduction",
			"Management Turnover",
			"Inventory Buildup",
			"Delayed Financial Filing",
		},
		"Industry Signals": {
			"Industry Slowdown",
			"Competitor Struggles",
			"Supply Chain Disruption",
			"Technology Shift",
			"Regulatory Changes",
			"Market Saturation",
		},
		"Economic Signals": {
			"Interest Rate Increase",
			"Consumer Confidence Drop",
			"Credit Market Tightening",
			"Currency Fluctuations",
			"Inflation Acceleration",
			"Employment Trend Change",
		},
	}
}

// stageDescriptor maps each journey stage to its graph detail level:
// 1 = base graph, 2 = + financials, 3 = + risk and external context,
// 4 = full temporal layering.
func stageDescriptor() common.StageDescriptor {
	return common.StageDescriptor{
		Stages: common.Stages,
		Complexity: map[string]int{
			common.StageInitialApplication:   1,
			common.StageInformationGathering: 2,
			common.StageRiskAssessment:       3,
			common.StageDecisionPoint:        4,
			common.StageMonitoringPhase:      4,
		},
	}
}
