package scenario

import "github.com/context-ai/showcase/backend/pkg/common"

// seriesParams are the base values and monthly trend coefficients behind an
// archetype's financial and risk series. Trends are fractions of the base
// value per month; noise is applied on top and the result clamped.
type seriesParams struct {
	revenue      float64
	revenueTrend float64
	margin       float64
	marginTrend  float64
	cash         float64
	cashTrend    float64
	debt         float64
	debtTrend    float64

	risk            float64
	riskTrend       float64
	confidence      float64
	confidenceTrend float64

	financialHealth float64
	managementRisk  float64
	industryRisk    float64
	externalScore   float64

	saas          *saasParams
	manufacturing *manufacturingParams
	retail        *retailParams
}

type saasParams struct {
	cac      float64
	cacTrend float64
	mrr      float64
	mrrTrend float64
	ltv      float64
	ltvTrend float64
}

type manufacturingParams struct {
	materialCosts      float64
	materialCostsTrend float64
	capacity           float64
	capacityTrend      float64
	backlog            float64
	backlogTrend       float64
}

type retailParams struct {
	salesGrowth      float64
	salesGrowthTrend float64 // additive, percentage points per month
	turnover         float64
	turnoverTrend    float64
	traffic          float64
	trafficTrend     float64
}

type archetypeTemplate struct {
	seedOffset int64
	profile    common.Profile
	series     seriesParams
	events     []common.TimelineEvent
	context    map[string]common.ContextSource
	reasoning  common.Reasoning
	confidence map[string]float64
	guidance   common.Guidance
}

var templates = map[common.Archetype]archetypeTemplate{
	common.ArchetypeStrong: {
		seedOffset: 1,
		profile: common.Profile{
			Name:                "Brightpath Software",
			Industry:            "Software Development",
			BusinessType:        "B2B SaaS",
			YearsInBusiness:     8,
			Employees:           45,
			Location:            "Austin, TX",
			Description:         "Subscription workflow platform for mid-market logistics teams with consistent revenue growth and strong unit economics.",
			LoanAmountRequested: 750000,
			LoanPurpose:         "Product development and market expansion",
			LoanTermYears:       5,
			Collateral:          "Business assets and IP",
			CreditScore:         780,
			PreviousLoans:       2,
			PreviousLoansRepaid: 2,
			ManagementTeamSize:  5,
			ManagementYears:     12,
			CustomerCount:       140,
			LargestCustomerPct:  8,
		},
		series: seriesParams{
			revenue: 850000, revenueTrend: 0.025,
			margin: 0.18, marginTrend: 0.004,
			cash: 420000, cashTrend: 0.02,
			debt: 0.30, debtTrend: -0.005,
			risk: 0.35, riskTrend: -0.02,
			confidence: 0.55, confidenceTrend: 0.04,
			financialHealth: 0.80,
			managementRisk:  0.20,
			industryRisk:    0.30,
			externalScore:   0.25,
			saas: &saasParams{
				cac: 1100, cacTrend: -0.008,
				mrr: 700000, mrrTrend: 0.025,
				ltv: 9500, ltvTrend: 0.01,
			},
		},
		events:     strongEvents,
		context:    strongContext,
		reasoning:  strongReasoning,
		confidence: strongConfidence,
		guidance:   strongGuidance,
	},

	common.ArchetypeUnclear: {
		seedOffset: 2,
		profile: common.Profile{
			Name:                "Calloway Precision Parts",
			Industry:            "Manufacturing",
			BusinessType:        "Component manufacturer",
			YearsInBusiness:     7,
			Employees:           85,
			Location:            "Toledo, OH",
			Description:         "Machined-component supplier with solid order history but concentrated revenue and rising input costs.",
			LoanAmountRequested: 500000,
			LoanPurpose:         "Equipment modernization",
			LoanTermYears:       7,
			Collateral:          "Plant machinery",
			CreditScore:         685,
			PreviousLoans:       3,
			PreviousLoansRepaid: 2,
			ManagementTeamSize:  4,
			ManagementYears:     18,
			CustomerCount:       9,
			LargestCustomerPct:  28,
		},
		series: seriesParams{
			revenue: 2000000, revenueTrend: 0.003,
			margin: 0.09, marginTrend: -0.006,
			cash: 310000, cashTrend: 0.0,
			debt: 0.45, debtTrend: 0.01,
			risk: 0.48, riskTrend: 0.005,
			confidence: 0.50, confidenceTrend: 0.03,
			financialHealth: 0.55,
			managementRisk:  0.45,
			industryRisk:    0.50,
			externalScore:   0.48,
			manufacturing: &manufacturingParams{
				materialCosts: 780000, materialCostsTrend: 0.012,
				capacity: 0.72, capacityTrend: -0.004,
				backlog: 1500000, backlogTrend: -0.008,
			},
		},
		events:     unclearEvents,
		context:    unclearContext,
		reasoning:  unclearReasoning,
		confidence: unclearConfidence,
		guidance:   unclearGuidance,
	},

	common.ArchetypeChallenged: {
		seedOffset: 3,
		profile: common.Profile{
			Name:                "Maple & Main Retail Group",
			Industry:            "Retail",
			BusinessType:        "Specialty retail chain",
			YearsInBusiness:     12,
			Employees:           60,
			Location:            "Portland, OR",
			Description:         "Four-store specialty retailer facing declining foot traffic, margin compression, and slowing inventory turns.",
			LoanAmountRequested: 350000,
			LoanPurpose:         "Working capital and store refresh",
			LoanTermYears:       4,
			Collateral:          "Inventory",
			CreditScore:         640,
			PreviousLoans:       4,
			PreviousLoansRepaid: 3,
			ManagementTeamSize:  3,
			ManagementYears:     9,
			CustomerCount:       0, // general public; no concentration data
		},
		series: seriesParams{
			revenue: 1200000, revenueTrend: -0.015,
			margin: 0.05, marginTrend: -0.01,
			cash: 150000, cashTrend: -0.02,
			debt: 0.62, debtTrend: 0.015,
			risk: 0.58, riskTrend: 0.02,
			confidence: 0.45, confidenceTrend: 0.025,
			financialHealth: 0.35,
			managementRisk:  0.50,
			industryRisk:    0.65,
			externalScore:   0.60,
			retail: &retailParams{
				salesGrowth: -0.01, salesGrowthTrend: -0.004,
				turnover: 4.2, turnoverTrend: -0.01,
				traffic: 18000, trafficTrend: -0.012,
			},
		},
		events:     challengedEvents,
		context:    challengedContext,
		reasoning:  challengedReasoning,
		confidence: challengedConfidence,
		guidance:   challengedGuidance,
	},
}
