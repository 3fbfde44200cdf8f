package common

import "fmt"

// Archetype identifies one of the three canned applicant scenarios that
// drive every generated value in a dataset.
type Archetype string

const (
	ArchetypeStrong     Archetype = "strong_applicant"
	ArchetypeUnclear    Archetype = "unclear_applicant"
	ArchetypeChallenged Archetype = "challenged_applicant"
)

// Archetypes lists the fixed archetype vocabulary in presentation order.
var Archetypes = []Archetype{
	ArchetypeStrong,
	ArchetypeUnclear,
	ArchetypeChallenged,
}

// ParseArchetype validates a raw archetype name against the fixed vocabulary.
func ParseArchetype(raw string) (Archetype, error) {
	for _, a := range Archetypes {
		if string(a) == raw {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown archetype %q", raw)
}

// SeriesMonths is the fixed length of the financial and risk time series.
// The two series are always generated together and stay index-aligned.
const SeriesMonths = 12

// Profile holds the static attributes of one applicant. It is created once
// by the generator and read-only afterwards.
type Profile struct {
	Name                string  `json:"name"`
	Industry            string  `json:"industry"`
	BusinessType        string  `json:"business_type"`
	YearsInBusiness     int     `json:"years_in_business"`
	Employees           int     `json:"employees"`
	Location            string  `json:"location"`
	Description         string  `json:"description"`
	LoanAmountRequested int64   `json:"loan_amount_requested"`
	LoanPurpose         string  `json:"loan_purpose"`
	LoanTermYears       int     `json:"loan_term_requested"`
	Collateral          string  `json:"collateral_offered"`
	CreditScore         int     `json:"credit_score"`
	PreviousLoans       int     `json:"previous_loans"`
	PreviousLoansRepaid int     `json:"previous_loans_repaid"`
	ManagementTeamSize  int     `json:"management_team_size"`
	ManagementYears     int     `json:"management_experience_years"`
	CustomerCount       int     `json:"customer_count"`
	LargestCustomerPct  float64 `json:"largest_customer_percentage"`
}

// SaaSMetrics are the industry-specific metrics of a software business.
type SaaSMetrics struct {
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost"`
	MonthlyRecurringRevenue float64 `json:"monthly_recurring_revenue"`
	CustomerLifetimeValue   float64 `json:"customer_lifetime_value"`
}

// ManufacturingMetrics are the industry-specific metrics of a manufacturer.
type ManufacturingMetrics struct {
	RawMaterialCosts    float64 `json:"raw_material_costs"`
	CapacityUtilization float64 `json:"capacity_utilization"`
	OrderBacklog        float64 `json:"order_backlog"`
}

// RetailMetrics are the industry-specific metrics of a retailer.
type RetailMetrics struct {
	SameStoreSalesGrowth float64 `json:"same_store_sales_growth"`
	InventoryTurnover    float64 `json:"inventory_turnover"`
	CustomerTraffic      float64 `json:"customer_traffic"`
}

// FinancialRecord is one monthly row of the financial series. Exactly one of
// the industry metric blocks is set, matching the profile's industry.
type FinancialRecord struct {
	Date          string                `json:"date"`
	Revenue       float64               `json:"revenue"`
	ProfitMargin  float64               `json:"profit_margin"`
	CashBalance   float64               `json:"cash_balance"`
	DebtRatio     float64               `json:"debt_ratio"`
	SaaS          *SaaSMetrics          `json:"saas,omitempty"`
	Manufacturing *ManufacturingMetrics `json:"manufacturing,omitempty"`
	Retail        *RetailMetrics        `json:"retail,omitempty"`
}

// RiskRecord is one monthly row of the risk series, index-aligned with the
// financial series.
type RiskRecord struct {
	Date                 string  `json:"date"`
	RiskScore            float64 `json:"risk_score"`
	ConfidenceScore      float64 `json:"confidence_score"`
	FinancialHealthScore float64 `json:"financial_health_score"`
	ManagementRiskScore  float64 `json:"management_risk_score"`
	IndustryRiskScore    float64 `json:"industry_risk_score"`
	ExternalContextScore float64 `json:"external_context_score"`
}

// Event types used by TimelineEvent.
const (
	EventInfo     = "info"
	EventPositive = "positive"
	EventNegative = "negative"
	EventWarning  = "warning"
)

// TimelineEvent is a dated narrative note on the monitoring timeline.
type TimelineEvent struct {
	Date        string `json:"date"`
	Event       string `json:"event"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Evidence is a single named item backing an external context source.
type Evidence struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ContextSource is one named external context feed with its reliability,
// signed impact on the risk assessment, and backing evidence.
type ContextSource struct {
	Reliability float64    `json:"reliability"`
	Active      bool       `json:"active"`
	Impact      float64    `json:"impact"`
	Sources     []Evidence `json:"sources"`
}

// Reasoning carries the pre-scripted recommendation for the decision stage.
type Reasoning struct {
	Conclusion      string     `json:"conclusion"`
	Confidence      float64    `json:"confidence"`
	ReasoningSteps  [][]string `json:"reasoning_steps"`
	Counterfactuals []string   `json:"counterfactuals"`
}

// Guidance holds the per-stage adaptive guidance text: the key factors a
// reviewer looks at and the value-ranked next best information to collect.
type Guidance struct {
	KeyFactors          map[string][]string           `json:"key_factors"`
	NextBestInformation map[string]map[string]float64 `json:"next_best_information"`
}

// StageDescriptor is the static stage-complexity descriptor: the ordered
// journey stages and the approximate graph detail level of each.
type StageDescriptor struct {
	Stages     []string       `json:"stages"`
	Complexity map[string]int `json:"complexity"`
}

// Dataset is the complete synthetic bundle for one archetype. All fields are
// produced together by the generator, persisted to flat storage, and treated
// as read-only for the rest of the process lifetime.
type Dataset struct {
	Archetype  Archetype                `json:"archetype"`
	Profile    Profile                  `json:"company_profile"`
	Financials []FinancialRecord        `json:"financial_data"`
	Risk       []RiskRecord             `json:"risk_scores"`
	Events     []TimelineEvent          `json:"events"`
	Context    map[string]ContextSource `json:"external_context"`
	Reasoning  Reasoning                `json:"reasoning_paths"`
	Confidence map[string]float64       `json:"confidence_components"`
	Guidance   Guidance                 `json:"guidance"`
	Signals    map[string][]string      `json:"signals"`
	Stages     StageDescriptor          `json:"knowledge_graphs"`
}

// Validate checks the invariants a well-formed dataset must satisfy before
// it is served: aligned series of the documented length.
func (d *Dataset) Validate() error {
	if len(d.Financials) != SeriesMonths {
		return fmt.Errorf("financial series has %d records, want %d", len(d.Financials), SeriesMonths)
	}
	if len(d.Risk) != SeriesMonths {
		return fmt.Errorf("risk series has %d records, want %d", len(d.Risk), SeriesMonths)
	}
	for i := range d.Financials {
		if d.Financials[i].Date != d.Risk[i].Date {
			return fmt.Errorf("series dates diverge at month %d", i)
		}
	}
	return nil
}
