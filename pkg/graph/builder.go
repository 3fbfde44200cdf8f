package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/context-ai/showcase/backend/pkg/common"
)

const rootKey = "applicant"

// DiagnosticError describes a snapshot construction failure. The message is
// meant to end up in a placeholder node tooltip, not in a crash report.
type DiagnosticError struct {
	Stage string
	Err   error
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("building %s snapshot: %v", e.Stage, e.Err)
}

func (e *DiagnosticError) Unwrap() error { return e.Err }

// Placeholder returns the single-node snapshot rendered when graph
// construction fails. The diagnostic text is preserved in the tooltip.
func Placeholder(message string) *Snapshot {
	s := NewSnapshot()
	s.AddNode(Node{
		Key:     "error",
		Label:   "Error",
		Tooltip: message,
		Size:    25,
		Color:   ColorDiagnostic,
	})
	return s
}

// BuildInitial creates the stage-one snapshot: the applicant root with the
// basic information, loan request, and credit history groups. No
// cross-category edges exist at this stage.
func BuildInitial(p common.Profile) (*Snapshot, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, &DiagnosticError{Stage: "initial", Err: errors.New("profile has no company name")}
	}

	s := NewSnapshot()
	s.AddNode(Node{
		Key:     rootKey,
		Label:   p.Name,
		Tooltip: p.Name,
		Size:    sizeRoot,
		Color:   ColorRoot,
	})

	addCategory(s, "basic_info", "Basic Information", "Basic Company Information", ColorFact)
	addFact(s, "basic_info", "industry", "Industry: "+p.Industry, ColorFact)
	addFact(s, "basic_info", "business_type", "Business Type: "+p.BusinessType, ColorFact)
	addFact(s, "basic_info", "years_in_business", fmt.Sprintf("Years in Business: %d", p.YearsInBusiness), ColorFact)
	addFact(s, "basic_info", "employees", fmt.Sprintf("Employees: %d", p.Employees), ColorFact)
	addFact(s, "basic_info", "location", "Location: "+p.Location, ColorFact)

	addCategory(s, "loan_request", "Loan Request", "Loan Request Details", ColorFact)
	addFact(s, "loan_request", "loan_amount", "Amount: $"+formatMoney(float64(p.LoanAmountRequested)), ColorFact)
	addFact(s, "loan_request", "loan_purpose", "Purpose: "+p.LoanPurpose, ColorFact)
	addFact(s, "loan_request", "loan_term", fmt.Sprintf("Term: %d years", p.LoanTermYears), ColorFact)
	addFact(s, "loan_request", "collateral", "Collateral: "+p.Collateral, ColorFact)

	addCategory(s, "credit_history", "Credit History", "Credit History", ColorFact)
	addFact(s, "credit_history", "credit_score", fmt.Sprintf("Credit Score: %d", p.CreditScore), ColorFact)
	addFact(s, "credit_history", "previous_loans", fmt.Sprintf("Previous Loans: %d", p.PreviousLoans), ColorFact)
	addFact(s, "credit_history", "loans_repaid", fmt.Sprintf("Loans Repaid: %d", p.PreviousLoansRepaid), ColorFact)

	return s, nil
}

// BuildExpanded extends a copy of the initial snapshot with the financial,
// industry-specific, management, and customer groups for one monthly record.
func BuildExpanded(p common.Profile, fin common.FinancialRecord) (*Snapshot, error) {
	base, err := BuildInitial(p)
	if err != nil {
		return nil, err
	}
	s := base.Clone()

	addCategory(s, "financial_metrics", "Financial Metrics", "Financial Metrics", ColorFact)
	addFact(s, "financial_metrics", "revenue", "Revenue: $"+formatMoney(fin.Revenue), ColorFact)
	addFact(s, "financial_metrics", "profit_margin", fmt.Sprintf("Profit Margin: %.1f%%", fin.ProfitMargin*100), ColorFact)
	addFact(s, "financial_metrics", "cash_balance", "Cash Balance: $"+formatMoney(fin.CashBalance), ColorFact)
	addFact(s, "financial_metrics", "debt_ratio", fmt.Sprintf("Debt Ratio: %.2f", fin.DebtRatio), ColorFact)

	addIndustryMetrics(s, fin)

	addCategory(s, "management", "Management", "Management Information", ColorFact)
	addFact(s, "management", "management_team_size", fmt.Sprintf("Team Size: %d", p.ManagementTeamSize), ColorFact)
	addFact(s, "management", "management_experience", fmt.Sprintf("Experience: %d years", p.ManagementYears), ColorFact)

	if p.CustomerCount > 0 {
		addCategory(s, "customers", "Customers", "Customer Information", ColorFact)
		addFact(s, "customers", "customer_count", fmt.Sprintf("Count: %d", p.CustomerCount), ColorFact)

		if p.LargestCustomerPct > 0 {
			s.AddNode(Node{
				Key:     "customer_concentration",
				Label:   fmt.Sprintf("Concentration: %.0f%%", p.LargestCustomerPct),
				Tooltip: fmt.Sprintf("Largest customer accounts for %.0f%% of revenue", p.LargestCustomerPct),
				Size:    sizeFact,
				Color:   ColorFact,
			})
			s.AddEdge(Edge{From: "customers", To: "customer_concentration", Width: concentrationWidth(p.LargestCustomerPct)})

			othersShare := (100 - p.LargestCustomerPct) / float64(max(p.CustomerCount-1, 1))
			s.AddNode(Node{
				Key:     "customer_others",
				Label:   "Others",
				Tooltip: fmt.Sprintf("Remaining customers average %.1f%% of revenue each", othersShare),
				Size:    sizeFact,
				Color:   ColorFact,
			})
			s.AddEdge(Edge{From: "customers", To: "customer_others", Width: concentrationWidth(othersShare)})
		}
	}

	return s, nil
}

// BuildComprehensive extends a copy of the expanded snapshot with the risk
// assessment, external context, and temporal trend groups, plus the
// deliberate cross-category insight edges.
func BuildComprehensive(
	p common.Profile,
	fin common.FinancialRecord,
	risk common.RiskRecord,
	context map[string]common.ContextSource,
) (*Snapshot, error) {
	base, err := BuildExpanded(p, fin)
	if err != nil {
		return nil, err
	}
	s := base.Clone()

	addCategory(s, "risk_assessment", "Risk Assessment", "Risk Assessment", ColorGuidance)
	addFact(s, "risk_assessment", "risk_score", fmt.Sprintf("Risk Score: %.2f", risk.RiskScore), ColorGuidance)
	addFact(s, "risk_assessment", "confidence_score", fmt.Sprintf("Confidence: %.2f", risk.ConfidenceScore), ColorGuidance)
	addFact(s, "risk_assessment", "financial_health", fmt.Sprintf("Financial Health: %.2f", risk.FinancialHealthScore), ColorGuidance)
	addFact(s, "risk_assessment", "management_risk", fmt.Sprintf("Management Risk: %.2f", risk.ManagementRiskScore), ColorGuidance)
	addFact(s, "risk_assessment", "industry_risk", fmt.Sprintf("Industry Risk: %.2f", risk.IndustryRiskScore), ColorGuidance)
	addFact(s, "risk_assessment", "external_risk", fmt.Sprintf("External Risk: %.2f", risk.ExternalContextScore), ColorGuidance)

	if len(context) > 0 {
		addCategory(s, "external_context", "External Context", "External Context", ColorExternal)

		names := make([]string, 0, len(context))
		for name := range context {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			src := context[name]
			if !src.Active {
				continue
			}
			key := "context_" + slug(name)
			s.AddNode(Node{
				Key:     key,
				Label:   name,
				Tooltip: fmt.Sprintf("%s (Reliability: %.2f)", name, src.Reliability),
				Size:    sizeFact,
				Color:   ColorExternal,
			})
			s.AddEdge(Edge{From: "external_context", To: key, Width: widthFact})

			// Two evidence items per source keeps the rendering readable.
			for i, ev := range src.Sources {
				if i >= 2 {
					break
				}
				evKey := fmt.Sprintf("%s_%d", key, i)
				s.AddNode(Node{
					Key:     evKey,
					Label:   ev.Name,
					Tooltip: ev.Content,
					Size:    sizeEvidence,
					Color:   ColorExternal,
				})
				s.AddEdge(Edge{From: key, To: evKey, Width: widthFact})
			}
		}
	}

	addCategory(s, "temporal_trends", "Temporal Trends", "Temporal Intelligence", ColorTemporal)
	for _, tr := range industryTrends(p.Industry) {
		s.AddNode(Node{
			Key:     "trend_" + slug(tr.name),
			Label:   tr.name,
			Tooltip: tr.tooltip,
			Size:    sizeFact,
			Color:   ColorTemporal,
		})
		s.AddEdge(Edge{From: "temporal_trends", To: "trend_" + slug(tr.name), Width: widthFact})
	}

	// Insight edges tying scores to the groups they were derived from.
	addInsightEdge(s, "financial_health", "financial_metrics")
	addInsightEdge(s, "management_risk", "management")
	addInsightEdge(s, "industry_risk", "external_context")
	addInsightEdge(s, "external_context", "financial_metrics")
	addInsightEdge(s, "temporal_trends", "financial_metrics")

	return s, nil
}

func addCategory(s *Snapshot, key, label, tooltip, color string) {
	s.AddNode(Node{Key: key, Label: label, Tooltip: tooltip, Size: sizeCategory, Color: color})
	s.AddEdge(Edge{From: rootKey, To: key, Width: widthCategory})
}

func addFact(s *Snapshot, category, key, label, color string) {
	s.AddNode(Node{Key: key, Label: label, Tooltip: label, Size: sizeFact, Color: color})
	s.AddEdge(Edge{From: category, To: key, Width: widthFact})
}

func addIndustryMetrics(s *Snapshot, fin common.FinancialRecord) {
	switch {
	case fin.SaaS != nil:
		addCategory(s, "industry_metrics", "SaaS Metrics", "SaaS Business Metrics", ColorFact)
		addFact(s, "industry_metrics", "cac", fmt.Sprintf("CAC: $%.0f", fin.SaaS.CustomerAcquisitionCost), ColorFact)
		addFact(s, "industry_metrics", "mrr", "MRR: $"+formatMoney(fin.SaaS.MonthlyRecurringRevenue), ColorFact)
		addFact(s, "industry_metrics", "ltv", "LTV: $"+formatMoney(fin.SaaS.CustomerLifetimeValue), ColorFact)
	case fin.Manufacturing != nil:
		addCategory(s, "industry_metrics", "Manufacturing Metrics", "Manufacturing Metrics", ColorFact)
		addFact(s, "industry_metrics", "material_costs", "Material Costs: $"+formatMoney(fin.Manufacturing.RawMaterialCosts), ColorFact)
		addFact(s, "industry_metrics", "capacity_utilization", fmt.Sprintf("Capacity Utilization: %.1f%%", fin.Manufacturing.CapacityUtilization*100), ColorFact)
		addFact(s, "industry_metrics", "order_backlog", "Order Backlog: $"+formatMoney(fin.Manufacturing.OrderBacklog), ColorFact)
	case fin.Retail != nil:
		addCategory(s, "industry_metrics", "Retail Metrics", "Retail Metrics", ColorFact)
		addFact(s, "industry_metrics", "same_store_sales", fmt.Sprintf("Same Store Sales Growth: %.1f%%", fin.Retail.SameStoreSalesGrowth*100), ColorFact)
		addFact(s, "industry_metrics", "inventory_turnover", fmt.Sprintf("Inventory Turnover: %.1fx", fin.Retail.InventoryTurnover), ColorFact)
		addFact(s, "industry_metrics", "customer_traffic", "Customer Traffic: "+formatMoney(fin.Retail.CustomerTraffic), ColorFact)
	}
}

func addInsightEdge(s *Snapshot, from, to string) {
	if !s.HasNode(from) || !s.HasNode(to) {
		return
	}
	s.AddEdge(Edge{From: from, To: to, Width: widthFact, Color: ColorEdge})
}

// concentrationWidth scales an edge by the revenue share it represents.
func concentrationWidth(pct float64) float64 {
	return widthFact + pct/10
}

type trend struct {
	name    string
	tooltip string
}

func industryTrends(industry string) []trend {
	switch industry {
	case "Software Development":
		return []trend{
			{"Growth Trend", "Consistent revenue growth pattern"},
			{"Margin Stability", "Stable profit margins over time"},
			{"Improving LTV-CAC Ratio", "Improving unit economics"},
		}
	case "Manufacturing":
		return []trend{
			{"Capacity Utilization Trend", "Changing factory utilization over time"},
			{"Material Cost Pressure", "Rising raw material costs"},
			{"Order Backlog Evolution", "Changing order pipeline"},
		}
	case "Retail":
		return []trend{
			{"Store Traffic Decline", "Decreasing customer visits over time"},
			{"Margin Compression", "Decreasing profit margins"},
			{"Inventory Turnover Slowdown", "Slowing inventory movement"},
		}
	default:
		return []trend{
			{"Revenue Trend", "Revenue change over time"},
			{"Margin Trend", "Profit margin evolution"},
			{"Cash Flow Pattern", "Cash flow stability over time"},
		}
	}
}

func slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// formatMoney renders a value as a whole number with thousands separators.
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	n := int64(v + 0.5)
	digits := fmt.Sprintf("%d", n)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
