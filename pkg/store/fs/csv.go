package fs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/context-ai/showcase/backend/pkg/common"
)

// Fixed leading columns of both series files. The financial series carries
// three additional industry-specific columns named after the metrics.
var financialBaseHeader = []string{"date", "revenue", "profit_margin", "cash_balance", "debt_ratio"}

var riskHeader = []string{
	"date",
	"risk_score",
	"confidence_score",
	"financial_health_score",
	"management_risk_score",
	"industry_risk_score",
	"external_context_score",
}

func encodeFinancialCSV(records []common.FinancialRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, errors.New("financial series is empty")
	}

	header := append([]string{}, financialBaseHeader...)
	switch {
	case records[0].SaaS != nil:
		header = append(header, "customer_acquisition_cost", "monthly_recurring_revenue", "customer_lifetime_value")
	case records[0].Manufacturing != nil:
		header = append(header, "raw_material_costs", "capacity_utilization", "order_backlog")
	case records[0].Retail != nil:
		header = append(header, "same_store_sales_growth", "inventory_turnover", "customer_traffic")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range records {
		row := []string{
			rec.Date,
			formatFloat(rec.Revenue),
			formatFloat(rec.ProfitMargin),
			formatFloat(rec.CashBalance),
			formatFloat(rec.DebtRatio),
		}
		switch {
		case rec.SaaS != nil:
			row = append(row,
				formatFloat(rec.SaaS.CustomerAcquisitionCost),
				formatFloat(rec.SaaS.MonthlyRecurringRevenue),
				formatFloat(rec.SaaS.CustomerLifetimeValue),
			)
		case rec.Manufacturing != nil:
			row = append(row,
				formatFloat(rec.Manufacturing.RawMaterialCosts),
				formatFloat(rec.Manufacturing.CapacityUtilization),
				formatFloat(rec.Manufacturing.OrderBacklog),
			)
		case rec.Retail != nil:
			row = append(row,
				formatFloat(rec.Retail.SameStoreSalesGrowth),
				formatFloat(rec.Retail.InventoryTurnover),
				formatFloat(rec.Retail.CustomerTraffic),
			)
		}
		if len(row) != len(header) {
			return nil, errors.New("financial series mixes industry metric blocks")
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func decodeFinancialCSV(data []byte) ([]common.FinancialRecord, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("financial series is empty")
	}

	header := rows[0]
	records := make([]common.FinancialRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec common.FinancialRecord
		for i, col := range header {
			if col == "date" {
				rec.Date = row[i]
				continue
			}
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col, err)
			}
			if err := setFinancialField(&rec, col, v); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func setFinancialField(rec *common.FinancialRecord, col string, v float64) error {
	switch col {
	case "revenue":
		rec.Revenue = v
	case "profit_margin":
		rec.ProfitMargin = v
	case "cash_balance":
		rec.CashBalance = v
	case "debt_ratio":
		rec.DebtRatio = v
	case "customer_acquisition_cost":
		saas(rec).CustomerAcquisitionCost = v
	case "monthly_recurring_revenue":
		saas(rec).MonthlyRecurringRevenue = v
	case "customer_lifetime_value":
		saas(rec).CustomerLifetimeValue = v
	case "raw_material_costs":
		manufacturing(rec).RawMaterialCosts = v
	case "capacity_utilization":
		manufacturing(rec).CapacityUtilization = v
	case "order_backlog":
		manufacturing(rec).OrderBacklog = v
	case "same_store_sales_growth":
		retail(rec).SameStoreSalesGrowth = v
	case "inventory_turnover":
		retail(rec).InventoryTurnover = v
	case "customer_traffic":
		retail(rec).CustomerTraffic = v
	default:
		return fmt.Errorf("unknown column %q", col)
	}
	return nil
}

func saas(rec *common.FinancialRecord) *common.SaaSMetrics {
	if rec.SaaS == nil {
		rec.SaaS = &common.SaaSMetrics{}
	}
	return rec.SaaS
}

func manufacturing(rec *common.FinancialRecord) *common.ManufacturingMetrics {
	if rec.Manufacturing == nil {
		rec.Manufacturing = &common.ManufacturingMetrics{}
	}
	return rec.Manufacturing
}

func retail(rec *common.FinancialRecord) *common.RetailMetrics {
	if rec.Retail == nil {
		rec.Retail = &common.RetailMetrics{}
	}
	return rec.Retail
}

func encodeRiskCSV(records []common.RiskRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, errors.New("risk series is empty")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(riskHeader); err != nil {
		return nil, err
	}

	for _, rec := range records {
		row := []string{
			rec.Date,
			formatFloat(rec.RiskScore),
			formatFloat(rec.ConfidenceScore),
			formatFloat(rec.FinancialHealthScore),
			formatFloat(rec.ManagementRiskScore),
			formatFloat(rec.IndustryRiskScore),
			formatFloat(rec.ExternalContextScore),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func decodeRiskCSV(data []byte) ([]common.RiskRecord, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("risk series is empty")
	}
	if len(rows[0]) != len(riskHeader) {
		return nil, fmt.Errorf("risk series has %d columns, want %d", len(rows[0]), len(riskHeader))
	}

	records := make([]common.RiskRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := make([]float64, len(riskHeader)-1)
		for i := range fields {
			v, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", riskHeader[i+1], err)
			}
			fields[i] = v
		}
		records = append(records, common.RiskRecord{
			Date:                 row[0],
			RiskScore:            fields[0],
			ConfidenceScore:      fields[1],
			FinancialHealthScore: fields[2],
			ManagementRiskScore:  fields[3],
			IndustryRiskScore:    fields[4],
			ExternalContextScore: fields[5],
		})
	}
	return records, nil
}

// formatFloat keeps the shortest representation that round-trips exactly,
// so re-encoding a loaded series reproduces the stored bytes.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
