package scenario

import (
	"math/rand"
	"time"

	"github.com/context-ai/showcase/backend/pkg/common"
)

// Clamp ranges for generated ratios and scores. Clamping happens after
// trend and noise are applied, so a random walk can never push a value
// outside its valid domain.
const (
	scoreMin = 0.05
	scoreMax = 0.95

	debtRatioMin = 0.1
	debtRatioMax = 0.9

	marginMin = 0.01
	marginMax = 0.6

	capacityMin = 0.1
	capacityMax = 1.0

	salesGrowthMin = -0.5
	salesGrowthMax = 0.5
)

var seriesStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

func monthDate(month int) string {
	return seriesStart.AddDate(0, month, 0).Format("2006-01-02")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// noise returns a uniform value in [-scale, scale].
func noise(rng *rand.Rand, scale float64) float64 {
	return (rng.Float64()*2 - 1) * scale
}

func generateFinancialSeries(tpl archetypeTemplate, rng *rand.Rand) []common.FinancialRecord {
	p := tpl.series
	records := make([]common.FinancialRecord, common.SeriesMonths)

	for i := range records {
		m := float64(i)
		rec := common.FinancialRecord{
			Date:         monthDate(i),
			Revenue:      p.revenue * (1 + p.revenueTrend*m + noise(rng, 0.05)),
			ProfitMargin: clamp(p.margin*(1+p.marginTrend*m+noise(rng, 0.05)), marginMin, marginMax),
			CashBalance:  p.cash * (1 + p.cashTrend*m + noise(rng, 0.10)),
			DebtRatio:    clamp(p.debt*(1+p.debtTrend*m+noise(rng, 0.05)), debtRatioMin, debtRatioMax),
		}

		switch {
		case p.saas != nil:
			rec.SaaS = &common.SaaSMetrics{
				CustomerAcquisitionCost: p.saas.cac * (1 + p.saas.cacTrend*m + noise(rng, 0.04)),
				MonthlyRecurringRevenue: p.saas.mrr * (1 + p.saas.mrrTrend*m + noise(rng, 0.04)),
				CustomerLifetimeValue:   p.saas.ltv * (1 + p.saas.ltvTrend*m + noise(rng, 0.04)),
			}
		case p.manufacturing != nil:
			rec.Manufacturing = &common.ManufacturingMetrics{
				RawMaterialCosts:    p.manufacturing.materialCosts * (1 + p.manufacturing.materialCostsTrend*m + noise(rng, 0.05)),
				CapacityUtilization: clamp(p.manufacturing.capacity*(1+p.manufacturing.capacityTrend*m+noise(rng, 0.04)), capacityMin, capacityMax),
				OrderBacklog:        p.manufacturing.backlog * (1 + p.manufacturing.backlogTrend*m + noise(rng, 0.06)),
			}
		case p.retail != nil:
			rec.Retail = &common.RetailMetrics{
				SameStoreSalesGrowth: clamp(p.retail.salesGrowth+p.retail.salesGrowthTrend*m+noise(rng, 0.01), salesGrowthMin, salesGrowthMax),
				InventoryTurnover:    p.retail.turnover * (1 + p.retail.turnoverTrend*m + noise(rng, 0.03)),
				CustomerTraffic:      p.retail.traffic * (1 + p.retail.trafficTrend*m + noise(rng, 0.05)),
			}
		}

		records[i] = rec
	}
	return records
}

func generateRiskSeries(tpl archetypeTemplate, rng *rand.Rand) []common.RiskRecord {
	p := tpl.series
	records := make([]common.RiskRecord, common.SeriesMonths)

	for i := range records {
		m := float64(i)
		records[i] = common.RiskRecord{
			Date:                 monthDate(i),
			RiskScore:            clampScore(p.risk * (1 + p.riskTrend*m + noise(rng, 0.10))),
			ConfidenceScore:      clampScore(p.confidence * (1 + p.confidenceTrend*m + noise(rng, 0.06))),
			FinancialHealthScore: clampScore(p.financialHealth * (1 + p.riskTrend*m/2 + noise(rng, 0.08))),
			ManagementRiskScore:  clampScore(p.managementRisk * (1 + noise(rng, 0.08))),
			IndustryRiskScore:    clampScore(p.industryRisk * (1 + p.riskTrend*m/2 + noise(rng, 0.08))),
			ExternalContextScore: clampScore(p.externalScore * (1 + p.riskTrend*m/2 + noise(rng, 0.08))),
		}
	}
	return records
}

func clampScore(v float64) float64 {
	return clamp(v, scoreMin, scoreMax)
}
