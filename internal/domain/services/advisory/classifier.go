package advisory

import (
	"strings"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// ObservedRiskProfile classifies the customer's risk appetite from actual
// portfolio composition. With no holdings the stated tolerance stands;
// otherwise the share of high-risk holdings overrides the stated tolerance.
func ObservedRiskProfile(profile entities.InvestmentProfile, portfolio entities.Portfolio) string {
	if len(portfolio.Holdings) == 0 {
		return statedTolerance(profile)
	}

	highRisk := 0
	for _, h := range portfolio.Holdings {
		switch strings.ToUpper(h.AssetType) {
		case "STOCK", "CRYPTO":
			highRisk++
		}
	}

	ratio := float64(highRisk) / float64(len(portfolio.Holdings))
	switch {
	case ratio > 0.6:
		return entities.RiskAggressive
	case ratio > 0.3:
		return entities.RiskModerate
	default:
		return entities.RiskConservative
	}
}

// InvestmentStyle derives a style label from transaction volume alone.
// Boundaries are exclusive: exactly 20 transactions is still a regular
// investor, exactly 10 a long-term holder.
func InvestmentStyle(transactions []entities.Transaction) string {
	count := len(transactions)
	switch {
	case count < 3:
		return entities.StyleNewInvestor
	case count > 20:
		return entities.StyleActiveTrader
	case count > 10:
		return entities.StyleRegularInvestor
	default:
		return entities.StyleLongTermHolder
	}
}
