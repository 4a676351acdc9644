package advisory

import (
	"github.com/shopspring/decimal"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// concentrationWarningShare is the per-holding value share above which a
// concentration warning fires.
const concentrationWarningShare = 0.5

// DiversificationScore measures how spread out a portfolio is, in [0,1].
// It combines the Herfindahl index over value shares with the number of
// distinct asset types held, normalized against the four known types.
// Empty portfolios and portfolios with zero total value score 0.
func DiversificationScore(portfolio entities.Portfolio) float64 {
	if len(portfolio.Holdings) == 0 {
		return 0.0
	}

	totalValue := portfolio.TotalValue()
	if !totalValue.IsPositive() {
		return 0.0
	}

	herfindahl := 0.0
	for _, h := range portfolio.Holdings {
		share := h.TotalValue.Div(totalValue).InexactFloat64()
		herfindahl += share * share
	}

	uniqueTypes := float64(len(portfolio.AssetTypes()))
	return clamp01((1 - herfindahl) * (uniqueTypes / knownAssetTypes))
}

// holdingShare returns the value share of one holding against the portfolio
// total, or 0 when the total is not positive.
func holdingShare(holding entities.Holding, totalValue decimal.Decimal) float64 {
	if !totalValue.IsPositive() {
		return 0
	}
	return holding.TotalValue.Div(totalValue).InexactFloat64()
}
