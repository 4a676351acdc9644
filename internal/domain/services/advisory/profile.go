package advisory

import (
	"strings"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// lowDiversificationCutoff is the score below which a diversification
// suggestion is added to the profile analysis.
const lowDiversificationCutoff = 0.5

// AnalyzeProfile aggregates the observed risk profile, investment style,
// diversification score and text recommendations into one summary. The four
// recommendation checks are independent and may all fire.
func AnalyzeProfile(profile entities.InvestmentProfile, portfolio entities.Portfolio, transactions []entities.Transaction) entities.ProfileAnalysis {
	diversification := DiversificationScore(portfolio)

	return entities.ProfileAnalysis{
		RiskProfile:          ObservedRiskProfile(profile, portfolio),
		InvestmentStyle:      InvestmentStyle(transactions),
		DiversificationScore: diversification,
		Recommendations:      profileRecommendations(profile, portfolio, diversification),
	}
}

func profileRecommendations(profile entities.InvestmentProfile, portfolio entities.Portfolio, diversification float64) []string {
	recommendations := []string{}

	if diversification < lowDiversificationCutoff {
		recommendations = append(recommendations,
			"Consider diversifying into different asset types to reduce risk")
	}

	if statedTolerance(profile) == entities.RiskConservative && holdsHighRiskAssets(portfolio) {
		recommendations = append(recommendations,
			"Your portfolio has high-risk assets that may not match your conservative profile")
	}

	if strings.ToUpper(profile.InvestmentExperience) == entities.ExperienceBeginner {
		recommendations = append(recommendations,
			"Start with UITFs or bonds to build confidence before moving to stocks")
	}

	if strings.Contains(strings.ToLower(profile.InvestmentGoals), "retirement") {
		recommendations = append(recommendations,
			"Consider long-term assets like equity funds for retirement planning")
	}

	return recommendations
}

func holdsHighRiskAssets(portfolio entities.Portfolio) bool {
	for _, h := range portfolio.Holdings {
		switch strings.ToUpper(h.AssetType) {
		case "STOCK", "CRYPTO":
			return true
		}
	}
	return false
}
