package advisory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

func profileWith(risk, experience, goals, horizon string) entities.InvestmentProfile {
	return entities.InvestmentProfile{
		RiskTolerance:        risk,
		InvestmentExperience: experience,
		InvestmentGoals:      goals,
		InvestmentHorizon:    horizon,
	}
}

func TestMatchRiskTolerance(t *testing.T) {
	tests := []struct {
		name      string
		assetType string
		tolerance string
		expected  float64
	}{
		{"moderate customer, UITF", "UITF", entities.RiskModerate, 1.0},
		{"conservative customer, bond", "BOND", entities.RiskConservative, 1.0},
		{"conservative customer, crypto", "CRYPTO", entities.RiskConservative, 0.3},
		{"aggressive customer, stock", "STOCK", entities.RiskAggressive, 1.0},
		{"aggressive customer, bond", "BOND", entities.RiskAggressive, 0.5},
		{"moderate customer, crypto", "CRYPTO", entities.RiskModerate, 0.7},
		{"unknown tolerance is neutral", "STOCK", "YOLO", 0.5},
		{"empty tolerance defaults to moderate", "UITF", "", 1.0},
		{"unknown asset type treated as moderate risk", "NFT", entities.RiskModerate, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := entities.Asset{AssetType: tt.assetType}
			profile := profileWith(tt.tolerance, "", "", "")
			assert.InDelta(t, tt.expected, matchRiskTolerance(asset, profile), 1e-9)
		})
	}
}

func TestDiversificationBenefit(t *testing.T) {
	uitf := entities.Asset{AssetType: "UITF"}

	t.Run("empty portfolio gets first-investment bonus", func(t *testing.T) {
		assert.InDelta(t, 0.9, diversificationBenefit(uitf, entities.Portfolio{}), 1e-9)
	})

	t.Run("new asset type is a perfect fit", func(t *testing.T) {
		portfolio := entities.Portfolio{Holdings: []entities.Holding{
			{AssetType: "STOCK"},
			{AssetType: "BOND"},
		}}
		assert.InDelta(t, 1.0, diversificationBenefit(uitf, portfolio), 1e-9)
	})

	t.Run("benefit decays with concentration", func(t *testing.T) {
		portfolio := entities.Portfolio{Holdings: []entities.Holding{
			{AssetType: "UITF"},
			{AssetType: "UITF"},
			{AssetType: "UITF"},
			{AssetType: "STOCK"},
		}}
		assert.InDelta(t, 0.3, diversificationBenefit(uitf, portfolio), 1e-9)
	})

	t.Run("type comparison is case-insensitive", func(t *testing.T) {
		portfolio := entities.Portfolio{Holdings: []entities.Holding{
			{AssetType: "uitf"},
			{AssetType: "STOCK"},
		}}
		assert.InDelta(t, 0.5, diversificationBenefit(uitf, portfolio), 1e-9)
	})
}

func TestMatchExperienceLevel(t *testing.T) {
	tests := []struct {
		name       string
		assetType  string
		experience string
		expected   float64
	}{
		{"beginner can hold UITF", "UITF", entities.ExperienceBeginner, 1.0},
		{"beginner one level short of stock", "STOCK", entities.ExperienceBeginner, 0.7},
		{"beginner far short of crypto", "CRYPTO", entities.ExperienceBeginner, 0.4},
		{"expert matches crypto", "CRYPTO", entities.ExperienceExpert, 1.0},
		{"intermediate one short of crypto", "CRYPTO", entities.ExperienceIntermediate, 0.7},
		{"unknown experience ranks intermediate", "STOCK", "WIZARD", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := entities.Asset{AssetType: tt.assetType}
			profile := profileWith("", tt.experience, "", "")
			assert.InDelta(t, tt.expected, matchExperienceLevel(asset, profile), 1e-9)
		})
	}
}

func TestAssessAssetQuality(t *testing.T) {
	t.Run("all bonuses clamp to one", func(t *testing.T) {
		asset := entities.Asset{
			AssetType:         "UITF",
			Status:            "ACTIVE",
			MinimumInvestment: decimal.NewFromInt(500),
			PartnerID:         "partner-1",
		}
		assert.InDelta(t, 1.0, assessAssetQuality(asset), 1e-9)
	})

	t.Run("bare asset scores the base", func(t *testing.T) {
		asset := entities.Asset{
			AssetType:         "STOCK",
			Status:            "PENDING",
			MinimumInvestment: decimal.NewFromInt(5000),
		}
		assert.InDelta(t, 0.75, assessAssetQuality(asset), 1e-9)
	})

	t.Run("minimum at the cutoff still earns the bonus", func(t *testing.T) {
		asset := entities.Asset{
			AssetType:         "BOND",
			MinimumInvestment: decimal.NewFromInt(1000),
		}
		assert.InDelta(t, 0.80, assessAssetQuality(asset), 1e-9)
	})
}

func TestMatchInvestmentGoals(t *testing.T) {
	tests := []struct {
		name      string
		assetType string
		goals     string
		horizon   string
		expected  float64
	}{
		{"no signals score the base", "CRYPTO", "", entities.HorizonMediumTerm, 0.7},
		{"long horizon favors stocks", "STOCK", "", entities.HorizonLongTerm, 0.9},
		{"short horizon favors bonds", "BOND", "", entities.HorizonShortTerm, 0.9},
		{"growth goal favors crypto", "CRYPTO", "aggressive growth", entities.HorizonMediumTerm, 0.8},
		{"income goal favors bonds", "BOND", "dividend income", entities.HorizonMediumTerm, 0.8},
		{"empty horizon defaults to medium term", "STOCK", "", "", 0.7},
		{"stacked bonuses clamp to one", "UITF", "steady income", entities.HorizonShortTerm, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := entities.Asset{AssetType: tt.assetType}
			profile := profileWith("", "", tt.goals, tt.horizon)
			assert.InDelta(t, tt.expected, matchInvestmentGoals(asset, profile), 1e-9)
		})
	}
}

func TestScoreAsset(t *testing.T) {
	t.Run("strong match collects every factor", func(t *testing.T) {
		asset := entities.Asset{
			ID:                "a1",
			Name:              "BPI Balanced Fund",
			AssetType:         "UITF",
			Status:            "ACTIVE",
			MinimumInvestment: decimal.NewFromInt(500),
			PartnerID:         "bpi",
		}
		profile := profileWith(entities.RiskModerate, entities.ExperienceBeginner,
			"steady income", entities.HorizonShortTerm)

		result := ScoreAsset(asset, profile, entities.Portfolio{})

		assert.InDelta(t, 0.975, result.Score, 1e-9)
		require.Len(t, result.MatchFactors, 5)
		assert.Equal(t, "Matches your moderate risk profile", result.MatchFactors[0])
		assert.Equal(t, "Improves portfolio diversification", result.MatchFactors[1])
		assert.Equal(t, "Suitable for your experience level", result.MatchFactors[2])
		assert.Equal(t, "Strong historical performance", result.MatchFactors[3])
		assert.Equal(t, "Aligns with your investment goals", result.MatchFactors[4])
		assert.Equal(t, "BPI Balanced Fund is an excellent match for your portfolio. "+
			"Matches your moderate risk profile Improves portfolio diversification", result.Reason)
		assert.Equal(t, "MEDIUM", result.RiskLevel)
		assert.InDelta(t, 8.0, result.ExpectedReturn, 1e-9)
	})

	t.Run("score stays within bounds across profiles", func(t *testing.T) {
		assets := []entities.Asset{
			{Name: "A", AssetType: "BOND", Status: "ACTIVE", MinimumInvestment: decimal.NewFromInt(100), PartnerID: "p"},
			{Name: "B", AssetType: "CRYPTO", Status: "INACTIVE", MinimumInvestment: decimal.NewFromInt(100000)},
			{Name: "C", AssetType: "NFT"},
		}
		profiles := []entities.InvestmentProfile{
			profileWith(entities.RiskConservative, entities.ExperienceBeginner, "", entities.HorizonShortTerm),
			profileWith(entities.RiskAggressive, entities.ExperienceExpert, "growth income", entities.HorizonLongTerm),
			profileWith("", "", "", ""),
		}
		portfolios := []entities.Portfolio{
			{},
			{Holdings: []entities.Holding{{AssetType: "CRYPTO"}, {AssetType: "CRYPTO"}}},
		}

		for _, asset := range assets {
			for _, profile := range profiles {
				for _, portfolio := range portfolios {
					result := ScoreAsset(asset, profile, portfolio)
					assert.GreaterOrEqual(t, result.Score, 0.0)
					assert.LessOrEqual(t, result.Score, 1.0)
				}
			}
		}
	})

	t.Run("all bonuses stay capped at one", func(t *testing.T) {
		asset := entities.Asset{
			Name:              "Growth Fund",
			AssetType:         "UITF",
			Status:            "ACTIVE",
			MinimumInvestment: decimal.NewFromInt(100),
			PartnerID:         "p1",
		}
		profile := profileWith(entities.RiskModerate, entities.ExperienceExpert,
			"growth", entities.HorizonLongTerm)

		result := ScoreAsset(asset, profile, entities.Portfolio{})
		assert.LessOrEqual(t, result.Score, 1.0)
	})

	t.Run("scoring is deterministic", func(t *testing.T) {
		asset := entities.Asset{Name: "Fund", AssetType: "STOCK", Status: "ACTIVE",
			MinimumInvestment: decimal.NewFromInt(500)}
		profile := profileWith(entities.RiskAggressive, entities.ExperienceAdvanced, "growth", "")
		portfolio := entities.Portfolio{Holdings: []entities.Holding{{AssetType: "UITF"}}}

		assert.Equal(t, ScoreAsset(asset, profile, portfolio), ScoreAsset(asset, profile, portfolio))
	})

	t.Run("weak match still yields a reason", func(t *testing.T) {
		asset := entities.Asset{
			Name:              "Meme Coin Tracker",
			AssetType:         "CRYPTO",
			Status:            "INACTIVE",
			MinimumInvestment: decimal.NewFromInt(50000),
		}
		profile := profileWith(entities.RiskConservative, entities.ExperienceBeginner,
			"", entities.HorizonShortTerm)
		portfolio := entities.Portfolio{Holdings: []entities.Holding{
			{AssetType: "CRYPTO"}, {AssetType: "CRYPTO"}, {AssetType: "CRYPTO"},
		}}

		result := ScoreAsset(asset, profile, portfolio)

		assert.Empty(t, result.MatchFactors)
		assert.Equal(t, "Meme Coin Tracker is a solid crypto option for your portfolio.", result.Reason)
	})
}

func TestRecommendationReason(t *testing.T) {
	asset := entities.Asset{Name: "Fund X", AssetType: "UITF"}

	t.Run("two factors", func(t *testing.T) {
		reason := recommendationReason(asset, []string{"First", "Second"})
		assert.Equal(t, "Fund X is a good fit for your investment strategy. First", reason)
	})

	t.Run("single factor", func(t *testing.T) {
		reason := recommendationReason(asset, []string{"First"})
		assert.Equal(t, "Consider Fund X to diversify your portfolio. First", reason)
	})

	t.Run("nameless asset gets a placeholder", func(t *testing.T) {
		reason := recommendationReason(entities.Asset{}, nil)
		assert.Equal(t, "This asset is a solid investment option for your portfolio.", reason)
	})
}
