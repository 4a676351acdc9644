package advisory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// Sub-score weights. They must sum to 1.0 so the combined score stays a
// weighted average.
const (
	weightRiskMatch       = 0.30
	weightDiversification = 0.25
	weightExperience      = 0.15
	weightQuality         = 0.20
	weightGoals           = 0.10
)

// Thresholds above which a sub-score contributes a match factor.
const (
	matchFactorThreshold   = 0.7
	qualityFactorThreshold = 0.8
)

// accessibleMinimum is the minimum-investment cutoff below which an asset
// earns an accessibility bonus.
var accessibleMinimum = decimal.NewFromInt(1000)

// ScoreResult is the full scoring payload for one (asset, customer) pair.
type ScoreResult struct {
	Score          float64
	Reason         string
	ExpectedReturn float64
	RiskLevel      string
	MatchFactors   []string
}

// ScoreAsset combines the five weighted sub-scores for a single asset into
// one ranking score with its explanation. It is total over the data model:
// unknown asset types and missing fields fall back to documented defaults
// and never produce an error.
func ScoreAsset(asset entities.Asset, profile entities.InvestmentProfile, portfolio entities.Portfolio) ScoreResult {
	score := 0.0
	factors := make([]string, 0, 5)

	riskScore := matchRiskTolerance(asset, profile)
	score += clamp01(riskScore) * weightRiskMatch
	if riskScore > matchFactorThreshold {
		factors = append(factors, fmt.Sprintf("Matches your %s risk profile",
			strings.ToLower(statedTolerance(profile))))
	}

	divScore := diversificationBenefit(asset, portfolio)
	score += clamp01(divScore) * weightDiversification
	if divScore > matchFactorThreshold {
		factors = append(factors, "Improves portfolio diversification")
	}

	expScore := matchExperienceLevel(asset, profile)
	score += clamp01(expScore) * weightExperience
	if expScore > matchFactorThreshold {
		factors = append(factors, "Suitable for your experience level")
	}

	qualityScore := assessAssetQuality(asset)
	score += clamp01(qualityScore) * weightQuality
	if qualityScore > qualityFactorThreshold {
		factors = append(factors, "Strong historical performance")
	}

	goalsScore := matchInvestmentGoals(asset, profile)
	score += clamp01(goalsScore) * weightGoals
	if goalsScore > matchFactorThreshold {
		factors = append(factors, "Aligns with your investment goals")
	}

	return ScoreResult{
		Score:          clamp01(score),
		Reason:         recommendationReason(asset, factors),
		ExpectedReturn: ExpectedReturnForAsset(asset.AssetType),
		RiskLevel:      RiskLevelForAsset(asset.AssetType),
		MatchFactors:   factors,
	}
}

// statedTolerance returns the profile's risk tolerance, defaulting to
// MODERATE when absent.
func statedTolerance(profile entities.InvestmentProfile) string {
	if profile.RiskTolerance == "" {
		return entities.RiskModerate
	}
	return strings.ToUpper(profile.RiskTolerance)
}

// matchRiskTolerance scores the affinity between the customer's stated
// tolerance and the asset's risk class. Unknown tolerances score a neutral
// 0.5.
func matchRiskTolerance(asset entities.Asset, profile entities.InvestmentProfile) float64 {
	assetRisk := riskClassForAsset(asset.AssetType)

	affinity := map[string]map[string]float64{
		entities.RiskConservative: {
			entities.RiskConservative: 1.0,
			entities.RiskModerate:     0.6,
			entities.RiskAggressive:   0.3,
		},
		entities.RiskModerate: {
			entities.RiskConservative: 0.8,
			entities.RiskModerate:     1.0,
			entities.RiskAggressive:   0.7,
		},
		entities.RiskAggressive: {
			entities.RiskConservative: 0.5,
			entities.RiskModerate:     0.8,
			entities.RiskAggressive:   1.0,
		},
	}

	row, ok := affinity[statedTolerance(profile)]
	if !ok {
		return 0.5
	}
	return row[assetRisk]
}

// diversificationBenefit rewards assets that spread the portfolio across
// types. An empty portfolio gets a first-investment bonus; a type the
// customer does not hold yet is a perfect fit; otherwise the benefit decays
// with the share of same-type holdings, floored at 0.3.
func diversificationBenefit(asset entities.Asset, portfolio entities.Portfolio) float64 {
	if len(portfolio.Holdings) == 0 {
		return 0.9
	}

	assetType := strings.ToUpper(asset.AssetType)
	sameType := 0
	for _, h := range portfolio.Holdings {
		if strings.ToUpper(h.AssetType) == assetType {
			sameType++
		}
	}

	if sameType == 0 {
		return 1.0
	}

	concentration := float64(sameType) / float64(len(portfolio.Holdings))
	benefit := 1.0 - concentration
	if benefit < 0.3 {
		return 0.3
	}
	return benefit
}

// matchExperienceLevel compares the customer's experience rank with the
// asset's complexity rank: at or above complexity is a full match, one
// level short is workable, further short is a poor fit.
func matchExperienceLevel(asset entities.Asset, profile entities.InvestmentProfile) float64 {
	exp := experienceRank(profile.InvestmentExperience)
	complexity := experienceRank(complexityForAsset(asset.AssetType))

	switch {
	case exp >= complexity:
		return 1.0
	case exp == complexity-1:
		return 0.7
	default:
		return 0.4
	}
}

// assessAssetQuality scores the asset on its own attributes: active status,
// an accessible minimum investment, and a vetted partner behind it.
func assessAssetQuality(asset entities.Asset) float64 {
	score := 0.75
	if asset.Status == "ACTIVE" {
		score += 0.10
	}
	if asset.MinimumInvestment.LessThanOrEqual(accessibleMinimum) {
		score += 0.05
	}
	if asset.PartnerID != "" {
		score += 0.10
	}
	return clamp01(score)
}

// matchInvestmentGoals scores horizon and free-text goal alignment. The
// horizon checks are deliberately independent rather than exclusive
// branches; horizon is single-valued so at most one fires.
func matchInvestmentGoals(asset entities.Asset, profile entities.InvestmentProfile) float64 {
	goals := strings.ToLower(profile.InvestmentGoals)
	horizon := strings.ToUpper(profile.InvestmentHorizon)
	if horizon == "" {
		horizon = entities.HorizonMediumTerm
	}
	assetType := strings.ToUpper(asset.AssetType)

	score := 0.7

	if horizon == entities.HorizonLongTerm && (assetType == "STOCK" || assetType == "UITF") {
		score += 0.2
	}
	if horizon == entities.HorizonShortTerm && (assetType == "BOND" || assetType == "UITF") {
		score += 0.2
	}
	if strings.Contains(goals, "growth") && (assetType == "STOCK" || assetType == "CRYPTO") {
		score += 0.1
	}
	if (strings.Contains(goals, "income") || strings.Contains(goals, "dividend")) &&
		(assetType == "BOND" || assetType == "UITF") {
		score += 0.1
	}

	return clamp01(score)
}

// recommendationReason renders the human-readable explanation from the
// collected match factors.
func recommendationReason(asset entities.Asset, factors []string) string {
	name := asset.Name
	if name == "" {
		name = "This asset"
	}

	switch {
	case len(factors) >= 3:
		return fmt.Sprintf("%s is an excellent match for your portfolio. %s %s",
			name, factors[0], factors[1])
	case len(factors) >= 2:
		return fmt.Sprintf("%s is a good fit for your investment strategy. %s", name, factors[0])
	case len(factors) >= 1:
		return fmt.Sprintf("Consider %s to diversify your portfolio. %s", name, factors[0])
	default:
		assetType := strings.ToLower(asset.AssetType)
		if assetType == "" {
			assetType = "investment"
		}
		return fmt.Sprintf("%s is a solid %s option for your portfolio.", name, assetType)
	}
}
