package advisory

import (
	"sort"
	"strings"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// Defaults applied when the caller leaves ranking options unset.
const (
	DefaultMinScore = 0.6
	DefaultLimit    = 10
)

// RankOptions controls catalog ranking.
type RankOptions struct {
	// AssetTypes restricts the catalog to the given types when non-empty.
	AssetTypes []string
	// MinScore discards recommendations scoring below it. Zero means
	// DefaultMinScore.
	MinScore float64
	// Limit truncates the result. Zero or negative means DefaultLimit.
	Limit int
}

// Rank scores every catalog entry for the customer, drops entries below the
// minimum score, and returns the top entries sorted by descending score.
// Ties keep catalog order. An empty result is a valid outcome, not an error.
func Rank(catalog []entities.Asset, profile entities.InvestmentProfile, portfolio entities.Portfolio, opts RankOptions) []entities.Recommendation {
	minScore := opts.MinScore
	if minScore == 0 {
		minScore = DefaultMinScore
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var typeFilter map[string]struct{}
	if len(opts.AssetTypes) > 0 {
		typeFilter = make(map[string]struct{}, len(opts.AssetTypes))
		for _, t := range opts.AssetTypes {
			typeFilter[strings.ToUpper(t)] = struct{}{}
		}
	}

	recommendations := make([]entities.Recommendation, 0, len(catalog))
	for _, asset := range catalog {
		if typeFilter != nil {
			if _, ok := typeFilter[strings.ToUpper(asset.AssetType)]; !ok {
				continue
			}
		}

		result := ScoreAsset(asset, profile, portfolio)
		if result.Score < minScore {
			continue
		}

		expectedReturn := result.ExpectedReturn
		recommendations = append(recommendations, entities.Recommendation{
			AssetID:        asset.ID,
			AssetName:      asset.Name,
			AssetType:      asset.AssetType,
			Score:          result.Score,
			Reason:         result.Reason,
			ExpectedReturn: &expectedReturn,
			RiskLevel:      result.RiskLevel,
			MatchFactors:   result.MatchFactors,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}
