package advisory

import (
	"sort"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// TrendingFromCatalog ranks ACTIVE catalog entries by the asset-quality
// heuristic. Platform-wide transaction feeds are not exposed to this
// service, so quality stands in as the deterministic popularity signal.
// Ties keep catalog order.
func TrendingFromCatalog(catalog []entities.Asset, limit int) []entities.TrendingAsset {
	if limit <= 0 {
		limit = 5
	}

	trending := make([]entities.TrendingAsset, 0, len(catalog))
	for _, asset := range catalog {
		if asset.Status != "ACTIVE" {
			continue
		}
		trending = append(trending, entities.TrendingAsset{
			AssetID:    asset.ID,
			Name:       asset.Name,
			Type:       asset.AssetType,
			TrendScore: assessAssetQuality(asset),
		})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].TrendScore > trending[j].TrendScore
	})

	if len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}
