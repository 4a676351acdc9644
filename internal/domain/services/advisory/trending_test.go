package advisory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

func TestTrendingFromCatalog(t *testing.T) {
	catalog := []entities.Asset{
		{ID: "plain", Name: "Plain Fund", AssetType: "UITF", Status: "ACTIVE",
			MinimumInvestment: decimal.NewFromInt(10000)},
		{ID: "inactive", Name: "Closed Fund", AssetType: "UITF", Status: "INACTIVE",
			MinimumInvestment: decimal.NewFromInt(500), PartnerID: "p"},
		{ID: "premium", Name: "Premium Fund", AssetType: "STOCK", Status: "ACTIVE",
			MinimumInvestment: decimal.NewFromInt(500), PartnerID: "p"},
	}

	t.Run("ranks active assets by quality", func(t *testing.T) {
		trending := TrendingFromCatalog(catalog, 5)

		require.Len(t, trending, 2)
		assert.Equal(t, "premium", trending[0].AssetID)
		assert.Equal(t, "plain", trending[1].AssetID)
		assert.Greater(t, trending[0].TrendScore, trending[1].TrendScore)
	})

	t.Run("limit truncates", func(t *testing.T) {
		trending := TrendingFromCatalog(catalog, 1)
		require.Len(t, trending, 1)
		assert.Equal(t, "premium", trending[0].AssetID)
	})

	t.Run("non-positive limit uses the default", func(t *testing.T) {
		trending := TrendingFromCatalog(catalog, 0)
		assert.Len(t, trending, 2)
	})

	t.Run("empty catalog yields an empty list", func(t *testing.T) {
		assert.Empty(t, TrendingFromCatalog(nil, 5))
	})
}
