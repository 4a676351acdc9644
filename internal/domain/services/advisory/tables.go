// Package advisory implements the rule-based recommendation engine: asset
// scoring, portfolio diversification analysis, behavioral insight rules and
// profile classification. Everything in this package is pure computation
// over already-fetched records; data access lives in the marketplace
// adapter and the orchestrating service.
package advisory

import "strings"

// Reference basis of known asset types, used to normalize the
// diversification score.
const knownAssetTypes = 4.0

// riskClassForAsset maps an asset type to the risk class it is treated as
// when matched against a customer's stated tolerance. Unknown types degrade
// to MODERATE rather than failing.
func riskClassForAsset(assetType string) string {
	switch strings.ToUpper(assetType) {
	case "BOND":
		return "CONSERVATIVE"
	case "UITF":
		return "MODERATE"
	case "STOCK", "CRYPTO":
		return "AGGRESSIVE"
	default:
		return "MODERATE"
	}
}

// complexityForAsset maps an asset type to the experience level it demands.
func complexityForAsset(assetType string) string {
	switch strings.ToUpper(assetType) {
	case "UITF", "BOND":
		return "BEGINNER"
	case "STOCK":
		return "INTERMEDIATE"
	case "CRYPTO":
		return "ADVANCED"
	default:
		return "INTERMEDIATE"
	}
}

// RiskLevelForAsset returns the customer-facing risk label for an asset type.
func RiskLevelForAsset(assetType string) string {
	switch strings.ToUpper(assetType) {
	case "BOND":
		return "LOW"
	case "UITF":
		return "MEDIUM"
	case "STOCK":
		return "HIGH"
	case "CRYPTO":
		return "VERY_HIGH"
	default:
		return "MEDIUM"
	}
}

// ExpectedReturnForAsset returns the simplified historical average annual
// return estimate, in percent, for an asset type.
func ExpectedReturnForAsset(assetType string) float64 {
	switch strings.ToUpper(assetType) {
	case "BOND":
		return 4.0
	case "UITF":
		return 8.0
	case "STOCK":
		return 12.0
	case "CRYPTO":
		return 15.0
	default:
		return 7.0
	}
}

// experienceRank orders experience levels so they can be compared against
// asset complexity. Unknown levels rank as INTERMEDIATE.
func experienceRank(level string) int {
	switch strings.ToUpper(level) {
	case "BEGINNER":
		return 1
	case "INTERMEDIATE":
		return 2
	case "ADVANCED":
		return 3
	case "EXPERT":
		return 4
	default:
		return 2
	}
}

// clamp01 bounds a score to the [0,1] range every weighted component must
// stay within.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
