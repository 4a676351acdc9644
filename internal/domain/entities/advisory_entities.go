package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Risk tolerance levels as stated by the customer.
const (
	RiskConservative = "CONSERVATIVE"
	RiskModerate     = "MODERATE"
	RiskAggressive   = "AGGRESSIVE"
)

// Investment experience levels.
const (
	ExperienceBeginner     = "BEGINNER"
	ExperienceIntermediate = "INTERMEDIATE"
	ExperienceAdvanced     = "ADVANCED"
	ExperienceExpert       = "EXPERT"
)

// Investment horizons.
const (
	HorizonShortTerm  = "SHORT_TERM"
	HorizonMediumTerm = "MEDIUM_TERM"
	HorizonLongTerm   = "LONG_TERM"
)

// Investment styles derived from transaction activity.
const (
	StyleNewInvestor     = "NEW_INVESTOR"
	StyleActiveTrader    = "ACTIVE_TRADER"
	StyleRegularInvestor = "REGULAR_INVESTOR"
	StyleLongTermHolder  = "LONG_TERM_HOLDER"
)

// InvestmentProfile is the customer's self-declared investment profile.
// Fields the marketplace did not supply carry the documented defaults, so
// the advisory core can treat every profile as fully populated.
type InvestmentProfile struct {
	RiskTolerance        string  `json:"riskTolerance"`
	InvestmentExperience string  `json:"investmentExperience"`
	InvestmentGoals      string  `json:"investmentGoals"`
	InvestmentHorizon    string  `json:"investmentHorizon"`
	ProfileCompletion    float64 `json:"profileCompletion"`
	KYCStatus            string  `json:"kycStatus"`
}

// DefaultInvestmentProfile returns the profile assumed when upstream data
// is missing or the fetch failed.
func DefaultInvestmentProfile() InvestmentProfile {
	return InvestmentProfile{
		RiskTolerance:        RiskModerate,
		InvestmentExperience: ExperienceBeginner,
		InvestmentGoals:      "",
		InvestmentHorizon:    HorizonMediumTerm,
		ProfileCompletion:    0,
		KYCStatus:            "PENDING",
	}
}

// Holding is a single asset position in a customer portfolio.
type Holding struct {
	AssetName  string          `json:"assetName"`
	AssetType  string          `json:"assetType"`
	TotalValue decimal.Decimal `json:"totalValue"`
	GainLoss   decimal.Decimal `json:"gainLoss"`
}

// Portfolio is the customer's full set of holdings. A nil or empty Holdings
// slice means the customer has not invested yet, which is a distinct state
// from holdings with zero value.
type Portfolio struct {
	Holdings []Holding `json:"holdings"`
}

// TotalValue sums the value of all holdings.
func (p Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		total = total.Add(h.TotalValue)
	}
	return total
}

// TotalGainLoss sums the gain/loss of all holdings.
func (p Portfolio) TotalGainLoss() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		total = total.Add(h.GainLoss)
	}
	return total
}

// AssetTypes returns the distinct asset types held, uppercased.
func (p Portfolio) AssetTypes() map[string]struct{} {
	types := make(map[string]struct{}, len(p.Holdings))
	for _, h := range p.Holdings {
		types[strings.ToUpper(h.AssetType)] = struct{}{}
	}
	return types
}

// Transaction is a single marketplace transaction. Only type and status
// matter to the advisory core; ordering is irrelevant.
type Transaction struct {
	TransactionType string `json:"transactionType"`
	Status          string `json:"status"`
}

// Asset is a catalog entry from the marketplace.
type Asset struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AssetType         string          `json:"assetType"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment"`
	Status            string          `json:"status"`
	PartnerID         string          `json:"partnerId,omitempty"`
}

// Recommendation is one ranked catalog entry with its scoring explanation.
type Recommendation struct {
	AssetID        string   `json:"asset_id"`
	AssetName      string   `json:"asset_name"`
	AssetType      string   `json:"asset_type"`
	Score          float64  `json:"score"`
	Reason         string   `json:"reason"`
	ExpectedReturn *float64 `json:"expected_return"`
	RiskLevel      string   `json:"risk_level"`
	MatchFactors   []string `json:"match_factors"`
}

// Insight is an observation about the customer's portfolio or activity.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Sentiment   string `json:"sentiment"`
	Icon        string `json:"icon,omitempty"`
}

// Action is a suggested next step for the customer.
type Action struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	ActionURL   string `json:"actionUrl,omitempty"`
}

// Warning flags a risk condition in the customer's portfolio.
type Warning struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Icon        string `json:"icon,omitempty"`
}

// InsightReport bundles the three independent rule-pass outputs.
type InsightReport struct {
	Insights []Insight `json:"insights"`
	Actions  []Action  `json:"actions"`
	Warnings []Warning `json:"warnings"`
}

// ProfileAnalysis summarizes observed behavior against the stated profile.
type ProfileAnalysis struct {
	CustomerID           string   `json:"customer_id"`
	RiskProfile          string   `json:"risk_profile"`
	InvestmentStyle      string   `json:"investment_style"`
	DiversificationScore float64  `json:"diversification_score"`
	Recommendations      []string `json:"recommendations"`
}

// TrendingAsset is an asset popular in recent marketplace activity.
type TrendingAsset struct {
	AssetID           string  `json:"asset_id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	TrendScore        float64 `json:"trend_score"`
	RecentInvestments int     `json:"recent_investments,omitempty"`
}

// MarketSentiment is a coarse market-mood snapshot.
type MarketSentiment struct {
	OverallSentiment string    `json:"overall_sentiment"`
	Confidence       float64   `json:"confidence"`
	TrendingSectors  []string  `json:"trending_sectors"`
	MarketSummary    string    `json:"market_summary"`
	LastUpdated      time.Time `json:"last_updated"`
}

// AdvisorErrorResponse is the wire shape for handler errors.
type AdvisorErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
