package advisory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// profileCompletionTarget is the completion percentage below which the
// customer is nudged to finish their profile.
const profileCompletionTarget = 80

// GenerateInsights runs the three independent rule passes — portfolio,
// transactions, profile completeness — and bundles their outputs. The
// passes never short-circuit each other, so every applicable record fires.
func GenerateInsights(profile entities.InvestmentProfile, portfolio entities.Portfolio, transactions []entities.Transaction) entities.InsightReport {
	report := entities.InsightReport{
		Insights: []entities.Insight{},
		Actions:  []entities.Action{},
		Warnings: []entities.Warning{},
	}

	analyzePortfolio(&report, portfolio)
	analyzeTransactions(&report, transactions)
	analyzeProfileCompleteness(&report, profile)

	return report
}

// analyzePortfolio adds holdings-derived records. An empty portfolio only
// produces the start-investing action; every other rule assumes holdings.
func analyzePortfolio(report *entities.InsightReport, portfolio entities.Portfolio) {
	if len(portfolio.Holdings) == 0 {
		report.Actions = append(report.Actions, entities.Action{
			Type:        "START_INVESTING",
			Title:       "Start Your Investment Journey",
			Description: "You haven't made any investments yet. Browse our marketplace to get started!",
			Priority:    "HIGH",
			ActionURL:   "/marketplace",
		})
		return
	}

	totalValue := portfolio.TotalValue()
	totalGain := portfolio.TotalGainLoss()

	if totalGain.IsPositive() {
		costBasis := totalValue.Sub(totalGain)
		if costBasis.IsPositive() {
			gainPct := totalGain.Div(costBasis).Mul(decimal.NewFromInt(100))
			report.Insights = append(report.Insights, entities.Insight{
				Type:  "PERFORMANCE",
				Title: "Portfolio Growing Strong",
				Description: fmt.Sprintf("Your portfolio has gained %s (%s%%). Keep up the great work!",
					formatPeso(totalGain), gainPct.StringFixed(2)),
				Sentiment: "POSITIVE",
				Icon:      "trending_up",
			})
		}
	}

	if len(portfolio.AssetTypes()) < 2 {
		report.Warnings = append(report.Warnings, entities.Warning{
			Type:        "DIVERSIFICATION",
			Title:       "Limited Diversification",
			Description: "Your portfolio is concentrated in one asset type. Consider diversifying to reduce risk.",
			Severity:    "MEDIUM",
			Icon:        "warning",
		})
		report.Actions = append(report.Actions, entities.Action{
			Type:        "DIVERSIFY",
			Title:       "Diversify Your Portfolio",
			Description: "Explore different asset types to spread your risk",
			Priority:    "MEDIUM",
			ActionURL:   "/marketplace?filter=recommended",
		})
	}

	for _, holding := range portfolio.Holdings {
		share := holdingShare(holding, totalValue)
		if share > concentrationWarningShare {
			report.Warnings = append(report.Warnings, entities.Warning{
				Type:  "CONCENTRATION",
				Title: "High Concentration Risk",
				Description: fmt.Sprintf("%s makes up %.1f%% of your portfolio",
					holding.AssetName, share*100),
				Severity: "HIGH",
				Icon:     "warning",
			})
		}
	}

	if len(portfolio.Holdings) > 3 {
		report.Insights = append(report.Insights, entities.Insight{
			Type:        "REBALANCING",
			Title:       "Portfolio Rebalancing Due",
			Description: "It's been a while since your last portfolio review. Consider rebalancing.",
			Sentiment:   "NEUTRAL",
			Icon:        "info",
		})
		report.Actions = append(report.Actions, entities.Action{
			Type:        "REBALANCE",
			Title:       "Review Portfolio Balance",
			Description: "Check if your asset allocation still matches your goals",
			Priority:    "LOW",
			ActionURL:   "/portfolio",
		})
	}
}

// analyzeTransactions adds activity-derived records. The streak rule stacks
// with the active-investor rule on purpose.
func analyzeTransactions(report *entities.InsightReport, transactions []entities.Transaction) {
	if len(transactions) == 0 {
		return
	}

	investments := 0
	pending := 0
	for _, tx := range transactions {
		if tx.TransactionType == "INVESTMENT" {
			investments++
		}
		if tx.Status == "PENDING" {
			pending++
		}
	}

	if investments >= 5 {
		report.Insights = append(report.Insights, entities.Insight{
			Type:  "ACTIVITY",
			Title: "Active Investor",
			Description: fmt.Sprintf("You've made %d investments recently. You're building wealth consistently!",
				investments),
			Sentiment: "POSITIVE",
			Icon:      "star",
		})
	}

	if pending > 0 {
		report.Insights = append(report.Insights, entities.Insight{
			Type:        "PENDING",
			Title:       "Pending Transactions",
			Description: fmt.Sprintf("You have %d pending transactions. Check their status.", pending),
			Sentiment:   "NEUTRAL",
			Icon:        "pending",
		})
		report.Actions = append(report.Actions, entities.Action{
			Type:        "CHECK_PENDING",
			Title:       "Review Pending Transactions",
			Description: "Some transactions are waiting for processing",
			Priority:    "MEDIUM",
			ActionURL:   "/transactions?filter=pending",
		})
	}

	if investments >= 3 {
		report.Insights = append(report.Insights, entities.Insight{
			Type:        "STREAK",
			Title:       "Investment Streak Active",
			Description: "You're building a consistent investment habit. Keep it going!",
			Sentiment:   "POSITIVE",
			Icon:        "local_fire_department",
		})
	}
}

// analyzeProfileCompleteness adds onboarding nudges.
func analyzeProfileCompleteness(report *entities.InsightReport, profile entities.InvestmentProfile) {
	if profile.ProfileCompletion < profileCompletionTarget {
		report.Actions = append(report.Actions, entities.Action{
			Type:  "COMPLETE_PROFILE",
			Title: "Complete Your Profile",
			Description: fmt.Sprintf("Your profile is %.0f%% complete. Complete it for better recommendations!",
				profile.ProfileCompletion),
			Priority:  "HIGH",
			ActionURL: "/profile",
		})
	}

	if profile.KYCStatus == "PENDING" {
		report.Actions = append(report.Actions, entities.Action{
			Type:        "COMPLETE_KYC",
			Title:       "Complete KYC Verification",
			Description: "Verify your identity to unlock all features",
			Priority:    "HIGH",
			ActionURL:   "/profile?tab=4",
		})
	}
}

// formatPeso renders a peso amount with thousands separators and two
// decimals, e.g. ₱12,345.67.
func formatPeso(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	whole := parts[0]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s₱%s.%s", sign, grouped.String(), parts[1])
}
