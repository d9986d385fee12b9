package analytics

import (
	"fmt"
	"strings"

	"paisa/internal/models"
)

// Recommendation is one actionable lifestyle suggestion.
type Recommendation struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	PotentialSavings float64 `json:"potential_savings"`
	Category         string  `json:"category"`
	Priority         string  `json:"priority"`
}

var foodDeliveryKeywords = []string{"zomato", "swiggy", "food", "delivery"}

// Thresholds for recommendation rules.
const (
	foodDeliveryOrderThreshold = 4
	subscriptionCostThreshold  = 1000
	transportCountThreshold    = 10
	transportCostThreshold     = 3000
)

// Recommendations derives lifestyle suggestions from spending patterns:
// frequent food delivery, heavy subscription cost, and high transport spend.
// Returns an empty slice when no rule matches.
func Recommendations(expenses []models.Expense, subscriptions []models.Subscription) []Recommendation {
	recs := []Recommendation{}

	deliveryCount := 0
	var deliveryTotal float64
	transportCount := 0
	var transportTotal float64

	for _, e := range expenses {
		text := strings.ToLower(e.Merchant + " " + e.Description)
		for _, kw := range foodDeliveryKeywords {
			if strings.Contains(text, kw) {
				deliveryCount++
				deliveryTotal += e.Amount
				break
			}
		}
		if e.Category == "Transport" {
			transportCount++
			transportTotal += e.Amount
		}
	}

	if deliveryCount > foodDeliveryOrderThreshold {
		recs = append(recs, Recommendation{
			Title:            "Reduce Food Delivery",
			Description:      fmt.Sprintf("You've ordered food %d times. Cooking at home just once a week could save you!", deliveryCount),
			PotentialSavings: round2(deliveryTotal * 0.5),
			Category:         "Food",
			Priority:         "high",
		})
	}

	if subCost := MonthlySubscriptionCost(subscriptions); subCost > subscriptionCostThreshold {
		recs = append(recs, Recommendation{
			Title:            "Review Subscriptions",
			Description:      fmt.Sprintf("You're spending %.2f/month on subscriptions. Cancel unused ones!", subCost),
			PotentialSavings: round2(subCost * 0.3),
			Category:         "Subscriptions",
			Priority:         "medium",
		})
	}

	if transportCount > transportCountThreshold && transportTotal > transportCostThreshold {
		recs = append(recs, Recommendation{
			Title:            "Consider Public Transport",
			Description:      fmt.Sprintf("Spending %.2f/month on transport. Public transport could save you money!", transportTotal),
			PotentialSavings: round2(transportTotal * 0.4),
			Category:         "Transport",
			Priority:         "medium",
		})
	}

	return recs
}
