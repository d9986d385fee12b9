package analytics

import (
	"sort"
	"strings"
	"time"

	"paisa/internal/models"
)

// merchantTransactionLimit caps how many recent transactions each merchant
// summary carries.
const merchantTransactionLimit = 10

// merchantKeywords maps display names to the substrings that identify them
// in merchant or description fields.
var merchantKeywords = []struct {
	Name     string
	Keywords []string
}{
	{"Zomato", []string{"zomato"}},
	{"Swiggy", []string{"swiggy"}},
	{"Amazon", []string{"amazon", "amzn"}},
	{"Flipkart", []string{"flipkart"}},
	{"Uber", []string{"uber"}},
	{"Ola", []string{"ola"}},
	{"Netflix", []string{"netflix"}},
	{"Prime Video", []string{"prime", "amazon video"}},
	{"Spotify", []string{"spotify"}},
	{"Starbucks", []string{"starbucks"}},
	{"McDonald's", []string{"mcdonalds", "mcd", "mcdonald"}},
	{"BigBasket", []string{"bigbasket"}},
	{"Blinkit", []string{"blinkit", "grofers"}},
}

// fallbackMerchant buckets expenses matching no known merchant.
const fallbackMerchant = "Others"

// MerchantTransaction is one expense attributed to a merchant.
type MerchantTransaction struct {
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// MerchantSummary aggregates spending at a single merchant.
type MerchantSummary struct {
	Merchant           string                `json:"merchant"`
	TotalSpent         float64               `json:"total_spent"`
	TransactionCount   int                   `json:"transaction_count"`
	AverageTransaction float64               `json:"average_transaction"`
	Transactions       []MerchantTransaction `json:"transactions"`
}

// MerchantInsights groups expenses by recognized merchant keywords and
// returns summaries sorted by total spent, highest first. Each summary
// keeps only the most recent transactions.
func MerchantInsights(expenses []models.Expense) []MerchantSummary {
	grouped := make(map[string]*MerchantSummary)
	order := []string{}

	for _, e := range expenses {
		name := matchMerchant(e)
		summary, ok := grouped[name]
		if !ok {
			summary = &MerchantSummary{Merchant: name}
			grouped[name] = summary
			order = append(order, name)
		}
		summary.TotalSpent += e.Amount
		summary.TransactionCount++
		summary.Transactions = append(summary.Transactions, MerchantTransaction{
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
		})
	}

	result := make([]MerchantSummary, 0, len(order))
	for _, name := range order {
		summary := grouped[name]
		if summary.TransactionCount > 0 {
			summary.AverageTransaction = summary.TotalSpent / float64(summary.TransactionCount)
		}
		if len(summary.Transactions) > merchantTransactionLimit {
			summary.Transactions = summary.Transactions[len(summary.Transactions)-merchantTransactionLimit:]
		}
		result = append(result, *summary)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpent > result[j].TotalSpent
	})
	return result
}

func matchMerchant(e models.Expense) string {
	text := strings.ToLower(e.Merchant + " " + e.Description)
	for _, entry := range merchantKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				return entry.Name
			}
		}
	}
	return fallbackMerchant
}
