package analytics

import (
	"fmt"

	"paisa/internal/models"
)

// DuplicateGroup is one expense plus the records that look like copies of it.
type DuplicateGroup struct {
	Original   models.Expense   `json:"original"`
	Duplicates []models.Expense `json:"duplicates"`
}

// FindDuplicates groups expenses that share amount, category and calendar
// day. The earliest record in input order is treated as the original.
func FindDuplicates(expenses []models.Expense) []DuplicateGroup {
	groups := []DuplicateGroup{}
	byKey := make(map[string][]int)
	order := []string{}

	for i, e := range expenses {
		key := fmt.Sprintf("%.2f|%s|%s", e.Amount, e.Category, e.Date.Format("2006-01-02"))
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], i)
	}

	for _, key := range order {
		indexes := byKey[key]
		if len(indexes) < 2 {
			continue
		}
		group := DuplicateGroup{Original: expenses[indexes[0]]}
		for _, i := range indexes[1:] {
			group.Duplicates = append(group.Duplicates, expenses[i])
		}
		groups = append(groups, group)
	}

	return groups
}
