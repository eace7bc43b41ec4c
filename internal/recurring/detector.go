// Package recurring detects repeated charges in the expense history. The rule
// is strictly frequency-based: the same (description, category) pair seen at
// least twice inside the window counts as recurring, anything seen once does
// not, however subscription-like it reads.
package recurring

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/money"
	"github.com/fintrackhq/fintrack/internal/transaction"
)

// Charge is one detected recurring expense.
type Charge struct {
	Description      string
	CategoryID       uuid.UUID
	Category         string
	Occurrences      int
	EstimatedMonthly decimal.Decimal
	EstimatedYearly  decimal.Decimal
}

// Summary aggregates the detected charges.
type Summary struct {
	TotalRecurringMonthly decimal.Decimal
	TotalRecurringYearly  decimal.Decimal
	SubscriptionCount     int
}

// Result is the full detection output, charges sorted by estimated monthly
// cost, most expensive first.
type Result struct {
	Subscriptions []Charge
	Summary       Summary
}

var twelve = decimal.NewFromInt(12)

// Detect groups the given expense transactions by (normalized description,
// category) and reports every group with two or more occurrences. The caller
// supplies the trailing window; Detect itself does not filter by date.
func Detect(expenses []*transaction.Transaction) Result {
	type key struct {
		description string
		categoryID  uuid.UUID
	}

	type group struct {
		charge Charge
		total  decimal.Decimal
	}

	groups := make(map[key]*group)

	for _, tx := range expenses {
		desc := normalize(tx.Description)
		if desc == "" {
			desc = normalize(tx.CategoryName)
		}

		k := key{description: desc, categoryID: tx.CategoryID}

		g, ok := groups[k]
		if !ok {
			g = &group{
				charge: Charge{
					Description: desc,
					CategoryID:  tx.CategoryID,
					Category:    tx.CategoryName,
				},
				total: decimal.Zero,
			}
			groups[k] = g
		}

		g.charge.Occurrences++
		g.total = g.total.Add(tx.Amount)
	}

	result := Result{
		Summary: Summary{
			TotalRecurringMonthly: decimal.Zero,
			TotalRecurringYearly:  decimal.Zero,
		},
	}

	for _, g := range groups {
		if g.charge.Occurrences < 2 {
			continue
		}

		monthly := money.Round2(g.total.Div(decimal.NewFromInt(int64(g.charge.Occurrences))))
		g.charge.EstimatedMonthly = monthly
		g.charge.EstimatedYearly = money.Round2(monthly.Mul(twelve))

		result.Subscriptions = append(result.Subscriptions, g.charge)
		result.Summary.TotalRecurringMonthly = result.Summary.TotalRecurringMonthly.Add(monthly)
		result.Summary.TotalRecurringYearly = result.Summary.TotalRecurringYearly.Add(g.charge.EstimatedYearly)
	}

	sort.Slice(result.Subscriptions, func(i, j int) bool {
		a, b := result.Subscriptions[i], result.Subscriptions[j]
		if !a.EstimatedMonthly.Equal(b.EstimatedMonthly) {
			return a.EstimatedMonthly.GreaterThan(b.EstimatedMonthly)
		}

		return a.Description < b.Description
	})

	result.Summary.SubscriptionCount = len(result.Subscriptions)

	return result
}

// normalize folds a free-text description into a grouping key: trimmed,
// lowercased, internal whitespace collapsed.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
