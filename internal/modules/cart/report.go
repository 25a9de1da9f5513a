package cart

import (
	"fmt"
	"sort"
	"strings"

	"recipehub/internal/domain"
)

// ReportFilename is the fixed attachment name of the shopping list download.
const ReportFilename = "shopping_cart.txt"

const (
	reportHeader = "Shopping list:"
	reportFooter = "Have a nice day!"
)

// LineItem is one aggregated ingredient line of the shopping list.
type LineItem struct {
	Name   string
	Amount int
	Unit   string
}

// Aggregate sums ingredient amounts across every recipe in the cart, keyed by
// ingredient name. Two catalog rows sharing a name merge into one line; the
// unit label is whichever was encountered first and amounts are summed with
// no unit reconciliation. Processing order does not affect the totals.
func Aggregate(items []domain.ShoppingCartItem) []LineItem {
	amounts := make(map[string]int)
	units := make(map[string]string)

	for _, item := range items {
		if item.Recipe == nil {
			continue
		}
		for _, ri := range item.Recipe.Ingredients {
			if ri.Ingredient == nil {
				continue
			}
			name := ri.Ingredient.Name
			if _, seen := amounts[name]; !seen {
				units[name] = ri.Ingredient.MeasurementUnit
			}
			amounts[name] += ri.Amount
		}
	}

	lines := make([]LineItem, 0, len(amounts))
	for name, amount := range amounts {
		lines = append(lines, LineItem{Name: name, Amount: amount, Unit: units[name]})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}

// RenderReport produces the plain-text shopping list. An empty cart keeps the
// header and footer around an empty body.
func RenderReport(lines []LineItem) string {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteString("\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s - %d %s\n", line.Name, line.Amount, line.Unit)
	}
	b.WriteString("\n\n")
	b.WriteString(reportFooter)
	return b.String()
}
