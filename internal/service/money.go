package service

import (
	"business-manager-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type pricedLine struct {
	price    float64
	quantity int
}

// sumLines returns Σ price×quantity rounded to the currency's minor unit
func sumLines(lines []pricedLine) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.price).Mul(decimal.NewFromInt(int64(l.quantity))))
	}
	f, _ := total.Round(2).Float64()
	return f
}

func proposalTotal(items []models.ProposalService) float64 {
	lines := make([]pricedLine, len(items))
	for i, item := range items {
		lines[i] = pricedLine{price: item.Price, quantity: item.Quantity}
	}
	return sumLines(lines)
}

func projectTotal(items []models.ProjectService) float64 {
	lines := make([]pricedLine, len(items))
	for i, item := range items {
		lines[i] = pricedLine{price: item.Price, quantity: item.Quantity}
	}
	return sumLines(lines)
}

// projectProgress is the percentage of completed line items, 0 for a project without items
func projectProgress(items []models.ProjectService) float64 {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.CompletionStatus == models.CompletionStatusCompleted {
			completed++
		}
	}
	p, _ := decimal.NewFromInt(int64(completed)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(len(items)))).
		Round(2).
		Float64()
	return p
}
