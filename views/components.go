package views

import (
	"fmt"
	"html/template"
	"math"
	"strconv"

	"github.com/fenilmodi00/agribridge-dashboard/models"
)

// EmptyValue is shown by a summary tile whose list is empty
const EmptyValue = "—"

const (
	PricingPlaceholder = "No pricing data yet"
	DemandPlaceholder  = "No orders yet"
	SupplyPlaceholder  = "No supply data yet"
)

// SummaryTile is a small card with a title, a value and an optional hint
type SummaryTile struct {
	Title string
	Value string
	Hint  string
}

// NewSummaryTile shows count, or EmptyValue when count is zero
func NewSummaryTile(title string, count int, hint string) SummaryTile {
	value := EmptyValue
	if count != 0 {
		value = strconv.Itoa(count)
	}
	return SummaryTile{Title: title, Value: value, Hint: hint}
}

// SectionView is a titled panel around already rendered content
type SectionView struct {
	Title  string
	Action template.HTML
	Body   template.HTML
}

// CardList is the input of a list-of-cards template
type CardList[T any] struct {
	Placeholder string
	Cards       []T
}

type PricingCard struct {
	Category string
	Price    string
	Count    string
}

type DemandCard struct {
	Product string
	Orders  string
	Qty     string
}

type SupplyCard struct {
	Category  string
	Available string
	Items     string
}

// FormatPrice renders a finite numeric price as dollars with two decimals and
// passes anything else through as its raw text.
func FormatPrice(price models.PriceValue) string {
	if value, ok := price.Number(); ok {
		return fmt.Sprintf("$%.2f", value)
	}
	return price.Raw()
}

// FormatNumber renders a quantity in its shortest form: 120, 340.5. Magnitudes
// of 1e21 and above switch to exponent notation (1e+21).
func FormatNumber(value float64) string {
	if math.Abs(value) >= 1e21 {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func PricingCards(entries []models.PricingEntry) CardList[PricingCard] {
	cards := make([]PricingCard, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, PricingCard{
			Category: entry.Category,
			Price:    FormatPrice(entry.AvgPrice),
			Count:    strconv.Itoa(entry.Count),
		})
	}
	return CardList[PricingCard]{Placeholder: PricingPlaceholder, Cards: cards}
}

func DemandCards(entries []models.DemandEntry) CardList[DemandCard] {
	cards := make([]DemandCard, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, DemandCard{
			Product: entry.Product,
			Orders:  strconv.Itoa(entry.Orders),
			Qty:     FormatNumber(entry.Qty),
		})
	}
	return CardList[DemandCard]{Placeholder: DemandPlaceholder, Cards: cards}
}

func SupplyCards(entries []models.SupplyEntry) CardList[SupplyCard] {
	cards := make([]SupplyCard, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, SupplyCard{
			Category:  entry.Category,
			Available: FormatNumber(entry.Available),
			Items:     strconv.Itoa(entry.Items),
		})
	}
	return CardList[SupplyCard]{Placeholder: SupplyPlaceholder, Cards: cards}
}
