package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fenilmodi00/agribridge-dashboard/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, snap *models.Snapshot) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, MustNewRenderer().Render(&buf, snap))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// section finds the dashboard section with the given title
func section(doc *goquery.Document, title string) *goquery.Selection {
	return doc.Find("section.dashboard-section").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return text(s.Find(".section-title")) == title
	})
}

func tileValue(doc *goquery.Document, title string) string {
	return text(doc.Find(".summary-tile").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return text(s.Find(".tile-title")) == title
	}).Find(".tile-value"))
}

func TestRenderPricingScenario(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Apply(models.PricingLoaded([]models.PricingEntry{
		{Category: "Grains", AvgPrice: models.NewPriceValue(3.2), Count: 14},
	}))

	doc := render(t, snap)

	assert.Equal(t, "1", tileValue(doc, "Market Categories"))

	cards := section(doc, "Pricing Trends").Find(".card")
	require.Equal(t, 1, cards.Length())
	assert.Equal(t, "Grains", text(cards.Find(".card-label")))
	assert.Equal(t, "$3.20", text(cards.Find(".card-value")))
	assert.Equal(t, "14 products", text(cards.Find(".card-meta")))
	assert.Equal(t, 0, section(doc, "Pricing Trends").Find(".empty-state").Length())
}

func TestRenderDemandScenario(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Apply(models.DemandLoaded([]models.DemandEntry{{Product: "Maize", Orders: 5, Qty: 120}}))

	doc := render(t, snap)

	cards := section(doc, "Demand (Top Products)").Find(".card")
	require.Equal(t, 1, cards.Length())
	assert.Equal(t, "Product: Maize", text(cards.Find(".card-label")))
	assert.Equal(t, "Orders: 5 • Qty: 120", text(cards.Find(".card-meta")))
}

func TestRenderSupplyCards(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Apply(models.SupplyLoaded([]models.SupplyEntry{
		{Category: "Vegetables", Available: 340.5, Items: 9},
		{Category: "Dairy", Available: 12, Items: 1},
	}))

	doc := render(t, snap)

	cards := section(doc, "Supply Overview").Find(".card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "Vegetables", text(cards.Eq(0).Find(".card-label")))
	assert.Equal(t, "340.5", text(cards.Eq(0).Find(".card-value")))
	assert.Equal(t, "Items: 9", text(cards.Eq(0).Find(".card-meta")))
	assert.Equal(t, "Dairy", text(cards.Eq(1).Find(".card-label")))
	assert.Equal(t, "2", tileValue(doc, "Supply Segments"))
}

func TestRenderAllUnavailable(t *testing.T) {
	snap := models.NewSnapshot()
	for _, resource := range models.Resources {
		snap.Apply(models.Unavailable(resource))
	}

	doc := render(t, snap)

	assert.Equal(t, "", text(doc.Find(".greeting")))
	for _, title := range []string{"Market Categories", "Top Demanded", "Supply Segments"} {
		assert.Equal(t, EmptyValue, tileValue(doc, title))
	}

	placeholders := map[string]string{
		"Pricing Trends":        PricingPlaceholder,
		"Demand (Top Products)": DemandPlaceholder,
		"Supply Overview":       SupplyPlaceholder,
	}
	for title, placeholder := range placeholders {
		s := section(doc, title)
		assert.Equal(t, placeholder, text(s.Find(".empty-state")), title)
		assert.Equal(t, 0, s.Find(".card").Length(), title)
	}
}

func TestRenderUnsetSnapshotShowsPlaceholders(t *testing.T) {
	doc := render(t, models.NewSnapshot())

	assert.Equal(t, 3, doc.Find(".empty-state").Length())
	assert.Equal(t, 0, doc.Find(".card").Length())
}

func TestRenderPageChrome(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Apply(models.GreetingLoaded(models.Greeting{Message: "Hello <farmers>"}))

	var buf bytes.Buffer
	require.NoError(t, MustNewRenderer().Render(&buf, snap))
	html := buf.String()

	assert.Contains(t, html, "Hello &lt;farmers&gt;")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, "AgriBridge", text(doc.Find("h1")))
	assert.Equal(t, "Connecting farmers to buyers with smart logistics", text(doc.Find(".tagline")))
	assert.Equal(t, "Hello <farmers>", text(doc.Find(".greeting")))
	assert.Equal(t, "Direct trade • Smallholder-first • Traceable • Export-ready", text(doc.Find("footer")))

	hints := doc.Find(".tile-hint").Map(func(_ int, s *goquery.Selection) string { return text(s) })
	assert.Equal(t, []string{"Based on listed products", "Products ordered most", "Available by category"}, hints)
}

func TestRenderSectionWithAction(t *testing.T) {
	var buf bytes.Buffer
	err := MustNewRenderer().RenderSection(&buf, SectionView{
		Title:  "Pricing Trends",
		Action: `<a class="section-action" href="/">Refresh</a>`,
		Body:   `<p class="child">nested</p>`,
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Pricing Trends", text(doc.Find(".section-title")))
	assert.Equal(t, "Refresh", text(doc.Find(".section-action")))
	assert.Equal(t, "nested", text(doc.Find("section .child")))
}

func TestRenderTileWithoutHint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustNewRenderer().RenderTile(&buf, NewSummaryTile("Top Demanded", 0, "")))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, EmptyValue, text(doc.Find(".tile-value")))
	assert.Equal(t, 0, doc.Find(".tile-hint").Length())
}

func TestRenderIsIdempotent(t *testing.T) {
	renderer := MustNewRenderer()

	properties := gopter.NewProperties(nil)
	properties.Property("rendering the same snapshot twice yields identical output", prop.ForAll(
		func(greeting string, categories []string, prices []float64, counts []int) bool {
			snap := models.NewSnapshot()
			snap.Apply(models.GreetingLoaded(models.Greeting{Message: greeting}))

			var pricing []models.PricingEntry
			for i, category := range categories {
				pricing = append(pricing, models.PricingEntry{
					Category: category,
					AvgPrice: models.NewPriceValue(prices[i%len(prices)]),
					Count:    counts[i%len(counts)],
				})
			}
			snap.Apply(models.PricingLoaded(pricing))
			snap.Apply(models.Unavailable(models.ResourceDemand))

			var first, second bytes.Buffer
			if err := renderer.Render(&first, snap); err != nil {
				return false
			}
			if err := renderer.Render(&second, snap); err != nil {
				return false
			}
			return first.String() == second.String()
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOfN(3, gen.Float64Range(0, 10000)),
		gen.SliceOfN(3, gen.IntRange(0, 500)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
