package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/fenilmodi00/agribridge-dashboard/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageView is everything the page template needs
type PageView struct {
	Greeting string
	Tiles    []SummaryTile
	Sections []SectionView
}

// Renderer turns a dashboard snapshot into HTML. Output depends only on the
// snapshot, so rendering the same snapshot twice yields identical bytes.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// MustNewRenderer is NewRenderer for package initialisation; the templates are embedded so a failure is a build defect
func MustNewRenderer() *Renderer {
	renderer, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return renderer
}

// Render writes the full dashboard page for snap
func (r *Renderer) Render(w io.Writer, snap *models.Snapshot) error {
	page, err := r.BuildPage(snap)
	if err != nil {
		return err
	}
	return r.templates.ExecuteTemplate(w, "page", page)
}

// BuildPage assembles the tiles and sections of the dashboard
func (r *Renderer) BuildPage(snap *models.Snapshot) (PageView, error) {
	page := PageView{
		Greeting: snap.Greeting,
		Tiles: []SummaryTile{
			NewSummaryTile("Market Categories", len(snap.Pricing), "Based on listed products"),
			NewSummaryTile("Top Demanded", len(snap.Demand), "Products ordered most"),
			NewSummaryTile("Supply Segments", len(snap.Supply), "Available by category"),
		},
	}

	bodies := []struct {
		title    string
		template string
		data     interface{}
	}{
		{"Pricing Trends", "pricing_cards", PricingCards(snap.Pricing)},
		{"Demand (Top Products)", "demand_cards", DemandCards(snap.Demand)},
		{"Supply Overview", "supply_cards", SupplyCards(snap.Supply)},
	}

	for _, body := range bodies {
		html, err := r.fragment(body.template, body.data)
		if err != nil {
			return PageView{}, err
		}
		page.Sections = append(page.Sections, SectionView{Title: body.title, Body: html})
	}

	return page, nil
}

// RenderTile writes a single summary tile
func (r *Renderer) RenderTile(w io.Writer, tile SummaryTile) error {
	return r.templates.ExecuteTemplate(w, "summary_tile", tile)
}

// RenderSection writes a single titled section
func (r *Renderer) RenderSection(w io.Writer, section SectionView) error {
	return r.templates.ExecuteTemplate(w, "section", section)
}

func (r *Renderer) fragment(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	// html/template has already escaped every value in buf
	return template.HTML(buf.String()), nil
}
