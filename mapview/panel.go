// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

import (
	"bytes"
	"html/template"
	"log"

	"github.com/golfkarta/golfkarta/club"
)

// Placeholder texts of the detail panel.
const (
	PanelPlaceholder = "Klicka på en klubb på kartan för att se mer information."
	PriceUnknown     = "Ej angivet"
)

var panelTemplate = template.Must(template.New("panel").Parse(
	`<h3>{{.Name}}</h3>` +
		`{{with .Municipality}}<p><strong>Kommun:</strong> {{.}}</p>{{end}}` +
		`<p><strong>Hål:</strong> {{.Holes}}</p>` +
		`<p><strong>Pris:</strong> {{.Price}}</p>` +
		`{{with .Website}}<p><a href="{{.}}" target="_blank" rel="noopener">Besök hemsida</a></p>{{end}}`,
))

var placeholderTemplate = template.Must(template.New("placeholder").Parse(`<p>{{.}}</p>`))

type panelView struct {
	Name         string
	Municipality string
	Holes        int
	Price        string
	Website      string
}

// Panel is the side panel showing the selected club.
type Panel struct {
	page *Page
}

// NewPanel creates a panel rendering into the page's info panel element.
func NewPanel(page *Page) *Panel {
	return &Panel{page: page}
}

func (p *Panel) render(t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Printf("Rendering info panel: %v", err)

		return
	}

	p.page.Create(ElementInfoPanel).HTML = buf.String()
}

// Show replaces the panel content with c.
func (p *Panel) Show(c club.Club) {
	price := FormatPrice(c.Price)
	if price == "" {
		price = PriceUnknown
	}

	p.render(panelTemplate, panelView{
		Name:         c.Name,
		Municipality: c.Municipality,
		Holes:        c.DisplayHoles(),
		Price:        price,
		Website:      c.Website,
	})
}

// Clear resets the panel to the placeholder.
func (p *Panel) Clear() {
	p.render(placeholderTemplate, PanelPlaceholder)
}
