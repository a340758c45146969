// Package render turns a page view state into HTML. Everything on the page is
// derived from the state on each render.
package render

import (
	"embed"
	"html/template"
	"io"

	"foodtruck/web-svc/internal/page"
)

//go:embed templates/*.html
var templateFS embed.FS

type PageView struct {
	Header    Header
	Menu      []MenuGroupView
	Locations []LocationCard
	Social    []SocialLink
}

func BuildPage(state page.ViewState) PageView {
	view := PageView{
		Header:    NewHeader(state.Info),
		Menu:      []MenuGroupView{},
		Locations: make([]LocationCard, 0, len(state.Locations)),
	}
	for _, group := range GroupByCategory(state.MenuItems) {
		cards := make([]MenuCard, 0, len(group.Items))
		for _, item := range group.Items {
			cards = append(cards, NewMenuCard(item))
		}
		view.Menu = append(view.Menu, MenuGroupView{Category: group.Category, Cards: cards})
	}
	for _, loc := range state.Locations {
		view.Locations = append(view.Locations, NewLocationCard(loc))
	}
	if state.Info != nil {
		view.Social = SocialLinks(state.Info.SocialMedia)
	} else {
		view.Social = SocialLinks(nil)
	}
	return view
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the loading screen while state is loading, the full page otherwise.
func (r *Renderer) Render(w io.Writer, state page.ViewState) error {
	if state.Loading {
		return r.tmpl.ExecuteTemplate(w, "loading", nil)
	}
	return r.tmpl.ExecuteTemplate(w, "page", BuildPage(state))
}
