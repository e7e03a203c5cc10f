package tui

import (
	"strings"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/view"
)

const appTitle = "Tarif Defteri"

// RenderMain draws the header, the active filter and the recipe list
func RenderMain(st Styles, filter model.Filter, recipes []model.Recipe) string {
	var sb strings.Builder
	sb.WriteString(st.Header.Render(appTitle))
	sb.WriteString("\n\n")
	sb.WriteString(st.Muted.Render("Kategori: " + filter.String()))
	sb.WriteString("\n\n")

	if len(recipes) == 0 {
		sb.WriteString(st.Body.Render(view.EmptyListMsg))
		sb.WriteString("\n")
		sb.WriteString(st.Muted.Render(view.EmptyListHint))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, r := range recipes {
		sb.WriteString(st.Card.Render(st.Section.Render(r.Name) + "\n" + st.Badge.Render(r.Category.String())))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderDetail draws a single recipe
func RenderDetail(st Styles, r model.Recipe) string {
	var sb strings.Builder
	sb.WriteString(st.Header.Render(r.Name))
	sb.WriteString("\n\n")
	sb.WriteString(st.Badge.Render(r.Category.String()))
	sb.WriteString("\n\n")
	sb.WriteString(st.Section.Render("Malzemeler"))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render(r.Ingredients))
	sb.WriteString("\n\n")
	sb.WriteString(st.Section.Render("Hazırlanışı"))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render(r.Instructions))
	sb.WriteString("\n")
	return sb.String()
}
