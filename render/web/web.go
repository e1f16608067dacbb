package web

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/pverdi/omniassist/core/render"
)

// BuildHTML converts display directives into an HTML fragment. Top-level
// sections become open <details> expanders, nested headers become <h4>
// elements, lists become <ul> lists, and scalar lines become paragraphs.
func BuildHTML(directives []render.Directive) string {
	var b strings.Builder

	openSection := false
	openList := false

	closeList := func() {
		if openList {
			b.WriteString("</ul>\n")
			openList = false
		}
	}
	closeSection := func() {
		closeList()
		if openSection {
			b.WriteString("</details>\n")
			openSection = false
		}
	}

	for _, d := range directives {
		switch d.Kind {
		case render.KindSectionHeader:
			if d.Depth == 0 {
				closeSection()
				b.WriteString("<details open>\n<summary>" + html.EscapeString(headerText(d)) + "</summary>\n")
				openSection = true
			} else {
				closeList()
				b.WriteString("<h4>" + html.EscapeString(headerText(d)) + "</h4>\n")
			}

		case render.KindMetricLine:
			closeList()
			b.WriteString("<p><strong>" + html.EscapeString(d.Label) + ":</strong> " + html.EscapeString(d.NumberText) + "</p>\n")

		case render.KindListLine:
			closeList()
			b.WriteString("<p><strong>" + html.EscapeString(d.Label) + ":</strong></p>\n<ul>\n")
			for _, item := range d.Items {
				b.WriteString("<li>" + html.EscapeString(item) + "</li>\n")
			}
			b.WriteString("</ul>\n")

		case render.KindEmptyLine:
			closeList()
			b.WriteString("<p><strong>" + html.EscapeString(d.Label) + ":</strong> <em>" + render.NotSpecifiedPhrase + "</em></p>\n")

		default:
			if d.Label == "" {
				if !openList {
					b.WriteString("<ul>\n")
					openList = true
				}
				b.WriteString("<li>" + html.EscapeString(d.Value) + "</li>\n")
			} else {
				closeList()
				b.WriteString("<p><strong>" + html.EscapeString(d.Label) + ":</strong> " + html.EscapeString(d.Value) + "</p>\n")
			}
		}
	}
	closeSection()

	return b.String()
}

// Markdown converts display directives to Markdown by building the HTML
// fragment and running it through html-to-markdown.
func Markdown(directives []render.Directive) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(BuildHTML(directives))
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return markdown, nil
}

func headerText(d render.Directive) string {
	if d.ItemCount >= 0 {
		return fmt.Sprintf("%s (%d items)", d.Label, d.ItemCount)
	}
	return d.Label
}
