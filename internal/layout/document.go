package layout

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Document wraps a composed body in a full HTML page.
func Document(title string, body g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(title)),
				html.Script(html.Src("https://cdn.tailwindcss.com")),
			),
			html.Body(body),
		),
	)
}
