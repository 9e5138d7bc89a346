package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// hidden lists elements whose contents are not rendered as page text.
const hidden = "script, style, template"

// PlainText renders the text nodes of an HTML document, tags stripped and
// entities decoded, joined by single spaces. Malformed markup is parsed
// leniently; only a reader failure can make parsing fail, and then the empty
// string is returned.
func PlainText(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}

	doc.Find(hidden).Remove()

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range doc.Nodes {
		walk(n)
	}

	return strings.Join(parts, " ")
}
