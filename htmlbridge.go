package storelingo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// StripMarkup renders an HTML fragment into plain text: tags collapse away,
// script and style content is dropped, and runs of whitespace fold into
// single spaces. Returns "" for unparseable or text-free markup.
func StripMarkup(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	doc.Find("script,style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// RestoreMarkup re-inserts translated text into an HTML fragment. When the
// fragment contains exactly one non-whitespace text node, that node's content
// is replaced with translatedText and the fragment is reserialized. With zero
// or multiple text nodes the original markup is returned byte-for-byte
// unchanged: multi-node fragments cannot be restored from a single combined
// translation, so the translation stays available to the caller as plain text
// only.
func RestoreMarkup(originalMarkup, translatedText string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(originalMarkup))
	if err != nil {
		return originalMarkup
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return originalMarkup
	}

	var textNodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
			textNodes = append(textNodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range body.Nodes {
		walk(n)
	}

	if len(textNodes) != 1 {
		return originalMarkup
	}

	textNodes[0].Data = translatedText

	restored, err := body.Html()
	if err != nil {
		return originalMarkup
	}
	return restored
}
