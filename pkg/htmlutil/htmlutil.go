package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// CellTexts returns the text of every node in the selection with the ends
// trimmed, in document order. Whitespace inside the text is kept.
func CellTexts(sel *goquery.Selection) []string {
	texts := make([]string, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		texts = append(texts, strings.TrimSpace(GetText(n)))
	}
	return texts
}
