package htmlutil

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// ExtractText returns the text content of an HTML fragment with script
// and style contents dropped and runs of whitespace collapsed into
// single spaces.
func ExtractText(fragment string) string {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	var buffer strings.Builder
	collectText(root, &buffer)
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(buffer.String(), " "))
}

func collectText(node *html.Node, buffer *strings.Builder) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, buffer)
	}
}
