package textnode

import (
	"fmt"
	"strings"
)

// SplitDelimiter splits every Text node in nodes on a literal delimiter.
// Segments between a delimiter pair become nodes of type t, the rest stay
// plain text. Empty segments are dropped, as are empty Text nodes; nodes of
// any other type pass through untouched.
//
// A delimiter without a closing partner is an error and no nodes are
// returned.
func SplitDelimiter(nodes []TextNode, delimiter string, t TextType) ([]TextNode, error) {
	var out []TextNode
	for _, node := range nodes {
		if node.Type != Text {
			out = append(out, node)
			continue
		}
		if node.Text == "" {
			continue
		}
		if !strings.Contains(node.Text, delimiter) {
			out = append(out, node)
			continue
		}
		parts := strings.Split(node.Text, delimiter)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("invalid markdown: unclosed delimiter %q in %q", delimiter, node.Text)
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, TextNode{Text: part, Type: Text})
			} else {
				out = append(out, TextNode{Text: part, Type: t})
			}
		}
	}
	return out, nil
}

// SplitImages splits every Text node around its ![alt](src) references,
// turning each reference into an Image node carrying the source URL.
func SplitImages(nodes []TextNode) []TextNode {
	var out []TextNode
	for _, node := range nodes {
		if node.Type != Text {
			out = append(out, node)
			continue
		}
		if node.Text == "" {
			continue
		}
		images := ExtractImages(node.Text)
		if len(images) == 0 {
			out = append(out, node)
			continue
		}
		rest := node.Text
		for _, img := range images {
			before, after, found := strings.Cut(rest, fmt.Sprintf("![%s](%s)", img.Text, img.URL))
			if !found {
				continue
			}
			if before != "" {
				out = append(out, TextNode{Text: before, Type: Text})
			}
			out = append(out, TextNode{Text: img.Text, Type: Image, URL: img.URL})
			rest = after
		}
		if rest != "" {
			out = append(out, TextNode{Text: rest, Type: Text})
		}
	}
	return out
}

// SplitLinks splits every Text node around its [anchor](href) references,
// turning each reference into a Link node carrying the target URL.
func SplitLinks(nodes []TextNode) []TextNode {
	var out []TextNode
	for _, node := range nodes {
		if node.Type != Text {
			out = append(out, node)
			continue
		}
		if node.Text == "" {
			continue
		}
		links := ExtractLinks(node.Text)
		if len(links) == 0 {
			out = append(out, node)
			continue
		}
		rest := node.Text
		for _, link := range links {
			before, after, found := strings.Cut(rest, fmt.Sprintf("[%s](%s)", link.Text, link.URL))
			if !found {
				continue
			}
			if before != "" {
				out = append(out, TextNode{Text: before, Type: Text})
			}
			out = append(out, TextNode{Text: link.Text, Type: Link, URL: link.URL})
			rest = after
		}
		if rest != "" {
			out = append(out, TextNode{Text: rest, Type: Text})
		}
	}
	return out
}

// ToNodes runs the whole inline pipeline over a line of markdown: images
// and links first, then the paired delimiters. Both '*' and '_' mean
// italic.
func ToNodes(text string) ([]TextNode, error) {
	nodes := []TextNode{{Text: text, Type: Text}}
	nodes = SplitImages(nodes)
	nodes = SplitLinks(nodes)

	var err error
	nodes, err = SplitDelimiter(nodes, "**", Bold)
	if err != nil {
		return nil, err
	}
	nodes, err = SplitDelimiter(nodes, "*", Italic)
	if err != nil {
		return nil, err
	}
	nodes, err = SplitDelimiter(nodes, "_", Italic)
	if err != nil {
		return nil, err
	}
	return SplitDelimiter(nodes, "`", Code)
}
