package htmlnode

import (
	"fmt"

	"sitegen/textnode"
)

// FromTextNode maps an inline text node onto the leaf that renders it.
// Links become anchors around their text, images become empty img elements
// with the text as alt.
func FromTextNode(n textnode.TextNode) (Node, error) {
	switch n.Type {
	case textnode.Text:
		return &Leaf{Value: n.Text}, nil
	case textnode.Bold:
		return &Leaf{Tag: "b", Value: n.Text}, nil
	case textnode.Italic:
		return &Leaf{Tag: "i", Value: n.Text}, nil
	case textnode.Code:
		return &Leaf{Tag: "code", Value: n.Text}, nil
	case textnode.Link:
		return &Leaf{Tag: "a", Value: n.Text, Props: map[string]string{"href": n.URL}}, nil
	case textnode.Image:
		return &Leaf{Tag: "img", Props: map[string]string{"src": n.URL, "alt": n.Text}}, nil
	default:
		return nil, fmt.Errorf("unknown text type %s", n.Type)
	}
}
