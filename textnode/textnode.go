package textnode

import "fmt"

// TextType is the closed set of inline text categories. Adding a category
// is a source change, never a runtime one.
type TextType uint8

const (
	Text TextType = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (t TextType) String() string {
	switch t {
	case Text:
		return "text"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("TextType(%d)", uint8(t))
	}
}

// TextNode is one inline text element: its literal text, its category and,
// for links and images, the target URL. The empty URL means absent.
//
// A TextNode is a plain comparable value: two nodes are equal exactly when
// all three fields are equal. Nothing validates the fields; a Link with no
// URL or a Text node with one are both fine at this layer.
type TextNode struct {
	Text string
	Type TextType
	URL  string
}

func (n TextNode) String() string {
	return fmt.Sprintf("TextNode(%q, %s, %q)", n.Text, n.Type, n.URL)
}
