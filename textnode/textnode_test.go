package textnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual_SameFields(t *testing.T) {
	node := TextNode{Text: "This is a text node", Type: Bold}
	node2 := TextNode{Text: "This is a text node", Type: Bold}
	require.Equal(t, node, node2)
	require.True(t, node == node2)
}

func TestEqual_WithURL(t *testing.T) {
	node := TextNode{Text: "This is a link", Type: Link, URL: "https://example.com"}
	node2 := TextNode{Text: "This is a link", Type: Link, URL: "https://example.com"}
	require.Equal(t, node, node2)
}

func TestEqual_OmittedURLMatchesExplicitEmpty(t *testing.T) {
	node := TextNode{Text: "This is text", Type: Text}
	node2 := TextNode{Text: "This is text", Type: Text, URL: ""}
	require.Equal(t, node, node2)
	require.True(t, node == node2)
}

func TestNotEqual_DifferentText(t *testing.T) {
	node := TextNode{Text: "This is a text node", Type: Bold}
	node2 := TextNode{Text: "This is different text", Type: Bold}
	require.NotEqual(t, node, node2)
}

func TestNotEqual_DifferentType(t *testing.T) {
	node := TextNode{Text: "This is a text node", Type: Bold}
	node2 := TextNode{Text: "This is a text node", Type: Italic}
	require.NotEqual(t, node, node2)
}

func TestNotEqual_DifferentURL(t *testing.T) {
	node := TextNode{Text: "This is a link", Type: Link, URL: "https://example.com"}
	node2 := TextNode{Text: "This is a link", Type: Link, URL: "https://different.com"}
	require.NotEqual(t, node, node2)
}

func TestNotEqual_URLVersusAbsent(t *testing.T) {
	node := TextNode{Text: "This is text", Type: Text, URL: "https://example.com"}
	node2 := TextNode{Text: "This is text", Type: Text}
	require.NotEqual(t, node, node2)
}

func TestString_IncludesAllFieldsAndIsStable(t *testing.T) {
	node := TextNode{Text: "click here", Type: Link, URL: "https://example.com"}
	s := node.String()
	require.Equal(t, `TextNode("click here", link, "https://example.com")`, s)
	require.Equal(t, s, node.String())
}

func TestString_AbsentURL(t *testing.T) {
	node := TextNode{Text: "This is a text node", Type: Bold}
	require.Equal(t, `TextNode("This is a text node", bold, "")`, node.String())
}

func TestTextTypeString(t *testing.T) {
	tests := []struct {
		t    TextType
		want string
	}{
		{Text, "text"},
		{Bold, "bold"},
		{Italic, "italic"},
		{Code, "code"},
		{Link, "link"},
		{Image, "image"},
		{TextType(42), "TextType(42)"},
	}
	for _, test := range tests {
		if got := test.t.String(); got != test.want {
			t.Errorf("TextType.String() = %q, expected %q", got, test.want)
		}
	}
}
