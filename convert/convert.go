// Package convert turns a markdown document into an HTML node tree and
// renders it.
package convert

import (
	"fmt"
	"io"
	"strings"

	"sitegen/block"
	"sitegen/htmlnode"
	"sitegen/textnode"
)

// ToNode converts a whole markdown document into a single div wrapping one
// node per block.
func ToNode(markdown string) (htmlnode.Node, error) {
	blocks := block.Split(markdown)
	children := make([]htmlnode.Node, 0, len(blocks))
	for _, b := range blocks {
		node, err := blockNode(b)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return &htmlnode.Parent{Tag: "div", Children: children}, nil
}

// ToHTML reads a markdown document from r and writes the rendered HTML
// fragment to w, followed by a newline. Nothing is written on error.
func ToHTML(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	node, err := ToNode(string(data))
	if err != nil {
		return err
	}
	out, err := node.HTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func blockNode(b string) (htmlnode.Node, error) {
	switch block.Classify(b) {
	case block.Heading:
		level := 0
		for level < len(b) && b[level] == '#' {
			level++
		}
		children, err := inlineChildren(b[level+1:])
		if err != nil {
			return nil, err
		}
		return &htmlnode.Parent{Tag: fmt.Sprintf("h%d", level), Children: children}, nil

	case block.Code:
		// No inline parsing inside fences. Only the leading newline after
		// the opening fence is stripped.
		var text string
		if len(b) > 6 {
			text = strings.TrimLeft(b[3:len(b)-3], "\n")
		}
		code := &htmlnode.Leaf{Tag: "code", Value: text}
		return &htmlnode.Parent{Tag: "pre", Children: []htmlnode.Node{code}}, nil

	case block.Quote:
		lines := strings.Split(b, "\n")
		stripped := make([]string, 0, len(lines))
		for _, ln := range lines {
			ln = strings.TrimPrefix(ln, ">")
			ln = strings.TrimPrefix(ln, " ")
			stripped = append(stripped, ln)
		}
		children, err := inlineChildren(strings.Join(stripped, "\n"))
		if err != nil {
			return nil, err
		}
		return &htmlnode.Parent{Tag: "blockquote", Children: children}, nil

	case block.UnorderedList:
		lines := strings.Split(b, "\n")
		items := make([]htmlnode.Node, 0, len(lines))
		for _, ln := range lines {
			children, err := inlineChildren(ln[2:])
			if err != nil {
				return nil, err
			}
			items = append(items, &htmlnode.Parent{Tag: "li", Children: children})
		}
		return &htmlnode.Parent{Tag: "ul", Children: items}, nil

	case block.OrderedList:
		lines := strings.Split(b, "\n")
		items := make([]htmlnode.Node, 0, len(lines))
		for _, ln := range lines {
			dot := strings.Index(ln, ". ")
			children, err := inlineChildren(ln[dot+2:])
			if err != nil {
				return nil, err
			}
			items = append(items, &htmlnode.Parent{Tag: "li", Children: children})
		}
		return &htmlnode.Parent{Tag: "ol", Children: items}, nil

	default:
		// Paragraph: fold the source's line breaks into spaces.
		children, err := inlineChildren(strings.ReplaceAll(b, "\n", " "))
		if err != nil {
			return nil, err
		}
		return &htmlnode.Parent{Tag: "p", Children: children}, nil
	}
}

func inlineChildren(text string) ([]htmlnode.Node, error) {
	nodes, err := textnode.ToNodes(text)
	if err != nil {
		return nil, err
	}
	children := make([]htmlnode.Node, 0, len(nodes))
	for _, n := range nodes {
		child, err := htmlnode.FromTextNode(n)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
