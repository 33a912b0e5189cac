package htmlnode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoTag      = errors.New("parent node has no tag")
	ErrNoChildren = errors.New("parent node has no children")
)

// Node is one element of the HTML tree a markdown document converts into.
type Node interface {
	HTML() (string, error)
}

// Leaf is an element with no children. An empty Tag renders the bare
// value, which is how plain text ends up in the output.
type Leaf struct {
	Tag   string
	Value string
	Props map[string]string
}

func (l *Leaf) HTML() (string, error) {
	if l.Tag == "" {
		return l.Value, nil
	}
	return fmt.Sprintf("<%s%s>%s</%s>", l.Tag, renderProps(l.Props), l.Value, l.Tag), nil
}

// Parent is an element whose content is its children, rendered in order.
type Parent struct {
	Tag      string
	Children []Node
	Props    map[string]string
}

func (p *Parent) HTML() (string, error) {
	if p.Tag == "" {
		return "", ErrNoTag
	}
	if p.Children == nil {
		return "", ErrNoChildren
	}
	var out strings.Builder
	fmt.Fprintf(&out, "<%s%s>", p.Tag, renderProps(p.Props))
	for _, child := range p.Children {
		s, err := child.HTML()
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	fmt.Fprintf(&out, "</%s>", p.Tag)
	return out.String(), nil
}

// renderProps renders attributes as ` key="value"` pairs. Keys are sorted
// so output is stable for the same props.
func renderProps(props map[string]string) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&out, " %s=%q", k, props[k])
	}
	return out.String()
}
