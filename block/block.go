// Package block splits a markdown document into block-level chunks and
// classifies them. Blocks are plain strings here; turning them into HTML
// happens one layer up.
package block

import (
	"fmt"
	"strconv"
	"strings"
)

type Type uint8

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Split breaks a markdown document into blocks separated by blank lines.
// Each block is trimmed; empty blocks are dropped.
func Split(markdown string) []string {
	var blocks []string
	for _, b := range strings.Split(markdown, "\n\n") {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Classify reports the type of a single trimmed block. Anything that
// doesn't match a stricter form is a paragraph.
func Classify(b string) Type {
	lines := strings.Split(b, "\n")

	// 1 to 6 '#' followed by a space.
	if strings.HasPrefix(b, "#") {
		level := 0
		for level < len(b) && b[level] == '#' {
			level++
		}
		if level <= 6 && level < len(b) && b[level] == ' ' {
			return Heading
		}
	}

	if strings.HasPrefix(b, "```") && strings.HasSuffix(b, "```") {
		return Code
	}

	quote := true
	for _, ln := range lines {
		if !strings.HasPrefix(ln, ">") {
			quote = false
			break
		}
	}
	if quote {
		return Quote
	}

	unordered := true
	for _, ln := range lines {
		if !strings.HasPrefix(ln, "- ") {
			unordered = false
			break
		}
	}
	if unordered {
		return UnorderedList
	}

	// Ordered lists must count up from 1.
	ordered := true
	for i, ln := range lines {
		if !strings.HasPrefix(ln, strconv.Itoa(i+1)+". ") {
			ordered = false
			break
		}
	}
	if ordered {
		return OrderedList
	}

	return Paragraph
}
