package textnode

import "regexp"

// Ref is an extracted markdown reference: the bracketed text and the URL
// from the parentheses.
type Ref struct {
	Text string
	URL  string
}

var (
	imageRE = regexp.MustCompile(`!\[([^\[\]]*?)\]\(([^()]*?)\)`)
	linkRE  = regexp.MustCompile(`\[([^\[\]]*?)\]\(([^()]*?)\)`)
)

// ExtractImages returns every ![alt](src) reference in text, in order of
// appearance. Nested brackets or parentheses don't match.
func ExtractImages(text string) []Ref {
	var refs []Ref
	for _, m := range imageRE.FindAllStringSubmatch(text, -1) {
		refs = append(refs, Ref{Text: m[1], URL: m[2]})
	}
	return refs
}

// ExtractLinks returns every [anchor](href) reference in text, in order of
// appearance. Image references (the same form with a leading '!') are
// skipped.
func ExtractLinks(text string) []Ref {
	var refs []Ref
	for _, m := range linkRE.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		refs = append(refs, Ref{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]})
	}
	return refs
}
