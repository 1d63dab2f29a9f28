package meta

import (
	"fmt"
	"io"
	"net/url"
	"unfurl/internal/domain"

	"golang.org/x/net/html"
)

// Attribute priority for naming a tag and for its value. First present wins.
var (
	keyAttrs   = []string{"name", "property", "itemprop", "rel"}
	valueAttrs = []string{"content", "href"}
)

// ExtractTags parses the HTML and walks the tree in document order,
// collecting metadata key/value pairs. Later occurrences of a key overwrite
// earlier ones. Entity references are decoded by the parser, so stored
// values are already plain text.
func ExtractTags(r io.Reader) (domain.TagMap, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	tags := make(domain.TagMap)
	if err := collectTags(doc, tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// collectTags visits element nodes depth-first and records their metadata.
func collectTags(n *html.Node, tags domain.TagMap) error {
	if n.Type == html.ElementNode {
		if n.Data == "title" {
			// A title element is expected to carry a text child; a bare
			// one is a page defect we surface instead of skipping
			c := n.FirstChild
			if c == nil || c.Type != html.TextNode {
				return domain.ErrTitleWithoutText
			}
			tags["title"] = c.Data
		} else if key, ok := firstAttr(n, keyAttrs); ok {
			if value, ok := firstAttr(n, valueAttrs); ok {
				tags[key] = value
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectTags(c, tags); err != nil {
			return err
		}
	}

	return nil
}

// firstAttr returns the value of the first attribute from the priority list
// present on the node. An empty attribute value still counts as present.
func firstAttr(n *html.Node, priority []string) (string, bool) {
	for _, name := range priority {
		for _, attr := range n.Attr {
			if attr.Key == name {
				return attr.Val, true
			}
		}
	}
	return "", false
}

// ResolveImageURL turns the raw image reference into an absolute URL.
// Absolute references pass through unchanged; relative ones resolve against
// the page origin (scheme://host, path discarded). An empty or missing
// reference resolves to nil.
func ResolveImageURL(pageURL *url.URL, raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	ref, err := url.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrBadImageRef, *raw)
	}

	if ref.IsAbs() {
		return raw, nil
	}

	origin := &url.URL{Scheme: pageURL.Scheme, Host: pageURL.Host}
	resolved := origin.ResolveReference(ref).String()
	return &resolved, nil
}
