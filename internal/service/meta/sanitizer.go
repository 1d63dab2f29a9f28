package meta

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// strippedHosts lists hostnames whose pages embed script payloads large or
// strange enough to pollute naive metadata extraction. Scripts are removed
// before extraction for these hosts only; everyone else parses unmodified.
var strippedHosts = map[string]bool{
	"developer.mozilla.org": true,
}

// needsSanitizing reports whether the page host is on the strip list.
// A single leading www. does not count against the match.
func needsSanitizing(pageURL *url.URL) bool {
	host := strings.TrimPrefix(pageURL.Hostname(), "www.")
	return strippedHosts[host]
}

// stripScripts removes every <script> element (and its contents) from the
// raw HTML and renders the document back out.
func stripScripts(rawHTML []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML for sanitizing: %w", err)
	}

	doc.Find("script").Remove()

	sanitized, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render sanitized HTML: %w", err)
	}

	return []byte(sanitized), nil
}
