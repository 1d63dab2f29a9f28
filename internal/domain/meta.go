package domain

// TagMap holds the metadata key/value pairs collected from a single page,
// keyed by the tag's name/property/itemprop/rel attribute. Values are stored
// in document order with last-write-wins semantics.
type TagMap map[string]string

// pick returns the value of the first key present in the map. Presence is
// what matters: an empty string value still wins over later keys.
func (m TagMap) pick(keys ...string) *string {
	for _, key := range keys {
		if value, ok := m[key]; ok {
			return &value
		}
	}
	return nil
}

// Title resolves the page title with Open Graph taking priority over
// Twitter Card, falling back to the <title> element text.
func (m TagMap) Title() *string {
	return m.pick("og:title", "twitter:title", "title")
}

// Description resolves the page description. The plain meta description
// outranks the social variants.
func (m TagMap) Description() *string {
	return m.pick("description", "og:description", "twitter:description")
}

// ImageRef resolves the preview image reference, which may still be a
// relative URL at this point. Icon links are the last resort.
func (m TagMap) ImageRef() *string {
	return m.pick("og:image", "twitter:image", "image_src", "icon", "shortcut icon")
}

// Result is the normalized metadata returned for one page. Fields are nil
// when the page carried no usable value.
type Result struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// MissingMetadata reports whether any of the three fields could not be
// resolved. This is what gets recorded per page check.
func (r *Result) MissingMetadata() bool {
	return r.Title == nil || r.Description == nil || r.Image == nil
}
