package rake

// TextConverter converts HTML to plain text.
type TextConverter interface {
	// Convert transforms clean HTML (e.g., from a ContentExtractor) into
	// text. Block boundaries end with a sentence delimiter so they also
	// separate candidate phrases.
	Convert(html string) (string, error)
}
