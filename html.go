package rake

// HTMLDocument extracts the main content of rawHTML and converts it to
// plain text. The returned document has no Source.
func HTMLDocument(rawHTML string, extractor ContentExtractor, converter TextConverter) (*Document, error) {
	if extractor == nil || converter == nil {
		return nil, Errorf(EINVALID, "HTML input requires a content extractor and a text converter")
	}

	extracted, err := extractor.Extract(rawHTML)
	if err != nil {
		return nil, err
	}

	text, err := converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &Document{
		Title: extracted.Title,
		Text:  text,
	}, nil
}
