// Package goquery converts extracted HTML content to plain text with goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rake"
	"golang.org/x/net/html"
)

// Ensure TextConverter implements rake.TextConverter at compile time.
var _ rake.TextConverter = (*TextConverter)(nil)

// skipSelector matches elements whose text never reaches the output.
const skipSelector = "script, style, noscript, template, svg, iframe"

// blockElements end the current line. Every line is terminated with
// a sentence delimiter so block boundaries split candidate phrases.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"caption": true, "dd": true, "details": true, "div": true, "dl": true,
	"dt": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "summary": true, "table": true, "td": true,
	"th": true, "title": true, "tr": true, "ul": true,
}

// TextConverter renders HTML as one line of text per block element.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert transforms HTML into plain text. Whitespace inside a block is
// collapsed and lines without closing punctuation get a trailing period.
func (c *TextConverter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", rake.Errorf(rake.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(skipSelector).Remove()

	var w lineWriter
	w.walk(doc.Selection)
	w.flush()

	return strings.Join(w.lines, "\n"), nil
}

type lineWriter struct {
	buf   strings.Builder
	lines []string
}

func (w *lineWriter) walk(sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		node := child.Get(0)
		switch node.Type {
		case html.TextNode:
			w.buf.WriteString(node.Data)
			w.buf.WriteByte(' ')
		case html.ElementNode:
			switch {
			case node.Data == "br":
				w.flush()
			case blockElements[node.Data]:
				w.flush()
				w.walk(child)
				w.flush()
			default:
				w.walk(child)
			}
		}
	})
}

func (w *lineWriter) flush() {
	line := strings.Join(strings.Fields(w.buf.String()), " ")
	w.buf.Reset()
	if line == "" {
		return
	}
	if last, _ := utf8.DecodeLastRuneInString(line); !strings.ContainsRune(".!?;:,", last) {
		line += "."
	}
	w.lines = append(w.lines, line)
}
