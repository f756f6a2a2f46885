package source

import (
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PagePreview returns up to maxRunes of a page's text with whitespace
// collapsed, for decorating plan responses. Extraction failures yield an
// empty preview, never an error: a preview is cosmetic.
func PagePreview(path string, page, maxRunes int) string {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	if page < 1 || page > reader.NumPage() {
		return ""
	}
	p := reader.Page(page)
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return truncateRunes(strings.Join(strings.Fields(text), " "), maxRunes)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
