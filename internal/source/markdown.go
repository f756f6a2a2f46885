package source

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/outsplit/internal/outline"
)

// MarkdownSource derives an outline from markdown headings via goldmark.
// Heading level N maps to outline level N-1, so h1 sections sit at the
// top. Markdown carries no pagination; every entry's page stays 0.
type MarkdownSource struct{}

func (s *MarkdownSource) Read(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	out := &Document{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(string(h.Text(src)))
		if title == "" {
			continue
		}
		out.Entries = append(out.Entries, outline.Entry{
			Title: title,
			Level: h.Level - 1,
		})
	}

	return out, nil
}
