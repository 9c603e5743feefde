package markup

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Renderer turns editor Markdown into preview HTML. Soft line breaks stay
// soft: only two trailing spaces (or a backslash) produce <br>.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GitHub flavoured extensions and raw
// HTML passthrough, so inline <mark> or <span style> from the toolbar render.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithUnsafe(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts markdown to HTML.
func (r *Renderer) Render(markdown []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Heading is a top-level ATX or setext heading.
type Heading struct {
	Level int
	Text  string
	// Start is the byte offset of the first line of the heading.
	Start int
	// End is the byte offset just past the heading, including a setext
	// underline and the trailing newline.
	End int
}

// Headings returns the document-level headings of markdown in source order.
// Headings nested in lists or blockquotes, and "#" lines inside code
// blocks, are not reported.
func (r *Renderer) Headings(markdown []byte) []Heading {
	doc := r.md.Parser().Parse(text.NewReader(markdown))

	var headings []Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok {
			continue
		}

		lines := heading.Lines()
		if lines.Len() == 0 {
			continue
		}
		start := lineStart(markdown, lines.At(0).Start)
		// Step back one byte so a segment that already covers its newline
		// does not run into the following line.
		stop := lines.At(lines.Len() - 1).Stop
		if stop > start {
			stop--
		}
		end := lineEnd(markdown, stop)
		if !isATX(markdown[start:]) {
			end = lineEnd(markdown, end)
		}

		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  nodeText(heading, markdown),
			Start: start,
			End:   end,
		})
	}
	return headings
}

// Title returns the first level-one heading, else the first level-two
// heading, else "".
func (r *Renderer) Title(markdown []byte) string {
	var firstH2 string
	for _, h := range r.Headings(markdown) {
		if h.Level == 1 {
			return h.Text
		}
		if h.Level == 2 && firstH2 == "" {
			firstH2 = h.Text
		}
	}
	return firstH2
}

func nodeText(n ast.Node, source []byte) string {
	var b bytes.Buffer
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return string(bytes.TrimSpace(b.Bytes()))
}

func lineStart(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	if i := bytes.LastIndexByte(source[:offset], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func lineEnd(source []byte, offset int) int {
	if offset >= len(source) {
		return len(source)
	}
	if i := bytes.IndexByte(source[offset:], '\n'); i >= 0 {
		return offset + i + 1
	}
	return len(source)
}

func isATX(line []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(line, " "), []byte("#"))
}
