// Package document converts editor Markdown back into the JsonContent shape
// that the importer understands.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrg/frontmatter"

	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/markup"
)

type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

func (fm frontMatter) meta() *jsonmd.MetaData {
	if fm.Title == "" && fm.Description == "" && len(fm.Keywords) == 0 {
		return nil
	}
	return &jsonmd.MetaData{
		Title:       fm.Title,
		Description: fm.Description,
		Keywords:    append([]string(nil), fm.Keywords...),
	}
}

// Builder splits Markdown into title, intro and sections.
type Builder struct {
	renderer *markup.Renderer
	logger   *slog.Logger
}

// NewBuilder creates a Builder that finds headings with renderer.
func NewBuilder(renderer *markup.Renderer) *Builder {
	return &Builder{
		renderer: renderer,
		logger:   slog.Default(),
	}
}

// Build maps markdown onto JsonContent:
//   - YAML front matter (title, description, keywords) becomes meta
//   - a level-one heading that opens the document becomes title
//   - text before the first level-two heading becomes intro
//   - every level-two heading starts a new section
//
// Malformed front matter is kept as part of the body.
func (b *Builder) Build(markdown string) jsonmd.JsonContent {
	source := jsonmd.NormalizeLineEndings(markdown)

	var fm frontMatter
	body, err := frontmatter.Parse(strings.NewReader(source), &fm)
	if err != nil {
		b.logger.Debug("ignoring unreadable front matter", "error", err)
		fm = frontMatter{}
		body = []byte(source)
	}

	content := jsonmd.JsonContent{Meta: fm.meta()}
	headings := b.renderer.Headings(body)

	cursor := 0
	if len(headings) > 0 && headings[0].Level == 1 && len(bytes.TrimSpace(body[:headings[0].Start])) == 0 {
		content.Title = headings[0].Text
		cursor = headings[0].End
		headings = headings[1:]
	}

	var starts []int
	for _, h := range headings {
		if h.Level == 2 {
			starts = append(starts, h.Start)
		}
	}

	introEnd := len(body)
	if len(starts) > 0 {
		introEnd = starts[0]
	}
	if cursor < introEnd {
		content.Intro = strings.TrimSpace(string(body[cursor:introEnd]))
	}

	for i, start := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if section := strings.TrimSpace(string(body[start:end])); section != "" {
			content.Sections = append(content.Sections, jsonmd.Section{Markdown: section})
		}
	}

	return content
}

// Encode renders content as indented JSON without HTML escaping.
func Encode(content jsonmd.JsonContent) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(content); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}
