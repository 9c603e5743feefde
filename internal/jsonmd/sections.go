package jsonmd

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/tidwall/gjson"
)

const (
	maxSectionDepth  = 20
	minSectionLength = 20
	rootSectionTitle = "(root)"
)

// sectionKeys name arrays that hold a document's sections. The first one
// present wins and hides every sibling property.
var sectionKeys = []string{"sections", "slides"}

var sectionIndicators = []string{"markdown", "description", "content", "text", "body", "intro", "en", "de", "fr", "es"}

var markdownMarkers = []string{"##", "**", "- ", "\n"}

// ExtractSections lists every text block in jsonText with the default
// extractor.
func ExtractSections(jsonText string) []MarkdownSection {
	return defaultExtractor.ExtractSections(jsonText)
}

// ExtractSections walks the JSON tree in document order and returns every
// string that looks like prose or Markdown, titled with the path where it
// was found. Unparseable input yields an empty slice.
func (e *Extractor) ExtractSections(jsonText string) []MarkdownSection {
	w := sectionWalker{extractor: e, sections: []MarkdownSection{}}

	doc, ok := e.prepare(jsonText)
	if !ok {
		return w.sections
	}

	root := gjson.Parse(doc)
	switch {
	case root.IsObject():
		w.walkObject(root, "", 0)
	case root.IsArray():
		index := 0
		root.ForEach(func(_, item gjson.Result) bool {
			if item.IsObject() {
				w.walkObject(item, fmt.Sprintf("[%d]", index), 1)
			}
			index++
			return true
		})
	}

	e.logger.Debug("json sections extracted", "count", len(w.sections))
	return w.sections
}

// CombineSections joins sections into one document, each preceded by an
// HTML comment naming its path and separated by thematic breaks.
func CombineSections(sections []MarkdownSection) string {
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		parts = append(parts, fmt.Sprintf("<!-- %s -->\n%s", section.Title, section.Content))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

type sectionWalker struct {
	extractor *Extractor
	sections  []MarkdownSection
}

func (w *sectionWalker) walkObject(obj gjson.Result, path string, depth int) {
	if depth > maxSectionDepth {
		return
	}

	for _, key := range sectionKeys {
		if list, ok := property(obj, key); ok && list.IsArray() {
			w.walkArray(list, joinPath(path, key), depth+1)
			return
		}
	}

	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.Str
		switch {
		case value.Type == gjson.String:
			if isSectionWorthy(name, value.Str) {
				title := path
				if title == "" {
					title = name
				}
				w.emit(title, value.Str)
			}
		case value.IsObject():
			w.walkObject(value, joinPath(path, name), depth+1)
		case value.IsArray():
			w.walkArray(value, joinPath(path, name), depth+1)
		}
		return true
	})
}

// walkArray visits the elements of an array found at path. Bare strings
// only qualify by length; there is no key name to judge them by.
func (w *sectionWalker) walkArray(list gjson.Result, path string, depth int) {
	if depth > maxSectionDepth {
		return
	}

	index := 0
	list.ForEach(func(_, item gjson.Result) bool {
		itemPath := fmt.Sprintf("%s[%d]", path, index)
		switch {
		case item.IsObject():
			w.walkObject(item, itemPath, depth)
		case item.Type == gjson.String && textLength(item.Str) > minSectionLength:
			w.emit(itemPath, item.Str)
		}
		index++
		return true
	})
}

func (w *sectionWalker) emit(title, text string) {
	content := w.extractor.finish(text)
	if strings.TrimSpace(content) == "" {
		return
	}
	if title == "" {
		title = rootSectionTitle
	}
	w.sections = append(w.sections, MarkdownSection{Title: title, Content: content})
}

func isSectionWorthy(name, text string) bool {
	if textLength(text) > minSectionLength {
		return true
	}
	for _, marker := range markdownMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return hasIndicator(name, sectionIndicators)
}

// textLength counts UTF-16 code units. A rune outside the Basic
// Multilingual Plane, such as most emoji, counts twice.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
