package jsonmd

import (
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
)

const maxLeafDepth = 10

// contentKeys are checked on the root object, in this order, before the
// whole tree is searched.
var contentKeys = []string{"markdown", "content", "text", "en", "de", "body", "description"}

// Extractor converts JSON payloads into Markdown. The zero configuration
// (New with no options) is strict: input that is not valid JSON is treated
// as plain text.
type Extractor struct {
	repair bool
	filter func(string) string
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRepair lets the extractor repair malformed input that looks like JSON
// (trailing commas, single quotes, unquoted keys, truncated documents)
// before giving up on it.
func WithRepair() Option {
	return func(e *Extractor) {
		e.repair = true
	}
}

// WithTextFilter installs a transformation applied to every extracted text
// after escape normalization.
func WithTextFilter(filter func(string) string) Option {
	return func(e *Extractor) {
		e.filter = filter
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// ExtractContent recovers Markdown from jsonText with the default extractor.
func ExtractContent(jsonText string) string {
	return defaultExtractor.ExtractContent(jsonText)
}

type extractionKind int

const (
	// kindRaw means nothing usable was found; the input is returned untouched.
	kindRaw extractionKind = iota
	kindPlain
	kindSchema
	kindGeneric
)

func (k extractionKind) String() string {
	switch k {
	case kindPlain:
		return "plain"
	case kindSchema:
		return "schema"
	case kindGeneric:
		return "generic"
	default:
		return "raw"
	}
}

type extraction struct {
	kind extractionKind
	text string
}

// ExtractContent returns the most plausible Markdown found in jsonText.
// It never fails: unparseable input is treated as plain text, and JSON
// without any text in it is returned unchanged.
func (e *Extractor) ExtractContent(jsonText string) string {
	result := e.extract(jsonText)
	e.logger.Debug("json content extracted", "kind", result.kind.String(), "input_length", len(jsonText), "output_length", len(result.text))
	if result.kind == kindRaw {
		return result.text
	}
	return e.finish(result.text)
}

func (e *Extractor) extract(jsonText string) extraction {
	doc, ok := e.prepare(jsonText)
	if !ok {
		return extraction{kind: kindPlain, text: jsonText}
	}

	root := gjson.Parse(doc)
	if content, ok := decodeSchema(root); ok {
		if text, ok := fromSchema(content); ok {
			return extraction{kind: kindSchema, text: text}
		}
	}

	if text, ok := fromValue(root); ok {
		return extraction{kind: kindGeneric, text: text}
	}
	return extraction{kind: kindRaw, text: jsonText}
}

// prepare returns a valid JSON document for input, repairing it when allowed.
func (e *Extractor) prepare(input string) (string, bool) {
	if gjson.Valid(input) {
		return input, true
	}
	if !e.repair || !LooksLikeJSON(input) {
		return "", false
	}

	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		e.logger.Debug("json repair failed", "error", err)
		return "", false
	}
	if !gjson.Valid(repaired) {
		return "", false
	}
	e.logger.Debug("json repaired before extraction", "input_length", len(input), "repaired_length", len(repaired))
	return repaired, true
}

// finish applies the shared normalization to any extracted text.
func (e *Extractor) finish(text string) string {
	text = NormalizeEscapes(text)
	if e.filter != nil {
		text = e.filter(text)
	}
	return text
}

func fromSchema(c JsonContent) (string, bool) {
	var b strings.Builder
	if c.Title != "" {
		b.WriteString("# ")
		b.WriteString(c.Title)
		b.WriteString("\n\n")
	}
	if c.Intro != "" {
		b.WriteString(c.Intro)
		b.WriteString("\n\n")
	}
	for _, section := range c.Sections {
		if section.Markdown != "" {
			b.WriteString(section.Markdown)
			b.WriteString("\n")
		}
	}

	if b.Len() == 0 {
		if c.Content != "" {
			return c.Content, true
		}
		return "", false
	}
	return b.String(), true
}

func fromValue(root gjson.Result) (string, bool) {
	if root.Type == gjson.String {
		return root.Str, true
	}

	var b strings.Builder
	switch {
	case root.IsObject():
		for _, key := range contentKeys {
			if value, ok := property(root, key); ok && value.Type == gjson.String && value.Str != "" {
				appendParagraph(&b, value.Str)
			}
		}
		if b.Len() == 0 {
			c := leafCollector{out: &b}
			c.collect(root, "", 0)
		}
	case root.IsArray():
		c := leafCollector{out: &b}
		root.ForEach(func(_, item gjson.Result) bool {
			switch {
			case item.Type == gjson.String:
				if item.Str != "" {
					appendParagraph(&b, item.Str)
				}
			case item.IsObject():
				c.collect(item, "", 1)
			}
			return true
		})
	}

	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// leafCollector gathers string leaves whose key looks like text content.
// Only the first leaf with an unrelated key is kept, so a document with no
// recognisable keys still yields something without dumping every id and
// label in it.
type leafCollector struct {
	out          *strings.Builder
	fallbackUsed bool
}

func (c *leafCollector) collect(node gjson.Result, key string, depth int) {
	if depth > maxLeafDepth {
		return
	}
	if node.IsArray() {
		node.ForEach(func(_, value gjson.Result) bool {
			c.visit(key, value, depth)
			return true
		})
		return
	}
	node.ForEach(func(k, value gjson.Result) bool {
		c.visit(k.Str, value, depth)
		return true
	})
}

func (c *leafCollector) visit(key string, value gjson.Result, depth int) {
	switch {
	case value.Type == gjson.String:
		if strings.TrimSpace(value.Str) == "" {
			return
		}
		if hasIndicator(key, contentKeys) {
			appendParagraph(c.out, value.Str)
		} else if !c.fallbackUsed {
			c.fallbackUsed = true
			appendParagraph(c.out, value.Str)
		}
	case value.IsObject(), value.IsArray():
		c.collect(value, key, depth+1)
	}
}

func appendParagraph(b *strings.Builder, text string) {
	b.WriteString(text)
	b.WriteString("\n\n")
}

// property finds a direct member of obj by exact name.
func property(obj gjson.Result, name string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	obj.ForEach(func(key, value gjson.Result) bool {
		if key.Str == name {
			found = value
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

func hasIndicator(name string, indicators []string) bool {
	lower := strings.ToLower(name)
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
