package jsonmd

import "github.com/tidwall/gjson"

// decodeSchema reads root as a JsonContent document. Keys match exactly,
// so "Title" or "CONTENT" are ordinary properties left to the generic
// search. Unknown keys are ignored and null counts as absent; a known key
// holding the wrong type rejects the whole document. When a key repeats,
// the last occurrence wins.
func decodeSchema(root gjson.Result) (JsonContent, bool) {
	var c JsonContent
	if !root.IsObject() {
		return c, false
	}

	ok := true
	root.ForEach(func(key, value gjson.Result) bool {
		switch key.Str {
		case "title":
			c.Title, ok = schemaString(value)
		case "intro":
			c.Intro, ok = schemaString(value)
		case "content":
			c.Content, ok = schemaString(value)
		case "meta":
			c.Meta, ok = schemaMeta(value)
		case "sections":
			c.Sections, ok = schemaSections(value)
		}
		return ok
	})
	if !ok {
		return JsonContent{}, false
	}
	return c, true
}

func schemaString(v gjson.Result) (string, bool) {
	switch v.Type {
	case gjson.Null:
		return "", true
	case gjson.String:
		return v.Str, true
	default:
		return "", false
	}
}

func schemaMeta(v gjson.Result) (*MetaData, bool) {
	if v.Type == gjson.Null {
		return nil, true
	}
	if !v.IsObject() {
		return nil, false
	}

	meta := &MetaData{}
	ok := true
	v.ForEach(func(key, value gjson.Result) bool {
		switch key.Str {
		case "title":
			meta.Title, ok = schemaString(value)
		case "description":
			meta.Description, ok = schemaString(value)
		case "keywords":
			meta.Keywords, ok = schemaStrings(value)
		}
		return ok
	})
	return meta, ok
}

func schemaStrings(v gjson.Result) ([]string, bool) {
	if v.Type == gjson.Null {
		return nil, true
	}
	if !v.IsArray() {
		return nil, false
	}

	out := []string{}
	ok := true
	v.ForEach(func(_, item gjson.Result) bool {
		var s string
		s, ok = schemaString(item)
		out = append(out, s)
		return ok
	})
	return out, ok
}

func schemaSections(v gjson.Result) ([]Section, bool) {
	if v.Type == gjson.Null {
		return nil, true
	}
	if !v.IsArray() {
		return nil, false
	}

	out := []Section{}
	ok := true
	v.ForEach(func(_, item gjson.Result) bool {
		var section Section
		switch {
		case item.Type == gjson.Null:
		case item.IsObject():
			item.ForEach(func(key, value gjson.Result) bool {
				if key.Str == "markdown" {
					section.Markdown, ok = schemaString(value)
				}
				return ok
			})
		default:
			ok = false
		}
		out = append(out, section)
		return ok
	})
	return out, ok
}
