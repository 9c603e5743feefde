// Package jsonmd recovers editable Markdown from loosely structured JSON and
// turns Markdown back into a JSON string literal.
//
// Extraction never reports parse errors. Input that matches the known
// JsonContent shape is assembled field by field; anything else is searched
// heuristically; input that yields no text at all is handed back unchanged.
package jsonmd
