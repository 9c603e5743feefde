package jsonmd

// JsonContent is the known document shape produced by content tools.
// Every field is optional.
type JsonContent struct {
	Title    string    `json:"title,omitempty"`
	Intro    string    `json:"intro,omitempty"`
	Meta     *MetaData `json:"meta,omitempty"`
	Sections []Section `json:"sections,omitempty"`
	Content  string    `json:"content,omitempty"`
}

// MetaData holds page metadata carried next to the content.
type MetaData struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Section is one Markdown block of a JsonContent document.
type Section struct {
	Markdown string `json:"markdown,omitempty"`
}

// MarkdownSection is a block of text discovered somewhere in a JSON tree.
// Title is the path where it was found, e.g. "sections[2].body".
type MarkdownSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
