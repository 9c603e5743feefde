package markup

import (
	"path"
	"strings"
)

const (
	imageDir        = "assets/images/"
	defaultImageAlt = "Image"
)

// ImageOptions controls the generated image snippet.
type ImageOptions struct {
	Alt   string
	Align string
	Width string
}

// ImageMarkdown builds an image reference for a picked file. Only the file
// name is kept; images are expected under assets/images/. Alignment and
// width become an attribute block, e.g.
//
//	![Image](assets/images/cat.png){ align=right width=40% }
func ImageMarkdown(filePath string, opts ImageOptions) string {
	name := path.Base(strings.ReplaceAll(filePath, `\`, "/"))
	alt := opts.Alt
	if alt == "" {
		alt = defaultImageAlt
	}

	var b strings.Builder
	b.WriteString("![")
	b.WriteString(alt)
	b.WriteString("](")
	b.WriteString(imageDir)
	b.WriteString(name)
	b.WriteString(")")

	var attrs []string
	if opts.Align != "" {
		attrs = append(attrs, "align="+opts.Align)
	}
	if opts.Width != "" {
		attrs = append(attrs, "width="+opts.Width)
	}
	if len(attrs) > 0 {
		b.WriteString("{ ")
		b.WriteString(strings.Join(attrs, " "))
		b.WriteString(" }")
	}
	return b.String()
}
