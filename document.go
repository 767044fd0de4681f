package themekit

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DocumentTemplates exposes the built-in document shell templates so callers
// can reuse or replace them.
func DocumentTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// DocumentMeta holds the document level values that are not part of the
// page itself.
type DocumentMeta struct {
	Title string
	Lang  string
}

var (
	documentOnce   sync.Once
	documentEngine *gotemplate.Engine
	documentErr    error
)

// RenderDocument wraps a rendered page in a standalone HTML document with the
// page styles inlined in the head and the page scripts at the end of the
// body.
func RenderDocument(page Page, meta DocumentMeta) (string, error) {
	documentOnce.Do(func() {
		documentEngine, documentErr = gotemplate.New(
			gotemplate.WithFS(DocumentTemplates()),
			gotemplate.WithGlobalData(map[string]any{"generator": "themekit"}),
		)
	})
	if documentErr != nil {
		return "", fmt.Errorf("themekit: document templates: %w", documentErr)
	}

	lang := strings.TrimSpace(meta.Lang)
	if lang == "" {
		lang = "en"
	}
	out, err := documentEngine.RenderTemplate("document", map[string]any{
		"title":   meta.Title,
		"lang":    lang,
		"theme":   page.ThemeID,
		"variant": page.Variant,
		"body":    page.Markup,
		"styles":  markup.HTML(page.Styles),
		"scripts": markup.HTML(page.Scripts),
	})
	if err != nil {
		return "", fmt.Errorf("themekit: render document: %w", err)
	}
	return out, nil
}
