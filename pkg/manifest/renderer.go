package manifest

import (
	"fmt"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/node"
	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/render/template"
)

// TemplateRenderer renders a node through an inline pongo2 template.
//
// Templates see the node payload fields plus:
//
//	children  the node's rendered children (safe markup)
//	node      {type, path}
//	theme     the active theme id
//	token     token("name") returns a design token
//	asset     asset("key") returns a theme asset URL
//	uid       uid("prefix") returns a page-unique id
type TemplateRenderer struct {
	Engine template.TemplateRenderer
	Source string
}

var _ render.Renderer = TemplateRenderer{}

// Render implements render.Renderer.
func (r TemplateRenderer) Render(n *node.Node, ctx *render.Context) (markup.HTML, error) {
	if r.Engine == nil {
		return "", fmt.Errorf("manifest: template engine is nil")
	}

	data := make(map[string]any, len(n.Payload)+6)
	for key, value := range n.Payload {
		data[key] = value
	}
	data["children"] = ctx.RenderChildren(n)
	data["node"] = map[string]any{
		"type": n.Type,
		"path": render.FormatPath(ctx.Path()),
	}
	data["theme"] = ctx.ThemeID()
	data["token"] = ctx.Token
	data["asset"] = ctx.AssetURL
	data["uid"] = ctx.Sequence

	out, err := r.Engine.RenderString(r.Source, data)
	if err != nil {
		return "", fmt.Errorf("manifest: render %s: %w", n.Type, err)
	}
	return markup.HTML(out), nil
}
