package template

import (
	"io"
)

// TemplateRenderer is the contract manifest themes and the CLI document shell
// render through. Render accepts either a template name or inline template
// content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
