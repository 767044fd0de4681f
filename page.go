package themekit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-themekit/pkg/node"
)

// pageDocument is the on-disk shape of a page: one optional payload per slot
// plus the article content tree.
type pageDocument struct {
	Theme      string         `json:"theme" yaml:"theme"`
	Variant    string         `json:"variant" yaml:"variant"`
	Header     map[string]any `json:"header" yaml:"header"`
	Navigation map[string]any `json:"navigation" yaml:"navigation"`
	Article    map[string]any `json:"article" yaml:"article"`
	Footer     map[string]any `json:"footer" yaml:"footer"`
	Content    []any          `json:"content" yaml:"content"`
}

// ParsePage decodes a JSON or YAML page document into a render request.
// Slots absent from the document stay nil and are skipped when the page
// renders.
func ParsePage(data []byte, options ...node.DecodeOption) (Request, error) {
	var doc pageDocument
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Request{}, errors.New("themekit: page document is empty")
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return Request{}, fmt.Errorf("themekit: decode page json: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return Request{}, fmt.Errorf("themekit: decode page yaml: %w", err)
	}

	content, err := node.FromValue(contentValue(doc.Content), options...)
	if err != nil {
		return Request{}, fmt.Errorf("themekit: page content: %w", err)
	}

	return Request{
		ThemeID:    doc.Theme,
		Variant:    doc.Variant,
		Header:     payload(doc.Header),
		Navigation: payload(doc.Navigation),
		Article:    payload(doc.Article),
		Footer:     payload(doc.Footer),
		Content:    content,
	}, nil
}

// LoadPage reads and decodes a page document from fsys.
func LoadPage(fsys fs.FS, path string, options ...node.DecodeOption) (Request, error) {
	if fsys == nil {
		return Request{}, errors.New("themekit: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Request{}, fmt.Errorf("themekit: read %s: %w", path, err)
	}
	req, err := ParsePage(data, options...)
	if err != nil {
		return Request{}, fmt.Errorf("%w (%s)", err, path)
	}
	return req, nil
}

func payload(in map[string]any) node.Payload {
	if in == nil {
		return nil
	}
	return node.Payload(in)
}

func contentValue(items []any) any {
	if items == nil {
		return nil
	}
	return items
}
