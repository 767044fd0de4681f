package node

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultChildrenKey is the payload field that carries child nodes.
const DefaultChildrenKey = "children"

const typeKey = "type"

// DecodeOption customises decoding.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	childrenKey string
}

// WithChildrenKey selects the field that holds child nodes, for content
// sources that use a different name (for example "blocks").
func WithChildrenKey(key string) DecodeOption {
	return func(cfg *decodeConfig) {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			cfg.childrenKey = trimmed
		}
	}
}

// Parse decodes a JSON or YAML document holding a list of nodes.
func Parse(data []byte, options ...DecodeOption) ([]*Node, error) {
	raw, err := unmarshal(data)
	if err != nil {
		return nil, err
	}
	return FromValue(raw, options...)
}

// LoadFS reads and decodes a node document from fsys.
func LoadFS(fsys fs.FS, path string, options ...DecodeOption) ([]*Node, error) {
	if fsys == nil {
		return nil, errors.New("node: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("node: read %s: %w", path, err)
	}
	nodes, err := Parse(data, options...)
	if err != nil {
		return nil, fmt.Errorf("node: %s: %w", path, err)
	}
	return nodes, nil
}

// FromValue converts an already decoded value (a list of objects, as
// produced by encoding/json or yaml.v3) into nodes.
func FromValue(raw any, options ...DecodeOption) ([]*Node, error) {
	cfg := decodeConfig{childrenKey: DefaultChildrenKey}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if raw == nil {
		return nil, nil
	}
	return decodeList(raw, cfg, "$")
}

func unmarshal(data []byte) (any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("node: document is empty")
	}

	var out any
	if err := json.Unmarshal(data, &out); err == nil {
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("node: parse document: invalid JSON or YAML: %w", err)
	}
	return normalizeYAML(out), nil
}

func decodeList(raw any, cfg decodeConfig, path string) ([]*Node, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("node: %s must be a list of nodes", path)
	}
	out := make([]*Node, 0, len(items))
	for idx, item := range items {
		n, err := decodeNode(item, cfg, path+"["+strconv.Itoa(idx)+"]")
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeNode(raw any, cfg decodeConfig, path string) (*Node, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("node: %s must be an object", path)
	}

	typ, _ := obj[typeKey].(string)
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return nil, fmt.Errorf("node: %s is missing a type", path)
	}

	n := &Node{Type: typ, Payload: make(Payload, len(obj))}
	for key, value := range obj {
		switch key {
		case typeKey:
			continue
		case cfg.childrenKey:
			if value == nil {
				continue
			}
			children, err := decodeList(value, cfg, path+"."+key)
			if err != nil {
				return nil, err
			}
			n.Children = children
		default:
			n.Payload[key] = value
		}
	}
	return n, nil
}

// normalizeYAML converts map[any]any nodes that yaml can produce for
// non-string keys into map[string]any so payload accessors behave the same as
// for JSON input.
func normalizeYAML(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalizeYAML(item)
		}
		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case []any:
		for idx, item := range typed {
			typed[idx] = normalizeYAML(item)
		}
		return typed
	default:
		return value
	}
}
