package detail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/valyala/fastjson"
	"go.yaml.in/yaml/v3"

	"evtxview/internal/app/errors"
	"evtxview/internal/config"
)

// Renderer turns record payloads into detail text
type Renderer struct {
	parsers fastjson.ParserPool
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render formats payload as indented JSON or as YAML. Key order is preserved.
func (r *Renderer) Render(payload []byte, format string) (string, error) {
	switch format {
	case config.DetailFormatJSON:
		return r.json(payload)
	case config.DetailFormatYAML:
		return r.yaml(payload)
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrInvalidDetailFormat, format)
	}
}

func (r *Renderer) json(payload []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrMalformedRecord, err)
	}

	return buf.String(), nil
}

func (r *Renderer) yaml(payload []byte) (string, error) {
	p := r.parsers.Get()
	defer r.parsers.Put(p)

	v, err := p.ParseBytes(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrMalformedRecord, err)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(toNode(v)); err != nil {
		return "", err
	}

	if err := enc.Close(); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

func toNode(v *fastjson.Value) *yaml.Node {
	switch v.Type() {
	case fastjson.TypeObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		obj, _ := v.Object()
		obj.Visit(func(key []byte, val *fastjson.Value) {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(key)},
				toNode(val),
			)
		})

		return n
	case fastjson.TypeArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		items, _ := v.Array()
		for _, item := range items {
			n.Content = append(n.Content, toNode(item))
		}

		return n
	case fastjson.TypeString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v.GetStringBytes())}
	case fastjson.TypeNumber:
		raw := v.String()
		if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: raw}
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: raw}
	case fastjson.TypeTrue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
	case fastjson.TypeFalse:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// Wrap breaks text at word boundaries so no line exceeds width columns. Words longer
// than width are split.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	return wrap.String(wordwrap.String(text, width), width)
}

// Lines returns the number of lines in text
func Lines(text string) int {
	if text == "" {
		return 0
	}

	return strings.Count(text, "\n") + 1
}
