package head

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either the mapping form
//
//	- tag: link
//	  attrs: {rel: icon, href: /favicon.ico}
//
// or the tuple form
//
//	- [link, {rel: icon, href: /favicon.ico}]
func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) < 1 || len(node.Content) > 3 {
			return fmt.Errorf("line %d: head tuple needs 1 to 3 elements", node.Line)
		}
		t.Name = node.Content[0].Value
		if len(node.Content) > 1 {
			attrs, err := yamlAttrs(node.Content[1])
			if err != nil {
				return err
			}
			t.Attrs = attrs
		}
		if len(node.Content) > 2 {
			t.Content = node.Content[2].Value
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			switch k.Value {
			case "tag":
				t.Name = v.Value
			case "content":
				t.Content = v.Value
			case "attrs":
				attrs, err := yamlAttrs(v)
				if err != nil {
					return err
				}
				t.Attrs = attrs
			default:
				return fmt.Errorf("line %d: unknown head field %q", k.Line, k.Value)
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: head entry must be a mapping or a sequence", node.Line)
	}
}

func yamlAttrs(node *yaml.Node) ([]Attr, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: head attributes must be a mapping", node.Line)
	}
	attrs := make([]Attr, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: head attribute %q must be a scalar", v.Line, k.Value)
		}
		attrs = append(attrs, Attr{Key: k.Value, Val: v.Value})
	}
	return attrs, nil
}

// MarshalYAML writes the mapping form, keeping attribute order.
func (t Tag) MarshalYAML() (any, error) {
	attrs := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range t.Attrs {
		attrs.Content = append(attrs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Val, Tag: "!!str"})
	}
	out := &yaml.Node{Kind: yaml.MappingNode}
	out.Content = append(out.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "tag"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: t.Name},
		&yaml.Node{Kind: yaml.ScalarNode, Value: "attrs"},
		attrs)
	if t.Content != "" {
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "content"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: t.Content})
	}
	return out, nil
}

// UnmarshalJSON accepts {"tag":..,"attrs":{..},"content":..} or [tag, {attrs}, content].
func (t *Tag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var parts []json.RawMessage
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) < 1 || len(parts) > 3 {
			return fmt.Errorf("head tuple needs 1 to 3 elements, got %d", len(parts))
		}
		if err := json.Unmarshal(parts[0], &t.Name); err != nil {
			return fmt.Errorf("head tag name: %w", err)
		}
		if len(parts) > 1 {
			attrs, err := jsonAttrs(parts[1])
			if err != nil {
				return err
			}
			t.Attrs = attrs
		}
		if len(parts) > 2 {
			if err := json.Unmarshal(parts[2], &t.Content); err != nil {
				return fmt.Errorf("head content: %w", err)
			}
		}
		return nil
	}

	var obj struct {
		Tag     string          `json:"tag"`
		Attrs   json.RawMessage `json:"attrs"`
		Content string          `json:"content"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Name, t.Content = obj.Tag, obj.Content
	if len(obj.Attrs) > 0 {
		attrs, err := jsonAttrs(obj.Attrs)
		if err != nil {
			return err
		}
		t.Attrs = attrs
	}
	return nil
}

// jsonAttrs decodes an object keeping key order. Values must be scalars;
// numbers keep their literal spelling.
func jsonAttrs(raw json.RawMessage) ([]Attr, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("head attributes must be an object")
	}
	var attrs []Attr
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := kt.(string)
		var val any
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		s, err := scalarString(val)
		if err != nil {
			return nil, fmt.Errorf("head attribute %q: %w", key, err)
		}
		attrs = append(attrs, Attr{Key: key, Val: s})
	}
	return attrs, nil
}

func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("value must be a string, number or boolean, got %T", v)
	}
}

// MarshalJSON writes the tuple form with attributes in configuration order.
func (t Tag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	name, _ := json.Marshal(t.Name)
	buf.WriteByte('[')
	buf.Write(name)
	buf.WriteString(",{")
	for i, a := range t.Attrs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(a.Key)
		v, _ := json.Marshal(a.Val)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	if t.Content != "" {
		c, _ := json.Marshal(t.Content)
		buf.WriteByte(',')
		buf.Write(c)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
