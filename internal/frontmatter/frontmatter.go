// Package frontmatter separates YAML frontmatter from a markdown page and reads
// the page-level settings that affect link checking.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens frontmatter but never closes it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// Split separates `---` delimited frontmatter from the markdown body. When the
// document has no frontmatter, fm is nil and body is the whole input.
func Split(content []byte) (fm []byte, body []byte, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], nil
	}

	closeSeq := []byte(nl + "---")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		return nil, nil, ErrMissingClosingDelimiter
	}
	after := rest[idx+len(closeSeq):]
	switch {
	case len(after) == 0:
	case bytes.HasPrefix(after, []byte(nl)):
		after = after[len(nl):]
	default:
		return nil, nil, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], after, nil
}

// Page holds the frontmatter fields docsite reads.
type Page struct {
	Title string `yaml:"title"`
	// Outline is the heading range shown in the page outline; nil means the
	// site default. `outline: false` disables it, `outline: 2` or
	// `outline: [2, 3]` pick levels and `outline: deep` means [2, 6].
	Outline *Levels `yaml:"outline"`
}

// Levels is a heading level range. Disabled is set by `outline: false`.
type Levels struct {
	Min, Max int
	Disabled bool
}

// UnmarshalYAML decodes the accepted outline spellings.
func (l *Levels) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Value {
		case "false":
			*l = Levels{Disabled: true}
			return nil
		case "deep":
			*l = Deep
			return nil
		}
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: invalid outline %q", node.Line, node.Value)
		}
		*l = Levels{Min: n, Max: n}
		return nil
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil || len(pair) != 2 {
			return fmt.Errorf("line %d: outline range must be two integers", node.Line)
		}
		*l = Levels{Min: pair[0], Max: pair[1]}
		return nil
	case yaml.MappingNode:
		var obj struct {
			Level *Levels `yaml:"level"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		if obj.Level != nil {
			*l = *obj.Level
		}
		return nil
	default:
		return fmt.Errorf("line %d: invalid outline value", node.Line)
	}
}

// Parse splits content and decodes its frontmatter. Pages without frontmatter
// yield a zero Page.
func Parse(content []byte) (Page, []byte, error) {
	fm, body, err := Split(content)
	if err != nil {
		return Page{}, nil, err
	}
	var p Page
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &p); err != nil {
			return Page{}, nil, fmt.Errorf("frontmatter: %w", err)
		}
	}
	return p, body, nil
}
