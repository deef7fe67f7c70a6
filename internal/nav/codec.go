package nav

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawItem is the on-disk form: an entry with an items list is a dropdown.
type rawItem struct {
	Text        string     `yaml:"text" json:"text"`
	Link        string     `yaml:"link,omitempty" json:"link,omitempty"`
	ActiveMatch string     `yaml:"active_match,omitempty" json:"activeMatch,omitempty"`
	Items       *[]rawItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// wireItem is the exported form with an explicit discriminator.
type wireItem struct {
	Type        string     `json:"type"`
	Text        string     `json:"text"`
	Link        string     `json:"link,omitempty"`
	ActiveMatch string     `json:"activeMatch,omitempty"`
	Items       []wireItem `json:"items,omitempty"`
}

const (
	typeLink     = "link"
	typeDropdown = "dropdown"
)

func fromRaw(raws []rawItem) (Bar, error) {
	bar := make(Bar, 0, len(raws))
	for i, r := range raws {
		if r.Items == nil {
			bar = append(bar, Link{Text: r.Text, Link: r.Link, ActiveMatch: r.ActiveMatch})
			continue
		}
		if r.Link != "" {
			return nil, fmt.Errorf("nav[%d]: %q has both link and items", i, r.Text)
		}
		d := Dropdown{Text: r.Text, Items: make([]Link, 0, len(*r.Items))}
		for j, c := range *r.Items {
			if c.Items != nil {
				return nil, fmt.Errorf("nav[%d].items[%d]: %q nests a dropdown inside a dropdown", i, j, c.Text)
			}
			d.Items = append(d.Items, Link{Text: c.Text, Link: c.Link, ActiveMatch: c.ActiveMatch})
		}
		bar = append(bar, d)
	}
	return bar, nil
}

func (b Bar) toRaw() []rawItem {
	out := make([]rawItem, 0, len(b))
	for _, it := range b {
		switch v := it.(type) {
		case Link:
			out = append(out, rawItem{Text: v.Text, Link: v.Link, ActiveMatch: v.ActiveMatch})
		case Dropdown:
			children := make([]rawItem, 0, len(v.Items))
			for _, l := range v.Items {
				children = append(children, rawItem{Text: l.Text, Link: l.Link, ActiveMatch: l.ActiveMatch})
			}
			out = append(out, rawItem{Text: v.Text, Items: &children})
		}
	}
	return out
}

// UnmarshalYAML decodes the configuration form.
func (b *Bar) UnmarshalYAML(value *yaml.Node) error {
	var raws []rawItem
	if err := value.Decode(&raws); err != nil {
		return err
	}
	bar, err := fromRaw(raws)
	if err != nil {
		return err
	}
	*b = bar
	return nil
}

// MarshalYAML encodes the configuration form.
func (b Bar) MarshalYAML() (any, error) {
	return b.toRaw(), nil
}

// UnmarshalJSON accepts both the configuration form and the exported form; the
// "type" field of the latter is ignored.
func (b *Bar) UnmarshalJSON(data []byte) error {
	var raws []rawItem
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	bar, err := fromRaw(raws)
	if err != nil {
		return err
	}
	*b = bar
	return nil
}

// MarshalJSON encodes the exported form, tagging every item with its type.
func (b Bar) MarshalJSON() ([]byte, error) {
	out := make([]wireItem, 0, len(b))
	for _, it := range b {
		switch v := it.(type) {
		case Link:
			out = append(out, linkWire(v))
		case Dropdown:
			w := wireItem{Type: typeDropdown, Text: v.Text, Items: make([]wireItem, 0, len(v.Items))}
			for _, l := range v.Items {
				w.Items = append(w.Items, linkWire(l))
			}
			out = append(out, w)
		}
	}
	return json.Marshal(out)
}

func linkWire(l Link) wireItem {
	return wireItem{Type: typeLink, Text: l.Text, Link: l.Link, ActiveMatch: l.ActiveMatch}
}
