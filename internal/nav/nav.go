// Package nav models the top navigation bar: an ordered list of links and
// single-level dropdowns.
package nav

import (
	"errors"
	"fmt"
)

// Item is either a Link or a Dropdown.
type Item interface {
	Label() string
	isItem()
}

// Link navigates to Link. ActiveMatch is an opaque pattern the rendering engine
// uses to highlight the item.
type Link struct {
	Text        string
	Link        string
	ActiveMatch string
}

// Dropdown groups links under a label. Dropdowns do not nest.
type Dropdown struct {
	Text  string
	Items []Link
}

func (l Link) Label() string     { return l.Text }
func (d Dropdown) Label() string { return d.Text }
func (Link) isItem()             {}
func (Dropdown) isItem()         {}

// Bar is the top navigation bar in display order.
type Bar []Item

// Links flattens the bar into every link target in display order.
func (b Bar) Links() []Link {
	var out []Link
	for _, it := range b {
		switch v := it.(type) {
		case Link:
			out = append(out, v)
		case Dropdown:
			out = append(out, v.Items...)
		}
	}
	return out
}

// Validate checks labels and targets and reports every problem found.
func (b Bar) Validate() error {
	var errs []error
	for i, it := range b {
		switch v := it.(type) {
		case Link:
			errs = append(errs, validateLink(fmt.Sprintf("nav[%d]", i), v))
		case Dropdown:
			where := fmt.Sprintf("nav[%d]", i)
			if v.Text == "" {
				errs = append(errs, fmt.Errorf("%s: dropdown text is empty", where))
			}
			if len(v.Items) == 0 {
				errs = append(errs, fmt.Errorf("%s: dropdown %q has no items", where, v.Text))
			}
			for j, l := range v.Items {
				errs = append(errs, validateLink(fmt.Sprintf("%s.items[%d]", where, j), l))
			}
		case nil:
			errs = append(errs, fmt.Errorf("nav[%d]: nil item", i))
		}
	}
	return errors.Join(errs...)
}

func validateLink(where string, l Link) error {
	switch {
	case l.Text == "":
		return fmt.Errorf("%s: link text is empty", where)
	case l.Link == "":
		return fmt.Errorf("%s: link %q has no target", where, l.Text)
	}
	return nil
}
