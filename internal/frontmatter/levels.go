package frontmatter

import (
	"encoding/json"
	"fmt"
)

// Deep is the range selected by `outline: deep`.
var Deep = Levels{Min: 2, Max: 6}

// Range returns the bounds as a pair.
func (l Levels) Range() [2]int { return [2]int{l.Min, l.Max} }

// MarshalYAML writes the shortest spelling that decodes back to l.
func (l Levels) MarshalYAML() (any, error) {
	switch {
	case l.Disabled:
		return false, nil
	case l.Min == l.Max:
		return l.Min, nil
	default:
		return []int{l.Min, l.Max}, nil
	}
}

// UnmarshalJSON accepts the same spellings as the YAML form.
func (l *Levels) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return l.fromAny(v)
}

func (l Levels) MarshalJSON() ([]byte, error) {
	v, _ := l.MarshalYAML()
	return json.Marshal(v)
}

func (l *Levels) fromAny(v any) error {
	switch x := v.(type) {
	case bool:
		if x {
			return fmt.Errorf("invalid outline value true")
		}
		*l = Levels{Disabled: true}
	case string:
		if x != "deep" {
			return fmt.Errorf("invalid outline %q", x)
		}
		*l = Deep
	case float64:
		*l = Levels{Min: int(x), Max: int(x)}
	case []any:
		if len(x) != 2 {
			return fmt.Errorf("outline range must be two integers")
		}
		lo, ok1 := x[0].(float64)
		hi, ok2 := x[1].(float64)
		if !ok1 || !ok2 {
			return fmt.Errorf("outline range must be two integers")
		}
		*l = Levels{Min: int(lo), Max: int(hi)}
	case map[string]any:
		if lv, ok := x["level"]; ok {
			return l.fromAny(lv)
		}
	default:
		return fmt.Errorf("invalid outline value")
	}
	return nil
}
