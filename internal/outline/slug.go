package outline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	rControl   = regexp.MustCompile(`[\x{0000}-\x{001f}]`)
	rSpecial   = regexp.MustCompile("[\\s~`" + `!@#$%^&*()\-_+=\[\]{}|\\;:"'“”‘’<>,.?/]+`)
	rDashes    = regexp.MustCompile(`-{2,}`)
	rLeadDigit = regexp.MustCompile(`^(\d)`)
	stripMarks = runes.Remove(runes.In(unicode.Mn))
)

// Slugify turns heading text into the anchor id the rendering engine assigns.
// Text is NFKD-decomposed with combining marks removed, punctuation and
// whitespace runs become "-", and a leading digit is prefixed with "_".
func Slugify(s string) string {
	t := transform.Chain(norm.NFKD, stripMarks)
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}
	out := rControl.ReplaceAllString(decomposed, "")
	out = rSpecial.ReplaceAllString(out, "-")
	out = rDashes.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	out = rLeadDigit.ReplaceAllString(out, "_$1")
	return strings.ToLower(out)
}

// Slugger hands out unique slugs within one page: repeats get "-1", "-2", ...
type Slugger struct {
	seen map[string]int
}

// NewSlugger returns an empty Slugger.
func NewSlugger() *Slugger {
	return &Slugger{seen: make(map[string]int)}
}

// Slug returns a unique slug for text.
func (s *Slugger) Slug(text string) string {
	return s.Reserve(Slugify(text))
}

// Reserve records an explicit id and returns it, made unique if already taken.
func (s *Slugger) Reserve(id string) string {
	n, taken := s.seen[id]
	if !taken {
		s.seen[id] = 0
		return id
	}
	for {
		n++
		candidate := id + "-" + strconv.Itoa(n)
		if _, clash := s.seen[candidate]; !clash {
			s.seen[id] = n
			s.seen[candidate] = 0
			return candidate
		}
	}
}
