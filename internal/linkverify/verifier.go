package linkverify

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/outline"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem with a link.
type Finding struct {
	Link     Link
	Severity Severity
	Message  string
	// File is the page the target resolved to, if any.
	File string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %q -> %s: %s", f.Severity, f.Link.Source, f.Link.Text, f.Link.Target, f.Message)
}

// Report is the result of Verify.
type Report struct {
	Findings []Finding
	Checked  int
	Skipped  int
}

// HasErrors reports whether any finding has SeverityError.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Verifier resolves link targets against a docs tree. It caches parsed pages
// and is not safe for concurrent use.
type Verifier struct {
	docs    fs.FS
	outline site.Outline
	pages   map[string]*page
}

type page struct {
	headings []outline.Heading
	levels   outline.Range
	hidden   bool
}

// NewVerifier returns a verifier over docs. siteOutline supplies the default
// outline levels; pages may override them in frontmatter.
func NewVerifier(docs fs.FS, siteOutline site.Outline) *Verifier {
	return &Verifier{docs: docs, outline: siteOutline, pages: make(map[string]*page)}
}

// Verify checks every link. External links, in-page anchors and items without
// a target are counted as skipped. A context cancellation stops the run and is
// returned with the partial report.
func (v *Verifier) Verify(ctx context.Context, links []Link) (*Report, error) {
	r := &Report{}
	for _, l := range links {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if l.Target == "" || sidebar.IsExternal(l.Target) || strings.HasPrefix(l.Target, "#") {
			r.Skipped++
			continue
		}
		r.Checked++
		if f, bad := v.check(l); bad {
			slog.Debug("Link problem", logfields.Path(l.Target), slog.String("message", f.Message))
			r.Findings = append(r.Findings, f)
		}
	}
	slog.Info("Link verification finished",
		slog.Int("checked", r.Checked),
		slog.Int("skipped", r.Skipped),
		logfields.Count(len(r.Findings)))
	return r, nil
}

func (v *Verifier) check(l Link) (Finding, bool) {
	file, ok := v.locate(l.Target)
	if !ok {
		return Finding{Link: l, Severity: SeverityError, Message: "page not found"}, true
	}
	frag := sidebar.Fragment(l.Target)
	if frag == "" {
		return Finding{}, false
	}

	p, err := v.page(file)
	if err != nil {
		return Finding{Link: l, Severity: SeverityError, File: file, Message: err.Error()}, true
	}
	var h *outline.Heading
	for i := range p.headings {
		if p.headings[i].Anchor == frag {
			h = &p.headings[i]
			break
		}
	}
	switch {
	case h == nil:
		return Finding{Link: l, Severity: SeverityError, File: file, Message: fmt.Sprintf("anchor #%s not found", frag)}, true
	case p.hidden || !p.levels.Contains(h.Level):
		return Finding{Link: l, Severity: SeverityWarning, File: file, Message: fmt.Sprintf("anchor #%s is not in the page outline", frag)}, true
	}
	return Finding{}, false
}

// Candidates returns the markdown files a link target may refer to, in
// lookup order: /guide/x maps to guide/x.md then guide/x/index.md and / maps
// to index.md. A .html or .md suffix on the target is ignored.
func Candidates(target string) []string {
	p := target
	if i := strings.IndexAny(p, "#?"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSuffix(strings.TrimSuffix(p, ".html"), ".md")
	p = sidebar.NormalizePath(p)
	if p == sidebar.Root {
		return []string{"index.md"}
	}
	rel := strings.TrimPrefix(p, "/")
	return []string{rel + ".md", path.Join(rel, "index.md")}
}

func (v *Verifier) locate(target string) (string, bool) {
	for _, c := range Candidates(target) {
		if st, err := fs.Stat(v.docs, c); err == nil && !st.IsDir() {
			return c, true
		}
	}
	return "", false
}

func (v *Verifier) page(file string) (*page, error) {
	if p, ok := v.pages[file]; ok {
		return p, nil
	}
	data, err := fs.ReadFile(v.docs, file)
	if err != nil {
		return nil, err
	}
	fm, body, err := frontmatter.Parse(data)
	if errors.Is(err, frontmatter.ErrMissingClosingDelimiter) {
		body, fm = data, frontmatter.Page{}
	} else if err != nil {
		return nil, err
	}

	p := &page{
		headings: outline.Extract(body),
		levels:   outline.Range{Min: v.outline.Level[0], Max: v.outline.Level[1]},
		hidden:   v.outline.Disabled,
	}
	if o := fm.Outline; o != nil {
		p.hidden = o.Disabled
		if !o.Disabled {
			p.levels = outline.Range{Min: o.Min, Max: o.Max}
		}
	}
	v.pages[file] = p
	return p, nil
}
