package sidebar

import "strings"

// Root is the catch-all prefix.
const Root = "/"

// NormalizePath returns the canonical form of a page path used for matching.
//
// The fragment and query are dropped, a leading "/" is added when missing, and
// trailing "/" and "/index" segments are removed. The empty string becomes "/".
func NormalizePath(p string) string {
	if i := strings.IndexAny(p, "#?"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for {
		switch {
		case len(p) > 1 && strings.HasSuffix(p, "/"):
			p = p[:len(p)-1]
		case strings.HasSuffix(p, "/index"):
			p = strings.TrimSuffix(p, "/index")
			if p == "" {
				return Root
			}
		default:
			return p
		}
	}
}

// IsExternal reports whether link points outside the site.
func IsExternal(link string) bool {
	if strings.HasPrefix(link, "//") || strings.HasPrefix(link, "mailto:") {
		return true
	}
	i := strings.Index(link, "://")
	return i > 0 && !strings.ContainsAny(link[:i], "/?#")
}

// Fragment returns the part of link after '#', or "".
func Fragment(link string) string {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		return link[i+1:]
	}
	return ""
}
