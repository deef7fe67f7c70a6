// Package sidebar selects the sidebar tree shown beside a documentation page.
//
// A Table is an ordered list of (prefix, tree) entries with a mandatory catch-all
// entry for "/". Resolve normalizes the requested page path and returns the tree
// of the entry with the longest prefix that is a literal string prefix of that
// path; equal lengths go to the entry declared first. Tables are validated once by
// NewTable and are immutable afterwards, so a *Table can be shared freely between
// goroutines.
package sidebar
