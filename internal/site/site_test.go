package site

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/docsite/internal/sidebar"
)

func testSite(title string) *Site {
	root := &sidebar.Tree{Groups: []sidebar.Group{{Text: title}}}
	guide := &sidebar.Tree{Groups: []sidebar.Group{{Text: "Guide"}}}
	return &Site{
		Title: title,
		Sidebar: sidebar.MustTable(
			sidebar.Entry{Prefix: "/", Tree: root},
			sidebar.Entry{Prefix: "/guide", Tree: guide},
		),
	}
}

func TestSidebarFor(t *testing.T) {
	s := testSite("Home")
	assert.Equal(t, "Guide", s.SidebarFor("/guide/intro").Groups[0].Text)
	assert.Equal(t, "Home", s.SidebarFor("/").Groups[0].Text)
	assert.Same(t, s.SidebarFor("/guide/a"), s.SidebarFor("/guide/b"))
}

func TestSidebarMatchAndPager(t *testing.T) {
	guide := &sidebar.Tree{Groups: []sidebar.Group{{Text: "Guide", Items: []sidebar.Item{
		{Text: "Intro", Link: "/guide/intro"},
		{Text: "Setup", Link: "/guide/setup"},
	}}}}
	s := &Site{Sidebar: sidebar.MustTable(
		sidebar.Entry{Prefix: "/", Tree: &sidebar.Tree{}},
		sidebar.Entry{Prefix: "/guide/", Tree: guide},
	)}

	m := s.SidebarMatch("/guide/setup#options")
	assert.Equal(t, "/guide", m.Prefix)
	assert.Same(t, guide, m.Tree)
	assert.False(t, m.CatchAll)

	pg := s.PagerFor("/guide/setup/")
	if assert.NotNil(t, pg.Prev) {
		assert.Equal(t, "Intro", pg.Prev.Text)
	}
	assert.Nil(t, pg.Next)
	assert.Equal(t, sidebar.Pager{}, s.PagerFor("/elsewhere"))
}

func TestCurrentSwap(t *testing.T) {
	a, b := testSite("A"), testSite("B")
	c := NewCurrent(a)
	first := c.LoadedAt()

	held := c.Load()
	c.Store(b)

	assert.Same(t, a, held, "a reader keeps the value it loaded")
	assert.Same(t, b, c.Load())
	assert.False(t, c.LoadedAt().Before(first))
}

func TestCurrentConcurrentReaders(t *testing.T) {
	c := NewCurrent(testSite("A"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := c.Load()
				assert.NotNil(t, s.SidebarFor("/guide/x"))
			}
		}()
	}
	for i := 0; i < 10; i++ {
		c.Store(testSite("B"))
	}
	wg.Wait()
}
