//go:build !wasm
// +build !wasm

package components

import (
	"testing"

	"github.com/vcrobe/nojs-effects/events"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/vdom"
)

type recordingNav struct {
	paths []string
}

func (n *recordingNav) Navigate(path string) error {
	n.paths = append(n.paths, path)
	return nil
}

// TestIndex_LinksNavigate verifies the index links to both exercises through
// the router.
func TestIndex_LinksNavigate(t *testing.T) {
	nav := &recordingNav{}
	renderer := runtime.NewHeadlessRenderer(nav)
	renderer.SetCurrentComponent(&Index{}, "index")
	vnode := renderer.RenderRoot()

	links := vnode.FindAll(func(n *vdom.VNode) bool { return n.Tag == "a" })
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	for _, link := range links {
		events.Click(link)
	}

	if len(nav.paths) != 2 || nav.paths[0] != GreetingPath || nav.paths[1] != PokemonPath {
		t.Errorf("unexpected navigations %q", nav.paths)
	}
	if links[0].Attr("href") != GreetingPath {
		t.Errorf("expected href %q, got %q", GreetingPath, links[0].Attr("href"))
	}
}

// TestNotFound_ShowsPath verifies the not-found page names the path.
func TestNotFound_ShowsPath(t *testing.T) {
	renderer := runtime.NewHeadlessRenderer(nil)
	renderer.SetCurrentComponent(&NotFound{Path: "/nope"}, "404")

	vnode := renderer.RenderRoot()

	if got := vnode.FindByTag("p").Content; got != "No page at /nope" {
		t.Errorf("unexpected text %q", got)
	}
}
