package dom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/flipbook"
	"github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoContainer is returned if no element of a page matches a container
// selector.
var ErrNoContainer = errors.New("no container element")

// Parse reads an HTML page.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return doc, nil
}

// ParseFile reads an HTML page from a file.
func ParseFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// FrameElements returns the element children of the first element matching
// the container selector, in document order.
func FrameElements(doc *html.Node, container string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(container)
	if err != nil {
		return nil, fmt.Errorf("container selector %q: %w", container, err)
	}
	c := sel.MatchFirst(doc)
	if c == nil {
		return nil, fmt.Errorf("%w matches %q", ErrNoContainer, container)
	}
	var frames []*html.Node
	for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			frames = append(frames, ch)
		}
	}
	tracer().Debugf("container %q has %d frame elements", container, len(frames))
	return frames, nil
}

// BindMarkup creates an explicit binding for the frames of a container.
// Frame k is selected by "#id" if it has an id which is a CSS identifier
// and unique within the page, and by "container > :nth-child(k)" otherwise.
func BindMarkup(doc *html.Node, container string) (flipbook.Binding, error) {
	elems, err := FrameElements(doc, container)
	if err != nil {
		return flipbook.Binding{}, err
	}
	if len(elems) == 0 {
		return flipbook.Binding{}, fmt.Errorf("container %q has no frame elements", container)
	}
	ids := make(map[string]int)
	countIDs(doc, ids)
	positional := flipbook.Positional(container)
	selectors := make([]string, len(elems))
	for k, e := range elems {
		if id := attr(e, "id"); css.IsIdent(id) && ids[id] == 1 {
			selectors[k] = "#" + id
		} else {
			selectors[k] = positional.FrameSelector(k + 1)
		}
	}
	return flipbook.Explicit(container, selectors...), nil
}

func countIDs(n *html.Node, ids map[string]int) {
	if n.Type == html.ElementNode {
		if id := attr(n, "id"); id != "" {
			ids[id]++
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		countIDs(ch, ids)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// InjectStyle appends a <style> element holding a stylesheet to the <head>
// of a page. Empty stylesheets are not injected.
func InjectStyle(doc *html.Node, sheet *douceuradapter.CSSStyles) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	head := findElement(atom.Head, doc)
	if head == nil {
		return errors.New("page has no <head> element")
	}
	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     atom.Style.String(),
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + sheet.String()})
	head.AppendChild(style)
	tracer().Debugf("injected %d rules into <head>", len(sheet.Rules()))
	return nil
}

// Render writes a page.
func Render(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}

func findElement(a atom.Atom, n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if e := findElement(a, ch); e != nil {
			return e
		}
	}
	return nil
}
