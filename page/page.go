package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/cq/cssom"
	"github.com/npillmayer/cq/cssom/douceuradapter"
	"github.com/npillmayer/cq/style"
	"github.com/npillmayer/cq/utility"
	"golang.org/x/net/html"
)

var (
	querycontainer = cascadia.MustCompile(`.container-type-inline-size, [class~="@container"]`)
	classed        = cascadia.MustCompile(`[class]`)
)

// Container is a query container of a document.
type Container struct {
	Node     *html.Node
	Elements []Element // elements styled relative to this container
}

// Element is an element with container-conditional styling.
type Element struct {
	Node   *html.Node
	Theme  *style.Theme
	inline string // author's style attribute, before any Apply
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return doc, nil
}

// Containers returns the query containers of a document, in document order,
// together with the elements depending on them. Containers without such
// elements are included with an empty element list. Elements with container
// variants but without an enclosing query container are skipped, as no
// container query can ever match for them.
//
// rootFontSize is used to resolve rem-based container sizes.
func Containers(doc *html.Node, rootFontSize float64) ([]Container, error) {
	nodes := querycontainer.MatchAll(doc)
	containers := make([]Container, len(nodes))
	index := make(map[*html.Node]int, len(nodes))
	for i, n := range nodes {
		containers[i].Node = n
		index[n] = i
	}
	for _, n := range classed.MatchAll(doc) {
		classes := attr(n, "class")
		if !utility.HasContainerVariants(classes) {
			continue
		}
		c := nearestContainer(n)
		if c == nil {
			tracer().Infof("page: <%s class=%q> has no query container", n.Data, classes)
			continue
		}
		th, err := utility.Theme(classes, rootFontSize)
		if err != nil {
			return nil, fmt.Errorf("<%s class=%q>: %w", n.Data, classes, err)
		}
		i := index[c]
		containers[i].Elements = append(containers[i].Elements, Element{Node: n, Theme: th, inline: attr(n, "style")})
	}
	return containers, nil
}

// Apply resolves the tiers of every element of c for container width w and
// writes the resulting attributes into the elements' style attributes.
// Declarations the author put into a style attribute are kept, unless the
// resolved tier sets the same property. Applying again replaces the
// declarations of the previous Apply. Apply modifies the document.
func (c Container) Apply(w breakpoint.Width) {
	for _, e := range c.Elements {
		v, attrs := e.Theme.Resolve(w)
		tracer().Debugf("page: <%s> at width %v is %q", e.Node.Data, w, v)
		setStyle(e.Node, mergeStyle(e.inline, attrs.Declarations()))
	}
}

// StyleSheets returns the <style> elements of a document as stylesheets.
func StyleSheets(doc *html.Node) ([]cssom.StyleSheet, error) {
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return nil, err
	}
	r := make([]cssom.StyleSheet, len(sheets))
	for i, s := range sheets {
		r[i] = s
	}
	return r, nil
}

// TierSheet reads all <style> elements of a document as one tier sheet
// (see package cssom) and returns its theme.
func TierSheet(doc *html.Node, rootFontSize float64) (*style.Theme, error) {
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, &breakpoint.ConfigError{Reason: breakpoint.EmptySet, Detail: "no <style> elements"}
	}
	for _, s := range sheets[1:] {
		sheets[0].AppendRules(s)
	}
	return cssom.Theme(sheets[0], rootFontSize)
}

func nearestContainer(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && querycontainer.Match(p) {
			return p
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func mergeStyle(inline string, decls []string) string {
	set := make(map[string]bool, len(decls))
	for _, d := range decls {
		set[propertyName(d)] = true
	}
	var merged []string
	for _, d := range strings.Split(inline, ";") {
		if d = strings.TrimSpace(d); d == "" || set[propertyName(d)] {
			continue
		}
		merged = append(merged, d)
	}
	return strings.Join(append(merged, decls...), "; ")
}

func propertyName(decl string) string {
	name, _, _ := strings.Cut(decl, ":")
	return strings.ToLower(strings.TrimSpace(name))
}

func setStyle(n *html.Node, css string) {
	for i, a := range n.Attr {
		if a.Key == "style" {
			n.Attr[i].Val = css
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: css})
}
