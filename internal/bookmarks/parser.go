package bookmarks

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"navhub/internal/domain"
)

const (
	unnamedCategory = "Unnamed Category"
	unnamedSite     = "Unnamed Site"
)

// Parse reads a Netscape bookmark document and returns the folder tree
// under an implicit root folder. The format is tag soup by convention
// (unclosed DT/DL tags), so parsing goes through x/net/html, which repairs
// the markup the same way browsers do.
//
// A document with no <dl> at all yields an empty root together with
// domain.ErrMalformedDocument; callers importing best-effort should treat
// that as zero categories rather than a failure.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse bookmark document: %w", err)
	}

	root := &Node{Folder: true}
	dl := findDescendant(doc, "dl")
	if dl == nil {
		return root, domain.ErrMalformedDocument
	}
	parseList(dl, root)
	return root, nil
}

// parseList walks the <dt> children of a definition list. A <dt> holding an
// <h3> is a folder marker; after tree repair its child list ends up nested
// inside the same <dt> (or, with some exporters, as the next sibling). A
// <dt> holding an <a> is a link. Anything else is ignored.
func parseList(dl *html.Node, folder *Node) {
	for item := dl.FirstChild; item != nil; item = item.NextSibling {
		if !isElement(item, "dt") {
			continue
		}

		if h3 := findDescendant(item, "h3"); h3 != nil {
			child := &Node{Folder: true, Name: textOrDefault(h3, unnamedCategory)}
			folder.Children = append(folder.Children, child)

			childList := findDescendant(item, "dl")
			if childList == nil {
				childList = nextSiblingElement(item, "dl")
			}
			if childList != nil {
				parseList(childList, child)
			}
			continue
		}

		if a := findDescendant(item, "a"); a != nil {
			// A missing href is kept as an empty URL; URL validation is
			// deliberately not this layer's job.
			folder.Children = append(folder.Children, &Node{
				Name: textOrDefault(a, unnamedSite),
				URL:  attrValue(a, "href"),
				Icon: attrValue(a, "icon"),
			})
		}
	}
}

// Flatten collapses the folder tree into one level of categories keyed by
// immediate parent folder name, in depth-first first-appearance order.
// Links directly under the root have no folder to name a category after
// and are dropped. Folders whose names recur anywhere in the tree merge
// into a single bucket.
func Flatten(root *Node) []ParsedCategory {
	var cats []ParsedCategory
	index := make(map[string]int)

	var walk func(n *Node, path []string)
	walk = func(n *Node, path []string) {
		for _, child := range n.Children {
			if child.Folder {
				walk(child, append(path, child.Name))
				continue
			}
			if len(path) == 0 {
				continue
			}
			name := path[len(path)-1]
			i, ok := index[name]
			if !ok {
				i = len(cats)
				index[name] = i
				cats = append(cats, ParsedCategory{Name: name})
			}
			cats[i].Sites = append(cats[i].Sites, ParsedSite{
				Name: child.Name,
				URL:  child.URL,
				Icon: child.Icon,
			})
		}
	}
	walk(root, nil)
	return cats
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func findDescendant(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, tag) {
			return c
		}
		if found := findDescendant(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func nextSiblingElement(n *html.Node, tag string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if isElement(s, tag) {
			return s
		}
		// Stop at the next <dt>: a list there belongs to that entry.
		if isElement(s, "dt") {
			return nil
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOrDefault(n *html.Node, def string) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	if text := strings.TrimSpace(b.String()); text != "" {
		return text
	}
	return def
}
