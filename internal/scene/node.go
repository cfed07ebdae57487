// Package scene turns projected landmarks into a render tree of SVG/HTML nodes.
// Building the tree is pure; attaching it to a display is left to the caller.
package scene

import (
	"bufio"
	"html"
	"io"
	"math"
	"strconv"
)

// Attr is a single ordered attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the render tree. Text is escaped on encode.
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []*Node
}

// El creates an element from a tag and name/value attribute pairs.
// A trailing unpaired name is ignored.
func El(tag string, pairs ...string) *Node {
	n := &Node{Tag: tag, Attrs: make([]Attr, 0, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Attrs = append(n.Attrs, Attr{Name: pairs[i], Value: pairs[i+1]})
	}

	return n
}

// Set adds or replaces an attribute.
func (n *Node) Set(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})

	return n
}

// Get returns an attribute value.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// WithText sets the text content.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// Append attaches children. It is not idempotent: appending the same
// content twice duplicates it. A nil node is a missing container and
// silently does nothing.
func (n *Node) Append(children ...*Node) *Node {
	if n == nil {
		return nil
	}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}

	return n
}

// Clear drops all children.
func (n *Node) Clear() {
	if n == nil {
		return
	}
	n.Children = nil
}

// HasClass reports whether the space separated class attribute contains class.
func (n *Node) HasClass(class string) bool {
	v, ok := n.Get("class")
	if !ok {
		return false
	}
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == ' ' {
			if v[start:i] == class {
				return true
			}
			start = i + 1
		}
	}

	return false
}

// FindAll walks the tree depth-first and returns nodes matching fn.
func (n *Node) FindAll(fn func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(c *Node) {
		if fn(c) {
			out = append(out, c)
		}
		for _, ch := range c.Children {
			walk(ch)
		}
	}
	if n != nil {
		walk(n)
	}

	return out
}

// ByClass returns every descendant (or n itself) carrying class.
func (n *Node) ByClass(class string) []*Node {
	return n.FindAll(func(c *Node) bool { return c.HasClass(class) })
}

// Encode writes the tree as markup valid for both inline SVG and HTML.
func Encode(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	encode(bw, n)

	return bw.Flush()
}

func encode(w *bufio.Writer, n *Node) {
	if n == nil {
		return
	}

	_, _ = w.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		_, _ = w.WriteString(" " + a.Name + `="` + html.EscapeString(a.Value) + `"`)
	}
	_ = w.WriteByte('>')

	_, _ = w.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		encode(w, c)
	}

	_, _ = w.WriteString("</" + n.Tag + ">")
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
