// Package markup provides the generic element tree the taxonomy layer is
// built from: a tagged element with ordered attributes and ordered mixed
// children. The taxonomy core never parses markup text itself; Parse is the
// collaborator that turns an XML document into this abstraction.
package markup

// Node is one entry in an element's child list: either an *Element or a
// *Text run.
type Node interface {
	node()
}

// Attr is a single named attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// Element is a tagged node with ordered attributes and ordered mixed
// children. Children keep source order, including interstitial text.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
	Parent   *Element
}

// Text is raw character data between elements. It is kept in the child list
// so downstream filtering over mixed content stays observable.
type Text struct {
	Data string
}

func (*Element) node() {}
func (*Text) node()    {}

// FirstAttr returns the value of the element's first attribute in source
// order, and whether the element has any attribute at all.
func (e *Element) FirstAttr() (string, bool) {
	if e == nil || len(e.Attrs) == 0 {
		return "", false
	}
	return e.Attrs[0].Value, true
}

// ChildElements returns the element children in source order, skipping text
// runs.
func (e *Element) ChildElements() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if ce, ok := c.(*Element); ok {
			out = append(out, ce)
		}
	}
	return out
}
