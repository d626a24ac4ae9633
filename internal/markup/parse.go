package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Parse reads an XML document and builds its element tree. Character data
// between elements is preserved as Text children; comments, directives and
// processing instructions are discarded.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root, cur *Element
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local, Parent: cur}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if cur == nil {
				if root != nil {
					return nil, fmt.Errorf("parse markup: multiple root elements")
				}
				root = el
			} else {
				cur.Children = append(cur.Children, el)
			}
			cur = el
		case xml.EndElement:
			if cur != nil {
				cur = cur.Parent
			}
		case xml.CharData:
			if cur != nil && len(t) > 0 {
				cur.Children = append(cur.Children, &Text{Data: string(t)})
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse markup: no root element")
	}
	return root, nil
}
