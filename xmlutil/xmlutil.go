// Package xmlutil holds the etree plumbing shared by the models and response
// packages: parsing reply documents and rendering trees for debugging.
package xmlutil

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Indent used for all debug renderings.
const Indent = 2

// Parse reads an XML document from r.
func Parse(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseString reads an XML document from a string.
func ParseString(s string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, err
	}
	return doc, nil
}

// SerializeDocument renders the whole document as indented XML. The document
// is copied first so the caller's tree keeps its formatting untouched.
func SerializeDocument(doc *etree.Document) (string, error) {
	c := doc.Copy()
	c.Indent(Indent)
	return c.WriteToString()
}

// SerializeElement renders a single element as indented XML.
func SerializeElement(el *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	doc.Indent(Indent)
	return doc.WriteToString()
}

// Dump writes an indented rendering of el to w. Nil elements and render
// failures produce a placeholder line rather than an error; this is a
// diagnostic aid, not part of the decoding contract.
func Dump(w io.Writer, el *etree.Element) {
	if el == nil {
		fmt.Fprintln(w, "<nil>")
		return
	}
	s, err := SerializeElement(el)
	if err != nil {
		fmt.Fprintf(w, "<unserializable: %v>\n", err)
		return
	}
	fmt.Fprint(w, s)
}
