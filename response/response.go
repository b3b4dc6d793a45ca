// Package response decodes the reply envelope every API response is wrapped
// in: reply.{code, desc, data} plus an optional reply.array section.
package response

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/samber/lo"

	"github.com/antagonisthq/openprovider-go/errors"
	"github.com/antagonisthq/openprovider-go/xmlutil"
)

// ErrMalformedReply signals a response missing one of the mandatory envelope
// fields, or carrying a non-numeric status code.
const ErrMalformedReply = errors.Error("malformed reply envelope")

// Response represents one decoded API reply. It keeps a reference to the
// full parsed tree, which must outlive the Response and any model derived
// from it; ownership stays with the caller.
type Response struct {
	tree  *etree.Document
	reply *etree.Element
	data  *etree.Element
	code  int
	desc  string
	array []*etree.Element
}

// New unwraps the reply envelope of a parsed response tree. The array
// section is optional and decodes to an empty slice when absent; a missing
// reply, code, desc or data is an ErrMalformedReply.
func New(doc *etree.Document) (*Response, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrMalformedReply.Wrap(errors.New("document has no root element"))
	}

	reply := root.SelectElement("reply")
	if reply == nil {
		return nil, ErrMalformedReply.Wrap(errors.New("missing reply element"))
	}

	codeEl := reply.SelectElement("code")
	if codeEl == nil {
		return nil, ErrMalformedReply.Wrap(errors.New("missing code element"))
	}
	code, err := strconv.Atoi(strings.TrimSpace(codeEl.Text()))
	if err != nil {
		return nil, ErrMalformedReply.Wrap(err)
	}

	descEl := reply.SelectElement("desc")
	if descEl == nil {
		return nil, ErrMalformedReply.Wrap(errors.New("missing desc element"))
	}

	data := reply.SelectElement("data")
	if data == nil {
		return nil, ErrMalformedReply.Wrap(errors.New("missing data element"))
	}

	r := &Response{
		tree:  doc,
		reply: reply,
		data:  data,
		code:  code,
		desc:  descEl.Text(),
	}
	if arr := reply.SelectElement("array"); arr != nil {
		r.array = arr.ChildElements()
	}
	return r, nil
}

// Code returns the reply's status code.
func (r *Response) Code() int {
	return r.code
}

// Desc returns the reply's human-readable description.
func (r *Response) Desc() string {
	return r.desc
}

// Data returns the reply's data payload element.
func (r *Response) Data() *etree.Element {
	return r.data
}

// Array returns the children of the reply's array section, empty when the
// response has none.
func (r *Response) Array() []*etree.Element {
	return r.array
}

// Tree returns the full parsed response tree.
func (r *Response) Tree() *etree.Document {
	return r.tree
}

// AsModel turns a model-style response into a single model wrapping the data
// payload. Nothing is validated up front; a payload of the wrong shape
// surfaces as attribute lookup failures on the returned model.
func AsModel[T any](r *Response, ctor func(*etree.Element) *T) *T {
	return ctor(r.data)
}

// AsModels turns an array-style response into a list of models, one per item
// under data.results.array, in source order. A reply without that section
// yields an empty list; callers cannot tell "no results section" from an
// empty result set.
func AsModels[T any](r *Response, ctor func(*etree.Element) *T) []*T {
	results := r.data.SelectElement("results")
	if results == nil {
		return nil
	}
	arr := results.SelectElement("array")
	if arr == nil {
		return nil
	}

	return lo.Map(arr.SelectElements("item"), func(item *etree.Element, _ int) *T {
		return ctor(item)
	})
}

// String renders the full response tree as indented XML.
func (r *Response) String() string {
	s, err := xmlutil.SerializeDocument(r.tree)
	if err != nil {
		return ""
	}
	return s
}

// Dump writes the indented response tree to w.
func (r *Response) Dump(w io.Writer) {
	io.WriteString(w, r.String())
}
