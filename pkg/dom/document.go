package dom

import "io"

// Doctype is the declaration written before a rendered Document.
const Doctype = "<!doctype html>"

// Document is the root of a complete page: an <html> element holding exactly
// a <head> and a <body>. Nothing can be appended to the root itself.
type Document struct {
	root *Element
	head *Head
	body *Element
}

// NewDocument creates an empty document. A non-empty title seeds the head
// with a <title>.
func NewDocument(title string) *Document {
	d := &Document{
		root: newElement(KindHTML, "html", ""),
		head: newHead(),
		body: newElement(KindBody, "body", "").NonVoid(),
	}
	d.head.el.attached = true
	d.body.attached = true
	d.root.children = []*Element{d.head.el, d.body}

	if title != "" {
		d.head.Append(NewTitle(title))
	}
	return d
}

// Lang sets the lang attribute of the <html> root.
func (d *Document) Lang(lang string) *Document {
	d.root.SetAttribute("lang", lang)
	return d
}

// AddToHead appends metadata elements to the head.
func (d *Document) AddToHead(children ...HeadChild) {
	d.head.Append(children...)
}

// AddToBody appends nodes to the body.
func (d *Document) AddToBody(nodes ...Node) {
	for _, n := range nodes {
		d.body.AppendChild(n)
	}
}

// Append appends n to the body and returns the body for further chaining.
func (d *Document) Append(n Node) *Element {
	return d.body.AppendChild(n)
}

// Head returns the document head.
func (d *Document) Head() *Head { return d.head }

// Body returns the document body.
func (d *Document) Body() *Element { return d.body }

// Root returns the <html> element.
func (d *Document) Root() *Element { return d.root }

// Render serializes the document with the default configuration.
func (d *Document) Render() string {
	return defaultRenderer.RenderDocument(d)
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return d.Render()
}

// WriteTo serializes the document with the default configuration.
// It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return defaultRenderer.writeDocumentTo(w, d)
}
