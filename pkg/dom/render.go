package dom

import (
	"bytes"
	"io"
)

// RenderConfig configures the serializer. It is fixed for a whole render pass.
type RenderConfig struct {
	// Indent is the string written once per nesting depth.
	// Defaults to two spaces if not specified.
	Indent string

	// NoIndent writes every line flush left. Indent is ignored.
	NoIndent bool

	// Newline is the line terminator. Defaults to "\n".
	Newline string

	// Escape enables HTML escaping of content and attribute values.
	// Off by default: content is emitted verbatim and callers are
	// responsible for pre-escaping it.
	Escape bool
}

// Renderer serializes element trees to markup. A Renderer holds no per-render
// state and may be shared between goroutines, as long as the trees it renders
// are not mutated concurrently.
type Renderer struct {
	config RenderConfig
}

var defaultRenderer = NewRenderer(RenderConfig{})

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RenderConfig) *Renderer {
	switch {
	case config.NoIndent:
		config.Indent = ""
	case config.Indent == "":
		config.Indent = "  "
	}
	if config.Newline == "" {
		config.Newline = "\n"
	}
	return &Renderer{config: config}
}

// Config returns the effective configuration.
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// Render serializes n and its subtree.
func (r *Renderer) Render(n Node) string {
	var buf bytes.Buffer
	r.serialize(&buf, elementOf(n))
	return buf.String()
}

// Write serializes n into memory, then writes the result to w.
func (r *Renderer) Write(w io.Writer, n Node) error {
	_, err := r.writeTo(w, n)
	return err
}

// RenderDocument serializes d, starting with the doctype line.
func (r *Renderer) RenderDocument(d *Document) string {
	var buf bytes.Buffer
	r.serializeDocument(&buf, d)
	return buf.String()
}

// WriteDocument serializes d into memory, then writes the result to w.
func (r *Renderer) WriteDocument(w io.Writer, d *Document) error {
	_, err := r.writeDocumentTo(w, d)
	return err
}

func (r *Renderer) writeTo(w io.Writer, n Node) (int64, error) {
	var buf bytes.Buffer
	r.serialize(&buf, elementOf(n))
	return buf.WriteTo(w)
}

func (r *Renderer) writeDocumentTo(w io.Writer, d *Document) (int64, error) {
	var buf bytes.Buffer
	r.serializeDocument(&buf, d)
	return buf.WriteTo(w)
}

func (r *Renderer) serializeDocument(buf *bytes.Buffer, d *Document) {
	if d == nil {
		return
	}
	buf.WriteString(Doctype)
	buf.WriteString(r.config.Newline)
	r.serialize(buf, d.root)
}

// frame is a pending step of the serializer: either opening an element (and
// scheduling its children) or closing it.
type frame struct {
	el      *Element
	depth   int
	closing bool
}

// serialize walks the tree depth-first with an explicit stack, so the depth
// of the tree is not limited by the call stack.
func (r *Renderer) serialize(buf *bytes.Buffer, root *Element) {
	if root == nil {
		return
	}

	stack := []frame{{el: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		el := f.el

		if f.closing {
			r.writeClose(buf, el, f.depth)
			continue
		}

		if el.IsText() {
			r.writeIndent(buf, f.depth)
			buf.WriteString(r.text(el.content))
			buf.WriteString(r.config.Newline)
			continue
		}

		r.writeOpen(buf, el, f.depth)
		if !hasClosingTag(el) {
			continue
		}

		stack = append(stack, frame{el: el, depth: f.depth, closing: true})
		for i := len(el.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{el: el.children[i], depth: f.depth + 1})
		}
	}
}

// hasClosingTag reports whether el renders as <tag>...</tag> rather than <tag/>.
func hasClosingTag(el *Element) bool {
	return el.content != "" || len(el.children) > 0 || el.nonVoid
}

// writeOpen writes the indented opening tag, its attributes and the content.
func (r *Renderer) writeOpen(buf *bytes.Buffer, el *Element, depth int) {
	r.writeIndent(buf, depth)
	buf.WriteByte('<')
	buf.WriteString(el.tag)

	for _, attr := range el.attrs.list {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		if attr.Value != "" {
			buf.WriteString(`="`)
			buf.WriteString(r.attr(attr.Value))
			buf.WriteByte('"')
		}
	}

	if !hasClosingTag(el) {
		buf.WriteString("/>")
		buf.WriteString(r.config.Newline)
		return
	}

	buf.WriteByte('>')
	buf.WriteString(r.text(el.content))
	if len(el.children) > 0 {
		buf.WriteString(r.config.Newline)
	}
}

// writeClose writes the closing tag, indented only when children were written
// on their own lines.
func (r *Renderer) writeClose(buf *bytes.Buffer, el *Element, depth int) {
	if len(el.children) > 0 {
		r.writeIndent(buf, depth)
	}
	buf.WriteString("</")
	buf.WriteString(el.tag)
	buf.WriteByte('>')
	buf.WriteString(r.config.Newline)
}

// writeIndent writes indentation for the given depth.
func (r *Renderer) writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(r.config.Indent)
	}
}

func (r *Renderer) text(s string) string {
	if r.config.Escape {
		return escapeHTML(s)
	}
	return s
}

func (r *Renderer) attr(s string) string {
	if r.config.Escape {
		return escapeAttr(s)
	}
	return s
}
