package dom

// HeadChild is a node the document head accepts: Title, Meta, Rel, Script,
// Style or Base.
type HeadChild interface {
	Node
	headChild()
}

// Head is the <head> section of a Document. It only accepts metadata elements.
type Head struct {
	el *Element
}

func newHead() *Head {
	return &Head{el: newElement(KindHead, "head", "").NonVoid()}
}

func (h *Head) element() *Element {
	if h == nil {
		return nil
	}
	return h.el
}

// Append moves children into the head and returns h.
func (h *Head) Append(children ...HeadChild) *Head {
	for _, c := range children {
		h.el.attach(elementOf(c))
	}
	return h
}

// SetAttribute sets an attribute on the <head> tag.
func (h *Head) SetAttribute(name, value string) *Head {
	h.el.SetAttribute(name, value)
	return h
}

// Len returns the number of children.
func (h *Head) Len() int { return len(h.el.children) }

// Kind returns KindHead.
func (h *Head) Kind() Kind { return KindHead }

// Children returns the head's children in insertion order.
func (h *Head) Children() []*Element { return h.el.Children() }

// Render serializes the head with the default configuration.
func (h *Head) Render() string { return h.el.Render() }

// Title is the <title> element.
type Title struct{ *Element }

// NewTitle creates a <title> holding content.
func NewTitle(content string) *Title {
	return &Title{newElement(KindTitle, "title", content)}
}

func (t *Title) element() *Element {
	if t == nil {
		return nil
	}
	return t.Element
}

func (*Title) headChild() {}

// Meta is a <meta> element.
type Meta struct{ *Element }

// NewMetaCharset creates <meta charset="...">.
func NewMetaCharset(charset string) *Meta {
	m := &Meta{newElement(KindMeta, "meta", "")}
	m.SetAttribute("charset", charset)
	return m
}

// NewMeta creates <meta name="..." content="...">.
func NewMeta(name, content string) *Meta {
	m := &Meta{newElement(KindMeta, "meta", "")}
	m.SetAttribute("name", name)
	m.SetAttribute("content", content)
	return m
}

func (m *Meta) element() *Element {
	if m == nil {
		return nil
	}
	return m.Element
}

func (*Meta) headChild() {}

// Rel is a <link> to an external resource such as a stylesheet or an icon.
type Rel struct{ *Element }

// NewRel creates <link rel="..." href="...">. mimeType is omitted when empty.
func NewRel(rel, href, mimeType string) *Rel {
	l := &Rel{newElement(KindRel, "link", "")}
	l.SetAttribute("rel", rel)
	l.SetAttribute("href", href)
	if mimeType != "" {
		l.SetAttribute("type", mimeType)
	}
	return l
}

// NewStylesheet creates <link rel="stylesheet" href="...">.
func NewStylesheet(href string) *Rel {
	return NewRel("stylesheet", href, "")
}

func (l *Rel) element() *Element {
	if l == nil {
		return nil
	}
	return l.Element
}

func (*Rel) headChild() {}

// Script is a <script> element. It always renders a closing tag.
type Script struct{ *Element }

// NewScript creates a <script>. src is omitted when empty; content parts are
// the inline script.
func NewScript(src string, content ...string) *Script {
	s := &Script{New("script", content...).NonVoid()}
	s.kind = KindScript
	if src != "" {
		s.SetAttribute("src", src)
	}
	return s
}

func (s *Script) element() *Element {
	if s == nil {
		return nil
	}
	return s.Element
}

func (*Script) headChild() {}

// Style is an inline <style> element.
type Style struct{ *Element }

// NewStyle creates a <style> holding css.
func NewStyle(css string) *Style {
	return &Style{newElement(KindStyle, "style", css)}
}

func (s *Style) element() *Element {
	if s == nil {
		return nil
	}
	return s.Element
}

func (*Style) headChild() {}

// Base is the <base> element setting the document base URL.
type Base struct{ *Element }

// NewBase creates <base href="...">. target is omitted when empty.
func NewBase(href, target string) *Base {
	b := &Base{newElement(KindBase, "base", "")}
	b.SetAttribute("href", href)
	if target != "" {
		b.SetAttribute("target", target)
	}
	return b
}

func (b *Base) element() *Element {
	if b == nil {
		return nil
	}
	return b.Element
}

func (*Base) headChild() {}
