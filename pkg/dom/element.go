package dom

import (
	"io"
	"strconv"
	"strings"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
)

// Node is anything that can be appended to an element: an *Element or one of
// the typed variants of the catalog. The interface is sealed.
type Node interface {
	element() *Element
}

// Element is a single markup tag, or a text fragment when its tag is empty.
//
// An element exclusively owns its children: once appended, a node cannot be
// appended anywhere else, which keeps every tree acyclic.
type Element struct {
	kind     Kind
	tag      string
	content  string
	attrs    Attributes
	children []*Element
	nonVoid  bool
	attached bool
}

// New creates an element with the given tag name. Content parts, if any, are
// concatenated and rendered verbatim before the children.
// An empty tag creates a text node, like Text.
func New(tag string, content ...string) *Element {
	if tag == "" {
		return Text(strings.Join(content, ""))
	}
	if !validName(tag) {
		panic(errors.New("E101").WithDetailf("tag %q", tag))
	}
	return newElement(KindElement, tag, strings.Join(content, ""))
}

// Text creates a text node: its content is rendered on its own line, without
// any tag. Text nodes cannot have children.
func Text(content string) *Element {
	return newElement(KindText, "", content)
}

func newElement(kind Kind, tag, content string) *Element {
	return &Element{
		kind:    kind,
		tag:     tag,
		content: content,
	}
}

func (e *Element) element() *Element { return e }

// Kind returns the variant the element was built as.
func (e *Element) Kind() Kind { return e.kind }

// Tag returns the tag name, empty for text nodes.
func (e *Element) Tag() string { return e.tag }

// Content returns the text content.
func (e *Element) Content() string { return e.content }

// IsText reports whether e is a text node.
func (e *Element) IsText() bool { return e.tag == "" }

// IsNonVoid reports whether e always renders a closing tag.
func (e *Element) IsNonVoid() bool { return e.nonVoid }

// Attr returns the value of an attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) { return e.attrs.Get(name) }

// Attributes returns the attributes sorted by name.
func (e *Element) Attributes() []Attribute { return e.attrs.All() }

// Children returns the child elements in insertion order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// SetAttribute sets an attribute; an empty value renders as a bare name.
func (e *Element) SetAttribute(name, value string) *Element {
	if !validName(name) {
		panic(errors.New("E102").WithDetailf("attribute %q on <%s>", name, e.tag))
	}
	e.attrs.Set(name, value)
	return e
}

// SetAttributeInt sets an attribute to the decimal form of value.
func (e *Element) SetAttributeInt(name string, value int) *Element {
	return e.SetAttribute(name, strconv.Itoa(value))
}

// ID sets the id attribute.
func (e *Element) ID(id string) *Element { return e.SetAttribute("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func (e *Element) Class(classes ...string) *Element {
	return e.SetAttribute("class", strings.Join(classes, " "))
}

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func (e *Element) TitleAttr(title string) *Element { return e.SetAttribute("title", title) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func (e *Element) StyleAttr(style string) *Element { return e.SetAttribute("style", style) }

// NonVoid marks e so it renders <tag></tag> instead of <tag/> when empty.
func (e *Element) NonVoid() *Element {
	e.nonVoid = true
	return e
}

// AppendChild moves child into e's children and returns e, not the child.
//
// It panics if child is nil or already attached, if the append would create a
// cycle, if e is a text node, or if e is a restricted container that does not
// accept child's kind.
func (e *Element) AppendChild(child Node) *Element {
	e.attach(elementOf(child))
	return e
}

// AppendText appends a text node holding content and returns e.
func (e *Element) AppendText(content string) *Element {
	e.attach(Text(content))
	return e
}

// Render serializes e and its subtree with the default configuration.
func (e *Element) Render() string {
	return defaultRenderer.Render(e)
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return e.Render()
}

// WriteTo serializes e with the default configuration. It implements io.WriterTo.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	return defaultRenderer.writeTo(w, e)
}

// attach enforces the ownership and structural rules of the tree.
func (e *Element) attach(child *Element) {
	if child == nil {
		panic(errors.New("E103").WithDetailf("appending to <%s>", e.tag))
	}
	if child == e {
		panic(errors.New("E105").WithDetailf("<%s> appended to itself", e.tag))
	}
	if e.IsText() {
		panic(errors.New("E106"))
	}
	if !Accepts(e.kind, child.kind) {
		panic(errors.New("E110").WithDetailf("%s <%s> does not accept %s", e.kind, e.tag, describe(child)))
	}
	if child.attached {
		panic(errors.New("E104").WithDetailf("%s", describe(child)))
	}
	if child.contains(e) {
		panic(errors.New("E105").WithDetailf("<%s> is inside %s", e.tag, describe(child)))
	}
	child.attached = true
	e.children = append(e.children, child)
}

// contains reports whether target is in e's subtree.
func (e *Element) contains(target *Element) bool {
	stack := append([]*Element(nil), e.children...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == target {
			return true
		}
		stack = append(stack, n.children...)
	}
	return false
}

// elementOf unwraps a Node, mapping nil interfaces and typed nil pointers to nil.
func elementOf(n Node) *Element {
	if n == nil {
		return nil
	}
	return n.element()
}

// describe names an element for error messages.
func describe(e *Element) string {
	if e.IsText() {
		return "text node"
	}
	return e.kind.String() + " <" + e.tag + ">"
}

// validName reports whether s can be used as a tag or attribute name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r <= ' ' || r == 0x7f {
			return false
		}
		switch r {
		case '"', '\'', '<', '>', '/', '=':
			return false
		}
	}
	return true
}
