package dom

// ListItem is an <li> element. Unlike its parent list, an item accepts any
// child, including nested lists.
type ListItem struct{ *Element }

// NewListItem creates an <li> holding content.
func NewListItem(content ...string) *ListItem {
	li := &ListItem{New("li", content...)}
	li.kind = KindListItem
	return li
}

func (li *ListItem) element() *Element {
	if li == nil {
		return nil
	}
	return li.Element
}

// List is a <ul> or <ol> element. It only accepts list items.
type List struct {
	el *Element
}

// NewList creates an unordered list, or an ordered one when ordered is true.
func NewList(ordered bool) *List {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	return &List{el: newElement(KindList, tag, "")}
}

// NewListOf creates a list holding one item per entry of items.
func NewListOf(ordered bool, items ...string) *List {
	l := NewList(ordered)
	for _, item := range items {
		l.Append(NewListItem(item))
	}
	return l
}

func (l *List) element() *Element {
	if l == nil {
		return nil
	}
	return l.el
}

// Ordered reports whether l is an <ol>.
func (l *List) Ordered() bool { return l.el.tag == "ol" }

// Append moves items into the list and returns l.
func (l *List) Append(items ...*ListItem) *List {
	for _, item := range items {
		l.el.attach(elementOf(item))
	}
	return l
}

// SetAttribute sets an attribute on the list tag.
func (l *List) SetAttribute(name, value string) *List {
	l.el.SetAttribute(name, value)
	return l
}

// ID sets the id attribute.
func (l *List) ID(id string) *List { return l.SetAttribute("id", id) }

// Class sets the class attribute.
func (l *List) Class(classes ...string) *List {
	l.el.Class(classes...)
	return l
}

// NonVoid keeps the closing tag when the list is empty.
func (l *List) NonVoid() *List {
	l.el.NonVoid()
	return l
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.el.children) }

// Kind returns KindList.
func (l *List) Kind() Kind { return KindList }

// Items returns the list items in insertion order.
func (l *List) Items() []*Element { return l.el.Children() }

// Render serializes the list with the default configuration.
func (l *List) Render() string { return l.el.Render() }

// String implements fmt.Stringer.
func (l *List) String() string { return l.Render() }
