package dom

// voidTags are the HTML elements that never have content or children.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidTag returns true if tag is an HTML void element.
func IsVoidTag(tag string) bool {
	return voidTags[tag]
}

// Headings

// Heading1 creates an <h1>.
func Heading1(content string) *Element { return newElement(KindHeading, "h1", content) }

// Heading2 creates an <h2>.
func Heading2(content string) *Element { return newElement(KindHeading, "h2", content) }

// Heading3 creates an <h3>.
func Heading3(content string) *Element { return newElement(KindHeading, "h3", content) }

// Text blocks

// Paragraph creates a <p>.
func Paragraph(content ...string) *Element {
	p := New("p", content...)
	p.kind = KindParagraph
	return p
}

// Div creates a <div>.
func Div(content ...string) *Element { return New("div", content...) }

// Span creates a <span>.
func Span(content ...string) *Element { return New("span", content...) }

// Inline formatting

// Bold creates a <b>.
func Bold(content string) *Element { return New("b", content) }

// Italic creates an <i>.
func Italic(content string) *Element { return New("i", content) }

// Strong creates a <strong>.
func Strong(content string) *Element { return New("strong", content) }

// Mark creates a <mark>.
func Mark(content string) *Element { return New("mark", content) }

// Anchor creates <a href="...">content</a>.
func Anchor(content, href string) *Element {
	a := newElement(KindAnchor, "a", content)
	a.SetAttribute("href", href)
	return a
}

// Media

// Image creates <img src="..." alt="...">.
func Image(src, alt string) *Element {
	img := newElement(KindImage, "img", "")
	img.SetAttribute("src", src)
	img.SetAttribute("alt", alt)
	return img
}

// ImageSized creates an <img> with width and height; zero dimensions are
// left unset.
func ImageSized(src, alt string, width, height int) *Element {
	img := Image(src, alt)
	if width > 0 {
		img.SetAttributeInt("width", width)
	}
	if height > 0 {
		img.SetAttributeInt("height", height)
	}
	return img
}

// Break creates a <br/>.
func Break() *Element { return newElement(KindBreak, "br", "") }

// Sectioning

// Header creates a <header>.
func Header() *Element { return New("header") }

// Footer creates a <footer>.
func Footer() *Element { return New("footer") }

// Section creates a <section>.
func Section() *Element { return New("section") }

// Article creates an <article>.
func Article() *Element { return New("article") }

// Nav creates a <nav>.
func Nav() *Element { return New("nav") }

// Aside creates an <aside>.
func Aside() *Element { return New("aside") }

// Main creates a <main>.
func Main() *Element { return New("main") }

// Figure creates a <figure>.
func Figure() *Element { return New("figure") }

// FigCaption creates a <figcaption>.
func FigCaption(content string) *Element { return New("figcaption", content) }

// Details creates a <details>.
func Details() *Element { return New("details") }

// Summary creates a <summary>.
func Summary(content string) *Element { return New("summary", content) }
