package layout

import (
	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
)

// typeSpec maps a description type to a catalog constructor.
type typeSpec struct {
	kind      dom.Kind
	params    []string
	noContent bool
	build     func(n *Node) (dom.Node, error)
}

func invalid(format string, args ...any) error {
	return errors.New("E133").WithDetailf(format, args...)
}

func element(tag string) typeSpec {
	return typeSpec{kind: dom.KindElement, build: func(n *Node) (dom.Node, error) {
		return dom.New(tag, n.Content), nil
	}}
}

func simple(kind dom.Kind, fn func(string) *dom.Element) typeSpec {
	return typeSpec{kind: kind, build: func(n *Node) (dom.Node, error) {
		return fn(n.Content), nil
	}}
}

func cellSpec(kind dom.Kind, header bool) typeSpec {
	return typeSpec{kind: kind, params: []string{"rowspan", "colspan"}, build: func(n *Node) (dom.Node, error) {
		if header {
			return dom.NewHeaderCell(n.Content).RowSpan(n.RowSpan).ColSpan(n.ColSpan), nil
		}
		return dom.NewCell(n.Content).RowSpan(n.RowSpan).ColSpan(n.ColSpan), nil
	}}
}

var types map[string]typeSpec

func init() {
	types = map[string]typeSpec{
		// head
		"title": {kind: dom.KindTitle, build: func(n *Node) (dom.Node, error) {
			return dom.NewTitle(n.Content), nil
		}},
		"meta": {kind: dom.KindMeta, params: []string{"charset", "name"}, build: func(n *Node) (dom.Node, error) {
			switch {
			case n.Charset != "" && n.Name != "":
				return nil, invalid("meta takes either charset or name, not both")
			case n.Charset != "":
				if n.Content != "" {
					return nil, invalid("meta charset takes no content")
				}
				return dom.NewMetaCharset(n.Charset), nil
			case n.Name != "":
				return dom.NewMeta(n.Name, n.Content), nil
			}
			return nil, invalid("meta requires charset or name")
		}},
		"link": {kind: dom.KindRel, params: []string{"rel", "href", "mime"}, noContent: true, build: func(n *Node) (dom.Node, error) {
			if n.Rel == "" || n.Href == "" {
				return nil, invalid("link requires rel and href")
			}
			return dom.NewRel(n.Rel, n.Href, n.Mime), nil
		}},
		"script": {kind: dom.KindScript, params: []string{"src"}, build: func(n *Node) (dom.Node, error) {
			if n.Src == "" && n.Content == "" {
				return nil, invalid("script requires src or content")
			}
			if n.Content == "" {
				return dom.NewScript(n.Src), nil
			}
			return dom.NewScript(n.Src, n.Content), nil
		}},
		"style": {kind: dom.KindStyle, build: func(n *Node) (dom.Node, error) {
			return dom.NewStyle(n.Content), nil
		}},
		"base": {kind: dom.KindBase, params: []string{"href", "target"}, noContent: true, build: func(n *Node) (dom.Node, error) {
			if n.Href == "" {
				return nil, invalid("base requires href")
			}
			return dom.NewBase(n.Href, n.Target), nil
		}},

		// text
		"h1":     simple(dom.KindHeading, dom.Heading1),
		"h2":     simple(dom.KindHeading, dom.Heading2),
		"h3":     simple(dom.KindHeading, dom.Heading3),
		"p":      {kind: dom.KindParagraph, build: func(n *Node) (dom.Node, error) { return dom.Paragraph(n.Content), nil }},
		"b":      simple(dom.KindElement, dom.Bold),
		"i":      simple(dom.KindElement, dom.Italic),
		"strong": simple(dom.KindElement, dom.Strong),
		"mark":   simple(dom.KindElement, dom.Mark),
		"div":    element("div"),
		"span":   element("span"),
		"text": {kind: dom.KindText, build: func(n *Node) (dom.Node, error) {
			if len(n.Attrs) > 0 {
				return nil, invalid("text nodes have no attributes")
			}
			return dom.Text(n.Content), nil
		}},

		// links and media
		"a": {kind: dom.KindAnchor, params: []string{"href", "target"}, build: func(n *Node) (dom.Node, error) {
			if n.Href == "" {
				return nil, invalid("a requires href")
			}
			a := dom.Anchor(n.Content, n.Href)
			if n.Target != "" {
				a.SetAttribute("target", n.Target)
			}
			return a, nil
		}},
		"img": {kind: dom.KindImage, params: []string{"src", "alt", "width", "height"}, noContent: true, build: func(n *Node) (dom.Node, error) {
			if n.Src == "" {
				return nil, invalid("img requires src")
			}
			if n.Width < 0 || n.Height < 0 {
				return nil, invalid("img dimensions must be positive, got %dx%d", n.Width, n.Height)
			}
			return dom.ImageSized(n.Src, n.Alt, n.Width, n.Height), nil
		}},
		"br": {kind: dom.KindBreak, noContent: true, build: func(*Node) (dom.Node, error) { return dom.Break(), nil }},

		// lists and tables
		"ul": {kind: dom.KindList, noContent: true, build: func(*Node) (dom.Node, error) { return dom.NewList(false), nil }},
		"ol": {kind: dom.KindList, noContent: true, build: func(*Node) (dom.Node, error) { return dom.NewList(true), nil }},
		"li": {kind: dom.KindListItem, build: func(n *Node) (dom.Node, error) {
			return dom.NewListItem(n.Content), nil
		}},
		"table": {kind: dom.KindTable, noContent: true, build: func(*Node) (dom.Node, error) { return dom.NewTable(), nil }},
		"tr":    {kind: dom.KindRow, noContent: true, build: func(*Node) (dom.Node, error) { return dom.NewRow(), nil }},
		"td":    cellSpec(dom.KindCell, false),
		"th":    cellSpec(dom.KindHeaderCell, true),

		// forms
		"form": {kind: dom.KindForm, params: []string{"action"}, build: func(n *Node) (dom.Node, error) {
			f := dom.Form(n.Action)
			if n.Content != "" {
				f.AppendText(n.Content)
			}
			return f, nil
		}},
		"input": {kind: dom.KindInput, params: []string{"input", "name", "value", "checked"}, noContent: true, build: func(n *Node) (dom.Node, error) {
			inputType := n.Input
			if inputType == "" {
				inputType = "text"
			}
			if inputType == "password" && n.Value != "" {
				return nil, invalid("password inputs never carry a value")
			}
			return dom.NewInput(inputType, n.Name, n.Value).Checked(n.Checked), nil
		}},

		// sections
		"header":     element("header"),
		"footer":     element("footer"),
		"section":    element("section"),
		"article":    element("article"),
		"nav":        element("nav"),
		"aside":      element("aside"),
		"main":       element("main"),
		"figure":     element("figure"),
		"figcaption": simple(dom.KindElement, dom.FigCaption),
		"details":    element("details"),
		"summary":    simple(dom.KindElement, dom.Summary),
	}
}

// reserved types are owned by the document itself.
var reserved = map[string]bool{
	"html": true,
	"head": true,
	"body": true,
}
