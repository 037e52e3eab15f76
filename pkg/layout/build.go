package layout

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
)

// Build creates the document described by d. Every node is validated before
// it is appended, so a returned error never leaves a half-checked tree behind
// and errors carry the path of the offending node.
func (d *Description) Build() (*dom.Document, error) {
	doc := dom.NewDocument(d.Title)
	if d.Lang != "" {
		doc.Lang(d.Lang)
	}

	for i := range d.Head {
		path := fmt.Sprintf("head[%d]", i)
		node, err := buildChild(dom.KindHead, &d.Head[i], path)
		if err != nil {
			return nil, err
		}
		doc.AddToHead(node.(dom.HeadChild))
	}

	for i := range d.Body {
		path := fmt.Sprintf("body[%d]", i)
		node, err := buildChild(dom.KindBody, &d.Body[i], path)
		if err != nil {
			return nil, err
		}
		doc.Append(node)
	}
	return doc, nil
}

// BuildFile loads and builds the description at path.
func BuildFile(path string) (*dom.Document, error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}
	doc, err := d.Build()
	if err != nil {
		return nil, inFile(path, err)
	}
	return doc, nil
}

// buildChild resolves n's type, checks that parent accepts it, then builds it
// with its subtree.
func buildChild(parent dom.Kind, n *Node, path string) (dom.Node, error) {
	spec, err := resolve(n.Type)
	if err != nil {
		return nil, err.WithPath(path)
	}
	if !dom.Accepts(parent, spec.kind) {
		return nil, errors.New("E132").
			WithPath(path).
			WithDetailf("%s does not accept %q%s", parent, n.Type, acceptedHint(parent))
	}
	return buildNode(spec, n, path)
}

func buildNode(spec typeSpec, n *Node, path string) (dom.Node, error) {
	if err := checkParams(spec, n); err != nil {
		return nil, err.WithPath(path)
	}

	node, err := spec.build(n)
	if err != nil {
		return nil, errors.FromError(err, "E133").WithPath(path)
	}
	keepClosingTag(node)
	if err := catch(path, func() { setAttributes(node, n.Attrs) }); err != nil {
		return nil, err
	}

	for i := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, err := buildChild(spec.kind, &n.Children[i], childPath)
		if err != nil {
			return nil, err
		}
		if err := catch(childPath, func() { appendChild(node, child) }); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// resolve returns the typeSpec for a type: a catalog type, or a generic element
// whose tag is a known HTML name or a custom element name.
func resolve(t string) (typeSpec, *errors.Error) {
	if t == "" {
		return typeSpec{}, errors.New("E131").WithDetail("missing type")
	}
	if spec, ok := types[t]; ok {
		return spec, nil
	}
	if reserved[t] {
		return typeSpec{}, errors.New("E131").WithDetailf("%q is created by the document itself", t)
	}
	if !isHTMLTag(t) && !isCustomElement(t) {
		return typeSpec{}, errors.New("E131").WithDetailf("type %q", t)
	}

	return element(t), nil
}

// acceptedHint lists what a restricted parent accepts, for error details.
func acceptedHint(parent dom.Kind) string {
	if !dom.IsRestricted(parent) {
		return ""
	}
	accepted := dom.AcceptedKinds(parent)
	if len(accepted) == 0 {
		return "; it accepts no children"
	}
	names := make([]string, len(accepted))
	for i, k := range accepted {
		names[i] = k.String()
	}
	return "; it accepts " + strings.Join(names, ", ")
}

// keepClosingTag marks every element whose tag is not an HTML void element
// so it renders <tag></tag> when empty. Browsers read <div/> as an open tag.
func keepClosingTag(node dom.Node) {
	switch n := node.(type) {
	case *dom.List:
		n.NonVoid()
	case *dom.Table:
		n.NonVoid()
	case *dom.Row:
		n.NonVoid()
	case interface {
		Tag() string
		IsText() bool
		NonVoid() *dom.Element
	}:
		if !n.IsText() && !dom.IsVoidTag(n.Tag()) {
			n.NonVoid()
		}
	}
}

// checkParams rejects variant parameters the type does not use, and content
// on types that have none.
func checkParams(spec typeSpec, n *Node) *errors.Error {
	if spec.noContent && n.Content != "" {
		return errors.New("E133").WithDetailf("%s takes no content", n.Type)
	}

	allowed := make(map[string]bool, len(spec.params))
	for _, p := range spec.params {
		allowed[p] = true
	}
	var unused []string
	for _, p := range n.params() {
		if !allowed[p] {
			unused = append(unused, p)
		}
	}
	if len(unused) > 0 {
		return errors.New("E133").
			WithDetailf("%s does not use %s", n.Type, strings.Join(unused, ", "))
	}
	return nil
}

func isHTMLTag(t string) bool {
	return atom.Lookup([]byte(t)) != 0
}

// isCustomElement reports whether t is a valid custom element name: lower
// case, starting with a letter and containing a hyphen.
func isCustomElement(t string) bool {
	if !strings.Contains(t, "-") || t[0] < 'a' || t[0] > 'z' {
		return false
	}
	for _, r := range t {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.', r == '_':
		default:
			return false
		}
	}
	return true
}

func setAttributes(node dom.Node, attrs map[string]string) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := attrs[name]
		switch v := node.(type) {
		case *dom.Table:
			v.SetAttribute(name, value)
		case *dom.Row:
			v.SetAttribute(name, value)
		case *dom.List:
			v.SetAttribute(name, value)
		case *dom.Input:
			v.SetAttribute(name, value)
		case interface {
			SetAttribute(string, string) *dom.Element
		}:
			v.SetAttribute(name, value)
		}
	}
}

// appendChild dispatches to the typed Append of restricted containers. The
// kinds were checked with dom.Accepts, so the assertions hold.
func appendChild(parent, child dom.Node) {
	switch p := parent.(type) {
	case *dom.Table:
		p.Append(child.(*dom.Row))
	case *dom.Row:
		p.Append(child.(dom.RowChild))
	case *dom.List:
		p.Append(child.(*dom.ListItem))
	case interface{ AppendChild(dom.Node) *dom.Element }:
		p.AppendChild(child)
	}
}

// catch converts a coded panic raised by dom into an error at path.
func catch(path string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*errors.Error)
			if !ok {
				panic(r)
			}
			err = e.WithPath(path)
		}
	}()
	fn()
	return nil
}
