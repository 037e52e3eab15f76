// Package dom builds markup documents as trees of elements and serializes
// them to HTML.
//
// A tree is built bottom-up. Every append moves the child into its parent and
// returns the parent, so calls chain:
//
//	doc := dom.NewDocument("Welcome")
//	doc.Append(dom.Paragraph("Hi")).AppendChild(dom.Break())
//	fmt.Print(doc.Render())
//
// Output:
//
//	<!doctype html>
//	<html>
//	  <head>
//	    <title>Welcome</title>
//	  </head>
//	  <body>
//	    <p>Hi</p>
//	    <br/>
//	  </body>
//	</html>
//
// # Void elements
//
// An element renders self-closing (<br/>) when it has no content, no children
// and is not marked non-void. Cells, scripts, head and body are non-void and
// always render a closing tag (<td></td>). Elements with content or children
// always render separate open and close tags, content first.
//
// # Restricted containers
//
// Head, List, Table and Row only accept a closed set of child kinds. Their
// Append methods take the accepted types only, so invalid nesting such as a
// row inside a list does not compile:
//
//	table := dom.NewTable().Append(
//	    dom.NewHeaderRow("A", "B"),
//	    dom.NewDataRow("1", "2"),
//	)
//
// Accepts exposes the same rule for kinds known only at run time.
//
// # Escaping
//
// Content and attribute values are written verbatim unless the Renderer is
// configured with Escape. Attributes are written in lexicographic order.
package dom
