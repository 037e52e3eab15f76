// Package layout builds documents from declarative descriptions.
//
// A description is a YAML (or JSON) file:
//
//	title: Welcome
//	lang: en
//	head:
//	  - type: meta
//	    charset: utf-8
//	body:
//	  - type: h1
//	    content: Hello
//	  - type: ul
//	    children:
//	      - {type: li, content: one}
//	      - {type: li, content: two}
//
// Each node names a type from the dom catalog (p, a, img, table, input...)
// or any other HTML tag or custom element. Children are checked against the
// containers' accepted kinds before they are appended, and every error
// carries the path of the node, such as body[1].children[0].
package layout
