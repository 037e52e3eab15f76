// Package errors provides structured, actionable error messages for HtmlBuilder.
//
// Each error has a unique code (e.g., "E110") that maps to a category, a short
// message and an optional hint. Errors raised while decoding document
// descriptions also carry the path of the offending node.
//
// # Categories
//
//   - precondition: misuse of the tree API (nil child, node appended twice)
//   - structure: a child kind a restricted container does not accept
//   - config: htmlbuilder.json problems
//   - layout: invalid document descriptions
//   - publish: upload failures
//   - cli: command line problems
//
// # Usage
//
//	err := errors.New("E132").
//	    WithPath("body[1].children[0]").
//	    WithDetail("ul accepts li, got tr")
//
//	fmt.Print(err.Format())
package errors
