package dom

// Kind is the element variant discriminator.
type Kind uint8

const (
	KindElement    Kind = iota // Generic element built with New
	KindText                   // Text fragment, no tags
	KindHTML                   // <html> document root
	KindHead                   // <head>
	KindBody                   // <body>
	KindTitle                  // <title>
	KindMeta                   // <meta>
	KindRel                    // <link rel=...>
	KindScript                 // <script>
	KindStyle                  // <style>
	KindBase                   // <base>
	KindHeading                // <h1>, <h2>, <h3>
	KindParagraph              // <p>
	KindAnchor                 // <a href=...>
	KindImage                  // <img>
	KindBreak                  // <br>
	KindList                   // <ul>, <ol>
	KindListItem               // <li>
	KindTable                  // <table>
	KindRow                    // <tr>
	KindCell                   // <td>
	KindHeaderCell             // <th>
	KindForm                   // <form>
	KindInput                  // <input>
)

var kindNames = [...]string{
	KindElement:    "Element",
	KindText:       "Text",
	KindHTML:       "HTML",
	KindHead:       "Head",
	KindBody:       "Body",
	KindTitle:      "Title",
	KindMeta:       "Meta",
	KindRel:        "Rel",
	KindScript:     "Script",
	KindStyle:      "Style",
	KindBase:       "Base",
	KindHeading:    "Heading",
	KindParagraph:  "Paragraph",
	KindAnchor:     "Anchor",
	KindImage:      "Image",
	KindBreak:      "Break",
	KindList:       "List",
	KindListItem:   "ListItem",
	KindTable:      "Table",
	KindRow:        "Row",
	KindCell:       "Cell",
	KindHeaderCell: "HeaderCell",
	KindForm:       "Form",
	KindInput:      "Input",
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}
