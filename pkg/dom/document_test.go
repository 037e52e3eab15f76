package dom

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocumentScenario(t *testing.T) {
	doc := NewDocument("Welcome")
	doc.Append(Paragraph("Hi")).AppendChild(Break())

	want := `<!doctype html>
<html>
  <head>
    <title>Welcome</title>
  </head>
  <body>
    <p>Hi</p>
    <br/>
  </body>
</html>
`
	if diff := cmp.Diff(want, doc.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentWithoutTitle(t *testing.T) {
	doc := NewDocument("")

	// head and body are non-void: they keep both tags even when empty.
	want := "<!doctype html>\n<html>\n  <head></head>\n  <body></body>\n</html>\n"
	if diff := cmp.Diff(want, doc.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentAddToHeadAndBody(t *testing.T) {
	doc := NewDocument("T").Lang("en")
	doc.AddToHead(NewMetaCharset("utf-8"))
	doc.AddToBody(Heading1("Header"), Paragraph("Text"))
	doc.Body().AppendChild(Footer().AppendText("bye"))

	want := `<!doctype html>
<html lang="en">
  <head>
    <title>T</title>
    <meta charset="utf-8"/>
  </head>
  <body>
    <h1>Header</h1>
    <p>Text</p>
    <footer>
      bye
    </footer>
  </body>
</html>
`
	if diff := cmp.Diff(want, doc.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentRenderIsIdempotent(t *testing.T) {
	doc := NewDocument("Twice")
	doc.Append(NewTable().Append(NewDataRow("a", "b")))

	first := doc.Render()
	second := doc.Render()
	if first != second {
		t.Errorf("renders differ:\n%s\n---\n%s", first, second)
	}
}

func TestDocumentWriteTo(t *testing.T) {
	doc := NewDocument("W")
	var buf bytes.Buffer

	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	if buf.String() != doc.Render() {
		t.Error("WriteTo output differs from Render")
	}
}

func TestDocumentHeadBodyAreFixed(t *testing.T) {
	doc := NewDocument("x")
	children := doc.Root().Children()
	if len(children) != 2 || children[0].Tag() != "head" || children[1] != doc.Body() {
		t.Fatalf("root children = %v", children)
	}
	mustPanicCode(t, "E104", func() { Div().AppendChild(doc.Body()) })
}
