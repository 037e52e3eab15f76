package main

import (
	"github.com/spf13/cobra"

	"github.com/SRombauts/HtmlBuilder/pkg/dom"
)

func exampleCmd() *cobra.Command {
	var escape bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a document showing every element type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := dom.NewRenderer(dom.RenderConfig{Escape: escape})
			return r.WriteDocument(cmd.OutOrStdout(), showcase())
		},
	}

	cmd.Flags().BoolVar(&escape, "escape", false, "Escape content and attribute values")

	return cmd
}

// showcase builds a document that exercises the typed API.
func showcase() *dom.Document {
	doc := dom.NewDocument("HtmlBuilder").Lang("en")
	doc.AddToHead(
		dom.NewMetaCharset("utf-8"),
		dom.NewMeta("viewport", "width=device-width, initial-scale=1"),
		dom.NewStylesheet("style.css"),
		dom.NewStyle("body { font-family: sans-serif; }"),
	)

	header := dom.Header()
	header.AppendChild(dom.Heading1("HtmlBuilder"))
	header.AppendChild(dom.Paragraph("Typed HTML documents. ").
		AppendChild(dom.Bold("Bold")).
		AppendText(" and ").
		AppendChild(dom.Italic("italic")).
		AppendText(" text."))
	doc.Append(header)

	nav := dom.Nav()
	nav.AppendChild(dom.NewListOf(false, "Lists", "Tables", "Forms").ID("toc"))
	doc.Append(nav)

	lists := dom.Section().ID("lists")
	lists.AppendChild(dom.Heading2("Lists"))
	lists.AppendChild(dom.NewListOf(true, "First", "Second", "Third"))
	doc.Append(lists)

	tables := dom.Section().ID("tables")
	tables.AppendChild(dom.Heading2("Tables"))
	table := dom.NewTable().Class("grid").Append(
		dom.NewHeaderRow("Element", "Kind"),
		dom.NewDataRow("table", "rows only"),
		dom.NewDataRow("tr", "cells only"),
		dom.NewRow().Append(dom.NewCell("spanning").ColSpan(2)),
	)
	tables.AppendChild(table)
	doc.Append(tables)

	forms := dom.Section().ID("forms")
	forms.AppendChild(dom.Heading2("Forms"))
	form := dom.Form("/subscribe")
	form.AppendText("Email: ")
	form.AppendChild(dom.NewEmailInput("email", "").Placeholder("you@example.com").Required())
	form.AppendChild(dom.Break())
	form.AppendChild(dom.NewCheckbox("news", "yes").Checked(true))
	form.AppendText(" Send news")
	form.AppendChild(dom.Break())
	form.AppendChild(dom.NewSubmit("Subscribe", ""))
	forms.AppendChild(form)
	doc.Append(forms)

	footer := dom.Footer()
	footer.AppendChild(dom.Paragraph().
		AppendChild(dom.Anchor("Source", "https://github.com/SRombauts/HtmlBuilder")).
		AppendChild(dom.Break()).
		AppendChild(dom.ImageSized("logo.png", "logo", 64, 64)))
	doc.Append(footer)

	return doc
}
